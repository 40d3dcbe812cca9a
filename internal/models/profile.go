// ABOUTME: UserProfile model holding identity and body measurements.
// ABOUTME: Exactly one profile is current per authenticated user.
package models

// UserProfile is the user's training profile. All measurements are optional;
// zero is a valid value and is distinct from unset.
type UserProfile struct {
	ID            string
	Name          string
	Age           *int
	Height        *float64 // cm
	CurrentWeight *float64 // kg
	GoalWeight    *float64 // kg
	AvatarURL     *string
}

// NewUserProfile creates a profile with only a name set. The ID is assigned
// by the server on create.
func NewUserProfile(name string) *UserProfile {
	return &UserProfile{Name: name}
}

// WithAge sets the age in years.
func (p *UserProfile) WithAge(age int) *UserProfile {
	p.Age = &age
	return p
}

// WithHeight sets the height in centimeters.
func (p *UserProfile) WithHeight(cm float64) *UserProfile {
	p.Height = &cm
	return p
}

// WithCurrentWeight sets the current weight in kilograms.
func (p *UserProfile) WithCurrentWeight(kg float64) *UserProfile {
	p.CurrentWeight = &kg
	return p
}

// WithGoalWeight sets the goal weight in kilograms.
func (p *UserProfile) WithGoalWeight(kg float64) *UserProfile {
	p.GoalWeight = &kg
	return p
}
