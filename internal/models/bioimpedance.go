// ABOUTME: BioimpedanceData model for body composition measurements.
// ABOUTME: One record per scale reading; chronological order drives trends.
package models

import "time"

// BioimpedanceData is a single body composition measurement. All numeric
// fields are point-in-time readings; zero is a valid measurement.
type BioimpedanceData struct {
	ID                string
	Date              time.Time // calendar date of the measurement
	Weight            float64   // kg
	BodyFatPercentage float64
	MuscleMass        float64 // kg
	BoneMass          float64 // kg
	WaterPercentage   float64
	VisceralFat       float64 // index
	BMR               int     // kcal/day
	MetabolicAge      int     // years
	Notes             *string
}

// NewBioimpedance creates a measurement dated today with the given weight.
func NewBioimpedance(weight float64) *BioimpedanceData {
	return &BioimpedanceData{
		ID:     NewLocalID(),
		Date:   time.Now(),
		Weight: weight,
	}
}

// WithDate sets the measurement date.
func (b *BioimpedanceData) WithDate(d time.Time) *BioimpedanceData {
	b.Date = d
	return b
}

// WithNotes sets notes on the measurement.
func (b *BioimpedanceData) WithNotes(notes string) *BioimpedanceData {
	b.Notes = &notes
	return b
}
