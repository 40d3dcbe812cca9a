// ABOUTME: Tests for log level parsing.
package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestGetLevel(t *testing.T) {
	cases := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"DEBUG":   logrus.DebugLevel,
		"info":    logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"fatal":   logrus.FatalLevel,
		"trace":   logrus.TraceLevel,
		"":        logrus.WarnLevel,
		"bogus":   logrus.WarnLevel,
		"Warning": logrus.WarnLevel,
	}
	for in, want := range cases {
		if got := GetLevel(in); got != want {
			t.Errorf("GetLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
