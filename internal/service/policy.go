package service

import (
	"math"
	"time"
)

// Policy holds the tunable rules of the deployment engine
type Policy struct {
	GracePeriod             time.Duration
	MinimumRest             time.Duration
	DefaultHysteresisMeters float64
	LookupTimeout           time.Duration
	CertificationHardBlock  bool
	NoShowGrace             time.Duration
	EscalationThreshold     time.Duration
	DispatchMinScore        float64
	SweepBatchSize          int
}

// DefaultPolicy returns the standard operating rules
func DefaultPolicy() Policy {
	return Policy{
		GracePeriod:             15 * time.Minute,
		MinimumRest:             10 * time.Hour,
		DefaultHysteresisMeters: 20,
		LookupTimeout:           2 * time.Second,
		NoShowGrace:             30 * time.Minute,
		EscalationThreshold:     15 * time.Minute,
		DispatchMinScore:        60,
		SweepBatchSize:          500,
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
