package kinoastar

import (
	"fmt"

	"go.uber.org/multierr"
)

// Config holds every caller-configurable search parameter from spec.md §6.
type Config struct {
	MaxTau     float64 // expansion duration for non-root nodes
	InitMaxTau float64 // expansion duration at the root
	MaxVel     float64
	MaxAcc     float64
	WTime      float64
	Horizon    float64
	LambdaHeu  float64
	Margin     float64

	AllocateNum int
	CheckNum    int

	Resolution     float64 // rho
	TimeResolution float64 // rho_t, dynamic mode only
}

// DefaultConfig returns the spec.md §6 defaults for the fields that have
// them; Horizon, LambdaHeu, Margin, AllocateNum, CheckNum, Resolution and
// TimeResolution have no universal default and must be set by the caller.
func DefaultConfig() Config {
	return Config{
		MaxTau:     0.25,
		InitMaxTau: 0.8,
		MaxVel:     3.0,
		MaxAcc:     3.0,
		WTime:      10.0,
	}
}

// Validate reports every malformed field at once via multierr, rather
// than failing fast on the first one the caller would have to fix them
// one at a time otherwise.
func (c Config) Validate() error {
	var err error
	if c.MaxTau <= 0 {
		err = multierr.Append(err, fmt.Errorf("max_tau must be positive, got %v", c.MaxTau))
	}
	if c.InitMaxTau <= 0 {
		err = multierr.Append(err, fmt.Errorf("init_max_tau must be positive, got %v", c.InitMaxTau))
	}
	if c.MaxVel <= 0 {
		err = multierr.Append(err, fmt.Errorf("max_vel must be positive, got %v", c.MaxVel))
	}
	if c.MaxAcc <= 0 {
		err = multierr.Append(err, fmt.Errorf("max_acc must be positive, got %v", c.MaxAcc))
	}
	if c.Horizon <= 0 {
		err = multierr.Append(err, fmt.Errorf("horizon must be positive, got %v", c.Horizon))
	}
	if c.LambdaHeu <= 0 {
		err = multierr.Append(err, fmt.Errorf("lambda_heu must be positive, got %v", c.LambdaHeu))
	}
	if c.Margin < 0 {
		err = multierr.Append(err, fmt.Errorf("margin must be non-negative, got %v", c.Margin))
	}
	if c.AllocateNum <= 0 {
		err = multierr.Append(err, fmt.Errorf("allocate_num must be positive, got %v", c.AllocateNum))
	}
	if c.CheckNum < 2 {
		err = multierr.Append(err, fmt.Errorf("check_num must be at least 2, got %v", c.CheckNum))
	}
	if c.Resolution <= 0 {
		err = multierr.Append(err, fmt.Errorf("resolution must be positive, got %v", c.Resolution))
	}
	if c.TimeResolution < 0 {
		err = multierr.Append(err, fmt.Errorf("time_resolution must be non-negative, got %v", c.TimeResolution))
	}
	return err
}
