package analytics

import (
	"errors"

	"github.com/phrazzld/barbell-api/internal/domain"
)

// Common errors
var (
	ErrNilHierarchy = errors.New("program hierarchy cannot be nil")
	ErrNilSettings  = errors.New("stats settings cannot be nil")
)

// Options control optional behavior of a stats computation.
type Options struct {
	// SleepAdjustment conditions both fatigue scoring and decay on the days'
	// sleep quality values where present.
	SleepAdjustment bool
}

// StatsResult bundles the two output series of one computation.
type StatsResult struct {
	Volume  VolumeResult  `json:"volume"`
	Fatigue FatigueResult `json:"fatigue"`
}

// Service defines the interface for training-load analytics.
type Service interface {
	// ComputeStats derives the weekly volume series and, when an RPE column
	// is configured, the daily fatigue series from a program snapshot. The
	// computation is pure: repeated invocations on the same inputs yield the
	// same result, and every invocation recomputes from scratch.
	ComputeStats(h *ProgramHierarchy, settings *domain.StatsSettings, opts Options) (*StatsResult, error)
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates an analytics service with default parameters.
func NewDefaultService() Service {
	return &defaultService{params: NewDefaultParams()}
}

// NewServiceWithParams creates an analytics service with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{params: params}
}

// ComputeStats implements the Service interface.
func (s *defaultService) ComputeStats(
	h *ProgramHierarchy,
	settings *domain.StatsSettings,
	opts Options,
) (*StatsResult, error) {
	if h == nil {
		return nil, ErrNilHierarchy
	}
	if settings == nil {
		return nil, ErrNilSettings
	}

	// Both series share one traversal order, computed once.
	weeks := flatten(h)

	// computeFatigue short-circuits to an empty series when no RPE column
	// is configured.
	return &StatsResult{
		Volume:  aggregateVolume(weeks, settings),
		Fatigue: computeFatigue(weeks, settings, opts.SleepAdjustment, s.params),
	}, nil
}
