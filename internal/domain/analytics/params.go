package analytics

// Params defines all configurable parameters for the fatigue model.
type Params struct {
	// LiftMultipliers weight each category's systemic stress relative to
	// bench press.
	LiftMultipliers map[LiftCategory]float64

	// EffortThreshold is the RPE below or at which a set contributes no
	// fatigue; effort is rpe minus this threshold, floored at zero.
	EffortThreshold float64

	// BaseDecay is the fraction of residual fatigue carried over per day
	// (0.70 gives roughly a two-day half-life).
	BaseDecay float64

	// MinDecay and MaxDecay clamp the sleep-adjusted decay so the model
	// never degenerates at extreme sleep quality inputs.
	MinDecay float64
	MaxDecay float64

	// SleepFactorBase and SleepFactorSpan define the sleep scaling factor:
	// base + span * quality/100, so quality 0 maps to base and quality 100
	// to base + span.
	SleepFactorBase float64
	SleepFactorSpan float64
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance. Zero-valued fields keep their defaults.
type ParamsConfig struct {
	SquatMultiplier    float64
	BenchMultiplier    float64
	DeadliftMultiplier float64

	EffortThreshold float64

	BaseDecay float64
	MinDecay  float64
	MaxDecay  float64

	SleepFactorBase float64
	SleepFactorSpan float64
}

// NewDefaultParams creates a new Params instance with default values.
func NewDefaultParams() *Params {
	return &Params{
		LiftMultipliers: map[LiftCategory]float64{
			LiftBench:    1.0,
			LiftSquat:    1.3,
			LiftDeadlift: 1.6,
		},
		EffortThreshold: 5,
		BaseDecay:       0.70,
		MinDecay:        0.55,
		MaxDecay:        0.85,
		SleepFactorBase: 0.85,
		SleepFactorSpan: 0.30,
	}
}

// NewParams creates a new Params instance with custom configuration.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.SquatMultiplier > 0 {
		params.LiftMultipliers[LiftSquat] = config.SquatMultiplier
	}
	if config.BenchMultiplier > 0 {
		params.LiftMultipliers[LiftBench] = config.BenchMultiplier
	}
	if config.DeadliftMultiplier > 0 {
		params.LiftMultipliers[LiftDeadlift] = config.DeadliftMultiplier
	}

	if config.EffortThreshold > 0 {
		params.EffortThreshold = config.EffortThreshold
	}

	if config.BaseDecay > 0 {
		params.BaseDecay = config.BaseDecay
	}
	if config.MinDecay > 0 {
		params.MinDecay = config.MinDecay
	}
	if config.MaxDecay > 0 {
		params.MaxDecay = config.MaxDecay
	}

	if config.SleepFactorBase > 0 {
		params.SleepFactorBase = config.SleepFactorBase
	}
	if config.SleepFactorSpan > 0 {
		params.SleepFactorSpan = config.SleepFactorSpan
	}

	return params
}
