package simulador

// Result is the outcome of one simulation run. It is assembled once at the
// end of the run and never mutated.
type Result struct {
	Config Config `json:"-"`

	// Trajectory holds one snapshot per trading day, in order. Final is its
	// last element, repeated for convenience.
	Trajectory []Snapshot `json:"trajectory"`
	Final      Snapshot   `json:"final"`

	// TotalInvested is the initial value plus every monthly contribution.
	TotalInvested         Money `json:"total_invested"`
	TotalContributed      Money `json:"total_contributed"`
	DistributionsReceived Money `json:"total_distributions_received"`

	// PeriodDays is the calendar span between the first and last trading day.
	PeriodDays int `json:"period_days"`

	Metrics Metrics `json:"metrics"`
}

// Simulate is the single entry point of the engine.
//
// It validates the inputs, walks the series once to produce the trajectory,
// derives the metrics, and assembles the result. Validation failures are
// reported before any state is built: the error wraps ErrInvalidSeries or
// ErrInvalidConfig and the result is nil. Undefined metrics (see Metrics)
// never fail the run.
func Simulate(series PriceSeries, dists []Distribution, cfg Config) (*Result, error) {
	if err := series.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateDistributions(dists); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	trajectory, final := walk(series, dists, cfg)

	return &Result{
		Config:                cfg,
		Trajectory:            trajectory,
		Final:                 trajectory[len(trajectory)-1],
		TotalInvested:         cfg.InitialValue.Add(final.Contributed),
		TotalContributed:      final.Contributed,
		DistributionsReceived: final.Received,
		PeriodDays:            series.Last().Day.DaysSince(series.First().Day),
		Metrics:               computeMetrics(trajectory, final, cfg),
	}, nil
}
