package tableaux

import "go.uber.org/zap"

// Config carries the tableau-specific knobs from spec.md §6.
type Config struct {
	// MaxDepth does not limit completion-graph depth. When it is non-zero
	// and a query's context carries no deadline, the query runs under a
	// two-minute deadline (see newBudget); zero leaves such queries
	// without a deadline.
	MaxDepth int
	// StepBudget is the hard tableau-step ceiling; exceeding it yields an
	// owlerr.KindResourceExceeded error (errStepBudgetExceeded) rather
	// than a boolean answer.
	StepBudget int
	Logger     *zap.Logger
}

// DefaultConfig matches spec.md §6's stated defaults.
func DefaultConfig() Config {
	return Config{
		MaxDepth:   10,
		StepBudget: 200_000,
		Logger:     zap.NewNop(),
	}
}
