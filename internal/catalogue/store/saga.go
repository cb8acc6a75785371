package store

import "context"

// sagaStep is one step of a multi-table create. compensate undoes the
// step's effect and may be nil for steps with nothing to undo.
type sagaStep struct {
	name       string
	run        func(ctx context.Context) error
	compensate func(ctx context.Context) error
}

// runSaga executes steps in order. When a step fails, compensations for
// the steps that already succeeded run in reverse order; the original
// failure is returned. A failing compensation aborts the cleanup and is
// reported as a PartialFailureError wrapping the original failure.
func (s *Store) runSaga(ctx context.Context, steps []sagaStep) error {
	for i, step := range steps {
		err := step.run(ctx)
		if err == nil {
			continue
		}
		s.log.Warn("saga step failed, compensating", "step", step.name, "error", err)
		for j := i - 1; j >= 0; j-- {
			if steps[j].compensate == nil {
				continue
			}
			if cerr := steps[j].compensate(ctx); cerr != nil {
				s.log.Error("saga compensation failed",
					"step", step.name, "compensation_step", steps[j].name, "error", cerr)
				return &PartialFailureError{
					Step:             step.name,
					Cause:            err,
					CompensationStep: steps[j].name,
					CompensationErr:  cerr,
				}
			}
		}
		return err
	}
	return nil
}
