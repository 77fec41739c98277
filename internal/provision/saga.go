package provision

import (
	"context"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	"go.uber.org/zap"
)

// Step pairs a provisioning action with the compensation that undoes
// it. Compensate may be nil for steps with no external footprint.
type Step struct {
	Name       string
	Run        func(ctx context.Context, state *State) error
	Compensate func(ctx context.Context, state *State) error
}

type sequence struct {
	steps  []Step
	logger *zap.Logger
}

func newSequence(steps []Step, logger *zap.Logger) *sequence {
	return &sequence{
		steps:  steps,
		logger: logger,
	}
}

// run executes the steps in order. On failure at step N it runs the
// compensations of steps N-1..1 in reverse and reports the failed step.
// onStepDone is called after each successful step so the caller can
// persist progress.
func (s *sequence) run(
	ctx context.Context,
	state *State,
	onStepDone func(ctx context.Context, stepName string, state State),
) (failedStep string, err error) {
	for i, step := range s.steps {
		if err := step.Run(ctx, state); err != nil {
			s.logger.Error("provisioning step failed",
				zap.String("step", step.Name),
				zap.Error(err),
			)

			s.compensate(ctx, state, i-1)

			return step.Name, apperror.NewUpstreamErr(step.Name)
		}

		s.logger.Info("provisioning step done", zap.String("step", step.Name))

		if onStepDone != nil {
			onStepDone(ctx, step.Name, *state)
		}
	}

	return "", nil
}

// compensate undoes steps [0..last] in reverse order. Compensation
// failures are logged and skipped: a leftover artifact is recoverable
// from the attempt record, while aborting here would strand even more.
func (s *sequence) compensate(ctx context.Context, state *State, last int) {
	for i := last; i >= 0; i-- {
		step := s.steps[i]
		if step.Compensate == nil {
			continue
		}

		if err := step.Compensate(ctx, state); err != nil {
			s.logger.Error("compensation failed",
				zap.String("step", step.Name),
				zap.Error(err),
			)
			continue
		}

		s.logger.Info("compensated provisioning step", zap.String("step", step.Name))
	}
}
