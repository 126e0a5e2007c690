package stdio

import (
	"context"

	"github.com/atlanticdynamic/decision-helper/internal/server/finitestate"
)

// GetState returns the current state of the runner
func (r *Runner) GetState() string {
	return r.fsm.GetState()
}

// IsRunning returns whether the runner is serving a session
func (r *Runner) IsRunning() bool {
	return r.fsm.GetState() == finitestate.StatusRunning
}

// GetStateChan returns a channel that emits the current state and every later change
func (r *Runner) GetStateChan(ctx context.Context) <-chan string {
	return finitestate.Subscribe(ctx, r.fsm)
}
