// Package finitestate tracks the lifecycle of a transport runnable with go-fsm.
package finitestate

import (
	"context"
	"log/slog"

	"github.com/robbyt/go-fsm"
)

// States reuse the go-fsm names so go-supervisor can report them.
const (
	StatusNew      = fsm.StatusNew
	StatusBooting  = fsm.StatusBooting
	StatusRunning  = fsm.StatusRunning
	StatusStopping = fsm.StatusStopping
	StatusStopped  = fsm.StatusStopped
	StatusError    = fsm.StatusError
	StatusUnknown  = fsm.StatusUnknown
)

// SessionTransitions is the runnable lifecycle. There is no reloading state: the MCP
// server is fixed once its tools are registered. A stopped or failed runnable may boot again.
var SessionTransitions = map[string][]string{
	StatusNew:      {StatusBooting, StatusError},
	StatusBooting:  {StatusRunning, StatusStopping, StatusError},
	StatusRunning:  {StatusStopping, StatusError},
	StatusStopping: {StatusStopped, StatusError},
	StatusStopped:  {StatusBooting, StatusError},
	StatusError:    {StatusBooting},
}

// LifecycleBuffer fits the current state plus a full boot-to-stop sequence.
const LifecycleBuffer = 8

// Machine is the part of the go-fsm machine the runnables use.
type Machine interface {
	Transition(state string) error
	GetState() string
	// GetStateChan sends the current state, then changes without blocking. Its buffer holds
	// one state, so changes made while it is unread are dropped.
	GetStateChan(ctx context.Context) <-chan string
	// GetStateChanBuffer is GetStateChan with room for size unread states.
	GetStateChanBuffer(ctx context.Context, size int) <-chan string
}

// Subscribe returns a state channel that keeps a whole lifecycle for a slow reader.
func Subscribe(ctx context.Context, m Machine) <-chan string {
	return m.GetStateChanBuffer(ctx, LifecycleBuffer)
}

// New returns a machine in StatusNew.
func New(handler slog.Handler) (Machine, error) {
	return fsm.New(handler, StatusNew, SessionTransitions)
}
