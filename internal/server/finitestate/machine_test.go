package finitestate

import (
	"log/slog"
	"testing"
	"time"

	"github.com/robbyt/go-fsm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMachine(t *testing.T) Machine {
	t.Helper()
	machine, err := New(slog.Default().Handler())
	require.NoError(t, err)
	require.Equal(t, StatusNew, machine.GetState())
	return machine
}

func TestMachine_CleanShutdown(t *testing.T) {
	machine := newMachine(t)
	for _, state := range []string{StatusBooting, StatusRunning, StatusStopping, StatusStopped, StatusBooting} {
		require.NoError(t, machine.Transition(state), "transition to %s", state)
		assert.Equal(t, state, machine.GetState())
	}
}

func TestMachine_SessionFailure(t *testing.T) {
	machine := newMachine(t)
	require.NoError(t, machine.Transition(StatusBooting))
	require.NoError(t, machine.Transition(StatusRunning))
	require.NoError(t, machine.Transition(StatusError))

	assert.Error(t, machine.Transition(StatusRunning), "a failed session must boot first")
	require.NoError(t, machine.Transition(StatusBooting))
}

func TestMachine_RejectedTransitions(t *testing.T) {
	tests := []struct {
		from []string
		to   string
	}{
		{nil, StatusRunning},
		{nil, StatusStopping},
		{[]string{StatusBooting, StatusRunning}, StatusBooting},
		{[]string{StatusBooting, StatusRunning}, StatusStopped},
	}
	for _, tc := range tests {
		t.Run(tc.to, func(t *testing.T) {
			machine := newMachine(t)
			for _, s := range tc.from {
				require.NoError(t, machine.Transition(s))
			}
			before := machine.GetState()
			assert.Error(t, machine.Transition(tc.to))
			assert.Equal(t, before, machine.GetState())
		})
	}
}

func TestSessionTransitions_NoReloading(t *testing.T) {
	for from, targets := range SessionTransitions {
		assert.NotContains(t, targets, fsm.StatusReloading, "from %s", from)
	}
}

func TestSubscribe_KeepsWholeLifecycle(t *testing.T) {
	machine := newMachine(t)
	states := Subscribe(t.Context(), machine)

	lifecycle := []string{StatusBooting, StatusRunning, StatusStopping, StatusStopped}
	for _, state := range lifecycle {
		require.NoError(t, machine.Transition(state))
	}

	want := append([]string{StatusNew}, lifecycle...)
	var got []string
	for range want {
		select {
		case s := <-states:
			got = append(got, s)
		case <-time.After(time.Second):
			t.Fatalf("received only %v", got)
		}
	}
	assert.Equal(t, want, got)
}
