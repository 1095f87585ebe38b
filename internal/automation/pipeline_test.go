package automation

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeHost records insert calls and can fail or block on demand.
type fakeHost struct {
	mu      sync.Mutex
	calls   []fakeCall
	failErr error
	block   chan struct{}
}

type fakeCall struct {
	body string
	send bool
}

func (h *fakeHost) Insert(ctx context.Context, body string, send bool) error {
	if h.block != nil {
		<-h.block
	}
	h.mu.Lock()
	h.calls = append(h.calls, fakeCall{body: body, send: send})
	h.mu.Unlock()
	return h.failErr
}

func TestInsertWithoutSend(t *testing.T) {
	host := &fakeHost{}
	p := NewPipeline(host)
	require.Equal(t, StateIdle, p.State())

	outcome, err := p.Insert(context.Background(), "Hello", false)
	require.NoError(t, err)
	require.False(t, outcome.Sent)
	require.Equal(t, StateSucceeded, p.State())

	require.Len(t, host.calls, 1)
	require.Equal(t, "Hello", host.calls[0].body)
	require.False(t, host.calls[0].send)
}

func TestInsertWithSend(t *testing.T) {
	host := &fakeHost{}
	p := NewPipeline(host)

	outcome, err := p.Insert(context.Background(), "Hello", true)
	require.NoError(t, err)
	require.True(t, outcome.Sent)
	require.True(t, host.calls[0].send)
}

func TestInsertFailure(t *testing.T) {
	host := &fakeHost{failErr: errors.New("no compose window focused")}
	p := NewPipeline(host)

	_, err := p.Insert(context.Background(), "Hello", false)
	require.Error(t, err)
	require.Equal(t, StateFailed, p.State())

	// a later insert may run again; failures are not sticky
	host.failErr = nil
	_, err = p.Insert(context.Background(), "Hello", false)
	require.NoError(t, err)
	require.Equal(t, StateSucceeded, p.State())
}

func TestReleaseFocusFailureAborts(t *testing.T) {
	host := &fakeHost{}
	p := NewPipeline(host)
	p.ReleaseFocus = func() error { return errors.New("still frontmost") }

	_, err := p.Insert(context.Background(), "Hello", false)
	require.Error(t, err)
	require.Equal(t, StateFailed, p.State())
	require.Empty(t, host.calls, "host must not be reached when focus release fails")
}

func TestSecondInsertWhileDispatching(t *testing.T) {
	host := &fakeHost{block: make(chan struct{})}
	p := NewPipeline(host)

	done := make(chan error, 1)
	go func() {
		_, err := p.Insert(context.Background(), "first", false)
		done <- err
	}()

	// wait for the first insert to enter dispatch
	require.Eventually(t, func() bool {
		return p.State() == StateDispatching
	}, testWait, testTick)

	_, err := p.Insert(context.Background(), "second", false)
	require.ErrorIs(t, err, ErrBusy)

	close(host.block)
	require.NoError(t, <-done)
	require.Len(t, host.calls, 1)
}
