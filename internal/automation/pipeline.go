package automation

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/replykit/replykit/internal/logging"
)

// State describes where the pipeline is in its dispatch cycle.
type State string

const (
	StateIdle        State = "idle"
	StateDispatching State = "dispatching"
	StateSucceeded   State = "succeeded"
	StateFailed      State = "failed"
)

// ErrBusy is returned when an insertion is requested while another is
// still dispatching. The clipboard and keyboard focus are a single
// shared resource, so overlapping dispatches are never allowed.
var ErrBusy = errors.New("an insertion is already in progress")

// Outcome reports a completed insertion.
type Outcome struct {
	// Sent is true when the send step ran after the paste.
	Sent bool
}

// Pipeline runs the ordered insertion sequence against a Host. It
// holds no persisted state and never retries: automation side effects
// are not safely replayable.
type Pipeline struct {
	mu    sync.Mutex
	state State

	host Host

	// ReleaseFocus, when set, is called before dispatch so the hosting
	// shell can give up foreground focus to the target application.
	ReleaseFocus func() error

	logger zerolog.Logger
}

// NewPipeline creates an idle pipeline over the given host.
func NewPipeline(host Host) *Pipeline {
	return &Pipeline{
		host:   host,
		state:  StateIdle,
		logger: logging.Component("pipeline"),
	}
}

// State returns the current pipeline state.
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Insert pushes body into the target application's compose window,
// sending afterwards when send is true. A failure at any step aborts
// the remaining steps and is reported once; nothing is retried.
func (p *Pipeline) Insert(ctx context.Context, body string, send bool) (Outcome, error) {
	p.mu.Lock()
	if p.state == StateDispatching {
		p.mu.Unlock()
		return Outcome{}, ErrBusy
	}
	p.state = StateDispatching
	p.mu.Unlock()

	err := p.dispatch(ctx, body, send)

	p.mu.Lock()
	if err != nil {
		p.state = StateFailed
	} else {
		p.state = StateSucceeded
	}
	p.mu.Unlock()

	if err != nil {
		p.logger.Error().Err(err).Msg("insertion failed")
		return Outcome{}, err
	}
	p.logger.Debug().Bool("sent", send).Msg("insertion succeeded")
	return Outcome{Sent: send}, nil
}

func (p *Pipeline) dispatch(ctx context.Context, body string, send bool) error {
	if p.ReleaseFocus != nil {
		if err := p.ReleaseFocus(); err != nil {
			return err
		}
	}
	return p.host.Insert(ctx, body, send)
}
