package wizard

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Step is a position in the builder flow.
type Step int

const (
	StepCollecting Step = iota + 1
	StepReviewing
	StepGenerated
)

func (s Step) String() string {
	switch s {
	case StepCollecting:
		return "collecting"
	case StepReviewing:
		return "reviewing"
	case StepGenerated:
		return "generated"
	default:
		return "unknown"
	}
}

var (
	ErrMissingRequired   = errors.New("business name and business type are required")
	ErrNotEditable       = errors.New("fields can only be edited while collecting")
	ErrInvalidTransition = errors.New("invalid step transition")
	ErrBusy              = errors.New("generation already in progress")
	ErrDiscarded         = errors.New("generation discarded by reset")
)

// Outcome is the result of one generation run.
type Outcome struct {
	Data WebsiteData
	Err  error
}

// State is a point-in-time copy of a Wizard.
type State struct {
	Step Step
	Data WebsiteData
	Busy bool
	// Generated holds the frozen record once Step is StepGenerated.
	Generated WebsiteData
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithGenerator replaces the default DelayGenerator.
func WithGenerator(g Generator) Option {
	return func(w *Wizard) { w.gen = g }
}

// WithNotifier sets where user-facing messages are sent.
func WithNotifier(n Notifier) Option {
	return func(w *Wizard) { w.notify = n }
}

// OnGenerated registers a callback run after every successful generation.
// It is called without the wizard lock held.
func OnGenerated(fn func(WebsiteData)) Option {
	return func(w *Wizard) { w.onGenerated = fn }
}

// Wizard holds the state of one builder session.
type Wizard struct {
	mu          sync.Mutex
	step        Step
	data        WebsiteData
	frozen      WebsiteData
	busy        bool
	epoch       uint64
	cancel      context.CancelFunc
	gen         Generator
	notify      Notifier
	onGenerated func(WebsiteData)
}

// New creates a Wizard in the collecting step with an empty record.
func New(opts ...Option) *Wizard {
	w := &Wizard{
		step:   StepCollecting,
		data:   NewWebsiteData(),
		gen:    NewDelayGenerator(DefaultGenerationDelay),
		notify: NopNotifier,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// State returns a copy of the current state.
func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return State{Step: w.step, Data: w.data, Busy: w.busy, Generated: w.frozen}
}

// Generated returns the frozen record, if generation has completed.
func (w *Wizard) Generated() (WebsiteData, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.frozen, w.step == StepGenerated
}

// Set replaces a single field of the record.
func (w *Wizard) Set(field Field, value string) error {
	return w.SetAll(map[Field]string{field: value})
}

// SetAll applies several field edits at once. Either all edits are applied or none.
func (w *Wizard) SetAll(values map[Field]string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepCollecting {
		return ErrNotEditable
	}
	next := w.data
	for field, value := range values {
		var err error
		if next, err = next.With(field, value); err != nil {
			return err
		}
	}
	w.data = next
	return nil
}

// CanAdvance reports whether Next would succeed.
func (w *Wizard) CanAdvance() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step == StepCollecting && w.data.Complete()
}

// Next moves from collecting to reviewing. Missing required fields block the
// transition and raise a single error notification.
func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepCollecting {
		return ErrInvalidTransition
	}
	if !w.data.Complete() {
		w.notify.Error(MsgMissingRequired)
		return ErrMissingRequired
	}
	w.step = StepReviewing
	return nil
}

// Back returns from reviewing to collecting, keeping the record intact. A
// generation in flight is cancelled and its outcome is reported as ErrDiscarded.
func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepReviewing {
		return ErrInvalidTransition
	}
	if w.busy {
		w.cancel()
		w.cancel = nil
		w.epoch++
		w.busy = false
	}
	w.step = StepCollecting
	return nil
}

// Start begins generation in the background and returns a channel that
// receives exactly one Outcome. The busy flag is set before Start returns, so
// a concurrent Start fails with ErrBusy until the outcome is delivered.
func (w *Wizard) Start(ctx context.Context) (<-chan Outcome, error) {
	w.mu.Lock()
	if w.step != StepReviewing {
		w.mu.Unlock()
		return nil, ErrInvalidTransition
	}
	if w.busy {
		w.mu.Unlock()
		return nil, ErrBusy
	}
	if !w.data.Complete() {
		w.notify.Error(MsgMissingRequired)
		w.mu.Unlock()
		return nil, ErrMissingRequired
	}
	w.busy = true
	w.epoch++
	epoch := w.epoch
	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	data, gen := w.data, w.gen
	w.notify.Success(MsgGenerating)
	w.mu.Unlock()

	out := make(chan Outcome, 1)
	go func() {
		defer cancel()
		result, err := gen.Generate(ctx, data)
		out <- w.finish(epoch, result, err)
		close(out)
	}()
	return out, nil
}

// Generate runs a generation and waits for its outcome.
func (w *Wizard) Generate(ctx context.Context) (WebsiteData, error) {
	ch, err := w.Start(ctx)
	if err != nil {
		return WebsiteData{}, err
	}
	o := <-ch
	return o.Data, o.Err
}

func (w *Wizard) finish(epoch uint64, result WebsiteData, err error) Outcome {
	w.mu.Lock()
	if epoch != w.epoch {
		w.mu.Unlock()
		return Outcome{Err: ErrDiscarded}
	}
	w.busy = false
	w.cancel = nil
	if err != nil {
		w.notify.Error(MsgGenerateFailed)
		w.mu.Unlock()
		return Outcome{Err: err}
	}
	if !result.Generated() {
		result.GeneratedAt = time.Now().UTC()
	}
	w.frozen = result
	w.step = StepGenerated
	w.notify.Success(MsgGenerated)
	hook := w.onGenerated
	w.mu.Unlock()

	if hook != nil {
		hook(result)
	}
	return Outcome{Data: result}
}

// Reset discards all state and returns to the collecting step. A generation in
// flight is cancelled and its outcome is reported as ErrDiscarded.
func (w *Wizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.epoch++
	w.busy = false
	w.step = StepCollecting
	w.data = NewWebsiteData()
	w.frozen = WebsiteData{}
}
