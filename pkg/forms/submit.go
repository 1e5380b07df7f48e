package forms

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultDelay is how long a simulated submission takes
const DefaultDelay = time.Second

// State is the lifecycle of one form submission
type State int

const (
	Idle State = iota
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// Receipt acknowledges an accepted submission
type Receipt struct {
	ID          uuid.UUID
	SubmittedAt time.Time
}

// Result is the outcome shown after posting a form
type Result struct {
	State   State
	Message string
	Fields  []string
	Receipt *Receipt
}

// Validatable is a form that can check itself
type Validatable interface {
	Validate() error
}

// Submitter pretends to deliver forms; nothing is stored or sent
type Submitter struct {
	delay  time.Duration
	now    func() time.Time
	logger *zap.Logger
}

// NewSubmitter creates a submitter that waits delay before accepting a form
func NewSubmitter(delay time.Duration, logger *zap.Logger) *Submitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Submitter{delay: delay, now: time.Now, logger: logger}
}

// Submit validates form and waits out the delay; a rejected form stays idle
func (s *Submitter) Submit(ctx context.Context, kind string, form Validatable) Result {
	if err := form.Validate(); err != nil {
		var formErr *Error
		if errors.As(err, &formErr) {
			return Result{State: Idle, Message: formErr.Message, Fields: formErr.Fields}
		}
		s.logger.Error("form validation failed", zap.String("form", kind), zap.Error(err))
		return Result{State: Failed, Message: MsgSubmitFailed}
	}

	state := Submitting
	s.logger.Debug("form submitting", zap.String("form", kind), zap.Stringer("state", state))

	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		s.logger.Warn("form submission cancelled", zap.String("form", kind), zap.Error(ctx.Err()))
		return Result{State: Failed, Message: MsgSubmitFailed}
	case <-timer.C:
	}

	receipt := &Receipt{ID: uuid.New(), SubmittedAt: s.now()}
	s.logger.Info("form submitted",
		zap.String("form", kind),
		zap.String("receipt", receipt.ID.String()))
	return Result{State: Succeeded, Receipt: receipt}
}
