package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Sender delivers a message to the site owner.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Store records messages and their delivery state. MarkDelivered and MarkFailed each
// count one attempt.
//
// ClaimMessage marks an undelivered message as in flight: it sets the status to pending
// and updated_at to at, but only while updated_at still equals seen. It reports false
// when another delivery claimed or finished the message first.
type Store interface {
	InsertMessage(ctx context.Context, msg Message) error
	ClaimMessage(ctx context.Context, id uuid.UUID, seen, at time.Time) (bool, error)
	MarkDelivered(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, lastErr string, at time.Time) error
	RetryableMessages(ctx context.Context, maxAttempts int, staleBefore time.Time, limit int) ([]Message, error)
	Message(ctx context.Context, id uuid.UUID) (Message, error)
}

const (
	DefaultMaxAttempts     = 5
	DefaultRetryInterval   = time.Minute
	DefaultDeliveryTimeout = 45 * time.Second
	redeliverBatch         = 50
)

var (
	// ErrNotRecorded means the submission could not be stored and will not be retried.
	ErrNotRecorded = errors.New("contact: message not recorded, try again later")
	// ErrInFlight means another delivery of the message is in progress.
	ErrInFlight = errors.New("contact: message is already being delivered")
)

type Service struct {
	store       Store
	sender      Sender
	logger      *slog.Logger
	now         func() time.Time
	maxAttempts int
	timeout     time.Duration
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithMaxAttempts bounds how many times a message is tried, the first attempt included.
func WithMaxAttempts(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithDeliveryTimeout bounds one delivery attempt. Pending messages are not redelivered
// until they have been in flight for longer than this.
func WithDeliveryTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func NewService(store Store, sender Sender, opts ...Option) *Service {
	s := &Service{
		store:       store,
		sender:      sender,
		logger:      slog.Default(),
		now:         time.Now,
		maxAttempts: DefaultMaxAttempts,
		timeout:     DefaultDeliveryTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) MaxAttempts() int { return s.maxAttempts }

// Submit validates p, records it and makes the first delivery attempt. A validation
// failure returns a *ValidationError. A storage failure returns ErrNotRecorded and the
// submission is lost. A delivery failure returns ErrDeliveryFailed; the message stays
// queued for Redeliver.
func (s *Service) Submit(ctx context.Context, p Payload) (Message, error) {
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return Message{}, err
	}

	now := s.now()
	msg := Message{
		ID:        uuid.New(),
		Payload:   p,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.InsertMessage(ctx, msg); err != nil {
		s.logger.Error("recording contact message", "error", err)
		// the only copy of the submission
		s.logger.Warn("contact message not recorded",
			"id", msg.ID, "name", p.Name, "email", p.Email, "message", p.Message)
		return Message{}, fmt.Errorf("%w: %v", ErrNotRecorded, err)
	}

	s.logger.Info("contact message received", "id", msg.ID, "name", p.Name, "email", p.Email)
	return s.deliver(ctx, msg)
}

// Retry makes one more delivery attempt for the stored message id.
func (s *Service) Retry(ctx context.Context, id uuid.UUID) (Message, error) {
	msg, err := s.store.Message(ctx, id)
	if err != nil {
		return Message{}, err
	}
	if msg.Status == StatusDelivered {
		return msg, nil
	}
	return s.deliver(ctx, msg)
}

// Redeliver retries failed messages under the attempt limit, and pending messages whose
// last update is older than staleAfter and the delivery timeout. Messages claimed by a
// concurrent delivery are skipped. It returns how many were delivered.
func (s *Service) Redeliver(ctx context.Context, staleAfter time.Duration) (int, error) {
	staleAfter = max(staleAfter, s.timeout)
	msgs, err := s.store.RetryableMessages(ctx, s.maxAttempts, s.now().Add(-staleAfter), redeliverBatch)
	if err != nil {
		return 0, fmt.Errorf("loading retryable messages: %w", err)
	}

	delivered := 0
	for _, msg := range msgs {
		if ctx.Err() != nil {
			return delivered, ctx.Err()
		}
		if _, err := s.deliver(ctx, msg); err == nil {
			delivered++
		}
	}
	return delivered, nil
}

func (s *Service) deliver(ctx context.Context, msg Message) (Message, error) {
	claimedAt := s.now()
	ok, err := s.store.ClaimMessage(ctx, msg.ID, msg.UpdatedAt, claimedAt)
	if err != nil {
		return msg, fmt.Errorf("claiming message %s: %w", msg.ID, err)
	}
	if !ok {
		return msg, ErrInFlight
	}
	msg.Status = StatusPending
	msg.UpdatedAt = claimedAt

	sendCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	msg.Attempts++
	sendErr := s.sender.Send(sendCtx, msg)
	now := s.now()
	msg.UpdatedAt = now

	if sendErr != nil {
		msg.Status = StatusFailed
		msg.LastError = sendErr.Error()
		s.logger.Warn("contact delivery failed", "id", msg.ID, "attempt", msg.Attempts, "error", sendErr)
		if err := s.store.MarkFailed(ctx, msg.ID, msg.LastError, now); err != nil {
			s.logger.Error("recording delivery failure", "id", msg.ID, "error", err)
		}
		return msg, errors.Join(ErrDeliveryFailed, sendErr)
	}

	msg.Status = StatusDelivered
	msg.LastError = ""
	msg.DeliveredAt = &now
	if err := s.store.MarkDelivered(ctx, msg.ID, now); err != nil {
		// delivered but not recorded; a later redelivery may send it again
		s.logger.Error("recording delivery", "id", msg.ID, "error", err)
	}
	s.logger.Info("contact message delivered", "id", msg.ID, "attempt", msg.Attempts)
	return msg, nil
}
