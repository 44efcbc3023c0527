package contact

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/smtp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	mu        sync.Mutex
	msgs      map[uuid.UUID]Message
	insertErr error
}

func newMemStore() *memStore {
	return &memStore{msgs: make(map[uuid.UUID]Message)}
}

func (m *memStore) InsertMessage(_ context.Context, msg Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return m.insertErr
	}
	m.msgs[msg.ID] = msg
	return nil
}

func (m *memStore) ClaimMessage(_ context.Context, id uuid.UUID, seen, at time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg, ok := m.msgs[id]
	if !ok || msg.Status == StatusDelivered || !msg.UpdatedAt.Equal(seen) {
		return false, nil
	}
	msg.Status = StatusPending
	msg.UpdatedAt = at
	m.msgs[id] = msg
	return true, nil
}

func (m *memStore) MarkDelivered(_ context.Context, id uuid.UUID, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg := m.msgs[id]
	msg.Status = StatusDelivered
	msg.Attempts++
	msg.DeliveredAt = &at
	msg.UpdatedAt = at
	m.msgs[id] = msg
	return nil
}

func (m *memStore) MarkFailed(_ context.Context, id uuid.UUID, lastErr string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg := m.msgs[id]
	msg.Status = StatusFailed
	msg.Attempts++
	msg.LastError = lastErr
	msg.UpdatedAt = at
	m.msgs[id] = msg
	return nil
}

func (m *memStore) RetryableMessages(_ context.Context, maxAttempts int, staleBefore time.Time, limit int) ([]Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Message
	for _, msg := range m.msgs {
		failed := msg.Status == StatusFailed
		stale := msg.Status == StatusPending && msg.UpdatedAt.Before(staleBefore)
		if msg.Attempts < maxAttempts && (failed || stale) && len(out) < limit {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (m *memStore) Message(_ context.Context, id uuid.UUID) (Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg, ok := m.msgs[id]
	if !ok {
		return Message{}, errors.New("not found")
	}
	return msg, nil
}

func (m *memStore) get(id uuid.UUID) Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.msgs[id]
}

type senderFunc func(context.Context, Message) error

func (f senderFunc) Send(ctx context.Context, msg Message) error { return f(ctx, msg) }

type stubSender struct {
	mu    sync.Mutex
	fails int
	sent  []Message
}

func (s *stubSender) Send(_ context.Context, msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fails > 0 {
		s.fails--
		return errors.New("relay unavailable")
	}
	s.sent = append(s.sent, msg)
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validPayload() Payload {
	return Payload{Name: " Ada ", Email: "ada@example.com", Message: "Hello there"}
}

func TestPayloadValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
		fields  []string
	}{
		{"valid", validPayload().Normalize(), nil},
		{"all empty", Payload{}, []string{"name", "email", "message"}},
		{"bad email", Payload{Name: "Ada", Email: "not-an-email", Message: "hi"}, []string{"email"}},
		{"blank after trim", Payload{Name: "   ", Email: "a@b.co", Message: "\n"}.Normalize(), []string{"name", "message"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.payload.Validate()
			if tc.fields == nil {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Equal(t, tc.fields, verr.Fields)
		})
	}
}

func TestSubmitDelivers(t *testing.T) {
	store := newMemStore()
	sender := &stubSender{}
	svc := NewService(store, sender, WithLogger(quietLogger()))

	msg, err := svc.Submit(context.Background(), validPayload())
	require.NoError(t, err)

	assert.Equal(t, StatusDelivered, msg.Status)
	assert.Equal(t, 1, msg.Attempts)
	assert.Equal(t, "Ada", msg.Payload.Name)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, StatusDelivered, store.get(msg.ID).Status)
}

func TestSubmitRejectsInvalidPayload(t *testing.T) {
	store := newMemStore()
	sender := &stubSender{}
	svc := NewService(store, sender, WithLogger(quietLogger()))

	_, err := svc.Submit(context.Background(), Payload{Name: "Ada"})
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Empty(t, sender.sent)
	assert.Empty(t, store.msgs)
}

func TestSubmitFailureIsRetryable(t *testing.T) {
	store := newMemStore()
	sender := &stubSender{fails: 1}
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := NewService(store, sender, WithLogger(quietLogger()), WithClock(func() time.Time { return now }))

	msg, err := svc.Submit(context.Background(), validPayload())
	require.ErrorIs(t, err, ErrDeliveryFailed)
	assert.Equal(t, StatusFailed, store.get(msg.ID).Status)
	assert.Equal(t, 1, store.get(msg.ID).Attempts)
	assert.Contains(t, store.get(msg.ID).LastError, "relay unavailable")

	delivered, err := svc.Redeliver(context.Background(), time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, delivered)
	assert.Equal(t, StatusDelivered, store.get(msg.ID).Status)
}

func TestRedeliverStopsAtMaxAttempts(t *testing.T) {
	store := newMemStore()
	sender := &stubSender{fails: 10}
	svc := NewService(store, sender, WithLogger(quietLogger()), WithMaxAttempts(2))

	msg, err := svc.Submit(context.Background(), validPayload())
	require.ErrorIs(t, err, ErrDeliveryFailed)

	for i := 0; i < 3; i++ {
		_, err := svc.Redeliver(context.Background(), time.Minute)
		require.NoError(t, err)
	}

	assert.Equal(t, 2, store.get(msg.ID).Attempts)
	assert.Equal(t, StatusFailed, store.get(msg.ID).Status)
}

func TestSubmitNotRecorded(t *testing.T) {
	store := newMemStore()
	store.insertErr = errors.New("disk full")
	sender := &stubSender{}
	svc := NewService(store, sender, WithLogger(quietLogger()))

	_, err := svc.Submit(context.Background(), validPayload())
	require.ErrorIs(t, err, ErrNotRecorded)
	assert.NotErrorIs(t, err, ErrDeliveryFailed)
	assert.Empty(t, sender.sent)
}

func TestDeliveryIsBoundedByTimeout(t *testing.T) {
	store := newMemStore()
	hung := senderFunc(func(ctx context.Context, _ Message) error {
		<-ctx.Done()
		return ctx.Err()
	})
	svc := NewService(store, hung, WithLogger(quietLogger()), WithDeliveryTimeout(20*time.Millisecond))

	msg, err := svc.Submit(context.Background(), validPayload())
	require.ErrorIs(t, err, ErrDeliveryFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, StatusFailed, store.get(msg.ID).Status)
}

func TestRedeliverSkipsInFlightMessage(t *testing.T) {
	store := newMemStore()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	var svc *Service
	sends, redelivered := 0, -1
	sender := senderFunc(func(ctx context.Context, _ Message) error {
		sends++
		if sends == 1 {
			// the worker runs while the first delivery is still in flight
			now = now.Add(2 * time.Minute)
			n, err := svc.Redeliver(ctx, time.Minute)
			require.NoError(t, err)
			redelivered = n
		}
		return nil
	})
	svc = NewService(store, sender, WithLogger(quietLogger()), WithClock(clock), WithDeliveryTimeout(5*time.Minute))

	msg, err := svc.Submit(context.Background(), validPayload())
	require.NoError(t, err)
	assert.Equal(t, 0, redelivered)
	assert.Equal(t, 1, sends)
	assert.Equal(t, 1, store.get(msg.ID).Attempts)
	assert.Equal(t, StatusDelivered, store.get(msg.ID).Status)
}

func TestDeliverRejectsConcurrentClaim(t *testing.T) {
	store := newMemStore()
	sender := &stubSender{fails: 1}
	svc := NewService(store, sender, WithLogger(quietLogger()))

	msg, err := svc.Submit(context.Background(), validPayload())
	require.ErrorIs(t, err, ErrDeliveryFailed)
	view := store.get(msg.ID)

	_, err = svc.deliver(context.Background(), view)
	require.NoError(t, err)
	_, err = svc.deliver(context.Background(), view)
	assert.ErrorIs(t, err, ErrInFlight)
	assert.Len(t, sender.sent, 1)
}

func TestRetryDeliveredIsNoop(t *testing.T) {
	store := newMemStore()
	sender := &stubSender{}
	svc := NewService(store, sender, WithLogger(quietLogger()))

	msg, err := svc.Submit(context.Background(), validPayload())
	require.NoError(t, err)

	_, err = svc.Retry(context.Background(), msg.ID)
	require.NoError(t, err)
	assert.Len(t, sender.sent, 1)
}

func TestWorkerRunStopsWithContext(t *testing.T) {
	svc := NewService(newMemStore(), &stubSender{}, WithLogger(quietLogger()))
	w := NewWorker(svc, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	assert.NoError(t, w.Run(ctx))
}

func TestSMTPSender(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	sender := SMTPSender{
		Host: "smtp.example.com",
		Port: "587",
		User: "site@example.com",
		Pass: "secret",
		To:   "owner@example.com",
		SendMail: func(_ context.Context, addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
			return nil
		},
	}

	msg := Message{ID: uuid.New(), Payload: Payload{Name: "Eve\r\nBcc: x@evil.test", Email: "eve@example.com", Message: "hi"}}
	require.NoError(t, sender.Send(context.Background(), msg))

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "site@example.com", gotFrom)
	assert.Equal(t, []string{"owner@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: Portfolio Contact: Eve  Bcc: x@evil.test\r\n")
	assert.Contains(t, string(gotMsg), "Reply-To: eve@example.com\r\n")
	headers, _, _ := strings.Cut(string(gotMsg), "\r\n\r\n")
	assert.NotContains(t, headers, "\r\nBcc:")
}

func TestSMTPSenderTimesOutOnSilentRelay(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	// accept and never send the greeting
	var mu sync.Mutex
	var conns []net.Conn
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, conn)
			mu.Unlock()
		}
	}()
	t.Cleanup(func() {
		ln.Close()
		mu.Lock()
		defer mu.Unlock()
		for _, c := range conns {
			c.Close()
		}
	})

	host, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	sender := SMTPSender{Host: host, Port: port, User: "u", Pass: "p", To: "owner@example.com", Timeout: 50 * time.Millisecond}

	start := time.Now()
	err = sender.Send(context.Background(), Message{ID: uuid.New()})
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	sender.Timeout = time.Minute
	time.AfterFunc(50*time.Millisecond, cancel)
	start = time.Now()
	err = sender.Send(ctx, Message{ID: uuid.New()})
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestSMTPSenderRequiresCredentials(t *testing.T) {
	err := SMTPSender{Host: "smtp.example.com", Port: "587", To: "owner@example.com"}.Send(context.Background(), Message{})
	assert.ErrorIs(t, err, ErrSMTPNotConfigured)
}

func TestLogSenderNeverFails(t *testing.T) {
	assert.NoError(t, LogSender{Logger: quietLogger()}.Send(context.Background(), Message{ID: uuid.New()}))
}
