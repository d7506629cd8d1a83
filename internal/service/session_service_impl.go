package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/ptemaster/internal/domain"
	"github.com/alexanderramin/ptemaster/internal/repository"
	"github.com/google/uuid"
)

// ErrInvalidEmail is returned when the login input is not email-shaped.
// This is the only way a login can fail; there is no real verification.
var ErrInvalidEmail = errors.New("invalid email address")

type sessionService struct {
	sessions repository.SessionRepo
	latency  time.Duration
	observer UseCaseObserver
}

// NewSessionService creates a SessionService. The latency mimics an
// authentication round trip; zero disables it.
func NewSessionService(sessions repository.SessionRepo, latency time.Duration, observer UseCaseObserver) SessionService {
	return &sessionService{
		sessions: sessions,
		latency:  latency,
		observer: observerOrNoop(observer),
	}
}

func (s *sessionService) Login(ctx context.Context, email string) (*domain.UserIdentity, error) {
	start := time.Now()

	email = strings.TrimSpace(email)
	local, ok := splitEmail(email)
	if !ok {
		err := fmt.Errorf("%w: %q", ErrInvalidEmail, email)
		s.observe(ctx, "session_login", start, err)
		return nil, err
	}

	if err := s.simulateLatency(ctx); err != nil {
		s.observe(ctx, "session_login", start, err)
		return nil, err
	}

	user := &domain.UserIdentity{
		ID:        "user_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:8],
		Email:     email,
		Name:      local,
		CreatedAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(user)
	if err != nil {
		s.observe(ctx, "session_login", start, err)
		return nil, fmt.Errorf("encoding session: %w", err)
	}
	if err := s.sessions.Put(ctx, string(payload)); err != nil {
		s.observe(ctx, "session_login", start, err)
		return nil, err
	}

	s.observe(ctx, "session_login", start, nil)
	return user, nil
}

func (s *sessionService) Restore(ctx context.Context) (*domain.UserIdentity, error) {
	payload, err := s.sessions.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var user domain.UserIdentity
	if err := json.Unmarshal([]byte(payload), &user); err != nil {
		// A corrupt session row is treated as no session rather than a
		// fatal startup error.
		return nil, nil
	}
	return &user, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	start := time.Now()
	err := s.sessions.Clear(ctx)
	s.observe(ctx, "session_logout", start, err)
	return err
}

func (s *sessionService) simulateLatency(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	select {
	case <-time.After(s.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *sessionService) observe(ctx context.Context, name string, start time.Time, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:     name,
		Duration: time.Since(start),
		Success:  err == nil,
		Err:      err,
	})
}

// splitEmail returns the local part of an email-shaped string. The check
// is deliberately shallow: mock authentication accepts anything with a
// non-empty local part and domain.
func splitEmail(email string) (string, bool) {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", false
	}
	return email[:at], true
}
