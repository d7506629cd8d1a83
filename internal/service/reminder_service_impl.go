package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/alexanderramin/ptemaster/internal/db"
	"github.com/alexanderramin/ptemaster/internal/domain"
	"github.com/alexanderramin/ptemaster/internal/repository"
	"github.com/google/uuid"
)

// Default reminder seeded for every user on first sight.
const (
	defaultReminderTime  = "08:00"
	defaultReminderLabel = "Morning Practice"
)

var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidTimeOfDay reports whether s is a 24-hour HH:MM string.
func ValidTimeOfDay(s string) bool {
	return timeOfDayRe.MatchString(s)
}

type reminderService struct {
	reminders repository.ReminderRepo
	uow       db.UnitOfWork
}

// NewReminderService creates a ReminderService. The unit of work makes the
// first-sight default seeding atomic with its emptiness check.
func NewReminderService(reminders repository.ReminderRepo, uow db.UnitOfWork) ReminderService {
	return &reminderService{reminders: reminders, uow: uow}
}

func (s *reminderService) List(ctx context.Context, userID string) ([]*domain.Reminder, error) {
	if err := s.seedIfEmpty(ctx, userID); err != nil {
		return nil, err
	}
	return s.reminders.ListByUser(ctx, userID)
}

func (s *reminderService) seedIfEmpty(ctx context.Context, userID string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txReminders := repository.NewSQLiteReminderRepo(tx)
		n, err := txReminders.CountByUser(ctx, userID)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		return txReminders.Create(ctx, &domain.Reminder{
			ID:        uuid.New().String(),
			UserID:    userID,
			TimeOfDay: defaultReminderTime,
			Label:     defaultReminderLabel,
			Active:    true,
			CreatedAt: time.Now().UTC(),
		})
	})
}

func (s *reminderService) Add(ctx context.Context, userID, timeOfDay, label string) (*domain.Reminder, error) {
	if !ValidTimeOfDay(timeOfDay) {
		return nil, fmt.Errorf("invalid time %q: want HH:MM", timeOfDay)
	}
	if label == "" {
		return nil, fmt.Errorf("reminder label must not be empty")
	}

	rem := &domain.Reminder{
		ID:        uuid.New().String(),
		UserID:    userID,
		TimeOfDay: timeOfDay,
		Label:     label,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.reminders.Create(ctx, rem); err != nil {
		return nil, err
	}
	return rem, nil
}

func (s *reminderService) Toggle(ctx context.Context, id string) (*domain.Reminder, error) {
	rem, err := s.reminders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rem.Active = !rem.Active
	if err := s.reminders.Update(ctx, rem); err != nil {
		return nil, err
	}
	return rem, nil
}

func (s *reminderService) Remove(ctx context.Context, id string) error {
	return s.reminders.Delete(ctx, id)
}
