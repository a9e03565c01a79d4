package scheduler

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/go-co-op/gocron"

	"plant-care-api/internal/models"
	"plant-care-api/internal/services/weather"
	"plant-care-api/internal/store"
	"plant-care-api/pkg/logger"
	"plant-care-api/pkg/observe"
)

const runTimeout = 2 * time.Minute

type UserLister interface {
	ListUsersWithCity(ctx context.Context) ([]store.User, error)
}

type SuggestionSource interface {
	GetWaterSuggestion(ctx context.Context, city string) models.WaterSuggestion
}

// Reminder is today's watering advice for one user.
type Reminder struct {
	UserID   uint
	Username string
	City     string
	Level    int
	Reason   string
}

// Scheduler computes watering reminders once a day for every user with a city.
type Scheduler struct {
	scheduler   *gocron.Scheduler
	users       UserLister
	suggestions SuggestionSource
	at          string
	metrics     *observe.Metrics
	l           *logger.Logger
}

// New builds a scheduler running daily at "HH:MM" UTC.
func New(at string, users UserLister, suggestions SuggestionSource, metrics *observe.Metrics, l *logger.Logger) *Scheduler {
	if l == nil {
		l = logger.Nop()
	}
	return &Scheduler{
		scheduler:   gocron.NewScheduler(time.UTC),
		users:       users,
		suggestions: suggestions,
		at:          at,
		metrics:     metrics,
		l:           l,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.scheduler.Every(1).Day().At(s.at).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		if _, err := s.RunOnce(ctx); err != nil {
			s.l.Error(err, map[string]any{"job": "watering-reminders"})
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	s.l.Info("reminder scheduler started", map[string]any{"at": s.at})
	return nil
}

func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

// RunOnce computes one reminder per user. A city shared by several users is
// looked up once. Users whose city fails to resolve are skipped.
func (s *Scheduler) RunOnce(ctx context.Context) ([]Reminder, error) {
	users, err := s.users.ListUsersWithCity(ctx)
	if err != nil {
		return nil, err
	}

	byCity := map[string]models.WaterSuggestion{}
	reminders := make([]Reminder, 0, len(users))

	for _, u := range users {
		if ctx.Err() != nil {
			return reminders, ctx.Err()
		}

		key := strings.ToLower(strings.TrimSpace(u.City))
		suggestion, ok := byCity[key]
		if !ok {
			suggestion = s.suggestions.GetWaterSuggestion(ctx, u.City)
			byCity[key] = suggestion
		}

		if suggestion.Status != models.StatusSuccess || suggestion.Today == nil {
			s.l.Warning("no reminder for user", map[string]any{
				"user_id": u.ID,
				"city":    u.City,
				"reason":  suggestion.Message,
			})
			continue
		}

		r := Reminder{
			UserID:   u.ID,
			Username: u.Username,
			City:     suggestion.Location,
			Level:    suggestion.Today.Level,
			Reason:   suggestion.Today.Reason,
		}
		reminders = append(reminders, r)

		if s.metrics != nil {
			s.metrics.RemindersComputed.WithLabelValues(strconv.Itoa(r.Level)).Inc()
		}

		if r.Level >= weather.LevelMedium {
			s.l.Info("watering reminder", map[string]any{
				"user_id":     r.UserID,
				"username":    r.Username,
				"city":        r.City,
				"water_level": r.Level,
				"reason":      r.Reason,
			})
		}
	}

	return reminders, nil
}
