package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/robfig/cron/v3"

	"github.com/ajoubot/menubot/pkg/notify"
)

//go:generate moq -out mocks/digester.go -pkg mocks -skip-ensure -fmt goimports . Digester
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier
//go:generate moq -out mocks/schedule_store.go -pkg mocks -skip-ensure -fmt goimports . ScheduleStore

// Digester builds the daily digest text for a date
type Digester interface {
	Digest(ctx context.Context, date string) string
}

// Notifier delivers the digest to the messaging channel
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// ScheduleStore persists the configured notification time across restarts
type ScheduleStore interface {
	GetNotifyTime(ctx context.Context) (string, error)
	SaveNotifyTime(ctx context.Context, value string) error
}

// Scheduler owns the single recurring daily-digest trigger. Exactly one
// cron entry is ever registered; Reschedule swaps it atomically.
type Scheduler struct {
	digester Digester
	notifier Notifier
	store    ScheduleStore
	loc      *time.Location

	mu      sync.Mutex
	cron    *cron.Cron
	entryID cron.EntryID
	hour    int
	minute  int
	running bool
}

// Params holds scheduler dependencies and the default notification time
type Params struct {
	Digester Digester
	Notifier Notifier
	Store    ScheduleStore // optional, reschedules survive restarts when set
	Location *time.Location
	Hour     int
	Minute   int
}

// New creates a scheduler in the Stopped state with the trigger registered.
// A notification time persisted by an earlier reschedule wins over the
// configured default.
func New(p Params) (*Scheduler, error) {
	if p.Location == nil {
		p.Location = time.Local
	}

	s := &Scheduler{
		digester: p.Digester,
		notifier: p.Notifier,
		store:    p.Store,
		loc:      p.Location,
		cron:     cron.New(cron.WithLocation(p.Location)),
	}

	hour, minute := p.Hour, p.Minute
	if s.store != nil {
		saved, err := s.store.GetNotifyTime(context.Background())
		switch {
		case err != nil:
			lgr.Printf("[WARN] can't read saved notification time: %v", err)
		case saved != "":
			if h, m, perr := ParseNotifyTime(saved); perr != nil {
				lgr.Printf("[WARN] ignoring saved notification time %q: %v", saved, perr)
			} else {
				hour, minute = h, m
			}
		}
	}

	if err := s.register(hour, minute); err != nil {
		return nil, err
	}
	return s, nil
}

// ParseNotifyTime parses an HH:MM string into hour and minute
func ParseNotifyTime(value string) (hour, minute int, err error) {
	if _, err = fmt.Sscanf(value, "%d:%d", &hour, &minute); err != nil {
		return 0, 0, fmt.Errorf("parse notification time %q: %w", value, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("notification time %q out of range", value)
	}
	return hour, minute, nil
}

// register validates the time and swaps the cron entry. The old trigger is
// removed only after the new schedule parsed, so a bad time leaves the
// previous registration untouched. Callers hold s.mu or have exclusive
// access during construction.
func (s *Scheduler) register(hour, minute int) error {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return fmt.Errorf("invalid notification time %02d:%02d", hour, minute)
	}

	sched, err := cron.ParseStandard(fmt.Sprintf("%d %d * * *", minute, hour))
	if err != nil {
		return fmt.Errorf("parse trigger spec: %w", err)
	}

	if s.entryID != 0 {
		s.cron.Remove(s.entryID)
	}
	s.entryID = s.cron.Schedule(sched, cron.FuncJob(s.fire))
	s.hour, s.minute = hour, minute
	return nil
}

// Start activates the recurring trigger. Starting a running scheduler is a
// logged no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		lgr.Printf("[INFO] scheduler already running")
		return
	}
	s.cron.Start()
	s.running = true
	lgr.Printf("[INFO] scheduler started, daily digest at %02d:%02d %s", s.hour, s.minute, s.loc)
}

// Stop deactivates the trigger and waits for an in-flight firing to finish.
// Stopping a stopped scheduler is a logged no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		lgr.Printf("[INFO] scheduler already stopped")
		return
	}
	s.running = false
	s.mu.Unlock()

	<-s.cron.Stop().Done()
	lgr.Printf("[INFO] scheduler stopped")
}

// Reschedule moves the daily trigger to the given time-of-day in the
// configured timezone. Valid in either state. On failure the prior trigger
// stays in place.
func (s *Scheduler) Reschedule(hour, minute int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.register(hour, minute); err != nil {
		return err
	}

	if s.store != nil {
		value := fmt.Sprintf("%02d:%02d", hour, minute)
		if err := s.store.SaveNotifyTime(context.Background(), value); err != nil {
			lgr.Printf("[WARN] can't persist notification time %s: %v", value, err)
		}
	}

	lgr.Printf("[INFO] notification time changed to %02d:%02d", hour, minute)
	return nil
}

// IsRunning reports whether the trigger is active
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// NextFireTime returns the next trigger instant, nil when stopped
func (s *Scheduler) NextFireTime() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	next := s.cron.Entry(s.entryID).Next
	if next.IsZero() {
		// the cron loop hasn't scheduled the entry yet, compute from the expression
		sched, err := cron.ParseStandard(fmt.Sprintf("%d %d * * *", s.minute, s.hour))
		if err != nil {
			return nil
		}
		next = sched.Next(time.Now().In(s.loc))
	}
	return &next
}

// NotifyTime returns the currently registered time-of-day
func (s *Scheduler) NotifyTime() (hour, minute int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hour, s.minute
}

// fire builds today's digest and hands it to the delivery channel. A missing
// credential is a deliberate skip and delivery errors are contained here, so
// the next firing proceeds no matter how this one went.
func (s *Scheduler) fire() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	date := time.Now().In(s.loc).Format("2006-01-02")
	lgr.Printf("[INFO] daily digest run for %s", date)

	text := s.digester.Digest(ctx, date)

	switch err := s.notifier.Send(ctx, text); {
	case errors.Is(err, notify.ErrNoCredential):
		lgr.Printf("[WARN] no delivery credential, digest for %s skipped", date)
	case err != nil:
		lgr.Printf("[ERROR] digest delivery for %s failed: %v", date, err)
	default:
		lgr.Printf("[INFO] daily digest for %s delivered", date)
	}
}
