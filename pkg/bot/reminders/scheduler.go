package reminders

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"

	"github.com/aidosk/tg-prayer-reminder/pkg/db"
	"github.com/aidosk/tg-prayer-reminder/pkg/logger"
	"github.com/aidosk/tg-prayer-reminder/pkg/prayer"
)

const deliveryTimeout = 30 * time.Second

// Sender delivers a text message to a chat. The bot front-end
// implements it in cmd.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// TimingsFetcher provides fresh daily timings for a city.
type TimingsFetcher interface {
	Timings(ctx context.Context, city, country string) (prayer.Timings, error)
}

// Scheduler owns the recurring per-user prayer reminder jobs. All
// mutation goes through Reschedule and Cancel; both take the registry
// lock, so rapid repeated reschedules for one user serialize instead
// of interleaving cancel/install pairs.
type Scheduler struct {
	mu      sync.Mutex
	sched   gocron.Scheduler
	fetcher TimingsFetcher
	sender  Sender
	jobs    map[int64][]uuid.UUID
}

func NewScheduler(location *time.Location, fetcher TimingsFetcher, sender Sender) (*Scheduler, error) {
	sched, err := gocron.NewScheduler(gocron.WithLocation(location))
	if err != nil {
		return nil, err
	}
	return &Scheduler{
		sched:   sched,
		fetcher: fetcher,
		sender:  sender,
		jobs:    make(map[int64][]uuid.UUID),
	}, nil
}

func (s *Scheduler) Start() {
	s.sched.Start()
}

func (s *Scheduler) Shutdown() error {
	return s.sched.Shutdown()
}

// Reschedule fetches fresh timings for the user's city and replaces
// their reminder jobs: every previous job is retired first, then one
// daily job per obligatory prayer is installed. If the fetch fails the
// prior schedule stays untouched.
func (s *Scheduler) Reschedule(ctx context.Context, userID int64, city, country string) error {
	timings, err := s.fetcher.Timings(ctx, city, country)
	if err != nil {
		return fmt.Errorf("failed to fetch timings for user %d: %w", userID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked(userID)

	handles := make([]uuid.UUID, 0, len(prayer.Actionable))
	for _, name := range prayer.Actionable {
		hour, minute, err := prayer.ParseClock(timings[name])
		if err != nil {
			logger.Warn("skipping reminder with malformed time", "user_id", userID, "prayer", name, "value", timings[name])
			continue
		}

		name := name
		job, err := s.sched.NewJob(
			gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(hour), uint(minute), 0))),
			gocron.NewTask(func() { s.fire(userID, name) }),
			gocron.WithName(fmt.Sprintf("prayer_%d_%s", userID, name)),
		)
		if err != nil {
			logger.Error("failed to schedule reminder", "user_id", userID, "prayer", name, "error", err)
			continue
		}
		handles = append(handles, job.ID())
	}

	s.jobs[userID] = handles
	logger.Info("reminders rescheduled", "user_id", userID, "city", city, "jobs", len(handles))
	return nil
}

// Cancel retires every live job belonging to the user.
func (s *Scheduler) Cancel(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked(userID)
}

func (s *Scheduler) cancelLocked(userID int64) {
	for _, id := range s.jobs[userID] {
		if err := s.sched.RemoveJob(id); err != nil {
			logger.Warn("failed to remove reminder job", "user_id", userID, "job_id", id, "error", err)
		}
	}
	delete(s.jobs, userID)
}

// ActiveJobs reports how many live jobs the user has.
func (s *Scheduler) ActiveJobs(userID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs[userID])
}

// TotalJobs reports how many jobs are registered on the underlying
// scheduler across all users.
func (s *Scheduler) TotalJobs() int {
	return len(s.sched.Jobs())
}

// fire runs at a prayer's clock time. The notification toggle is read
// here, not at schedule time, so turning notifications off suppresses
// future firings without a reschedule.
func (s *Scheduler) fire(userID int64, name prayer.Name) {
	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	user, err := db.GetUser(userID)
	if err != nil {
		logger.Error("failed to load user for reminder", "user_id", userID, "error", err)
		return
	}
	if !user.NotificationsEnabled {
		return
	}

	text := fmt.Sprintf("It is time for %s. Allahu Akbar, the prayer awaits.", name)
	if err := s.sender.SendMessage(ctx, userID, text); err != nil {
		logger.Error("failed to deliver reminder", "user_id", userID, "prayer", name, "error", err)
	}
}
