package retention

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/wallbot/covplan/store"
)

// Scheduler periodically deletes jobs older than MaxAge from a store.DB.
type Scheduler struct {
	db     *store.DB
	maxAge time.Duration
	cron   *cron.Cron
}

// NewScheduler builds a Scheduler that prunes jobs older than maxAge.
func NewScheduler(db *store.DB, maxAge time.Duration) *Scheduler {
	return &Scheduler{db: db, maxAge: maxAge, cron: cron.New()}
}

// Start registers the pruning job on spec and begins running it in the
// background. spec is a standard five-field cron expression, e.g.
// "0 3 * * *" for daily at 03:00.
func (s *Scheduler) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, s.prune)
	if err != nil {
		return err
	}
	s.cron.Start()

	return nil
}

// Stop halts the scheduler and waits for any in-flight prune to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) prune() {
	cutoff := time.Now().Add(-s.maxAge)
	n, err := s.db.DeleteOlderThan(cutoff)
	if err != nil {
		store.Logger().Error("retention prune failed", "err", err)
		return
	}
	store.Logger().Info("retention prune complete", "deleted", n, "cutoff", cutoff)
}
