// Package reset clears the completion flag on every todo item once a day.
package reset

import (
	"context"
	"log"
	"time"

	"demcare-service/internal/domain/repositories"
)

type Scheduler struct {
	todoRepo repositories.TodoRepository
	loc      *time.Location
}

func NewScheduler(todoRepo repositories.TodoRepository, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		todoRepo: todoRepo,
		loc:      loc,
	}
}

// Start fires the sweep at every local midnight until the context is
// cancelled. A failed sweep is logged; the next day's firing is independent.
func (s *Scheduler) Start(ctx context.Context) {
	for {
		next := nextMidnight(time.Now().In(s.loc))
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			if err := s.RunOnce(ctx); err != nil {
				log.Println("Error resetting to-do items:", err)
			}
		}
	}
}

// RunOnce performs the bulk sweep. Running it twice in succession is a no-op
// the second time.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	cleared, err := s.todoRepo.ResetAll(ctx)
	if err != nil {
		return err
	}
	log.Printf("Daily to-do reset complete, %d items cleared", cleared)
	return nil
}

func nextMidnight(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
}
