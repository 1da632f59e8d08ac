package reset

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demcare-service/internal/domain/entities"
)

type stubTodoRepo struct {
	mu    sync.Mutex
	done  int64
	err   error
	calls int
}

func (s *stubTodoRepo) Add(context.Context, uuid.UUID, *entities.TodoItem) (*entities.TodoItem, error) {
	return nil, nil
}

func (s *stubTodoRepo) ListByUser(context.Context, uuid.UUID) ([]entities.TodoItem, error) {
	return nil, nil
}

func (s *stubTodoRepo) SetDone(context.Context, uuid.UUID, uuid.UUID, bool) (*entities.TodoItem, error) {
	return nil, nil
}

func (s *stubTodoRepo) Delete(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return false, nil
}

func (s *stubTodoRepo) ResetAll(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	cleared := s.done
	s.done = 0
	return cleared, nil
}

func TestRunOnceClearsAndIsIdempotent(t *testing.T) {
	repo := &stubTodoRepo{done: 3}
	s := NewScheduler(repo, time.UTC)

	require.NoError(t, s.RunOnce(context.Background()))
	require.NoError(t, s.RunOnce(context.Background()))
	assert.Equal(t, 2, repo.calls)
	assert.Equal(t, int64(0), repo.done)
}

func TestRunOncePropagatesError(t *testing.T) {
	repo := &stubTodoRepo{err: errors.New("db down")}
	s := NewScheduler(repo, time.UTC)

	assert.Error(t, s.RunOnce(context.Background()))
}

func TestStartStopsOnContextCancel(t *testing.T) {
	repo := &stubTodoRepo{}
	s := NewScheduler(repo, time.UTC)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}
}

func TestNextMidnight(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	cases := []struct {
		now  time.Time
		want time.Time
	}{
		{
			now:  time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC),
			want: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			// Exactly at midnight the next firing is a full day away.
			now:  time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			now:  time.Date(2026, 12, 31, 23, 59, 59, 0, loc),
			want: time.Date(2027, 1, 1, 0, 0, 0, 0, loc),
		},
	}

	for _, tc := range cases {
		got := nextMidnight(tc.now)
		assert.True(t, got.Equal(tc.want), "nextMidnight(%v) = %v, want %v", tc.now, got, tc.want)
	}
}

func TestNewSchedulerDefaultsToUTC(t *testing.T) {
	s := NewScheduler(&stubTodoRepo{}, nil)
	assert.Equal(t, time.UTC, s.loc)
}
