// Package session owns the resume being edited and applies actions to it.
package session

import (
	"github.com/google/uuid"
	"github.com/khrees2412/quickcv/pkg/models"
	"github.com/rs/zerolog"
)

// Scheduler receives every new state so it can be persisted later
type Scheduler interface {
	Schedule(r models.Resume)
}

// Session is the single mutator of a resume. It is not safe for concurrent
// use; the CLI drives it from one goroutine.
type Session struct {
	ID        string
	state     models.Resume
	scheduler Scheduler
	logger    zerolog.Logger
}

// New starts a session from initial. A nil scheduler disables autosave.
func New(initial models.Resume, scheduler Scheduler, logger zerolog.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		ID:        id,
		state:     initial.Normalize(),
		scheduler: scheduler,
		logger:    logger.With().Str("session", id).Logger(),
	}
}

// Resume returns the current state
func (s *Session) Resume() models.Resume {
	return s.state
}

// Dispatch applies a and hands the new state to the scheduler
func (s *Session) Dispatch(a Action) models.Resume {
	s.state = Apply(s.state, a)
	s.logger.Debug().Type("action", a).Msg("applied action")
	if s.scheduler != nil {
		s.scheduler.Schedule(s.state)
	}
	return s.state
}
