package quiz

import (
	"context"

	"github.com/google/uuid"

	"certstudy-service/internal/domain"
)

// SessionRepository abstracts how live quiz sessions are tracked (in-memory,
// Redis-marked, etc).
type SessionRepository interface {
	Put(session *Session)
	Get(sessionID string) (*Session, bool)
	Delete(sessionID string)
}

// ContentRepository loads immutable study content (from cache/backing store).
type ContentRepository interface {
	GetQuestionSet(ctx context.Context, course, quizID string) (domain.QuestionSet, error)
	GetSummary(ctx context.Context, course, moduleID string) (domain.SummaryDoc, error)
	GetModuleIndex(ctx context.Context, course string) ([]domain.ModuleInfo, error)
}

// Service contains the study content use cases: starting and ending quiz
// attempts and serving summaries and module listings.
type Service struct {
	sessions SessionRepository
	content  ContentRepository
}

func NewService(sessions SessionRepository, content ContentRepository) *Service {
	return &Service{sessions: sessions, content: content}
}

// Start loads a question set and opens a fresh session on it.
func (s *Service) Start(ctx context.Context, course, quizID string) (*Session, error) {
	set, err := s.content.GetQuestionSet(ctx, course, quizID)
	if err != nil {
		return nil, err
	}
	if len(set.Questions) == 0 {
		return nil, domain.ErrEmptyQuestionSet
	}
	session := NewSession(uuid.NewString(), set)
	s.sessions.Put(session)
	return session, nil
}

// Session looks up a live session by id.
func (s *Service) Session(sessionID string) (*Session, bool) {
	return s.sessions.Get(sessionID)
}

// End drops a session once its client disconnects.
func (s *Service) End(sessionID string) {
	s.sessions.Delete(sessionID)
}

// Summary fetches a module summary document.
func (s *Service) Summary(ctx context.Context, course, moduleID string) (domain.SummaryDoc, error) {
	return s.content.GetSummary(ctx, course, moduleID)
}

// ModuleIndex fetches a course's module listing.
func (s *Service) ModuleIndex(ctx context.Context, course string) ([]domain.ModuleInfo, error) {
	return s.content.GetModuleIndex(ctx, course)
}
