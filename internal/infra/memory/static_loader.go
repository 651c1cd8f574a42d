package memory

import (
	"context"

	"certstudy-service/internal/domain"
)

// StaticContentLoader serves content from in-memory maps keyed by
// course/id (useful for tests and demos).
type StaticContentLoader struct {
	quizzes   map[string]domain.QuestionSet
	summaries map[string]domain.SummaryDoc
	indexes   map[string][]domain.ModuleInfo
}

func NewStaticContentLoader(
	quizzes map[string]domain.QuestionSet,
	summaries map[string]domain.SummaryDoc,
	indexes map[string][]domain.ModuleInfo,
) *StaticContentLoader {
	return &StaticContentLoader{quizzes: quizzes, summaries: summaries, indexes: indexes}
}

func (l *StaticContentLoader) LoadQuestionSet(_ context.Context, course, quizID string) (domain.QuestionSet, error) {
	if set, ok := l.quizzes[course+"/"+quizID]; ok {
		return set, nil
	}
	return domain.QuestionSet{}, domain.ErrQuizNotFound
}

func (l *StaticContentLoader) LoadSummary(_ context.Context, course, moduleID string) (domain.SummaryDoc, error) {
	if doc, ok := l.summaries[course+"/"+moduleID]; ok {
		return doc, nil
	}
	return domain.SummaryDoc{}, domain.ErrSummaryNotFound
}

func (l *StaticContentLoader) LoadModuleIndex(_ context.Context, course string) ([]domain.ModuleInfo, error) {
	if modules, ok := l.indexes[course]; ok {
		return modules, nil
	}
	return nil, domain.ErrCourseNotFound
}
