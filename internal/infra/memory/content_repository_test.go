package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"certstudy-service/internal/domain"
)

func staticLoader() *StaticContentLoader {
	return NewStaticContentLoader(
		map[string]domain.QuestionSet{
			"ccna/module-1": {ID: "module-1", Questions: []domain.Question{{ID: "q1", Type: domain.QuestionSingle}}},
		},
		map[string]domain.SummaryDoc{
			"ccna/module-1": {Number: 1, Title: "Networking Today"},
		},
		map[string][]domain.ModuleInfo{
			"ccna": {{ID: "module-1", Number: 1}},
		},
	)
}

type countingLoader struct {
	ContentLoader
	calls int
}

func (l *countingLoader) LoadQuestionSet(ctx context.Context, course, quizID string) (domain.QuestionSet, error) {
	l.calls++
	return l.ContentLoader.LoadQuestionSet(ctx, course, quizID)
}

func TestContentRepositoryCaches(t *testing.T) {
	loader := &countingLoader{ContentLoader: staticLoader()}
	repo := NewContentRepository(loader, time.Minute)
	ctx := context.Background()

	if _, err := repo.GetQuestionSet(ctx, "ccna", "module-1"); err != nil {
		t.Fatalf("get question set: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader called once, got %d", loader.calls)
	}

	// Second call hits cache, loader not incremented.
	if _, err := repo.GetQuestionSet(ctx, "ccna", "module-1"); err != nil {
		t.Fatalf("get question set: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls=%d", loader.calls)
	}
}

func TestContentRepositoryMissPassesSentinel(t *testing.T) {
	repo := NewContentRepository(staticLoader(), time.Minute)
	ctx := context.Background()

	if _, err := repo.GetQuestionSet(ctx, "ccna", "module-9"); !errors.Is(err, domain.ErrQuizNotFound) {
		t.Fatalf("expected quiz not found, got %v", err)
	}
	if _, err := repo.GetSummary(ctx, "ccna", "module-9"); !errors.Is(err, domain.ErrSummaryNotFound) {
		t.Fatalf("expected summary not found, got %v", err)
	}
	if _, err := repo.GetModuleIndex(ctx, "ccnp"); !errors.Is(err, domain.ErrCourseNotFound) {
		t.Fatalf("expected course not found, got %v", err)
	}
}

func TestContentRepositoryServesAllKinds(t *testing.T) {
	repo := NewContentRepository(staticLoader(), time.Minute)
	ctx := context.Background()

	doc, err := repo.GetSummary(ctx, "ccna", "module-1")
	if err != nil || doc.Title != "Networking Today" {
		t.Fatalf("summary: %v %+v", err, doc)
	}
	modules, err := repo.GetModuleIndex(ctx, "ccna")
	if err != nil || len(modules) != 1 {
		t.Fatalf("index: %v %+v", err, modules)
	}
}
