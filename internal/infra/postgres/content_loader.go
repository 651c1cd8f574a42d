package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"certstudy-service/internal/domain"
)

// ContentLoader loads study content JSONB from Postgres.
type ContentLoader struct {
	pool *pgxpool.Pool
}

func NewContentLoader(pool *pgxpool.Pool) *ContentLoader {
	return &ContentLoader{pool: pool}
}

func (l *ContentLoader) LoadQuestionSet(ctx context.Context, course, quizID string) (domain.QuestionSet, error) {
	var set domain.QuestionSet
	err := l.loadDoc(ctx,
		`SELECT data FROM question_sets WHERE course=$1 AND id=$2`,
		[]any{course, quizID}, &set, domain.ErrQuizNotFound)
	if err != nil {
		return domain.QuestionSet{}, fmt.Errorf("load question set: %w", err)
	}
	set.ID = quizID
	return set, nil
}

func (l *ContentLoader) LoadSummary(ctx context.Context, course, moduleID string) (domain.SummaryDoc, error) {
	var doc domain.SummaryDoc
	err := l.loadDoc(ctx,
		`SELECT data FROM summaries WHERE course=$1 AND id=$2`,
		[]any{course, moduleID}, &doc, domain.ErrSummaryNotFound)
	if err != nil {
		return domain.SummaryDoc{}, fmt.Errorf("load summary: %w", err)
	}
	return doc, nil
}

func (l *ContentLoader) LoadModuleIndex(ctx context.Context, course string) ([]domain.ModuleInfo, error) {
	var modules []domain.ModuleInfo
	err := l.loadDoc(ctx,
		`SELECT data FROM module_index WHERE course=$1`,
		[]any{course}, &modules, domain.ErrCourseNotFound)
	if err != nil {
		return nil, fmt.Errorf("load module index: %w", err)
	}
	return modules, nil
}

func (l *ContentLoader) loadDoc(ctx context.Context, query string, args []any, out any, missing error) error {
	var raw []byte
	err := l.pool.QueryRow(ctx, query, args...).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return missing
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
