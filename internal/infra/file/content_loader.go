package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"certstudy-service/internal/domain"
)

// ContentLoader reads study content from a static JSON tree on disk:
//
//	<dir>/<course>/modules.json
//	<dir>/<course>/<module>-quiz.json
//	<dir>/<course>/<module>-summary.json
//
// Quiz files hold a bare question list; titles come from module metadata.
type ContentLoader struct {
	dir string
}

func NewContentLoader(dir string) *ContentLoader {
	return &ContentLoader{dir: dir}
}

func (l *ContentLoader) LoadModuleIndex(_ context.Context, course string) ([]domain.ModuleInfo, error) {
	var modules []domain.ModuleInfo
	if err := l.readJSON(filepath.Join(course, "modules.json"), &modules, domain.ErrCourseNotFound); err != nil {
		return nil, err
	}
	return modules, nil
}

func (l *ContentLoader) LoadQuestionSet(ctx context.Context, course, quizID string) (domain.QuestionSet, error) {
	var questions []domain.Question
	if err := l.readJSON(filepath.Join(course, quizID+"-quiz.json"), &questions, domain.ErrQuizNotFound); err != nil {
		return domain.QuestionSet{}, err
	}

	set := domain.QuestionSet{ID: quizID, Questions: questions}
	set.Title, set.Description = l.quizHeading(ctx, course, quizID)
	return set, nil
}

func (l *ContentLoader) LoadSummary(_ context.Context, course, moduleID string) (domain.SummaryDoc, error) {
	var doc domain.SummaryDoc
	if err := l.readJSON(filepath.Join(course, moduleID+"-summary.json"), &doc, domain.ErrSummaryNotFound); err != nil {
		return domain.SummaryDoc{}, err
	}
	return doc, nil
}

// quizHeading synthesizes the quiz title and description. Checkpoint sets
// span several modules and carry a composite id; module sets pull their
// heading from the course index.
func (l *ContentLoader) quizHeading(ctx context.Context, course, quizID string) (title, description string) {
	if nums, ok := strings.CutPrefix(quizID, "checkpoint-"); ok {
		return "Checkpoint: Modules " + nums, "Combined assessment"
	}
	modules, err := l.LoadModuleIndex(ctx, course)
	if err != nil {
		return quizID, ""
	}
	for _, m := range modules {
		if m.ID == quizID {
			return fmt.Sprintf("Module %d: %s Quiz", m.Number, m.Title), m.Description
		}
	}
	return quizID, ""
}

func (l *ContentLoader) readJSON(rel string, out any, missing error) error {
	data, err := os.ReadFile(filepath.Join(l.dir, rel))
	if errors.Is(err, fs.ErrNotExist) {
		return missing
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", rel, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", rel, err)
	}
	return nil
}
