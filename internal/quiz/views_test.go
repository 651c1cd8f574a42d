package quiz_test

import (
	"fmt"
	"testing"

	"certstudy-service/internal/domain"
	"certstudy-service/internal/quiz"
)

func TestOptionStatesAfterSubmit(t *testing.T) {
	s := quiz.NewSession("s1", threeQuestionSet())
	s.SelectOption("d")
	s.Submit()

	q := question(t, s)
	states := map[string]string{}
	for _, opt := range q.Options {
		states[opt.ID] = opt.State
	}
	if states["a"] != "correct" {
		t.Fatalf("correct answer must surface as correct, got %q", states["a"])
	}
	if states["d"] != "incorrect" {
		t.Fatalf("wrong pick must surface as incorrect, got %q", states["d"])
	}
	if states["b"] != "muted" || states["c"] != "muted" {
		t.Fatalf("untouched options must be muted, got %+v", states)
	}
}

func TestMatchingStatesAfterSubmit(t *testing.T) {
	s := quiz.NewSession("s1", matchingSet())
	s.SelectMatchA("a1")
	s.SelectMatchB("b1") // right
	s.SelectMatchA("a2")
	s.SelectMatchB("b3") // wrong
	s.Submit()

	q := question(t, s)
	if q.ColumnA[0].State != "correct" || q.ColumnA[1].State != "incorrect" {
		t.Fatalf("unexpected columnA grading: %+v", q.ColumnA)
	}
	if q.ColumnB[0].State != "correct" || q.ColumnB[2].State != "incorrect" {
		t.Fatalf("unexpected columnB grading: %+v", q.ColumnB)
	}
	if q.ColumnB[1].State != "" {
		t.Fatalf("unpaired column B item must carry no verdict, got %q", q.ColumnB[1].State)
	}
}

func TestRunningScoreUsesSubmittedCount(t *testing.T) {
	s := quiz.NewSession("s1", threeQuestionSet())

	q := question(t, s)
	if q.SubmittedCount != 0 {
		t.Fatalf("expected empty denominator before any submission")
	}

	s.SelectOption("a")
	s.Submit()
	q = question(t, s)
	if q.Score != 1 || q.SubmittedCount != 1 {
		t.Fatalf("expected 1/1, got %d/%d", q.Score, q.SubmittedCount)
	}

	// Try-again shrinks the denominator again: the ratio is live, not cached.
	s.TryAgain()
	q = question(t, s)
	if q.Score != 0 || q.SubmittedCount != 0 {
		t.Fatalf("expected 0/0 after try again, got %d/%d", q.Score, q.SubmittedCount)
	}
}

func TestProgressPercent(t *testing.T) {
	s := quiz.NewSession("s1", threeQuestionSet())
	if got := question(t, s).Progress; got != 33 {
		t.Fatalf("expected 33%% on first of three, got %d", got)
	}
	s.SelectOption("a")
	s.Next()
	if got := question(t, s).Progress; got != 67 {
		t.Fatalf("expected 67%% on second of three, got %d", got)
	}
}

func TestResultBannerTiers(t *testing.T) {
	cases := []struct {
		correct, total int
		percentage     string
		banner         string
	}{
		{1, 1, "100.0", "Excellent!"},
		{3, 4, "75.0", "Great job!"},
		{1, 2, "50.0", "Good effort!"},
		{0, 1, "0.0", "Keep practicing!"},
	}
	for _, tc := range cases {
		s := quiz.NewSession("s1", uniformSet(tc.total))
		for i := 0; i < tc.total; i++ {
			if i < tc.correct {
				s.SelectOption("right")
			} else {
				s.SelectOption("wrong")
			}
			s.Next()
		}
		view := s.Snapshot()
		if view.Stage != "results" {
			t.Fatalf("%d/%d: expected results", tc.correct, tc.total)
		}
		if view.Results.Percentage != tc.percentage {
			t.Fatalf("%d/%d: expected %s%%, got %s", tc.correct, tc.total, tc.percentage, view.Results.Percentage)
		}
		if view.Results.Banner != tc.banner {
			t.Fatalf("%d/%d: expected banner %q, got %q", tc.correct, tc.total, tc.banner, view.Results.Banner)
		}
	}
}

func TestJumpMenuMarksVerdicts(t *testing.T) {
	s := quiz.NewSession("s1", threeQuestionSet())
	s.SelectOption("a")
	s.Next()
	s.SelectOption("d")
	s.Next()

	q := question(t, s)
	if !q.Jump[0].Submitted || !q.Jump[0].Correct {
		t.Fatalf("expected q1 marked submitted+correct, got %+v", q.Jump[0])
	}
	if !q.Jump[1].Submitted || q.Jump[1].Correct {
		t.Fatalf("expected q2 marked submitted+incorrect, got %+v", q.Jump[1])
	}
	if q.Jump[2].Submitted || !q.Jump[2].Current {
		t.Fatalf("expected q3 unanswered and current, got %+v", q.Jump[2])
	}
}

// uniformSet builds n single-choice questions whose correct option is always
// "right".
func uniformSet(n int) domain.QuestionSet {
	questions := make([]domain.Question, n)
	for i := range questions {
		questions[i] = domain.Question{
			ID:            fmt.Sprintf("q%d", i+1),
			Type:          domain.QuestionSingle,
			Text:          "Pick",
			Options:       []domain.Option{{ID: "right"}, {ID: "wrong"}},
			CorrectAnswer: []string{"right"},
		}
	}
	return domain.QuestionSet{ID: "uniform", Questions: questions}
}
