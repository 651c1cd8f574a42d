package quiz

import (
	"fmt"
	"math"
	"strconv"

	"certstudy-service/internal/domain"
)

// View is one snapshot of a session, sent to the client after every action.
type View struct {
	Stage    string        `json:"stage"`
	Question *QuestionView `json:"question,omitempty"`
	Results  *ResultsView  `json:"results,omitempty"`
}

// QuestionView renders the current question plus the surrounding header
// state. Score is shown against the count of submitted answers, not the
// total question count; the denominator grows as answers come in.
type QuestionView struct {
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	Index          int             `json:"index"`
	Total          int             `json:"total"`
	Progress       int             `json:"progress"`
	Score          int             `json:"score"`
	SubmittedCount int             `json:"submittedCount"`
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	Text           string          `json:"text"`
	Image          string          `json:"image,omitempty"`
	ChoiceHint     string          `json:"choiceHint,omitempty"`
	Options        []OptionView    `json:"options,omitempty"`
	ColumnA        []MatchItemView `json:"columnA,omitempty"`
	ColumnB        []MatchItemView `json:"columnB,omitempty"`
	Answerable     bool            `json:"answerable"`
	Submitted      bool            `json:"submitted"`
	Correct        bool            `json:"correct"`
	Explanation    string          `json:"explanation,omitempty"`
	Jump           []JumpEntry     `json:"jump"`
}

// OptionView carries the render state of one choice option. Before
// submission only Selected is meaningful; afterwards State is one of
// "correct", "incorrect", or "muted".
type OptionView struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Selected bool   `json:"selected"`
	State    string `json:"state,omitempty"`
}

// MatchItemView is one column entry of a matching question. Column A items
// report Pending/Matched, column B items report MatchedTo; after submission
// State grades each completed pair.
type MatchItemView struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Pending   bool   `json:"pending,omitempty"`
	Matched   bool   `json:"matched,omitempty"`
	MatchedTo string `json:"matchedTo,omitempty"`
	State     string `json:"state,omitempty"`
}

// JumpEntry backs the jump-to-question grid.
type JumpEntry struct {
	Index     int  `json:"index"`
	Current   bool `json:"current"`
	Submitted bool `json:"submitted"`
	Correct   bool `json:"correct"`
}

// ResultsView is the terminal score screen.
type ResultsView struct {
	Title      string `json:"title"`
	Score      int    `json:"score"`
	Total      int    `json:"total"`
	Percentage string `json:"percentage"`
	Banner     string `json:"banner"`
}

// Snapshot renders the session into a view for the client.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.results {
		return View{Stage: "results", Results: s.resultsViewLocked()}
	}
	return View{Stage: "question", Question: s.questionViewLocked()}
}

func (s *Session) resultsViewLocked() *ResultsView {
	total := len(s.set.Questions)
	pct := float64(s.score) / float64(total) * 100
	// Tier thresholds compare the displayed one-decimal value, so 89.95
	// rounds up into the top band.
	rounded := math.Round(pct*10) / 10
	return &ResultsView{
		Title:      s.set.Title,
		Score:      s.score,
		Total:      total,
		Percentage: strconv.FormatFloat(rounded, 'f', 1, 64),
		Banner:     banner(rounded),
	}
}

func banner(pct float64) string {
	switch {
	case pct >= 90:
		return "Excellent!"
	case pct >= 70:
		return "Great job!"
	case pct >= 50:
		return "Good effort!"
	default:
		return "Keep practicing!"
	}
}

func (s *Session) questionViewLocked() *QuestionView {
	q := s.set.Questions[s.current]
	sel := s.selected[q.ID]
	sub, submitted := s.submitted[q.ID]
	total := len(s.set.Questions)

	view := &QuestionView{
		Title:          s.set.Title,
		Description:    s.set.Description,
		Index:          s.current,
		Total:          total,
		Progress:       int(math.Round(float64(s.current+1) / float64(total) * 100)),
		Score:          s.score,
		SubmittedCount: len(s.submitted),
		ID:             q.ID,
		Type:           string(q.Type),
		Text:           q.Text,
		Image:          q.Image,
		Answerable:     isAnswered(q, sel),
		Submitted:      submitted,
		Jump:           s.jumpEntriesLocked(),
	}
	if submitted {
		view.Correct = sub.Correct
		view.Explanation = q.Explanation
	}

	switch q.Type {
	case domain.QuestionMatching:
		view.ColumnA, view.ColumnB = matchViews(q, sel, sub, submitted)
	default:
		if q.Type == domain.QuestionMultiple {
			view.ChoiceHint = choiceHint(len(q.CorrectAnswer))
		}
		view.Options = optionViews(q, sel, sub, submitted)
	}
	return view
}

func (s *Session) jumpEntriesLocked() []JumpEntry {
	entries := make([]JumpEntry, len(s.set.Questions))
	for i, q := range s.set.Questions {
		sub, ok := s.submitted[q.ID]
		entries[i] = JumpEntry{
			Index:     i,
			Current:   i == s.current,
			Submitted: ok,
			Correct:   ok && sub.Correct,
		}
	}
	return entries
}

func optionViews(q domain.Question, sel *Selection, sub Submission, submitted bool) []OptionView {
	views := make([]OptionView, len(q.Options))
	for i, opt := range q.Options {
		view := OptionView{ID: opt.ID, Text: opt.Text}
		if !submitted {
			view.Selected = sel != nil && contains(sel.Options, opt.ID)
		} else {
			view.Selected = contains(sub.Options, opt.ID)
			switch {
			case contains(q.CorrectAnswer, opt.ID):
				view.State = "correct"
			case view.Selected:
				view.State = "incorrect"
			default:
				view.State = "muted"
			}
		}
		views[i] = view
	}
	return views
}

func matchViews(q domain.Question, sel *Selection, sub Submission, submitted bool) (colA, colB []MatchItemView) {
	pairs := map[string]domain.MatchPair{}
	pendingA := ""
	if submitted {
		pairs = sub.Pairs
	} else if sel != nil {
		pairs = sel.Pairs
		pendingA = sel.PendingA
	}

	expectedByA := make(map[string]string, len(q.CorrectMatches))
	expectedByB := make(map[string]string, len(q.CorrectMatches))
	for _, m := range q.CorrectMatches {
		expectedByA[m.A] = m.B
		expectedByB[m.B] = m.A
	}
	pairedA := make(map[string]string, len(pairs))
	for bID, pair := range pairs {
		pairedA[pair.A] = bID
	}

	colA = make([]MatchItemView, len(q.ColumnA))
	for i, item := range q.ColumnA {
		view := MatchItemView{ID: item.ID, Text: item.Text}
		bID, matched := pairedA[item.ID]
		view.Matched = matched
		view.Pending = !submitted && item.ID == pendingA
		if submitted && matched {
			view.State = gradePair(expectedByA[item.ID] == bID)
		}
		colA[i] = view
	}

	colB = make([]MatchItemView, len(q.ColumnB))
	for i, item := range q.ColumnB {
		view := MatchItemView{ID: item.ID, Text: item.Text}
		if pair, ok := pairs[item.ID]; ok {
			view.MatchedTo = pair.A
			if submitted {
				view.State = gradePair(expectedByB[item.ID] == pair.A)
			}
		}
		colB[i] = view
	}
	return colA, colB
}

func gradePair(correct bool) string {
	if correct {
		return "correct"
	}
	return "incorrect"
}

func choiceHint(count int) string {
	switch count {
	case 2:
		return "(Choose two)"
	case 3:
		return "(Choose three)"
	default:
		return fmt.Sprintf("(Choose %d)", count)
	}
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
