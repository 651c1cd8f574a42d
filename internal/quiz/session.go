package quiz

import (
	"sync"

	"certstudy-service/internal/domain"
)

// Selection is a participant's in-progress answer to one question. Choice
// questions use Options; matching questions accumulate Pairs keyed by the
// column B id, with PendingA holding the column A item clicked last.
type Selection struct {
	Options  []string
	Pairs    map[string]domain.MatchPair
	PendingA string
}

// Submission is a graded answer. The user's picks are kept so review screens
// can show what was chosen next to the verdict.
type Submission struct {
	Options []string
	Pairs   map[string]domain.MatchPair
	Correct bool
}

// Session owns the state of one quiz attempt: the question pointer, per
// question selections and submissions, and the running score. It is created
// when a client opens a quiz and dropped when the connection goes away.
//
// Invariant: score always equals the number of submitted answers with
// Correct=true. Every transition that touches submissions keeps it so.
type Session struct {
	id  string
	set domain.QuestionSet

	mu        sync.Mutex
	current   int
	selected  map[string]*Selection
	submitted map[string]Submission
	score     int
	results   bool
}

// NewSession starts a fresh attempt at the given question set.
func NewSession(id string, set domain.QuestionSet) *Session {
	return &Session{
		id:        id,
		set:       set,
		selected:  make(map[string]*Selection),
		submitted: make(map[string]Submission),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// SelectOption records an option click on the current question. Single
// choice replaces the selection; multiple choice toggles membership, capped
// at the number of correct answers. No-op once the question is submitted,
// on matching questions, and for unknown option ids.
func (s *Session) SelectOption(optionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.currentQuestion()
	if q == nil || s.isSubmittedLocked(q.ID) || !hasOption(*q, optionID) {
		return
	}

	switch q.Type {
	case domain.QuestionSingle:
		s.selected[q.ID] = &Selection{Options: []string{optionID}}
	case domain.QuestionMultiple:
		sel := s.selectionFor(q.ID)
		for i, id := range sel.Options {
			if id == optionID {
				sel.Options = append(sel.Options[:i], sel.Options[i+1:]...)
				return
			}
		}
		// Adding past the cap is ignored; deselecting above is always allowed.
		if len(sel.Options) < len(q.CorrectAnswer) {
			sel.Options = append(sel.Options, optionID)
		}
	}
}

// SelectMatchA marks a column A item as pending. Clicking a different A item
// moves the pending pointer without creating a pair.
func (s *Session) SelectMatchA(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.currentQuestion()
	if q == nil || q.Type != domain.QuestionMatching || s.isSubmittedLocked(q.ID) {
		return
	}
	if !hasColumnItem(q.ColumnA, itemID) {
		return
	}
	s.selectionFor(q.ID).PendingA = itemID
}

// SelectMatchB pairs the pending column A item with the clicked column B
// item, overwriting any earlier pair for that B item, then clears the
// pending pointer. Without a pending A item the click does nothing.
func (s *Session) SelectMatchB(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.currentQuestion()
	if q == nil || q.Type != domain.QuestionMatching || s.isSubmittedLocked(q.ID) {
		return
	}
	if !hasColumnItem(q.ColumnB, itemID) {
		return
	}
	sel := s.selectionFor(q.ID)
	if sel.PendingA == "" {
		return
	}
	if sel.Pairs == nil {
		sel.Pairs = make(map[string]domain.MatchPair)
	}
	sel.Pairs[itemID] = domain.MatchPair{A: sel.PendingA, B: itemID}
	sel.PendingA = ""
}

// Submit grades the current question and records the verdict. It requires a
// complete answer and is idempotent: re-submitting never double counts the
// score.
func (s *Session) Submit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitLocked()
}

func (s *Session) submitLocked() {
	q := s.currentQuestion()
	if q == nil || s.isSubmittedLocked(q.ID) || !s.isAnsweredLocked(*q) {
		return
	}
	sel := s.selected[q.ID]

	var sub Submission
	switch q.Type {
	case domain.QuestionMatching:
		sub.Pairs = copyPairs(sel.Pairs)
		sub.Correct = evaluateMatching(q.CorrectMatches, sel.Pairs)
	default:
		sub.Options = append([]string(nil), sel.Options...)
		sub.Correct = evaluateChoice(q.CorrectAnswer, sel.Options)
	}
	s.submitted[q.ID] = sub
	if sub.Correct {
		s.score++
	}
}

// TryAgain clears the current question's submission and selection so it can
// be answered again. A previously correct verdict gives its point back.
func (s *Session) TryAgain() {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.currentQuestion()
	if q == nil {
		return
	}
	sub, ok := s.submitted[q.ID]
	if !ok {
		return
	}
	delete(s.selected, q.ID)
	delete(s.submitted, q.ID)
	if sub.Correct {
		s.score--
	}
}

// Next advances to the following question, auto-submitting the current one
// if it is fully answered but not yet graded. On the last question it moves
// to the results view instead. An incomplete answer blocks advancement.
func (s *Session) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.currentQuestion()
	if q == nil {
		return
	}
	if !s.isSubmittedLocked(q.ID) {
		if !s.isAnsweredLocked(*q) {
			return
		}
		s.submitLocked()
	}
	if s.current < len(s.set.Questions)-1 {
		s.current++
	} else {
		s.results = true
	}
}

// Previous steps back one question. It never auto-submits and stops at the
// first question.
func (s *Session) Previous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.results || s.current == 0 {
		return
	}
	s.current--
}

// Jump moves the question pointer directly, bypassing auto-submit. Out of
// range indices are ignored.
func (s *Session) Jump(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.results || index < 0 || index >= len(s.set.Questions) {
		return
	}
	s.current = index
}

// Review leaves the results view and returns to the first question with all
// submissions intact, for non-linear answer review.
func (s *Session) Review() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.results {
		return
	}
	s.results = false
	s.current = 0
}

// Reset discards the whole attempt: selections, submissions, score, and the
// question pointer.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = 0
	s.selected = make(map[string]*Selection)
	s.submitted = make(map[string]Submission)
	s.score = 0
	s.results = false
}

// Score reports the count of correctly submitted answers.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// currentQuestion returns the question under the pointer, or nil on the
// results view. Callers hold the lock.
func (s *Session) currentQuestion() *domain.Question {
	if s.results || s.current < 0 || s.current >= len(s.set.Questions) {
		return nil
	}
	return &s.set.Questions[s.current]
}

func (s *Session) selectionFor(questionID string) *Selection {
	sel, ok := s.selected[questionID]
	if !ok {
		sel = &Selection{}
		s.selected[questionID] = sel
	}
	return sel
}

func (s *Session) isSubmittedLocked(questionID string) bool {
	_, ok := s.submitted[questionID]
	return ok
}

func (s *Session) isAnsweredLocked(q domain.Question) bool {
	sel, ok := s.selected[q.ID]
	if !ok {
		return false
	}
	return isAnswered(q, sel)
}

func copyPairs(pairs map[string]domain.MatchPair) map[string]domain.MatchPair {
	out := make(map[string]domain.MatchPair, len(pairs))
	for k, v := range pairs {
		out[k] = v
	}
	return out
}

func hasOption(q domain.Question, optionID string) bool {
	for _, opt := range q.Options {
		if opt.ID == optionID {
			return true
		}
	}
	return false
}

func hasColumnItem(items []domain.ColumnItem, itemID string) bool {
	for _, item := range items {
		if item.ID == itemID {
			return true
		}
	}
	return false
}
