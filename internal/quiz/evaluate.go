package quiz

import "certstudy-service/internal/domain"

// isAnswered reports whether a selection is complete enough to grade.
// Matching needs every column A item paired (column B items may stay
// unused), multiple choice needs exactly as many picks as correct answers,
// single choice needs any pick at all.
func isAnswered(q domain.Question, sel *Selection) bool {
	if sel == nil {
		return false
	}
	switch q.Type {
	case domain.QuestionMatching:
		return len(sel.Pairs) == len(q.ColumnA)
	case domain.QuestionMultiple:
		return len(sel.Options) == len(q.CorrectAnswer)
	default:
		return len(sel.Options) > 0
	}
}

// evaluateChoice grades a choice selection: correct iff selected and correct
// are equal as sets, regardless of pick order.
func evaluateChoice(correct, selected []string) bool {
	if len(selected) != len(correct) {
		return false
	}
	want := make(map[string]struct{}, len(correct))
	for _, id := range correct {
		want[id] = struct{}{}
	}
	for _, id := range selected {
		if _, ok := want[id]; !ok {
			return false
		}
	}
	return true
}

// evaluateMatching grades a pairing map: correct iff every expected pair is
// present with the right column A item. Unused column B entries never affect
// the verdict.
func evaluateMatching(correct []domain.MatchPair, pairs map[string]domain.MatchPair) bool {
	for _, m := range correct {
		got, ok := pairs[m.B]
		if !ok || got.A != m.A {
			return false
		}
	}
	return true
}
