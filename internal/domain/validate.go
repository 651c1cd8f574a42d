package domain

import "fmt"

// ValidateQuestionSet checks the authoring invariants of a question set:
// unique question ids, known types, answer keys that reference existing
// options, and matching columns with distinct ids covered pairwise by
// correctMatches. Content that fails here is a data defect and must never
// reach a running session.
func ValidateQuestionSet(set QuestionSet) error {
	if len(set.Questions) == 0 {
		return fmt.Errorf("question set %q: no questions", set.ID)
	}
	seen := make(map[string]struct{}, len(set.Questions))
	for i, q := range set.Questions {
		if q.ID == "" {
			return fmt.Errorf("question set %q: question %d has no id", set.ID, i)
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("question set %q: duplicate question id %q", set.ID, q.ID)
		}
		seen[q.ID] = struct{}{}
		if err := validateQuestion(q); err != nil {
			return fmt.Errorf("question set %q: %w", set.ID, err)
		}
	}
	return nil
}

func validateQuestion(q Question) error {
	switch q.Type {
	case QuestionSingle, QuestionMultiple:
		return validateChoice(q)
	case QuestionMatching:
		return validateMatching(q)
	default:
		return fmt.Errorf("question %q: unknown type %q", q.ID, q.Type)
	}
}

func validateChoice(q Question) error {
	if len(q.Options) == 0 {
		return fmt.Errorf("question %q: no options", q.ID)
	}
	options := make(map[string]struct{}, len(q.Options))
	for _, opt := range q.Options {
		if opt.ID == "" {
			return fmt.Errorf("question %q: option with empty id", q.ID)
		}
		if _, dup := options[opt.ID]; dup {
			return fmt.Errorf("question %q: duplicate option id %q", q.ID, opt.ID)
		}
		options[opt.ID] = struct{}{}
	}
	if q.Type == QuestionSingle && len(q.CorrectAnswer) != 1 {
		return fmt.Errorf("question %q: single choice needs exactly one correct answer, got %d", q.ID, len(q.CorrectAnswer))
	}
	if q.Type == QuestionMultiple && len(q.CorrectAnswer) < 2 {
		return fmt.Errorf("question %q: multiple choice needs at least two correct answers, got %d", q.ID, len(q.CorrectAnswer))
	}
	for _, id := range q.CorrectAnswer {
		if _, ok := options[id]; !ok {
			return fmt.Errorf("question %q: correct answer references unknown option %q", q.ID, id)
		}
	}
	return nil
}

func validateMatching(q Question) error {
	colA, err := columnIDs(q.ID, "columnA", q.ColumnA)
	if err != nil {
		return err
	}
	colB, err := columnIDs(q.ID, "columnB", q.ColumnB)
	if err != nil {
		return err
	}
	if len(q.CorrectMatches) != len(q.ColumnA) {
		return fmt.Errorf("question %q: %d correct matches for %d columnA items", q.ID, len(q.CorrectMatches), len(q.ColumnA))
	}
	usedA := make(map[string]struct{}, len(q.CorrectMatches))
	usedB := make(map[string]struct{}, len(q.CorrectMatches))
	for _, m := range q.CorrectMatches {
		if _, ok := colA[m.A]; !ok {
			return fmt.Errorf("question %q: match references unknown columnA id %q", q.ID, m.A)
		}
		if _, ok := colB[m.B]; !ok {
			return fmt.Errorf("question %q: match references unknown columnB id %q", q.ID, m.B)
		}
		if _, dup := usedA[m.A]; dup {
			return fmt.Errorf("question %q: columnA id %q matched twice", q.ID, m.A)
		}
		if _, dup := usedB[m.B]; dup {
			return fmt.Errorf("question %q: columnB id %q matched twice", q.ID, m.B)
		}
		usedA[m.A] = struct{}{}
		usedB[m.B] = struct{}{}
	}
	return nil
}

func columnIDs(qid, name string, items []ColumnItem) (map[string]struct{}, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("question %q: empty %s", qid, name)
	}
	ids := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("question %q: %s item with empty id", qid, name)
		}
		if _, dup := ids[item.ID]; dup {
			return nil, fmt.Errorf("question %q: duplicate %s id %q", qid, name, item.ID)
		}
		ids[item.ID] = struct{}{}
	}
	return ids, nil
}

// ValidateSummary checks the required fields of every block in a summary
// document. Blocks with unrecognized types are allowed through: the renderer
// skips them, which keeps old readers forward compatible with new content.
func ValidateSummary(doc SummaryDoc) error {
	if doc.Title == "" {
		return fmt.Errorf("summary: missing title")
	}
	for si, section := range doc.Sections {
		if section.Title == "" {
			return fmt.Errorf("summary: section %d has no title", si)
		}
		for bi, block := range section.Blocks {
			if err := validateBlock(block); err != nil {
				return fmt.Errorf("summary: section %q block %d: %w", section.Title, bi, err)
			}
		}
	}
	return nil
}

func validateBlock(b Block) error {
	switch b.Type {
	case "text", "subheading", "callout":
		if b.Content == "" {
			return fmt.Errorf("%s block: missing content", b.Type)
		}
	case "definition":
		if b.Label == "" || b.Content == "" {
			return fmt.Errorf("definition block: needs label and content")
		}
	case "keypoints":
		if len(b.KeyPoints) == 0 {
			return fmt.Errorf("keypoints block: no items")
		}
	case "grid":
		if len(b.GridItems) == 0 {
			return fmt.Errorf("grid block: no items")
		}
		for _, item := range b.GridItems {
			if item.Title == "" {
				return fmt.Errorf("grid block: item without title")
			}
		}
	case "table":
		if len(b.Headers) == 0 {
			return fmt.Errorf("table block: no headers")
		}
		for ri, row := range b.Rows {
			if len(row) != len(b.Headers) {
				return fmt.Errorf("table block: row %d has %d cells for %d headers", ri, len(row), len(b.Headers))
			}
		}
		if b.CodeColumn != nil && (*b.CodeColumn < 0 || *b.CodeColumn >= len(b.Headers)) {
			return fmt.Errorf("table block: codeColumn %d out of range", *b.CodeColumn)
		}
	case "codeblock":
		if b.Code == "" {
			return fmt.Errorf("codeblock: missing code")
		}
	case "comparison":
		if b.Left == nil || b.Right == nil {
			return fmt.Errorf("comparison block: needs left and right")
		}
		if b.Left.Label == "" || b.Right.Label == "" {
			return fmt.Errorf("comparison block: sides need labels")
		}
	case "steps":
		if len(b.Steps) == 0 {
			return fmt.Errorf("steps block: no steps")
		}
		for i, step := range b.Steps {
			if step.Description == "" {
				return fmt.Errorf("steps block: step %d has no description", i+1)
			}
		}
	}
	return nil
}

// ValidateModuleIndex checks a course's module listing for id collisions.
func ValidateModuleIndex(modules []ModuleInfo) error {
	seen := make(map[string]struct{}, len(modules))
	for i, m := range modules {
		if m.ID == "" {
			return fmt.Errorf("module index: entry %d has no id", i)
		}
		if _, dup := seen[m.ID]; dup {
			return fmt.Errorf("module index: duplicate module id %q", m.ID)
		}
		seen[m.ID] = struct{}{}
	}
	return nil
}
