package render

import "certstudy-service/internal/domain"

// BlockView is the rendered form of one content block: the kind tag plus
// exactly one populated payload.
type BlockView struct {
	Kind       string          `json:"kind"`
	Text       string          `json:"text,omitempty"`
	Definition *DefinitionView `json:"definition,omitempty"`
	KeyPoints  []string        `json:"keyPoints,omitempty"`
	Grid       *GridView       `json:"grid,omitempty"`
	Table      *TableView      `json:"table,omitempty"`
	Code       string          `json:"code,omitempty"`
	Comparison *ComparisonView `json:"comparison,omitempty"`
	Steps      []StepView      `json:"steps,omitempty"`
	Callout    *CalloutView    `json:"callout,omitempty"`
}

type DefinitionView struct {
	Label   string `json:"label"`
	Content string `json:"content"`
}

type GridView struct {
	Columns int               `json:"columns"`
	Style   Style             `json:"style"`
	Items   []domain.GridItem `json:"items"`
}

type TableView struct {
	Headers []string   `json:"headers"`
	Rows    []TableRow `json:"rows"`
}

// TableRow marks parity shading per row; Shaded alternates by index.
type TableRow struct {
	Cells  []TableCell `json:"cells"`
	Shaded bool        `json:"shaded"`
}

type TableCell struct {
	Text string `json:"text"`
	Code bool   `json:"code,omitempty"`
}

type ComparisonView struct {
	Left  domain.ComparisonSide `json:"left"`
	Right domain.ComparisonSide `json:"right"`
	Note  string                `json:"note,omitempty"`
}

// StepView numbers a step with its 1-based badge.
type StepView struct {
	Number      int    `json:"number"`
	Command     string `json:"command,omitempty"`
	Description string `json:"description"`
}

type CalloutView struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
	Style   Style  `json:"style"`
}

// RenderBlock interprets one content block against the section's inherited
// color. Unknown block types render nothing and report ok=false; they are
// skipped, never an error, so new content types pass through old readers.
func RenderBlock(b domain.Block, sectionColor string) (BlockView, bool) {
	switch b.Type {
	case "text", "subheading":
		return BlockView{Kind: b.Type, Text: b.Content}, true
	case "definition":
		return BlockView{Kind: "definition", Definition: &DefinitionView{Label: b.Label, Content: b.Content}}, true
	case "keypoints":
		return BlockView{Kind: "keypoints", KeyPoints: b.KeyPoints}, true
	case "grid":
		return BlockView{Kind: "grid", Grid: renderGrid(b, sectionColor)}, true
	case "table":
		return BlockView{Kind: "table", Table: renderTable(b)}, true
	case "codeblock":
		return BlockView{Kind: "codeblock", Code: b.Code}, true
	case "comparison":
		if b.Left == nil || b.Right == nil {
			return BlockView{}, false
		}
		return BlockView{Kind: "comparison", Comparison: &ComparisonView{Left: *b.Left, Right: *b.Right, Note: b.Note}}, true
	case "steps":
		return BlockView{Kind: "steps", Steps: renderSteps(b.Steps)}, true
	case "callout":
		return BlockView{Kind: "callout", Callout: &CalloutView{
			Title:   b.Title,
			Content: b.Content,
			Style:   Lookup(resolveColor(b.Color, sectionColor)),
		}}, true
	}
	return BlockView{}, false
}

func renderGrid(b domain.Block, sectionColor string) *GridView {
	columns := b.Columns
	if columns < 1 || columns > 4 {
		columns = 2
	}
	return &GridView{
		Columns: columns,
		Style:   Lookup(resolveColor(b.CardColor, sectionColor)),
		Items:   b.GridItems,
	}
}

func renderTable(b domain.Block) *TableView {
	rows := make([]TableRow, len(b.Rows))
	for i, raw := range b.Rows {
		cells := make([]TableCell, len(raw))
		for j, text := range raw {
			cells[j] = TableCell{
				Text: text,
				Code: b.CodeColumn != nil && *b.CodeColumn == j,
			}
		}
		rows[i] = TableRow{Cells: cells, Shaded: i%2 == 1}
	}
	return &TableView{Headers: b.Headers, Rows: rows}
}

func renderSteps(steps []domain.Step) []StepView {
	views := make([]StepView, len(steps))
	for i, step := range steps {
		views[i] = StepView{Number: i + 1, Command: step.Command, Description: step.Description}
	}
	return views
}
