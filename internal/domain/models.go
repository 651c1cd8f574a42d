package domain

import "encoding/json"

// QuestionType enumerates the supported quiz question kinds.
type QuestionType string

const (
	QuestionSingle   QuestionType = "single"
	QuestionMultiple QuestionType = "multiple"
	QuestionMatching QuestionType = "matching"
)

// Option represents a selectable answer for a single/multiple choice question.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// ColumnItem is one entry of a matching question column.
type ColumnItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// MatchPair links a column A item to a column B item.
type MatchPair struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Question models one quiz item. The populated fields depend on Type:
// single/multiple use Options and CorrectAnswer, matching uses the columns
// and CorrectMatches.
type Question struct {
	ID             string       `json:"id"`
	Type           QuestionType `json:"type"`
	Text           string       `json:"text"`
	Image          string       `json:"image,omitempty"`
	Options        []Option     `json:"options,omitempty"`
	CorrectAnswer  []string     `json:"correctAnswer,omitempty"`
	ColumnA        []ColumnItem `json:"columnA,omitempty"`
	ColumnB        []ColumnItem `json:"columnB,omitempty"`
	CorrectMatches []MatchPair  `json:"correctMatches,omitempty"`
	Explanation    string       `json:"explanation,omitempty"`
}

// QuestionSet is an ordered collection of questions served as one quiz
// session. Title and Description come from module metadata rather than the
// question file itself.
type QuestionSet struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

// GlanceStat is one entry of the optional "at a glance" strip of a summary.
type GlanceStat struct {
	Number string `json:"number"`
	Label  string `json:"label"`
	Detail string `json:"detail,omitempty"`
}

// GridItem is a card inside a grid block.
type GridItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Badge       string `json:"badge,omitempty"`
	Note        string `json:"note,omitempty"`
}

// ComparisonSide is one half of a comparison block.
type ComparisonSide struct {
	Label   string `json:"label"`
	Content string `json:"content"`
}

// Step is one entry of a steps block.
type Step struct {
	Command     string `json:"command,omitempty"`
	Description string `json:"description"`
}

// Block is one typed content unit inside a summary section. Only the fields
// relevant to Type carry data; unrecognized types keep just the tag and are
// skipped by the renderer.
type Block struct {
	Type       string
	Content    string
	Label      string
	Title      string
	KeyPoints  []string
	GridItems  []GridItem
	Columns    int
	CardColor  string
	Headers    []string
	Rows       [][]string
	CodeColumn *int
	Code       string
	Left       *ComparisonSide
	Right      *ComparisonSide
	Note       string
	Steps      []Step
	Color      string
}

// blockJSON mirrors Block on the wire. The "items" key holds strings for
// keypoints and objects for grids, so it is decoded after the type tag is
// known.
type blockJSON struct {
	Type       string          `json:"type"`
	Content    string          `json:"content,omitempty"`
	Label      string          `json:"label,omitempty"`
	Title      string          `json:"title,omitempty"`
	Items      json.RawMessage `json:"items,omitempty"`
	Columns    int             `json:"columns,omitempty"`
	CardColor  string          `json:"cardColor,omitempty"`
	Headers    []string        `json:"headers,omitempty"`
	Rows       [][]string      `json:"rows,omitempty"`
	CodeColumn *int            `json:"codeColumn,omitempty"`
	Code       string          `json:"code,omitempty"`
	Left       *ComparisonSide `json:"left,omitempty"`
	Right      *ComparisonSide `json:"right,omitempty"`
	Note       string          `json:"note,omitempty"`
	Steps      []Step          `json:"steps,omitempty"`
	Color      string          `json:"color,omitempty"`
}

func (b *Block) UnmarshalJSON(data []byte) error {
	var raw blockJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = Block{
		Type:       raw.Type,
		Content:    raw.Content,
		Label:      raw.Label,
		Title:      raw.Title,
		Columns:    raw.Columns,
		CardColor:  raw.CardColor,
		Headers:    raw.Headers,
		Rows:       raw.Rows,
		CodeColumn: raw.CodeColumn,
		Code:       raw.Code,
		Left:       raw.Left,
		Right:      raw.Right,
		Note:       raw.Note,
		Steps:      raw.Steps,
		Color:      raw.Color,
	}
	if len(raw.Items) == 0 {
		return nil
	}
	switch raw.Type {
	case "keypoints":
		return json.Unmarshal(raw.Items, &b.KeyPoints)
	case "grid":
		return json.Unmarshal(raw.Items, &b.GridItems)
	}
	return nil
}

func (b Block) MarshalJSON() ([]byte, error) {
	raw := blockJSON{
		Type:       b.Type,
		Content:    b.Content,
		Label:      b.Label,
		Title:      b.Title,
		Columns:    b.Columns,
		CardColor:  b.CardColor,
		Headers:    b.Headers,
		Rows:       b.Rows,
		CodeColumn: b.CodeColumn,
		Code:       b.Code,
		Left:       b.Left,
		Right:      b.Right,
		Note:       b.Note,
		Steps:      b.Steps,
		Color:      b.Color,
	}
	var err error
	switch {
	case len(b.KeyPoints) > 0:
		raw.Items, err = json.Marshal(b.KeyPoints)
	case len(b.GridItems) > 0:
		raw.Items, err = json.Marshal(b.GridItems)
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(raw)
}

// Section is one collapsible group of blocks inside a summary document.
type Section struct {
	Title  string  `json:"title"`
	Icon   string  `json:"icon,omitempty"`
	Color  string  `json:"color,omitempty"`
	Blocks []Block `json:"blocks"`
}

// SummaryDoc is an immutable module summary document.
type SummaryDoc struct {
	Number      int          `json:"number"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Glance      []GlanceStat `json:"glance,omitempty"`
	Sections    []Section    `json:"sections"`
}

// ModuleInfo is one entry of a course's module index, consumed by listing
// pages and used to synthesize quiz titles.
type ModuleInfo struct {
	ID          string   `json:"id"`
	Number      int      `json:"number"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Topics      []string `json:"topics,omitempty"`
	Color       string   `json:"color,omitempty"`
	HasSummary  bool     `json:"hasSummary"`
	HasQuiz     bool     `json:"hasQuiz"`
	Checkpoints []string `json:"checkpoints,omitempty"`
}
