package render

import "certstudy-service/internal/domain"

// SummaryView is the rendered form of a module summary document. It is a
// pure function of the document plus the per-section expand state, which is
// local view state and never persisted.
type SummaryView struct {
	Number      int                 `json:"number"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Back        string              `json:"back,omitempty"`
	Glance      []domain.GlanceStat `json:"glance,omitempty"`
	Sections    []SectionView       `json:"sections"`
}

// SectionView is one collapsible section, default expanded.
type SectionView struct {
	Title    string      `json:"title"`
	Icon     string      `json:"icon,omitempty"`
	Style    Style       `json:"style"`
	Expanded bool        `json:"expanded"`
	Blocks   []BlockView `json:"blocks"`
}

// RenderSummary interprets a summary document into its view, passing each
// section's color down to its blocks as the inherited default. Blocks of
// unknown type are dropped.
func RenderSummary(doc domain.SummaryDoc, back string) SummaryView {
	view := SummaryView{
		Number:      doc.Number,
		Title:       doc.Title,
		Description: doc.Description,
		Back:        back,
		Glance:      doc.Glance,
		Sections:    make([]SectionView, len(doc.Sections)),
	}
	for i, section := range doc.Sections {
		color := resolveColor(section.Color, "")
		blocks := make([]BlockView, 0, len(section.Blocks))
		for _, block := range section.Blocks {
			if rendered, ok := RenderBlock(block, color); ok {
				blocks = append(blocks, rendered)
			}
		}
		view.Sections[i] = SectionView{
			Title:    section.Title,
			Icon:     section.Icon,
			Style:    Lookup(color),
			Expanded: true,
			Blocks:   blocks,
		}
	}
	return view
}

// ToggleSection flips one section's expand state, leaving the others alone.
// Out of range indices are ignored.
func (v *SummaryView) ToggleSection(index int) {
	if index < 0 || index >= len(v.Sections) {
		return
	}
	v.Sections[index].Expanded = !v.Sections[index].Expanded
}
