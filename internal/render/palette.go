package render

// Style is the bundle of class tokens a named color resolves to. The values
// are opaque to the server; clients apply them as-is.
type Style struct {
	Border     string `json:"border"`
	Heading    string `json:"heading"`
	CardBorder string `json:"cardBorder"`
	CardTitle  string `json:"cardTitle"`
	Badge      string `json:"badge"`
}

// DefaultColor is used when a content file names no color or an unknown one.
const DefaultColor = "indigo"

var palette = map[string]Style{
	"red":     styleFor("red"),
	"pink":    styleFor("pink"),
	"orange":  styleFor("orange"),
	"emerald": styleFor("emerald"),
	"sky":     styleFor("sky"),
	"blue":    styleFor("blue"),
	"indigo":  styleFor("indigo"),
	"purple":  styleFor("purple"),
	"amber":   styleFor("amber"),
}

func styleFor(name string) Style {
	return Style{
		Border:     "border-" + name + "-500",
		Heading:    "text-" + name + "-700",
		CardBorder: "border-" + name + "-200",
		CardTitle:  "text-" + name + "-800",
		Badge:      "bg-" + name + "-100 text-" + name + "-700",
	}
}

// Lookup resolves a color name to its style bundle. The mapping is total:
// unknown or empty names fall back to the default.
func Lookup(name string) Style {
	if style, ok := palette[name]; ok {
		return style
	}
	return palette[DefaultColor]
}

// resolveColor picks the block-level color when set, else the inherited
// section color, else the default.
func resolveColor(own, inherited string) string {
	if own != "" {
		if _, ok := palette[own]; ok {
			return own
		}
		return DefaultColor
	}
	if _, ok := palette[inherited]; ok {
		return inherited
	}
	return DefaultColor
}
