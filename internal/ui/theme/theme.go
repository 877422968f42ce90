package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is the set of colors for one color scheme.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
}

// pick returns a color function choosing the light or dark hex value.
func pick(dark bool) func(light, dark string) color.Color {
	return func(l, d string) color.Color {
		if dark {
			return lipgloss.Color(d)
		}
		return lipgloss.Color(l)
	}
}

// PaletteFor picks the light or dark variant of every color.
func PaletteFor(dark bool) Palette {
	ld := pick(dark)
	return Palette{
		Primary:   ld("#2563EB", "#60A5FA"), // Sky Blue
		Secondary: ld("#0D9488", "#14B8A6"), // Teal
		Accent:    ld("#EA580C", "#F97316"), // Orange
		Success:   ld("#16A34A", "#22C55E"), // Green
		Error:     ld("#E11D48", "#F43F5E"), // Rose
		Text:      ld("#0F172A", "#F8FAFC"),
		TextDim:   ld("#64748B", "#94A3B8"), // Slate
		Bg:        ld("#F8FAFC", "#0F172A"),
		BgCard:    ld("#E2E8F0", "#1E293B"),
		Border:    ld("#CBD5E1", "#334155"),
	}
}

// Styles bundles the rendering styles derived from a Palette.
type Styles struct {
	Palette
	Dark bool

	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Heading    lipgloss.Style
	Body       lipgloss.Style
	Hint       lipgloss.Style
	Card       lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
	Neutral    lipgloss.Style
	Badge      lipgloss.Style

	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
}

// New builds the styles for the light or dark scheme.
func New(dark bool) Styles {
	p := PaletteFor(dark)
	return Styles{
		Palette: p,
		Dark:    dark,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.TextDim),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),
		Body: lipgloss.NewStyle().
			Foreground(p.Text),
		Hint: lipgloss.NewStyle().
			Foreground(p.TextDim).
			Italic(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),
		Unselected: lipgloss.NewStyle().
			Foreground(p.Text),
		Correct: lipgloss.NewStyle().
			Foreground(p.Success).
			Bold(true),
		Incorrect: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),
		Neutral: lipgloss.NewStyle().
			Foreground(p.TextDim),
		Badge: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),

		ProgressFilled: lipgloss.NewStyle().
			Background(p.Secondary),
		ProgressEmpty: lipgloss.NewStyle().
			Background(p.Border),
	}
}

// CategoryColor returns the accent color for a content category name.
func (s Styles) CategoryColor(category string) color.Color {
	ld := pick(s.Dark)
	switch category {
	case "Basics":
		return ld("#16A34A", "#4ADE80")
	case "Technology":
		return ld("#2563EB", "#60A5FA")
	case "Applications":
		return ld("#9333EA", "#C084FC")
	case "Safety":
		return ld("#EA580C", "#FB923C")
	case "Regulations":
		return ld("#DC2626", "#F87171")
	}
	return s.TextDim
}
