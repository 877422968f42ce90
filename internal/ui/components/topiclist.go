package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skyguardian/uavacademy/internal/ui/theme"
)

// TopicRow is one line of a topic list.
type TopicRow struct {
	Icon       string
	Title      string
	Category   string // raw category name, used for coloring
	Tag        string // localized category label
	Difficulty string
	Bookmarked bool
	Viewed     bool
}

// TopicList is a scrolling list of topics with a cursor.
type TopicList struct {
	Cursor int
	Len    int
}

// Update moves the cursor.
func (l TopicList) Update(msg tea.Msg) (TopicList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if l.Cursor > 0 {
			l.Cursor--
		}
	case "down", "j":
		if l.Cursor < l.Len-1 {
			l.Cursor++
		}
	case "home", "g":
		l.Cursor = 0
	case "end", "G":
		l.Cursor = max(l.Len-1, 0)
	}
	return l, nil
}

// SetLen updates the row count and clamps the cursor.
func (l *TopicList) SetLen(n int) {
	l.Len = n
	if l.Cursor >= n {
		l.Cursor = max(n-1, 0)
	}
}

// View renders rows, two lines each, scrolled so the cursor stays visible.
func (l TopicList) View(rows []TopicRow, width, height int, st theme.Styles) string {
	const rowHeight = 2
	visible := max(height/rowHeight, 1)
	start := 0
	if l.Cursor >= visible {
		start = l.Cursor - visible + 1
	}
	end := min(start+visible, len(rows))

	var b strings.Builder
	for i := start; i < end; i++ {
		r := rows[i]
		icon := r.Icon
		if icon == "" {
			icon = "•"
		}

		marker := "  "
		titleStyle := st.Unselected
		if i == l.Cursor {
			marker = "▸ "
			titleStyle = st.Selected
		}

		flags := ""
		if r.Bookmarked {
			flags += " ★"
		}
		if r.Viewed {
			flags += " ✓"
		}

		tag := lipgloss.NewStyle().Foreground(st.CategoryColor(r.Category)).Render("[" + r.Tag + "]")
		line := titleStyle.Render(marker+icon+" "+r.Title) + " " + tag + st.Badge.Render(flags)
		b.WriteString(lipgloss.NewStyle().MaxWidth(width).Render(line))
		b.WriteString("\n")
		b.WriteString(st.Neutral.Render("     " + r.Difficulty))
		b.WriteString("\n")
	}
	return b.String()
}
