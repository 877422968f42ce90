package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/skyguardian/uavacademy/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	SidebarWidth = 24
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// NavItem is one sidebar entry.
type NavItem struct {
	Key    string
	Label  string
	Active bool
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int, st theme.Styles) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(st.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the application header bar: app name on the left,
// page title centered and a status string on the right.
func RenderHeader(appName, title, right string, width int, st theme.Styles) string {
	left := lipgloss.NewStyle().
		Foreground(st.Primary).
		Bold(true).
		Render("  ✈ " + appName)

	center := lipgloss.NewStyle().
		Foreground(st.Text).
		Render(title)

	rightStr := lipgloss.NewStyle().
		Foreground(st.Accent).
		Render(right)

	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(rightStr)

	innerWidth := width - 4 // account for border padding
	if innerWidth < 0 {
		innerWidth = 0
	}

	leftGap := (innerWidth-centerLen)/2 - leftLen
	if leftGap < 1 {
		leftGap = 1
	}

	rightGap := innerWidth - leftLen - leftGap - centerLen - rightLen
	if rightGap < 1 {
		rightGap = 1
	}

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + rightStr

	return lipgloss.NewStyle().
		Width(width).
		Background(st.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(st.Border).
		Render(content)
}

// RenderFooter renders the footer with key hints.
func RenderFooter(hints []KeyHint, width int, st theme.Styles) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(st.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(st.TextDim).Render(h.Description)
		parts = append(parts, part)
	}

	content := "  " + strings.Join(parts, "   ")

	return lipgloss.NewStyle().
		Width(width).
		Background(st.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(st.Border).
		Render(content)
}

// RenderSidebar renders the page navigation and a badge block at the bottom.
func RenderSidebar(items []NavItem, badge string, height int, st theme.Styles) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, it := range items {
		line := fmt.Sprintf(" %s  %s", it.Key, it.Label)
		if it.Active {
			b.WriteString(st.Selected.Render("▸" + line))
		} else {
			b.WriteString(st.Unselected.Render(" " + line))
		}
		b.WriteString("\n")
	}

	nav := b.String()
	gap := height - lipgloss.Height(nav) - lipgloss.Height(badge) - 2
	if gap < 1 {
		gap = 1
	}

	return lipgloss.NewStyle().
		Width(SidebarWidth).
		Height(height).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(st.Border).
		Render(nav + strings.Repeat("\n", gap) + badge)
}

// RenderFrame composes the full frame: header, sidebar beside content, footer.
func RenderFrame(header, sidebar, content, footer string, width, height int) string {
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)

	contentHeight := height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	contentWidth := width - lipgloss.Width(sidebar)
	if contentWidth < 0 {
		contentWidth = 0
	}

	styledContent := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		Padding(0, 2).
		Render(content)

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, styledContent)
	return header + "\n" + body + "\n" + footer
}

// ContentSize returns the space left for a page given the header and footer.
func ContentSize(width, height int, header, footer string) (int, int) {
	w := width - SidebarWidth - 1 - 4 // sidebar border and content padding
	h := height - lipgloss.Height(header) - lipgloss.Height(footer)
	return max(w, 0), max(h, 0)
}
