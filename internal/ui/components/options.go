package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/skyguardian/uavacademy/internal/ui/theme"
)

// OptionMark is how an answer option is shown after the question is
// answered.
type OptionMark int

const (
	OptionPlain OptionMark = iota
	OptionNeutral
	OptionCorrect
	OptionWrong
)

var optionLabels = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

// OptionList is a multiple-choice selector. It only moves the cursor;
// answering is left to the owner.
type OptionList struct {
	Options []string
	Marks   []OptionMark
	Cursor  int
	Locked  bool
}

// Update moves the cursor until the list is locked.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Locked {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	}
	return o, nil
}

// LabelIndex maps an option letter key ("a", "B") to its index.
func LabelIndex(key string) (int, bool) {
	for i, l := range optionLabels {
		if strings.EqualFold(key, l) {
			return i, true
		}
	}
	return 0, false
}

// View renders the options with their marks.
func (o OptionList) View(st theme.Styles) string {
	var b strings.Builder
	for i, opt := range o.Options {
		label := "?"
		if i < len(optionLabels) {
			label = optionLabels[i]
		}
		prefix := "  "
		if i == o.Cursor && !o.Locked {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		mark := OptionPlain
		if i < len(o.Marks) {
			mark = o.Marks[i]
		}
		switch {
		case mark == OptionCorrect:
			b.WriteString(st.Correct.Render(line + "  ✓"))
		case mark == OptionWrong:
			b.WriteString(st.Incorrect.Render(line + "  ✗"))
		case mark == OptionNeutral:
			b.WriteString(st.Neutral.Render(line))
		case i == o.Cursor:
			b.WriteString(st.Selected.Render(line))
		default:
			b.WriteString(st.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
