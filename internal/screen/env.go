package screen

import (
	"github.com/skyguardian/uavacademy/internal/controller"
	"github.com/skyguardian/uavacademy/internal/i18n"
	"github.com/skyguardian/uavacademy/internal/state"
	"github.com/skyguardian/uavacademy/internal/ui/theme"
)

// Env is what every screen needs: the controller to read state and apply
// actions, and the string table.
type Env struct {
	Ctrl *controller.Controller
	Text *i18n.Table
}

// Locale returns the current display locale.
func (e Env) Locale() i18n.Locale {
	return e.Ctrl.State().Locale
}

// T looks up key in the current locale.
func (e Env) T(key i18n.Key) string {
	return e.Text.Lookup(key, e.Locale())
}

// Styles returns the styles for the current theme.
func (e Env) Styles() theme.Styles {
	return theme.New(e.Ctrl.State().Theme == state.ThemeDark)
}
