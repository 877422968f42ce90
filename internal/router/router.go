package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/skyguardian/uavacademy/internal/screen"
)

// Router holds the active page screen. Pages are flat, so replacing the
// screen is the only transition.
type Router struct {
	active  screen.Screen
	pending []tea.Cmd
}

// New creates a new Router with the given initial screen.
func New(initial screen.Screen) *Router {
	return &Router{active: initial}
}

// Init returns the initial screen's Init command.
func (r *Router) Init() tea.Cmd {
	if r.active == nil {
		return nil
	}
	return r.active.Init()
}

// Replace swaps the active screen. Its Init command is queued and returned
// by the next Update or Flush.
func (r *Router) Replace(s screen.Screen) {
	r.active = s
	if cmd := s.Init(); cmd != nil {
		r.pending = append(r.pending, cmd)
	}
}

// Flush returns and clears queued Init commands.
func (r *Router) Flush() tea.Cmd {
	if len(r.pending) == 0 {
		return nil
	}
	cmds := r.pending
	r.pending = nil
	return tea.Batch(cmds...)
}

// Active returns the active screen.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Update forwards a message to the active screen. If the screen was
// replaced while handling msg, the replacement is kept.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	active := r.active
	if active == nil {
		return r.Flush()
	}

	updated, cmd := active.Update(msg)
	if r.active == active {
		r.active = updated
	}
	if flushed := r.Flush(); flushed != nil {
		return tea.Batch(cmd, flushed)
	}
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}
