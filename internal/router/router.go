package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cesd/internal/screen"
)

// ReplaceScreenMsg requests the router to swap the active screen for a new one.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router owns the active screen. The assessment flow only moves forward
// (welcome, questionnaire, results, questionnaire again), so screens are
// swapped rather than stacked.
type Router struct {
	active screen.Screen
	swaps  int
}

// New creates a Router showing initial.
func New(initial screen.Screen) *Router {
	return &Router{active: initial}
}

// Replace swaps the active screen for s and calls its Init().
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.active = s
	r.swaps++
	return s.Init()
}

// Active returns the screen on display.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Swaps returns how many times the active screen has been replaced.
func (r *Router) Swaps() int {
	return r.swaps
}

// Update handles ReplaceScreenMsg and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(ReplaceScreenMsg); ok {
		return r.Replace(msg.Screen)
	}
	if r.active == nil {
		return nil
	}

	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}
