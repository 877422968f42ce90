package home

import (
	"charm.land/lipgloss/v2"

	"github.com/skyguardian/uavacademy/internal/ui/theme"
)

// DroneVariant selects which drone art to display.
type DroneVariant int

const (
	DroneGrounded DroneVariant = iota // nothing viewed yet
	DroneFlying                       // some progress
	DroneAce                          // every topic viewed
)

const droneGrounded = `  ─┬─     ─┬─
 ╭─┴───────┴─╮
 │   ◉   ◉   │
 ╰───┬───┬───╯
    ═╧═ ═╧═`

const droneFlying = ` ~─┬─~   ~─┬─~
 ╭─┴───────┴─╮
 │   ◉   ◉   │
 ╰─────▽─────╯
       ╎`

const droneAce = ` ~─┬─~ ★ ~─┬─~
 ╭─┴───────┴─╮
 │   ★   ★   │
 ╰─────▽─────╯
       ╎`

// VariantFor picks the art for a progress percentage.
func VariantFor(percentage int) DroneVariant {
	switch {
	case percentage >= 100:
		return DroneAce
	case percentage > 0:
		return DroneFlying
	}
	return DroneGrounded
}

// RenderDrone returns the drone art for the given variant.
func RenderDrone(v DroneVariant, st theme.Styles) string {
	art := droneGrounded
	fg := st.TextDim

	switch v {
	case DroneFlying:
		art = droneFlying
		fg = st.Primary
	case DroneAce:
		art = droneAce
		fg = st.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
