// Package render implements §6's render(mode) surface for the two modes
// the core itself can produce without an external viewer: `default` (a
// one-line-per-tick summary table) and `debug` (the same table plus each
// tick's SubStates, when present). `dashboard` and `simulation` are
// external collaborators (Gantt/3D views) and are rejected here.
package render

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/proto-lab-ro/jobshoplab/jobshop"
)

// Mode names one of the §6 render(mode) values.
type Mode string

const (
	ModeDefault   Mode = "default"
	ModeDebug     Mode = "debug"
	ModeDashboard Mode = "dashboard"
	ModeSimulation Mode = "simulation"
)

// ErrRenderModeUnsupported signals a render(mode) value this package
// cannot itself produce; the caller owns wiring an external viewer.
type ErrRenderModeUnsupported struct {
	Mode Mode
}

func (e ErrRenderModeUnsupported) Error() string {
	return fmt.Sprintf("render mode %q is external to the core; wire a dashboard/simulation viewer", e.Mode)
}

// History renders h as a table for mode. Only ModeDefault and ModeDebug
// are supported; anything else returns ErrRenderModeUnsupported.
func History(h jobshop.History, mode Mode) (string, error) {
	switch mode {
	case ModeDefault:
		return renderSummary(h, false), nil
	case ModeDebug:
		return renderSummary(h, true), nil
	default:
		return "", ErrRenderModeUnsupported{Mode: mode}
	}
}

func renderSummary(h jobshop.History, debug bool) string {
	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	w.AppendHeader(table.Row{"#", "time", "transitions", "message"})

	for i, rec := range h.Records {
		w.AppendRow(table.Row{i, rec.NewState.Time, len(rec.ChosenTransitions), rec.Message})
		if debug {
			for j, sub := range rec.SubStates {
				w.AppendRow(table.Row{fmt.Sprintf("%d.%d", i, j), sub.Time, "", "substate"})
			}
		}
	}
	return w.Render()
}
