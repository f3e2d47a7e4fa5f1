package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proto-lab-ro/jobshoplab/jobshop"
	"github.com/proto-lab-ro/jobshoplab/jobshop/render"
)

func sampleHistory() jobshop.History {
	h := jobshop.History{}
	h.Append(jobshop.HistoryRecord{
		NewState:          jobshop.State{Time: 2},
		ChosenTransitions: []jobshop.ComponentTransition{{ComponentID: "T1", Tag: jobshop.TransitionTransportPickup}},
		Message:           "transport:idle->pickup(T1)",
		SubStates:         []jobshop.State{{Time: 1}},
	})
	h.Append(jobshop.HistoryRecord{
		NewState: jobshop.State{Time: 2},
		Message:  "no-op",
	})
	return h
}

func TestHistory_DefaultModeOmitsSubStates(t *testing.T) {
	out, err := render.History(sampleHistory(), render.ModeDefault)
	require.NoError(t, err)
	assert.Contains(t, out, "transport:idle->pickup(T1)")
	assert.Contains(t, out, "no-op")
	assert.NotContains(t, out, "substate")
}

func TestHistory_DebugModeIncludesSubStates(t *testing.T) {
	out, err := render.History(sampleHistory(), render.ModeDebug)
	require.NoError(t, err)
	assert.Contains(t, out, "substate")
	assert.Contains(t, out, "0.0")
}

func TestHistory_UnsupportedModesAreRejected(t *testing.T) {
	for _, mode := range []render.Mode{render.ModeDashboard, render.ModeSimulation, render.Mode("bogus")} {
		_, err := render.History(sampleHistory(), mode)
		require.Error(t, err)
		var unsupported render.ErrRenderModeUnsupported
		assert.ErrorAs(t, err, &unsupported)
		assert.Equal(t, mode, unsupported.Mode)
	}
}

func TestHistory_EmptyHistoryStillRenders(t *testing.T) {
	out, err := render.History(jobshop.History{}, render.ModeDefault)
	require.NoError(t, err)
	assert.Contains(t, out, "TIME")
}
