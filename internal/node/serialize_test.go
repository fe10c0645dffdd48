package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializedValuesOmitHidden(t *testing.T) {
	n, logger, _ := builtNode()
	ApplyScheduler(n, testCatalog(), "euler", logger)

	values := n.SerializedValues()
	assert.Contains(t, values, "scheduler")
	assert.Contains(t, values, "denoise")
	assert.Contains(t, values, "steps")
	assert.NotContains(t, values, "sigma_max", "hidden parameters must not serialize")
}

func TestSerializedValuesKeepInputDriven(t *testing.T) {
	n, logger, _ := builtNode()

	sigma := n.Widget("sigma_max")
	require.NotNil(t, sigma)
	// The widget was hidden by the builder before the input connected,
	// so flag it and re-hide to rebuild the serialization rule.
	Show(sigma)
	sigma.InputDriven = true
	Hide(sigma)

	ApplyScheduler(n, testCatalog(), "euler", logger)
	assert.Contains(t, n.SerializedValues(), "sigma_max")
}

func TestSaveStateRestoreRoundTrip(t *testing.T) {
	n, logger, _ := builtNode()
	cat := testCatalog()

	ApplyScheduler(n, cat, "karras", logger)
	n.Widget("steps").Value = 42.0
	n.Widget("scheduler").Value = "karras"
	st := n.SaveState()

	fresh, _, _ := builtNode()
	fresh.Restore(st)
	ApplyScheduler(fresh, cat, "karras", logger)

	assert.Equal(t, 42.0, fresh.Widget("steps").Value)
	assert.Equal(t, "karras", fresh.Widget("scheduler").Value)
	assert.ElementsMatch(t, []string{"steps", "sigma_max"}, visibleNames(fresh))
	assert.Equal(t, st.Size[0], fresh.Size.Width)
}

func TestRestoreSkipsUnknownWidgets(t *testing.T) {
	n, _, _ := builtNode()

	st := State{
		Size:   [2]float64{280, 40},
		Values: map[string]any{"not_a_widget": 1.0},
	}
	assert.NotPanics(t, func() { n.Restore(st) })
}

func TestSaveStateFields(t *testing.T) {
	n, _, _ := builtNode()

	st := n.SaveState()
	assert.Equal(t, 7, st.ID)
	assert.Equal(t, "Scheduler", st.Title)
	assert.Equal(t, n.Size.Width, st.Size[0])
	assert.Equal(t, n.Size.Height, st.Size[1])
}
