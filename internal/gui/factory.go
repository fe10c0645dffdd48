// Widget factory producing Fyne-backed parameter controls
package gui

import (
	"fmt"
	"math"

	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"scheduler-node-editor/internal/catalog"
	"scheduler-node-editor/internal/node"
)

// Factory builds numeric parameter widgets as slider rows. Other
// declaration kinds are reserved and yield nil.
type Factory struct {
	logger *logrus.Logger

	// onChanged fires after any produced widget's value changes.
	onChanged func()
}

// NewFactory creates a factory. onChanged may be nil.
func NewFactory(logger *logrus.Logger, onChanged func()) *Factory {
	return &Factory{logger: logger, onChanged: onChanged}
}

// Create implements node.WidgetFactory.
func (f *Factory) Create(n *node.Node, name string, decl catalog.Declaration) *node.Widget {
	if decl.Kind != catalog.KindNumber {
		return nil
	}

	w := node.NewWidget(name, "number", decl.Default, decl)

	slider := widget.NewSlider(decl.Min, decl.Max)
	slider.Step = decl.Step
	valueLabel := widget.NewLabel(formatValue(decl, decl.Default))

	slider.OnChanged = func(v float64) {
		if decl.Round > 0 {
			v = math.Round(v/decl.Round) * decl.Round
		}
		w.Value = v
		valueLabel.SetText(formatValue(decl, v))
		if f.onChanged != nil {
			f.onChanged()
		}
	}
	slider.SetValue(decl.Default)

	w.Handle = container.NewBorder(nil, nil, widget.NewLabel(name), valueLabel, slider)
	return w
}

func formatValue(decl catalog.Declaration, v float64) string {
	if decl.Step >= 1 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
