package node

import "strings"

// hiddenTag replaces a widget's type while it is hidden. Linked widgets
// get a suffixed tag so a cascaded hide stays distinguishable from the
// primary one.
const (
	hiddenTag    = "hidden"
	linkedSuffix = ":linked"
)

// Hidden reports whether the widget is currently hidden.
func (w *Widget) Hidden() bool {
	return strings.HasPrefix(w.Type, hiddenTag)
}

// OriginalType returns the widget's real type regardless of visibility.
// Returns "" when the type cannot be determined (hidden tag present but
// no saved state).
func (w *Widget) OriginalType() string {
	if w.saved != nil {
		return w.saved.typ
	}
	if w.Hidden() {
		return ""
	}
	return w.Type
}

// Hide makes a widget invisible: its size rule reports zero height and
// its serialization rule suppresses the value, except for input-driven
// widgets which keep deferring to the original rule. Hiding an already
// hidden widget is a no-op. Linked widgets are hidden along with it.
func Hide(w *Widget) {
	hide(w, "")
}

func hide(w *Widget, suffix string) {
	if w == nil || w.Hidden() {
		return
	}

	saved := &savedState{
		typ:         w.Type,
		computeSize: w.ComputeSize,
		serialize:   w.Serialize,
	}
	w.saved = saved

	w.ComputeSize = func(*Widget, float64) Size {
		return Size{}
	}
	w.Serialize = func(w *Widget) (any, bool) {
		if w.InputDriven {
			return saved.serialize(w)
		}
		return nil, false
	}
	w.Type = hiddenTag + suffix

	for _, linked := range w.Linked {
		hide(linked, suffix+linkedSuffix)
	}
}

// Show restores a hidden widget's type, size rule and serialization
// rule. Showing a visible widget, or one with no saved state, is a safe
// no-op. Linked widgets are shown unconditionally.
func Show(w *Widget) {
	if w == nil {
		return
	}

	if w.saved != nil {
		w.Type = w.saved.typ
		w.ComputeSize = w.saved.computeSize
		w.Serialize = w.saved.serialize
		w.saved = nil
	}

	for _, linked := range w.Linked {
		Show(linked)
	}
}
