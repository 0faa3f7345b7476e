package cursor

// Viewport is the window of visual rows currently on screen.
type Viewport struct {
	Top       int
	Height    int
	ScrollOff int // Rows of context kept above/below the caret
}

// SetHeight updates the number of visible rows.
func (v *Viewport) SetHeight(height int) {
	v.Height = height
}

// ScrollTo adjusts Top so that row is visible with ScrollOff rows of context
// where the content allows it.
func (v *Viewport) ScrollTo(row int) {
	if v.Height <= 0 {
		return // View not initialized yet
	}

	scrollOff := v.ScrollOff
	if limit := (v.Height - 1) / 2; scrollOff > limit {
		scrollOff = limit
	}

	if row < v.Top+scrollOff {
		v.Top = row - scrollOff
	} else if row >= v.Top+v.Height-scrollOff {
		v.Top = row - v.Height + scrollOff + 1
	}
	if v.Top < 0 {
		v.Top = 0
	}
}

// Visible reports whether row is inside the viewport.
func (v *Viewport) Visible(row int) bool {
	return row >= v.Top && row < v.Top+v.Height
}
