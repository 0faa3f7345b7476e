// internal/types/position.go
package types

// Position is a cell position on screen relative to the text area.
// Line is the 0-based visual row (wrapped rows count separately).
// Col is the 0-based cell column, so wide graphemes advance it by 2.
type Position struct {
	Line int
	Col  int
}
