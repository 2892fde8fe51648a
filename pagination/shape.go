package pagination

// Shape classifies how a page box sits inside the control row, derived
// from the item's First/Last flags. The renderer maps it to corner
// rounding classes.
type Shape int

const (
	// ShapeMiddle is a square box between other boxes.
	ShapeMiddle Shape = iota
	// ShapeLeft is the leftmost box, rounded on its outer edge.
	ShapeLeft
	// ShapeRight is the rightmost box, rounded on its outer edge.
	ShapeRight
	// ShapeSingle is the only box, rounded on both edges.
	ShapeSingle
)

// Shape returns the box shape for a page item. Non-page items are
// always ShapeMiddle.
func (it Item) Shape() Shape {
	if it.Kind != KindPage {
		return ShapeMiddle
	}
	switch {
	case it.First && it.Last:
		return ShapeSingle
	case it.First:
		return ShapeLeft
	case it.Last:
		return ShapeRight
	default:
		return ShapeMiddle
	}
}
