// Package scene describes a drawing as data. A Scene is a canvas size plus
// a list of shape specifications, decoded from TOML or YAML, that Build
// turns into gfx shapes and Render plots into a canvas.Pixmap.
//
// A TOML scene:
//
//	width = 40
//	height = 20
//
//	[[shapes]]
//	kind = "circle"
//	x = 2
//	y = 2
//	radius = 6
//	filled = true
//
//	[[shapes]]
//	kind = "line"
//	x = 0
//	y = 19
//	to = [39, 0]
package scene

// Scene is a drawing: a canvas size, an optional font and the shapes to
// draw in order.
type Scene struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`

	// Font is a TrueType or OpenType file used by text shapes. Empty selects
	// the built-in Go Regular font.
	Font string `toml:"font,omitempty" yaml:"font,omitempty"`

	Shapes []ShapeSpec `toml:"shapes" yaml:"shapes"`
}

// ShapeSpec describes one shape. Kind selects the constructor and decides
// which of the remaining fields are read:
//
//	line             x, y, and one of to, width, height
//	horizontal-line  x, y, width (length to the right)
//	vertical-line    x, y, height (length downward)
//	oblique-line     x, y, to
//	rectangle        x, y, width, height
//	square           x, y, side
//	circle           x, y, radius or width
//	ellipse          x, y, x_radius and y_radius, or width and height
//	triangle         x, y, corners (three [x, y] pairs)
//	text             x, y, text, size
//
// x and y are the shape's origin. filled applies to closed shapes.
type ShapeSpec struct {
	Kind string `toml:"kind" yaml:"kind"`
	X    int    `toml:"x" yaml:"x"`
	Y    int    `toml:"y" yaml:"y"`

	Width   int `toml:"width,omitempty" yaml:"width,omitempty"`
	Height  int `toml:"height,omitempty" yaml:"height,omitempty"`
	Side    int `toml:"side,omitempty" yaml:"side,omitempty"`
	Radius  int `toml:"radius,omitempty" yaml:"radius,omitempty"`
	XRadius int `toml:"x_radius,omitempty" yaml:"x_radius,omitempty"`
	YRadius int `toml:"y_radius,omitempty" yaml:"y_radius,omitempty"`

	To      []int   `toml:"to,omitempty" yaml:"to,omitempty,flow"`
	Corners [][]int `toml:"corners,omitempty" yaml:"corners,omitempty,flow"`

	Filled bool `toml:"filled,omitempty" yaml:"filled,omitempty"`

	Text string  `toml:"text,omitempty" yaml:"text,omitempty"`
	Size float64 `toml:"size,omitempty" yaml:"size,omitempty"`
}
