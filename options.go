package gfx

// Option configures a shape during construction.
//
// Example:
//
//	// Outline circle at (0,0)
//	c, _ := gfx.NewCircle(4)
//
//	// Filled circle centred at (20,20)
//	c, _ = gfx.NewCircle(4, gfx.At(gfx.Pt(16, 16)), gfx.AsFilled())
type Option func(*shapeOptions)

// shapeOptions holds optional configuration shared by all constructors.
type shapeOptions struct {
	origin Point
	filled bool
}

// defaultOptions returns the default shape options: origin (0,0), outline.
func defaultOptions() shapeOptions {
	return shapeOptions{}
}

func applyOptions(opts []Option) shapeOptions {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// At places the shape's local frame at origin.
// For conics the origin is the top-left corner of the bounding box, not the
// centre.
func At(origin Point) Option {
	return func(o *shapeOptions) {
		o.origin = origin
	}
}

// AsFilled constructs the shape already filled. It is ignored by shapes that
// cannot be filled.
func AsFilled() Option {
	return func(o *shapeOptions) {
		o.filled = true
	}
}
