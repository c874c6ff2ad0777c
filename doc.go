// Package stillness generates full-canvas decorative vector illustrations
// ("patterns") for a colouring-book application.
//
// # Overview
//
// A pattern is produced by a generator that emits dozens to hundreds of
// closed shapes onto a Context. The Context owns everything a generator
// reads: the active palette and its colour cursor, the stroke style, the
// random source and the canvas the finished shapes are collected on. The
// result of one generation call is an Artwork: an ordered list of Shape
// descriptors that a renderer (see the render sub-packages) turns into SVG,
// PNG or PDF output.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/stillness"
//	    "github.com/gogpu/stillness/patterns"
//	)
//
//	c := stillness.NewContext(stillness.WithTheme("Winter Frost"), stillness.WithSeed(7))
//	art := patterns.Default.Generate(c, 0) // Mandala
//	for _, s := range art.Shapes {
//	    fmt.Println(s.Kind, s.Fill)
//	}
//
// # Primitives
//
// Four parametric builders compose most of the artwork:
//   - RingSegment: annular sector between two radii and two angles
//   - Petal: almond shape along a ray, two mirrored quadratic halves
//   - Diamond: rhombus along a ray
//   - Teardrop: rounded base narrowing to a point along a ray
//
// They are pure functions. Context.Sty assigns the next palette colour and
// the stroke style and submits the shape to the canvas.
//
// # Coordinate System
//
// The canvas is Size×Size (800×800) units:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in degrees, 0 is +X, increases clockwise on screen
//
// Every radial primitive and RingSegment place points with Polar, so rings
// and the ornaments inside them share one angular convention.
//
// # Concurrency
//
// A Context is not safe for concurrent use. Generation is synchronous and
// runs to completion; to replace a pattern, clear the canvas and generate
// again. Separate Contexts may be used from separate goroutines.
package stillness

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
