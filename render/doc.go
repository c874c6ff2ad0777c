// Package render turns generated artwork into output files.
//
// Generators only produce shape descriptors. This package holds the
// contract between those descriptors and concrete output formats, a
// registry of named backends, and Playback, which feeds an artwork to a
// backend shape by shape.
//
// # Backend Registration
//
// Backends are registered using the database/sql driver pattern. Import a
// backend package with a blank identifier to register it:
//
//	import (
//	    "github.com/gogpu/stillness/render"
//	    _ "github.com/gogpu/stillness/render/pdf"    // "pdf"
//	    _ "github.com/gogpu/stillness/render/raster" // "png"
//	    _ "github.com/gogpu/stillness/render/svg"    // "svg"
//	)
//
// # Playback
//
//	art := patterns.Default.Generate(c, 0)
//
//	b, err := render.NewBackend("svg")
//	if err != nil {
//	    return err
//	}
//	if err := render.Playback(art, b, 1024); err != nil {
//	    return err
//	}
//	err = b.(render.FileBackend).SaveToFile("mandala.svg")
package render
