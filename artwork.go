package stillness

import "github.com/google/uuid"

// Artwork is the result of one generation call: the styled shapes of a
// pattern in drawing order.
type Artwork struct {
	// ID identifies this generation. Consumers key colouring state to it
	// so that regenerating the same pattern starts from a fresh page.
	ID uuid.UUID

	Name  string
	Theme string

	// Size is the width and height of the canvas the shapes live on.
	Size float64

	Shapes []*Shape
}

func newArtwork(name, theme string, shapes []*Shape) *Artwork {
	return &Artwork{
		ID:     uuid.New(),
		Name:   name,
		Theme:  theme,
		Size:   Size,
		Shapes: shapes,
	}
}

// Layers returns the distinct layer names in order of first appearance.
func (a *Artwork) Layers() []string {
	var names []string
	seen := make(map[string]bool)
	for _, s := range a.Shapes {
		if !seen[s.Layer] {
			seen[s.Layer] = true
			names = append(names, s.Layer)
		}
	}
	return names
}

// Layer returns the shapes tagged with the given layer name.
func (a *Artwork) Layer(name string) []*Shape {
	var shapes []*Shape
	for _, s := range a.Shapes {
		if s.Layer == name {
			shapes = append(shapes, s)
		}
	}
	return shapes
}
