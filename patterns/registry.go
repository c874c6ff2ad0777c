package patterns

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"

	"github.com/gogpu/stillness"
)

// ErrUnknownPattern is returned by Lookup for a name no pattern carries.
var ErrUnknownPattern = errors.New("patterns: unknown pattern")

// Generator draws one complete illustration onto the canvas of c.
// It clears whatever c already holds, starts with a full-canvas
// background and keeps no state between calls. Randomness comes from
// c.Rand() only.
type Generator func(c *stillness.Context)

// Pattern pairs a generator with its display name.
type Pattern struct {
	Name     string
	Generate Generator
}

// Registry is an ordered, fixed list of patterns addressed by index.
// A Registry is immutable after creation and safe for concurrent reads.
type Registry struct {
	patterns []Pattern
	fold     map[string]int
}

// NewRegistry creates a registry holding patterns in the given order.
//
// NewRegistry panics if a generator is nil or two patterns share a name
// under case folding, so that broken tables fail at initialization.
func NewRegistry(patterns ...Pattern) *Registry {
	r := &Registry{
		patterns: append([]Pattern(nil), patterns...),
		fold:     make(map[string]int, len(patterns)),
	}
	for i, p := range r.patterns {
		if p.Generate == nil {
			panic("patterns: NewRegistry generator is nil for " + p.Name)
		}
		key := foldName(p.Name)
		if _, dup := r.fold[key]; dup {
			panic("patterns: NewRegistry duplicate name " + p.Name)
		}
		r.fold[key] = i
	}
	return r
}

// Default holds the built-in patterns in display order.
var Default = NewRegistry(
	Pattern{"Mandala", Mandala},
	Pattern{"Floral", Floral},
	Pattern{"Geometric", Geometric},
	Pattern{"Zentangle", Zentangle},
	Pattern{"Ocean", Ocean},
	Pattern{"Elephant", Elephant},
	Pattern{"Butterfly", Butterfly},
	Pattern{"Celestial", Celestial},
	Pattern{"Garden", Garden},
	Pattern{"Mosaic", Mosaic},
	Pattern{"Kente", Kente},
	Pattern{"Sashiko", Sashiko},
	Pattern{"Paisley", Paisley},
	Pattern{"Space", Space},
	Pattern{"Zodiac", Zodiac},
)

// Count returns the number of patterns.
func (r *Registry) Count() int {
	return len(r.patterns)
}

// Names returns the display names, parallel to Patterns.
func (r *Registry) Names() []string {
	names := make([]string, len(r.patterns))
	for i, p := range r.patterns {
		names[i] = p.Name
	}
	return names
}

// Patterns returns the patterns in order.
func (r *Registry) Patterns() []Pattern {
	return append([]Pattern(nil), r.patterns...)
}

// Pattern returns the pattern at index i.
// It panics if i is out of range, like slice indexing.
func (r *Registry) Pattern(i int) Pattern {
	return r.patterns[i]
}

// Lookup returns the index of the pattern called name. Matching ignores
// case.
func (r *Registry) Lookup(name string) (int, error) {
	i, ok := r.fold[foldName(name)]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return i, nil
}

// Generate clears the canvas of c, draws pattern i onto it and returns
// the result. The colour cursor of c is left where the pattern ends, so
// a regeneration continues the colour sequence.
//
// Valid indices are 0 <= i < Count(); Generate panics otherwise.
func (r *Registry) Generate(c *stillness.Context, i int) *stillness.Artwork {
	p := r.patterns[i]
	c.Clear()
	p.Generate(c)
	a := c.Artwork(p.Name)
	stillness.Logger().Debug("pattern generated",
		"pattern", p.Name, "index", i, "shapes", len(a.Shapes),
		"theme", a.Theme, "cursor", c.Cursor())
	return a
}

// GenerateState applies the theme of s to c and generates the pattern s
// selects. s is not modified.
func (r *Registry) GenerateState(c *stillness.Context, s *stillness.DrawingState) (*stillness.Artwork, error) {
	if s.Theme != c.Theme() {
		if err := c.SetTheme(s.Theme); err != nil {
			return nil, fmt.Errorf("patterns: generate state: %w", err)
		}
	}
	if s.Pattern < 0 || s.Pattern >= r.Count() {
		return nil, fmt.Errorf("patterns: generate state: index %d out of range [0, %d)", s.Pattern, r.Count())
	}
	return r.Generate(c, s.Pattern), nil
}

func foldName(name string) string {
	return cases.Fold().String(name)
}
