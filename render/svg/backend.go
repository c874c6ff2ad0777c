// Package svg provides an SVG backend for the render package.
//
// Every shape becomes one <path> element carrying its fill, outline
// colour and outline width. Consecutive shapes of the same layer are
// wrapped in a <g> element whose id is derived from the layer name, so
// an editor can address the parts of a pattern.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/stillness/render/svg"
//
//	b, _ := render.NewBackend("svg")
//	render.Playback(art, b, 800)
//	b.(render.FileBackend).SaveToFile("pattern.svg")
package svg

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/gogpu/stillness"
	"github.com/gogpu/stillness/render"
)

func init() {
	render.Register("svg", func() render.Backend {
		return NewBackend()
	})
}

// ErrNotStarted is returned when drawing before Begin or after End.
var ErrNotStarted = errors.New("svg: backend not started")

// Backend writes shapes as SVG path elements into an in-memory document.
type Backend struct {
	buf    bytes.Buffer
	canvas *svgo.SVG
	m      stillness.Matrix
	title  string

	layer   string
	inGroup bool
	ids     map[string]int
	done    bool
}

var (
	_ render.WriterBackend = (*Backend)(nil)
	_ render.FileBackend   = (*Backend)(nil)
	_ render.TitledBackend = (*Backend)(nil)
)

// NewBackend creates a new SVG backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{m: stillness.Identity()}
}

// SetTitle sets the document title written by Begin.
func (b *Backend) SetTitle(title string) {
	b.title = title
}

// Begin starts a document of width×height user units.
func (b *Backend) Begin(width, height int) error {
	b.buf.Reset()
	b.canvas = svgo.New(&b.buf)
	b.layer, b.inGroup, b.done = "", false, false
	b.ids = make(map[string]int)

	b.canvas.Start(width, height)
	if b.title != "" {
		b.canvas.Title(b.title)
	}
	return nil
}

// SetTransform sets the matrix applied to shape coordinates.
func (b *Backend) SetTransform(m stillness.Matrix) {
	b.m = m
}

// DrawShape writes s as a path element.
func (b *Backend) DrawShape(s *stillness.Shape) error {
	if b.canvas == nil || b.done {
		return ErrNotStarted
	}
	if s.Layer != b.layer {
		b.closeGroup()
		b.layer = s.Layer
		if s.Layer != "" {
			b.canvas.Gid(b.groupID(s.Layer))
			b.inGroup = true
		}
	}

	d := pathData(s.Path.Transform(b.m))
	if d == "" {
		return nil
	}
	b.canvas.Path(d, style(s, b.m.ScaleFactor()))
	return nil
}

// End closes the document.
func (b *Backend) End() error {
	if b.canvas == nil {
		return ErrNotStarted
	}
	if !b.done {
		b.closeGroup()
		b.canvas.End()
		b.done = true
	}
	return nil
}

// Bytes returns the finished document.
func (b *Backend) Bytes() []byte {
	return b.buf.Bytes()
}

// WriteTo writes the finished document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.done {
		return 0, ErrNotStarted
	}
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

// SaveToFile writes the finished document to path.
func (b *Backend) SaveToFile(path string) error {
	if !b.done {
		return ErrNotStarted
	}
	if err := os.WriteFile(path, b.buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("svg: save: %w", err)
	}
	return nil
}

func (b *Backend) closeGroup() {
	if b.inGroup {
		b.canvas.Gend()
		b.inGroup = false
	}
}

// groupID turns a layer name into a unique XML id. Repeated runs of the
// same layer get the next free numeric suffix.
func (b *Backend) groupID(layer string) string {
	id := strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z', '0' <= r && r <= '9', r == '-', r == '_':
			return r
		case 'A' <= r && r <= 'Z':
			return r + 'a' - 'A'
		}
		return '-'
	}, layer)
	if id == "" || '0' <= id[0] && id[0] <= '9' {
		id = "layer-" + id
	}
	// ids holds the last suffix handed out for a base id, or 1 for an id
	// that was only used as is.
	base, n := id, b.ids[id]
	for b.ids[id] > 0 {
		n++
		id = base + "-" + strconv.Itoa(n)
	}
	b.ids[base] = max(n, 1)
	if id != base {
		b.ids[id] = 1
	}
	return id
}

// style returns the CSS declarations for s, with the outline width
// scaled by the transform's scale factor.
func style(s *stillness.Shape, scale float64) string {
	fill := "none"
	if s.Closed {
		fill = s.Fill.String()
	}
	return fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%s;stroke-linejoin:round",
		fill, s.Stroke.String(), num(s.StrokeWidth*scale))
}

// pathData encodes p in SVG path syntax.
func pathData(p *stillness.Path) string {
	var sb strings.Builder
	pt := func(cmd byte, pts ...stillness.Point) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(cmd)
		for i, q := range pts {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(num(q.X))
			sb.WriteByte(',')
			sb.WriteString(num(q.Y))
		}
	}
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case stillness.MoveTo:
			pt('M', e.Point)
		case stillness.LineTo:
			pt('L', e.Point)
		case stillness.QuadTo:
			pt('Q', e.Control, e.Point)
		case stillness.CubicTo:
			pt('C', e.Control1, e.Control2, e.Point)
		case stillness.Close:
			pt('Z')
		}
	}
	return sb.String()
}

// num formats v with at most two decimals.
func num(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
