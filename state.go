package stillness

// Tool is the colouring tool selected in the interactive editor.
type Tool string

// Colouring tools.
const (
	ToolFill     Tool = "fill"
	ToolBrush    Tool = "brush"
	ToolGradient Tool = "gradient"
	ToolEraser   Tool = "eraser"
)

// GradientType selects how a gradient fill is laid out.
type GradientType string

// Gradient layouts.
const (
	GradientLinear GradientType = "linear"
	GradientRadial GradientType = "radial"
)

// SoundNames lists the ambient sounds the editor offers, indexed by
// DrawingState.Sound.
var SoundNames = []string{"Chimes", "Wind", "Birds", "Ocean", "Rain", "Crystal", "Harp", "Zen Bowl"}

// DrawingState is the editor state around the engine. Generation reads
// Pattern and Theme only and never writes to it.
//
// Colour fields are unset (zero) until the user picks a colour.
type DrawingState struct {
	Tool          Tool
	Color         Color
	Theme         string
	GradientStart Color
	GradientEnd   Color
	GradientType  GradientType
	BrushSize     float64
	BrushOpacity  float64
	Pattern       int
	Sound         int
	Volume        float64
}

// NewDrawingState returns the state a fresh editor session starts with.
func NewDrawingState() *DrawingState {
	return &DrawingState{
		Tool:         ToolFill,
		Theme:        DefaultTheme,
		GradientType: GradientLinear,
		BrushSize:    5,
		BrushOpacity: 1,
		Volume:       0.5,
	}
}
