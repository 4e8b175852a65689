package core

// Color is a foreground color for a screen cell. Themes map each color to
// a terminal style; values outside the palette render as ColorDefault.
type Color uint8

// Base palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	numColors
)

// Board roles. Renderers use these so a theme can restyle the board by
// remapping the base color behind each role.
const (
	ColorCursor  = ColorBrightYellow // Tile under the cursor
	ColorClosed  = ColorBrightGreen  // Cursor's network, fully closed
	ColorNetwork = ColorCyan         // Cursor's network, still open
	ColorSmooth  = ColorWhite        // Tile matching all its neighbours
	ColorIdle    = ColorGray         // Any other tile, frames and separators
	ColorSolved  = ColorOrange       // Whole board once solved
	ColorHUD     = ColorCyan         // Status line
)

var colorNames = [numColors]string{
	"default", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-red", "bright-green", "bright-yellow", "bright-blue",
	"bright-magenta", "bright-cyan", "bright-white", "orange", "gray",
}

// String returns the color name.
func (c Color) String() string {
	if c < numColors {
		return colorNames[c]
	}
	return "unknown"
}

// Colors returns every palette color in order.
func Colors() []Color {
	all := make([]Color, numColors)
	for i := range all {
		all[i] = Color(i)
	}
	return all
}
