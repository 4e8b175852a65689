package looper

import (
	"fmt"
	"time"

	platformcore "github.com/vovakirdan/looper/internal/core"
	"github.com/vovakirdan/looper/internal/games/looper/core"
)

const hudHeight = 4

// Tile sizes in terminal cells, largest first.
var tileSizes = []struct{ w, h int }{
	{5, 3},
	{3, 1},
}

// layout places the board on screen.
type layout struct {
	cellW int
	cellH int
	frame platformcore.Rect // Border around the tiles
}

// calculateLayout picks the largest tile size whose board fits the screen.
func (g *Game) calculateLayout() {
	area := platformcore.NewRect(0, hudHeight, g.screenW, g.screenH-hudHeight)

	g.tooSmall = true
	for _, size := range tileSizes {
		w := g.puzzle.Width()*size.w + 2
		h := g.puzzle.Height()*size.h + 2
		if w > area.W || h > area.H {
			continue
		}
		g.layout = layout{
			cellW: size.w,
			cellH: size.h,
			frame: area.Centered(w, h),
		}
		g.tooSmall = false
		return
	}
}

// pipeGlyphs maps a connector mask, one bit per direction in clockwise
// order starting at Up, to its box-drawing rune.
var pipeGlyphs = [16]rune{
	0b0000: ' ',
	0b0001: '╵',
	0b0010: '╶',
	0b0011: '└',
	0b0100: '╷',
	0b0101: '│',
	0b0110: '┌',
	0b0111: '├',
	0b1000: '╴',
	0b1001: '┘',
	0b1010: '─',
	0b1011: '┴',
	0b1100: '┐',
	0b1101: '┤',
	0b1110: '┬',
	0b1111: '┼',
}

// Glyph returns the box-drawing rune for a tile with connectors m.
func Glyph(m core.Mask) rune {
	bits := 0
	for i, on := range m {
		if on {
			bits |= 1 << i
		}
	}
	return pipeGlyphs[bits]
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	switch {
	case g.won:
		g.renderOverlay(dst, "Pack complete!", fmt.Sprintf("Score %d - press R to replay", g.totalScore))
		return
	case g.err != nil:
		g.renderOverlay(dst, "No level", g.err.Error())
		return
	case g.puzzle == nil:
		return
	case g.tooSmall:
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)

	switch {
	case g.solved:
		g.renderOverlay(dst, fmt.Sprintf("Solved! +%d", g.levelScore), "Press N for the next level")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " " + g.Title()
	if g.puzzle != nil {
		elapsed := platformcore.RuntimeConfig{TickRate: g.tickRate}.TickDuration(g.ticks)
		hud += fmt.Sprintf(" | %dx%d | Moves: %d | Time: %s | Done: %d%% | Score: %d",
			g.puzzle.Width(), g.puzzle.Height(), g.puzzle.Moves(),
			formatClock(elapsed), int(g.analysis.Progress()*100), g.totalScore)
	}
	if g.mode == ModePack && len(g.pack) > 0 && !g.won {
		hud += fmt.Sprintf(" | Level %d/%d %s", g.levelIndex+1, len(g.pack), g.levelName)
	}
	dst.DrawTextColored(0, 0, hud, platformcore.ColorHUD)

	// Separator
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, '─', platformcore.ColorIdle)
	}

	controls := " Arrows: Move | Space: Rotate | R: Rescramble | N: New | P: Pause | B: Menu"
	dst.DrawTextColored(0, 2, controls, platformcore.ColorIdle)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 3, '─', platformcore.ColorIdle)
	}
}

// renderBoard draws the frame and every tile. A solved board is orange;
// otherwise the network under the cursor is highlighted.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	frameColor := platformcore.ColorIdle
	if g.solved {
		frameColor = platformcore.ColorSolved
	}
	dst.DrawBox(g.layout.frame, frameColor)

	cursor := g.Cursor()
	for y := 0; y < g.puzzle.Height(); y++ {
		for x := 0; x < g.puzzle.Width(); x++ {
			c := core.C(x, y)
			g.renderTile(dst, c, g.tileColor(c, cursor), c == cursor && !g.solved)
		}
	}
}

func (g *Game) tileColor(c, cursor core.Coord) platformcore.Color {
	switch {
	case g.solved:
		return platformcore.ColorSolved
	case c == cursor:
		return platformcore.ColorCursor
	case g.analysis.InNetwork(c, cursor):
		if n, ok := g.analysis.NetworkAt(c); ok && n.Closed() {
			return platformcore.ColorClosed
		}
		return platformcore.ColorNetwork
	case g.analysis.IsSmooth(c):
		return platformcore.ColorSmooth
	default:
		return platformcore.ColorIdle
	}
}

// renderTile draws one tile. Large tiles extend their arms to the cell
// edges so neighbouring connectors meet.
func (g *Game) renderTile(dst *platformcore.Screen, c core.Coord, color platformcore.Color, selected bool) {
	w, h := g.layout.cellW, g.layout.cellH
	left := g.layout.frame.X + 1 + c.X*w
	top := g.layout.frame.Y + 1 + c.Y*h
	cx, cy := left+w/2, top+h/2

	m := g.puzzle.Mask(c.X, c.Y)
	center := Glyph(m)
	if selected && m.Count() == 0 {
		center = '·'
	}
	dst.SetColored(cx, cy, center, color)

	if m.Has(core.DirLeft) {
		for x := left; x < cx; x++ {
			dst.SetColored(x, cy, '─', color)
		}
	}
	if m.Has(core.DirRight) {
		for x := cx + 1; x < left+w; x++ {
			dst.SetColored(x, cy, '─', color)
		}
	}
	if m.Has(core.DirUp) {
		for y := top; y < cy; y++ {
			dst.SetColored(cx, y, '│', color)
		}
	}
	if m.Has(core.DirDown) {
		for y := cy + 1; y < top+h; y++ {
			dst.SetColored(cx, y, '│', color)
		}
	}

	if selected && w >= 3 && h >= 3 {
		dst.SetColored(left, top, '┌', color)
		dst.SetColored(left+w-1, top, '┐', color)
		dst.SetColored(left, top+h-1, '└', color)
		dst.SetColored(left+w-1, top+h-1, '┘', color)
	} else if selected && w >= 3 {
		if !m.Has(core.DirLeft) {
			dst.SetColored(left, cy, '[', color)
		}
		if !m.Has(core.DirRight) {
			dst.SetColored(left+w-1, cy, ']', color)
		}
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	boxW := platformcore.Max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := platformcore.NewRect(0, 0, dst.Width(), dst.Height()).Centered(boxW, boxH)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, platformcore.ColorWhite)

	dst.DrawTextCentered(box.Y+1, line1, platformcore.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, platformcore.ColorWhite)
}

// formatClock renders d as m:ss.
func formatClock(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
