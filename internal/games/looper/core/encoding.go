package core

import (
	"strconv"
	"strings"
)

// ParseLevel decodes the textual level encoding: one line per row, cells
// separated by '|', each cell "<shape> <rotation>" as decimal ordinals.
// Trailing blank lines and carriage returns are ignored.
func ParseLevel(text string) (Level, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return Level{}, &FormatError{Message: "empty level"}
	}

	width := len(strings.Split(lines[0], "|"))
	lvl := NewLevel(width, len(lines))

	for y, line := range lines {
		cells := strings.Split(line, "|")
		if len(cells) != width {
			return Level{}, &FormatError{
				Line:    y + 1,
				Message: "row has " + strconv.Itoa(len(cells)) + " cells, want " + strconv.Itoa(width),
			}
		}
		for x, cell := range cells {
			s, r, err := parseCell(cell)
			if err != nil {
				return Level{}, &FormatError{Line: y + 1, Column: x + 1, Message: err.Error()}
			}
			lvl.Set(x, y, s, r)
		}
	}
	return lvl, nil
}

type cellError string

func (e cellError) Error() string { return string(e) }

func parseCell(cell string) (Shape, Rotation, error) {
	fields := strings.Fields(cell)
	if len(fields) != 2 {
		return 0, 0, cellError("want \"<shape> <rotation>\", got " + strconv.Quote(cell))
	}
	s, err := strconv.Atoi(fields[0])
	if err != nil || s < 0 || s >= NumShapes {
		return 0, 0, cellError("bad shape " + strconv.Quote(fields[0]))
	}
	r, err := strconv.Atoi(fields[1])
	if err != nil || r < 0 || r >= NumRotations {
		return 0, 0, cellError("bad rotation " + strconv.Quote(fields[1]))
	}
	return Shape(s), Rotation(r), nil
}

// FormatLevel encodes lvl in the format read by ParseLevel, with a trailing
// newline after the last row.
func FormatLevel(lvl Level) string {
	var b strings.Builder
	for y := 0; y < lvl.Height; y++ {
		for x := 0; x < lvl.Width; x++ {
			if x > 0 {
				b.WriteByte('|')
			}
			b.WriteString(strconv.Itoa(int(lvl.Shape(x, y))))
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(int(lvl.SolvedRotation(x, y))))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
