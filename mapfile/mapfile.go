package mapfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/jumppoint/grid"
)

// ReadMap parses a MovingAI map. Header lines ("type", "height", "width") may
// come in any order before the "map" line; unknown header keys are rejected.
//
// Returns ErrBadHeader, ErrBadRow or grid.ErrBadGlyph (wrapped with the
// offending position).
func ReadMap(r io.Reader) (*grid.Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	width, height := -1, -1
	line := 0
	for {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: missing \"map\" line", ErrBadHeader)
		}
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "map" && len(fields) == 1 {
			break
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadHeader, line, sc.Text())
		}
		switch fields[0] {
		case "type":
			// octile is the only layout in use; the value is informational.
		case "height", "width":
			v, err := strconv.Atoi(fields[1])
			if err != nil || v <= 0 {
				return nil, fmt.Errorf("%w: line %d: bad %s %q", ErrBadHeader, line, fields[0], fields[1])
			}
			if fields[0] == "height" {
				height = v
			} else {
				width = v
			}
		default:
			return nil, fmt.Errorf("%w: line %d: unknown key %q", ErrBadHeader, line, fields[0])
		}
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: width and height are required", ErrBadHeader)
	}

	g, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: got %d of %d rows", ErrBadRow, y, height)
		}
		row := strings.TrimRight(sc.Text(), "\r")
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadRow, y, len(row), width)
		}
		for x := 0; x < width; x++ {
			m, ok := glyphMask(row[x])
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", grid.ErrBadGlyph, row[x], x, y)
			}
			g.Node(x, y).Mask = m
		}
	}

	return g, nil
}

// WriteMap writes g in the MovingAI map format.
// Returns ErrUnencodable for a cell whose mask has no glyph.
func WriteMap(w io.Writer, g *grid.Grid) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "type octile\nheight %d\nwidth %d\nmap\n", g.Height, g.Width)

	row := make([]byte, g.Width+1)
	row[g.Width] = '\n'
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			m := g.Node(x, y).Mask
			c, ok := maskGlyph(m)
			if !ok {
				return fmt.Errorf("%w: %#x at (%d,%d)", ErrUnencodable, uint32(m), x, y)
			}
			row[x] = c
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Draw writes the map rows of g with every cell of path marked '*',
// start 's' and finish 'f'. Masks without a glyph are drawn as '?'.
func Draw(w io.Writer, g *grid.Grid, path []*grid.Node) error {
	rows := make([][]byte, g.Height)
	for y := range rows {
		rows[y] = make([]byte, g.Width)
		for x := range rows[y] {
			c, ok := maskGlyph(g.Node(x, y).Mask)
			if !ok {
				c = '?'
			}
			rows[y][x] = c
		}
	}
	for i, n := range path {
		switch i {
		case 0:
			rows[n.Y][n.X] = 's'
		case len(path) - 1:
			rows[n.Y][n.X] = 'f'
		default:
			rows[n.Y][n.X] = '*'
		}
	}

	bw := bufio.NewWriter(w)
	for _, row := range rows {
		bw.Write(row)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
