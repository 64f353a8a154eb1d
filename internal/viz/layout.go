package viz

import (
	"math"
	"strconv"
	"strings"
)

const (
	barCell    = "██"
	markCell   = "▓▓"
	emptyCell  = "  "
	listMarker = "-"
	graphMark  = "^ "
)

// drawList writes data as "[a, b, c]" followed by a row with dashes under
// every marked element.
func drawList(b *strings.Builder, pal *Palette, data []int, marked []bool) {
	var row strings.Builder
	row.WriteString("[")
	for i, v := range data {
		if i > 0 {
			row.WriteString(", ")
		}
		row.WriteString(strconv.Itoa(v))
	}
	row.WriteString("]")
	b.WriteString(pal.Text.Render(row.String()))
	b.WriteString("\n")

	var marks strings.Builder
	pending := 1
	for i, v := range data {
		w := len(strconv.Itoa(v))
		if isMarked(marked, i) {
			marks.WriteString(strings.Repeat(" ", pending))
			marks.WriteString(pal.Marker.Render(strings.Repeat(listMarker, w)))
			pending = 0
		} else {
			pending += w
		}
		pending += 2
	}
	b.WriteString(marks.String())
	b.WriteString("\n")
}

// drawGraph writes a bottom-up bar chart of data. Values above maxRows are
// scaled down to fit; negative values draw as empty columns.
func drawGraph(b *strings.Builder, pal *Palette, data []int, marked []bool, maxRows int) {
	heights, rows := barHeights(data, maxRows)

	for row := rows; row >= 1; row-- {
		var line strings.Builder
		for i, h := range heights {
			switch {
			case h < row:
				line.WriteString(emptyCell)
			case h == row && isMarked(marked, i):
				line.WriteString(pal.Marker.Render(markCell))
			default:
				line.WriteString(pal.Bar.Render(barCell))
			}
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}

	var under strings.Builder
	for i := range heights {
		if isMarked(marked, i) {
			under.WriteString(graphMark)
		} else {
			under.WriteString(emptyCell)
		}
	}
	b.WriteString(pal.Marker.Render(strings.TrimRight(under.String(), " ")))
	b.WriteString("\n")
}

// barHeights maps values to bar heights in rows. rows is the height of the
// tallest bar.
func barHeights(data []int, maxRows int) (heights []int, rows int) {
	top := 0
	for _, v := range data {
		top = max(top, v)
	}

	heights = make([]int, len(data))
	if top == 0 {
		return heights, 0
	}
	if maxRows < 1 || top <= maxRows {
		for i, v := range data {
			heights[i] = max(v, 0)
		}
		return heights, top
	}

	scale := float64(maxRows) / float64(top)
	for i, v := range data {
		if v > 0 {
			heights[i] = min(int(math.Ceil(float64(v)*scale)), maxRows)
		}
	}
	return heights, maxRows
}

func isMarked(marked []bool, i int) bool {
	return i < len(marked) && marked[i]
}

// markSet rebuilds dst as a marker set of length n from touched indices.
// Indices outside [0, n) are ignored.
func markSet(dst []bool, n int, touched []int) []bool {
	if cap(dst) < n {
		dst = make([]bool, n)
	}
	dst = dst[:n]
	clear(dst)
	for _, idx := range touched {
		if idx >= 0 && idx < n {
			dst[idx] = true
		}
	}
	return dst
}
