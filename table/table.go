// Package table lays out test vectors as aligned, whitespace separated
// columns with '#' comment lines between operation blocks.
package table

import (
	"fmt"
	"strings"

	"github.com/ezrec/alutv/vector"
)

// DefaultGap is the whitespace placed between columns.
const DefaultGap = vector.GAP

// Layout is the column layout of one run: the labels, the padded cell
// width, and the rendered header.
type Layout struct {
	Labels []string // Column labels, in row order.
	Cell   int      // Width every cell is padded to.
	Gap    string   // Separator placed between cells.
	Header string   // Rendered header line, newline terminated.
	Width  int      // Visible width of every header, row and separator line.
}

// Labels returns the column labels for the given widths: OP{k} from the
// most significant opcode bit down, the A, B and C label triple for each
// vector bit position from the most significant down, then Z, N, C and V.
func Labels(opcodeBits, vectorBits int) (labels []string) {
	labels = make([]string, 0, opcodeBits+3*vectorBits+4)
	for k := opcodeBits - 1; k >= 0; k-- {
		labels = append(labels, fmt.Sprintf("OP%d", k))
	}
	for idx := vectorBits - 1; idx >= 0; idx-- {
		labels = append(labels,
			fmt.Sprintf("A%d", idx),
			fmt.Sprintf("B%d", idx),
			fmt.Sprintf("C%d", idx))
	}
	labels = append(labels, "Z", "N", "C", "V")
	return
}

// NewLayout computes the layout for the given widths and column gap.
func NewLayout(opcodeBits, vectorBits int, gap string) (layout *Layout) {
	layout = &Layout{
		Labels: Labels(opcodeBits, vectorBits),
		Gap:    gap,
	}

	for _, label := range layout.Labels {
		layout.Cell = max(layout.Cell, len(label))
	}

	layout.Header = layout.RenderRow(layout.Labels)
	layout.Width = len(layout.Header) - 1

	return
}

// RenderHeader returns the header line for the given widths using the
// default gap, and its visible width.
func RenderHeader(opcodeBits, vectorBits int) (line string, width int) {
	layout := NewLayout(opcodeBits, vectorBits, DefaultGap)
	return layout.Header, layout.Width
}

// RenderRow pads each field to the cell width and joins them with the gap.
func (layout *Layout) RenderRow(fields []string) string {
	var b strings.Builder
	for n, field := range fields {
		if n > 0 {
			b.WriteString(layout.Gap)
		}
		b.WriteString(field)
		if pad := layout.Cell - len(field); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
	}
	b.WriteByte('\n')
	return b.String()
}

// RenderSeparator returns the separator line for this layout.
func (layout *Layout) RenderSeparator() string {
	return RenderSeparator(layout.Width)
}

// RenderSeparator returns a comment line of exactly width characters,
// '#' at both ends and dashes between.
func RenderSeparator(width int) string {
	if width < 2 {
		return strings.Repeat("#", max(width, 0)) + "\n"
	}
	return "#" + strings.Repeat("-", width-2) + "#\n"
}

// RenderComment returns text as a single '#' comment line.
func RenderComment(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	return "# " + text + "\n"
}
