package sprite

import "strings"

// braille dot values for a 2x4 cell, indexed [column][row].
var brailleDots = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// String renders the presence mask as braille, one character per 2x4 block
// of pixels, for example "Stencil ( ⠉⠁ )" for a full 3x1 stencil.
func (s *Stencil) String() string {
	const prefix = "Stencil ( "
	cols := (s.bounds.W + 1) / 2
	rows := (s.bounds.H + 3) / 4

	cells := make([]rune, cols*rows)
	for i := range s.mask.Ones() {
		x, y := i%s.bounds.W, i/s.bounds.W
		cells[(y/4)*cols+x/2] += brailleDots[x%2][y%4]
	}

	var sb strings.Builder
	sb.WriteString(prefix)
	for row := range rows {
		if row > 0 {
			sb.WriteByte('\n')
			sb.WriteString(strings.Repeat(" ", len(prefix)))
		}
		for _, c := range cells[row*cols : (row+1)*cols] {
			sb.WriteRune(0x2800 + c)
		}
	}
	sb.WriteString(" )")
	return sb.String()
}
