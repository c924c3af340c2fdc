package weightwindow

import (
	"fmt"
	"strings"

	"github.com/repositony/ntools-go/numeric"
)

// sciField renders v in MCNP's 6g13.5 scientific field: 13 characters
// wide, 5 significant digits, 2-digit exponent.
func sciField(v float64) string {
	return fmt.Sprintf("%13s", numeric.Sci(v, 5, 2))
}

func sciFieldInt(v int) string { return sciField(float64(v)) }

// intField renders v in the 10-wide plain-integer fields used by block 1's
// header line.
func intField(v int) string { return fmt.Sprintf("%10d", v) }

// trackNewlines emits a newline once count reaches target, resetting the
// counter, otherwise advances it and emits nothing. Mirrors the line-wrap
// convention MCNP uses for its fixed-column blocks.
func trackNewlines(count *int, target int) string {
	if *count == target {
		*count = 1
		return "\n"
	}
	*count++
	return ""
}

// blockHeader renders the probid/ni/nr header line (block 1, "if iv ni
// nr probid" plus the conditional nt/ne count lines).
func (w *WeightWindow) blockHeader() string {
	var b strings.Builder
	b.WriteString(intField(int(w.F)))
	b.WriteString(intField(int(w.Iv)))
	b.WriteString(intField(int(w.Ni)))
	b.WriteString(intField(int(w.Nr)))

	comment := w.Probid
	if len(comment) > 19 {
		comment = comment[:19]
	}
	b.WriteString(comment)
	b.WriteString("\n")

	if w.Iv == 2 {
		b.WriteString(intField(w.Nt))
		b.WriteString("\n")
	}
	b.WriteString(intField(w.Ne))
	b.WriteString("\n")
	return b.String()
}

// block1 renders the common mesh-description line(s) of block 1.
func (w *WeightWindow) block1() string {
	var b strings.Builder
	b.WriteString(sciFieldInt(w.Nfx))
	b.WriteString(sciFieldInt(w.Nfy))
	b.WriteString(sciFieldInt(w.Nfz))
	b.WriteString(sciField(w.X0))
	b.WriteString(sciField(w.Y0))
	b.WriteString(sciField(w.Z0))
	b.WriteString("\n")

	b.WriteString(sciFieldInt(w.Ncx))
	b.WriteString(sciFieldInt(w.Ncy))
	b.WriteString(sciFieldInt(w.Ncz))

	if w.Nwg == 1 {
		b.WriteString(sciFieldInt(int(w.Nwg)))
	} else {
		b.WriteString(sciField(w.X1))
		b.WriteString(sciField(w.Y1))
		b.WriteString(sciField(w.Z1))
		b.WriteString("\n")
		b.WriteString(sciField(w.X2))
		b.WriteString(sciField(w.Y2))
		b.WriteString(sciField(w.Z2))
		b.WriteString(sciFieldInt(int(w.Nwg)))
	}
	b.WriteString("\n")
	return b.String()
}

// block2 renders the coarse-mesh bound triples for each axis.
func (w *WeightWindow) block2() string {
	var b strings.Builder
	writeAxis := func(origin float64, triples [][3]float64) {
		b.WriteString(sciField(origin))
		count := 1
		for _, t := range triples {
			b.WriteString(sciField(t[0]))
			b.WriteString(sciField(t[1]))
			b.WriteString(trackNewlines(&count, 2))
			b.WriteString(sciField(t[2]))
		}
	}

	writeAxis(w.X0, w.QPSx)
	b.WriteString("\n")
	writeAxis(w.Y0, w.QPSy)
	b.WriteString("\n")
	writeAxis(w.Z0, w.QPSz)

	s := b.String()
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return s
}

// block3 renders time bins (if any), energy bins, and the flattened
// weight array, each wrapped at 6 fields per line.
func (w *WeightWindow) block3() string {
	var b strings.Builder

	if len(w.T) > 1 {
		count := 1
		for _, t := range w.T {
			b.WriteString(sciField(t))
			b.WriteString(trackNewlines(&count, 6))
		}
		b.WriteString("\n")
	}

	count := 1
	for _, e := range w.E {
		b.WriteString(sciField(e))
		b.WriteString(trackNewlines(&count, 6))
	}
	b.WriteString("\n")

	count = 1
	for _, v := range w.Weights {
		b.WriteString(sciField(v))
		b.WriteString(trackNewlines(&count, 6))
	}

	s := b.String()
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return s
}

// FileContent renders the full wwout/wwinp file as a string. Prefer
// Write for large meshes, since this builds the entire string in memory.
func (w *WeightWindow) FileContent() string {
	return w.blockHeader() + w.block1() + w.block2() + w.block3()
}
