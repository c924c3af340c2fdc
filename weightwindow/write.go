package weightwindow

import (
	"bufio"
	"fmt"
	"os"
	"sort"
)

// Write generates the standard WWINP/WWOUT/WWONE formatted UTF-8 file at
// path for this single particle type's weight window set.
func (w *WeightWindow) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("weightwindow: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	for _, chunk := range []string{w.blockHeader(), w.block1(), w.block2(), w.block3()} {
		if _, err := bw.WriteString(chunk); err != nil {
			return fmt.Errorf("weightwindow: %w", err)
		}
	}
	return bw.Flush()
}

// WriteSingleParticle is a thin convenience wrapper around (*WeightWindow).Write.
func WriteSingleParticle(w *WeightWindow, path string) error {
	return w.Write(path)
}

// WriteMultiParticle combines several particle-type weight window sets,
// sharing one mesh geometry, into a single file: one shared header/mesh
// description followed by each particle's block 3 in turn.
//
// Sets are sorted by particle type, duplicates are dropped, and any set
// whose mesh geometry does not match the first is excluded. When padded
// is true, the header's per-particle energy/time bin counts are expanded
// to cover every particle slot up to the largest Particle value present,
// with 0 standing in for any missing type.
func WriteMultiParticle(sets []*WeightWindow, path string, padded bool) error {
	combined, err := preprocessSet(sets)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("weightwindow: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if _, err := bw.WriteString(combinedHeader(combined, padded)); err != nil {
		return fmt.Errorf("weightwindow: %w", err)
	}
	if _, err := bw.WriteString(combined[0].block1()); err != nil {
		return fmt.Errorf("weightwindow: %w", err)
	}
	if _, err := bw.WriteString(combined[0].block2()); err != nil {
		return fmt.Errorf("weightwindow: %w", err)
	}
	for _, w := range combined {
		if _, err := bw.WriteString(w.block3()); err != nil {
			return fmt.Errorf("weightwindow: %w", err)
		}
	}
	return bw.Flush()
}

// preprocessSet sorts by particle type, removes duplicates, and drops
// any set whose geometry does not match the first remaining entry.
func preprocessSet(sets []*WeightWindow) ([]*WeightWindow, error) {
	if len(sets) == 0 {
		return nil, ErrEmptySet
	}

	list := make([]*WeightWindow, len(sets))
	copy(list, sets)
	sort.Slice(list, func(i, j int) bool { return list[i].Particle < list[j].Particle })

	deduped := list[:0:0]
	seen := map[uint8]bool{}
	for _, w := range list {
		if !seen[w.Particle] {
			seen[w.Particle] = true
			deduped = append(deduped, w)
		}
	}

	target := deduped[0]
	var matched []*WeightWindow
	for _, w := range deduped {
		if w.Particle != 0 && geometryMatches(w, target) {
			matched = append(matched, w)
		}
	}
	if len(matched) == 0 {
		return nil, ErrNoGeometryMatch
	}
	return matched, nil
}

// geometryMatches reports whether a and b share the mesh geometry the
// wwout format forces onto every combined particle type.
func geometryMatches(a, b *WeightWindow) bool {
	if a.Nr != b.Nr || a.Nfx != b.Nfx || a.Nfy != b.Nfy || a.Nfz != b.Nfz ||
		a.X0 != b.X0 || a.Y0 != b.Y0 || a.Z0 != b.Z0 ||
		a.X1 != b.X1 || a.Y1 != b.Y1 || a.Z1 != b.Z1 {
		return false
	}
	return tripleSliceEqual(a.QPSx, b.QPSx) && tripleSliceEqual(a.QPSy, b.QPSy) && tripleSliceEqual(a.QPSz, b.QPSz)
}

func tripleSliceEqual(a, b [][3]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// combinedHeader builds the shared block-1 header for a multi-particle
// file: a single "if iv ni nr probid" line, then the per-particle
// nt/ne count lines wrapped at 7 fields.
func combinedHeader(sets []*WeightWindow, padded bool) string {
	base := sets[0]
	iv := uint8(1)
	for _, w := range sets {
		if w.Iv == 2 {
			iv = 2
			break
		}
	}

	var nt, ne []int
	if padded {
		nt, ne = particleListsPadded(sets)
	} else {
		nt, ne = particleListsUnpadded(sets)
	}

	probid := base.Probid
	if len(probid) > 19 {
		probid = probid[:19]
	}
	s := intField(int(base.F)) + intField(int(iv)) + intField(len(ne)) + intField(int(base.Nr)) + probid + "\n"

	if iv == 2 {
		count := 1
		for _, n := range nt {
			s += intField(n)
			s += trackNewlines(&count, 7)
		}
		if len(s) == 0 || s[len(s)-1] != '\n' {
			s += "\n"
		}
	}

	count := 1
	for _, n := range ne {
		s += intField(n)
		s += trackNewlines(&count, 7)
	}
	if len(s) == 0 || s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}

func particleListsUnpadded(sets []*WeightWindow) (nt, ne []int) {
	for _, w := range sets {
		nt = append(nt, w.Nt)
		ne = append(ne, w.Ne)
	}
	return
}

func particleListsPadded(sets []*WeightWindow) (nt, ne []int) {
	max := 0
	for _, w := range sets {
		if int(w.Particle) > max {
			max = int(w.Particle)
		}
	}
	nt = make([]int, max)
	ne = make([]int, max)
	for _, w := range sets {
		idx := int(w.Particle) - 1
		nt[idx] = w.Nt
		ne[idx] = w.Ne
	}
	return
}
