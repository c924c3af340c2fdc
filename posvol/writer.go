package posvol

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/repositony/ntools-go/internal/ntlog"
)

// WriteASCII writes a direct, unformatted translation of the binary data
// to a text file: the dimensions block bookended by its byte length, then
// every cell bookended by the total cell count.
func WriteASCII(p *Posvol, path string) error {
	w, err := newWriter(path)
	if err != nil {
		return err
	}
	defer w.flush()

	fmt.Fprint(w.bw, "24 ")
	fmt.Fprintf(w.bw, "%d %d %d ", p.Dimensions.ResX, p.Dimensions.ResY, p.Dimensions.ResZ)
	fmt.Fprintf(w.bw, "%d %d %d ", p.Dimensions.NX, p.Dimensions.NY, p.Dimensions.NZ)
	fmt.Fprint(w.bw, "24 ")

	fmt.Fprintf(w.bw, "%d ", p.NumberOfCells())
	for _, cell := range p.Cells {
		fmt.Fprintf(w.bw, "%d ", cell)
	}
	fmt.Fprintf(w.bw, "%d", p.NumberOfCells())

	return w.bw.Flush()
}

// WriteASCIIPretty writes a human-readable text rendering of the posvol
// data: header metadata, then a line-wrapped cell list per voxel.
func WriteASCIIPretty(p *Posvol, path string) error {
	w, err := newWriter(path)
	if err != nil {
		return err
	}
	defer w.flush()

	fmt.Fprintf(w.bw, "Total voxels: %d\n", p.NumberOfVoxels())
	fmt.Fprintf(w.bw, "Total cells : %d\n", p.NumberOfCells())
	fmt.Fprintf(w.bw, "Mesh bounds in i: %d\n", p.Dimensions.NX)
	fmt.Fprintf(w.bw, "Mesh bounds in j: %d\n", p.Dimensions.NY)
	fmt.Fprintf(w.bw, "Mesh bounds in k: %d\n", p.Dimensions.NZ)
	fmt.Fprintf(w.bw, "Sample resolution i: %d\n", p.Dimensions.ResX)
	fmt.Fprintf(w.bw, "Sample resolution j: %d\n", p.Dimensions.ResY)
	fmt.Fprintf(w.bw, "Sample resolution k: %d\n", p.Dimensions.ResZ)

	for i, subset := range p.Subvoxels() {
		fmt.Fprintf(w.bw, "\nVoxel[%d] cells:\n", i)

		values := make([]string, len(subset))
		for j, cell := range subset {
			values[j] = strconv.Itoa(int(cell))
		}
		fmt.Fprintln(w.bw, wrap(strings.Join(values, " "), 80))
	}

	return w.bw.Flush()
}

// WriteJSON writes the posvol data as pretty-printed JSON.
func WriteJSON(p *Posvol, path string) error {
	w, err := newWriter(path)
	if err != nil {
		return err
	}
	defer w.flush()

	enc := json.NewEncoder(w.bw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return err
	}
	return w.bw.Flush()
}

type writer struct {
	f  *os.File
	bw *bufio.Writer
}

func newWriter(path string) (*writer, error) {
	ntlog.Infof("writing %s", path)
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &writer{f: f, bw: bufio.NewWriter(f)}, nil
}

func (w *writer) flush() { w.f.Close() }

// wrap performs a simple greedy word wrap at width columns, breaking
// between space-delimited tokens only.
func wrap(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	lines = append(lines, line)

	return strings.Join(lines, "\n")
}
