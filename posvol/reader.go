package posvol

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/repositony/ntools-go/internal/ntlog"
)

// ReadFile deserialises a CuV posvol binary at path.
func ReadFile(path string) (*Posvol, error) {
	ntlog.Infof("reading %s", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)

	dimensions, err := parseDimensions(r)
	if err != nil {
		return nil, err
	}

	cells, err := parseCellData(r, dimensions)
	if err != nil {
		return nil, err
	}

	return &Posvol{Dimensions: dimensions, Cells: cells}, nil
}

func readInt32(r io.Reader) (int32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(buf[:])), nil
}

func parseDimensions(r io.Reader) (Dimensions, error) {
	leading, err := readInt32(r)
	if err != nil {
		return Dimensions{}, err
	}
	if leading != 24 {
		return Dimensions{}, fmt.Errorf("%w: expected 24, found %d", ErrUnexpectedByteLength, leading)
	}

	values := make([]int32, 6)
	for i := range values {
		v, err := readInt32(r)
		if err != nil {
			return Dimensions{}, err
		}
		values[i] = v
	}

	trailing, err := readInt32(r)
	if err != nil {
		return Dimensions{}, err
	}
	if trailing != 24 {
		return Dimensions{}, fmt.Errorf("%w: expected 24, found %d", ErrUnexpectedByteLength, trailing)
	}

	return Dimensions{
		ResX: values[0], ResY: values[1], ResZ: values[2],
		NX: values[3], NY: values[4], NZ: values[5],
	}, nil
}

func parseCellData(r io.Reader, dimensions Dimensions) ([]int32, error) {
	leading, err := readInt32(r)
	if err != nil {
		return nil, err
	}

	expected := int32(dimensions.CellArrayByteLength())
	if leading != expected {
		return nil, fmt.Errorf("%w: expected %d, found %d", ErrUnexpectedByteLength, expected, leading)
	}

	cells := make([]int32, dimensions.NumberOfCells())
	for i := range cells {
		v, err := readInt32(r)
		if err != nil {
			return nil, err
		}
		cells[i] = v
	}

	return cells, nil
}
