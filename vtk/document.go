package vtk

import (
	"bytes"
	"fmt"
	"io"
)

// Kind distinguishes the two VTK XML dataset flavours this package emits.
type Kind uint8

const (
	RectilinearGrid Kind = iota
	UnstructuredGrid
)

// dataArray is one named scalar field attached to cell data.
type dataArray struct {
	name   string
	values []float64
}

// Document is a fully-built, write-ready VTK XML dataset. It is kept
// deliberately close to the textual VTK XML format rather than wrapping a
// third-party encoder, since emitting ASCII data arrays by hand is
// straightforward and keeps this package dependency-free for the one
// concern none of the available libraries cover.
type Document struct {
	kind  Kind
	title string
	order ByteOrder

	// rectilinear fields
	extent      [3]int
	coordsX     []float64
	coordsY     []float64
	coordsZ     []float64

	// unstructured fields
	points      []float64 // flat x,y,z triples
	connectivity []uint64
	offsets      []uint64
	cellTypes    []uint8

	cellData []dataArray
}

func (o ByteOrder) String() string {
	if o == LittleEndian {
		return "LittleEndian"
	}
	return "BigEndian"
}

// WriteXML renders the document as VTK XML ASCII to w.
func (d *Document) WriteXML(w io.Writer) error {
	var buf bytes.Buffer
	switch d.kind {
	case RectilinearGrid:
		d.writeRectilinear(&buf)
	case UnstructuredGrid:
		d.writeUnstructured(&buf)
	default:
		return ErrUnsupportedGeometry
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func (d *Document) writeRectilinear(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "<?xml version=\"1.0\"?>\n")
	fmt.Fprintf(buf, "<VTKFile type=\"RectilinearGrid\" version=\"1.0\" byte_order=\"%s\">\n", d.order)
	fmt.Fprintf(buf, "<!-- %s -->\n", d.title)
	fmt.Fprintf(buf, "<RectilinearGrid WholeExtent=\"0 %d 0 %d 0 %d\">\n", d.extent[0], d.extent[1], d.extent[2])
	fmt.Fprintf(buf, "<Piece Extent=\"0 %d 0 %d 0 %d\">\n", d.extent[0], d.extent[1], d.extent[2])

	buf.WriteString("<Coordinates>\n")
	writeAsciiArray(buf, "X", d.coordsX, 1)
	writeAsciiArray(buf, "Y", d.coordsY, 1)
	writeAsciiArray(buf, "Z", d.coordsZ, 1)
	buf.WriteString("</Coordinates>\n")

	buf.WriteString("<CellData>\n")
	for _, arr := range d.cellData {
		writeAsciiArray(buf, arr.name, arr.values, 1)
	}
	buf.WriteString("</CellData>\n")

	buf.WriteString("</Piece>\n</RectilinearGrid>\n</VTKFile>\n")
}

func (d *Document) writeUnstructured(buf *bytes.Buffer) {
	nPoints := len(d.points) / 3
	nCells := len(d.cellTypes)

	fmt.Fprintf(buf, "<?xml version=\"1.0\"?>\n")
	fmt.Fprintf(buf, "<VTKFile type=\"UnstructuredGrid\" version=\"1.0\" byte_order=\"%s\">\n", d.order)
	fmt.Fprintf(buf, "<!-- %s -->\n", d.title)
	buf.WriteString("<UnstructuredGrid>\n")
	fmt.Fprintf(buf, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", nPoints, nCells)

	buf.WriteString("<Points>\n")
	writeAsciiArray(buf, "", d.points, 3)
	buf.WriteString("</Points>\n")

	buf.WriteString("<Cells>\n")
	writeAsciiUintArray(buf, "connectivity", d.connectivity)
	writeAsciiUintArray(buf, "offsets", d.offsets)
	buf.WriteString("<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	for _, t := range d.cellTypes {
		fmt.Fprintf(buf, "%d ", t)
	}
	buf.WriteString("\n</DataArray>\n")
	buf.WriteString("</Cells>\n")

	buf.WriteString("<CellData>\n")
	for _, arr := range d.cellData {
		writeAsciiArray(buf, arr.name, arr.values, 1)
	}
	buf.WriteString("</CellData>\n")

	buf.WriteString("</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")
}

func writeAsciiArray(buf *bytes.Buffer, name string, values []float64, numComp int) {
	if name == "" {
		fmt.Fprintf(buf, "<DataArray type=\"Float64\" NumberOfComponents=\"%d\" format=\"ascii\">\n", numComp)
	} else {
		fmt.Fprintf(buf, "<DataArray type=\"Float64\" Name=%q NumberOfComponents=\"%d\" format=\"ascii\">\n", name, numComp)
	}
	for _, v := range values {
		fmt.Fprintf(buf, "%.8e ", v)
	}
	buf.WriteString("\n</DataArray>\n")
}

func writeAsciiUintArray(buf *bytes.Buffer, name string, values []uint64) {
	fmt.Fprintf(buf, "<DataArray type=\"UInt64\" Name=%q format=\"ascii\">\n", name)
	for _, v := range values {
		fmt.Fprintf(buf, "%d ", v)
	}
	buf.WriteString("\n</DataArray>\n")
}
