package mctal

import (
	"os"

	"github.com/repositony/ntools-go/internal/ntlog"
)

// Mctal is the parsed content of one MCTAL file: the header, every
// standard tally, every superimposed TMESH tally, and the KCODE results
// if the run was a criticality problem.
type Mctal struct {
	Header Header
	Tallies []Tally
	Tmesh   []Tmesh
	Kcode   *Kcode
}

// New returns an empty Mctal.
func New() *Mctal {
	return &Mctal{}
}

// ReadFile parses the MCTAL file at path.
func ReadFile(path string) (*Mctal, error) {
	ntlog.Infof("reading %s", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := newReader(f)
	return r.read()
}

// GetHeader returns the file's header block.
func (m *Mctal) GetHeader() *Header { return &m.Header }

// GetTally finds the tally with the given id, if present.
func (m *Mctal) GetTally(id uint32) (*Tally, bool) {
	for i := range m.Tallies {
		if m.Tallies[i].ID == id {
			return &m.Tallies[i], true
		}
	}
	return nil, false
}

// GetTmesh finds the TMESH tally with the given id, if present.
func (m *Mctal) GetTmesh(id uint32) (*Tmesh, bool) {
	for i := range m.Tmesh {
		if m.Tmesh[i].ID == id {
			return &m.Tmesh[i], true
		}
	}
	return nil, false
}

// GetKcode returns the KCODE results, if the run recorded any.
func (m *Mctal) GetKcode() (*Kcode, bool) {
	return m.Kcode, m.Kcode != nil
}
