package mctal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/repositony/ntools-go/mesh"
)

// tokenizer pulls whitespace-delimited tokens from a line-oriented
// source, automatically advancing across lines on demand. MCTAL's own
// documentation notes that numeric items need only be blank-delimited
// and in the right order, not in any particular column - this is the
// natural Go shape for that rule.
type tokenizer struct {
	sc     *bufio.Scanner
	fields []string
	idx    int
	eof    bool
}

func newTokenizer(r io.Reader) *tokenizer {
	return &tokenizer{sc: bufio.NewScanner(r)}
}

func (t *tokenizer) fill() bool {
	for t.idx >= len(t.fields) {
		if !t.sc.Scan() {
			t.eof = true
			return false
		}
		t.fields = strings.Fields(t.sc.Text())
		t.idx = 0
	}
	return true
}

// next returns the next token, advancing lines as needed.
func (t *tokenizer) next() (string, error) {
	if !t.fill() {
		return "", ErrEndOfFile
	}
	tok := t.fields[t.idx]
	t.idx++
	return tok, nil
}

// peek returns the next token without consuming it.
func (t *tokenizer) peek() (string, bool) {
	if !t.fill() {
		return "", false
	}
	return t.fields[t.idx], true
}

func (t *tokenizer) nextInt() (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(tok)
}

func (t *tokenizer) nextFloat() (float64, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(tok, 64)
}

// restOfLine returns every token left in the currently buffered line,
// joined with single spaces, then marks the line fully consumed. Used
// for free-text fields such as the run message or a tally comment.
func (t *tokenizer) restOfLine() string {
	rest := strings.Join(t.fields[t.idx:], " ")
	t.idx = len(t.fields)
	return rest
}

// nextRawLine discards any unconsumed tokens on the current line and
// returns the next physical line verbatim (trimmed). Used where a field
// may itself contain whitespace, such as the run message.
func (t *tokenizer) nextRawLine() (string, error) {
	t.fields = nil
	t.idx = 0
	if !t.sc.Scan() {
		t.eof = true
		return "", ErrEndOfFile
	}
	return strings.TrimSpace(t.sc.Text()), nil
}

// floats reads exactly n float64 values.
func (t *tokenizer) floats(n int) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		v, err := t.nextFloat()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// reader drives the tokenizer through Header/Tally/Tmesh/Kcode blocks.
type reader struct {
	tok *tokenizer
	m   *Mctal
}

func newReader(src io.Reader) *reader {
	return &reader{tok: newTokenizer(src), m: New()}
}

func (r *reader) read() (*Mctal, error) {
	for {
		keyword, err := r.tok.next()
		if err != nil {
			break
		}
		switch block(keyword) {
		case blockTally:
			if err := r.parseTally(keyword); err != nil {
				return nil, err
			}
		case blockTmesh:
			if err := r.parseTmesh(); err != nil {
				return nil, err
			}
		case blockKcode:
			if err := r.parseKcode(); err != nil {
				return nil, err
			}
		default:
			// The header has no leading keyword of its own; the first
			// token encountered is the code name itself.
			if err := r.parseHeader(keyword); err != nil {
				return nil, err
			}
		}
	}
	return r.m, nil
}

type blockKind int

const (
	blockUnknown blockKind = iota
	blockTally
	blockTmesh
	blockKcode
)

func block(keyword string) blockKind {
	lower := strings.ToLower(keyword)
	switch {
	case strings.HasPrefix(lower, "tally"):
		return blockTally
	case strings.HasPrefix(lower, "tmesh"):
		return blockTmesh
	case strings.HasPrefix(lower, "kcode"):
		return blockKcode
	default:
		return blockUnknown
	}
}

// parseHeader consumes the first line (already partially read as
// firstToken, the code name), the message, the tally count, and the
// list of tally numbers.
func (r *reader) parseHeader(codeName string) error {
	version, err := r.tok.next()
	if err != nil {
		return err
	}
	date, err := r.tok.next()
	if err != nil {
		return err
	}
	timeOfDay, err := r.tok.next()
	if err != nil {
		return err
	}
	dump, err := r.tok.nextInt()
	if err != nil {
		return err
	}
	nps, err := r.tok.nextInt()
	if err != nil {
		return err
	}
	nRandom, err := r.tok.nextInt()
	if err != nil {
		return err
	}

	message, err := r.tok.nextRawLine()
	if err != nil {
		return err
	}

	ntal, err := r.parseCountLine("ntal")
	if err != nil {
		return err
	}
	npert, _ := r.peekCountLine("npert")

	tallyNumbers := make([]uint32, 0, ntal)
	for len(tallyNumbers) < ntal {
		n, err := r.tok.nextInt()
		if err != nil {
			return err
		}
		tallyNumbers = append(tallyNumbers, uint32(n))
	}

	r.m.Header = Header{
		Code:           codeName,
		Version:        version,
		Date:           date + " " + timeOfDay,
		Message:        message,
		Dump:           uint32(dump),
		NParticles:     uint64(nps),
		NRandom:        uint64(nRandom),
		NPerturbations: uint32(npert),
		NTallies:       uint32(ntal),
		TallyNumbers:   tallyNumbers,
	}
	return nil
}

// parseCountLine reads "<label> <n>" and requires the label to match.
func (r *reader) parseCountLine(label string) (int, error) {
	tok, err := r.tok.next()
	if err != nil {
		return 0, err
	}
	if !strings.EqualFold(tok, label) {
		return 0, fmt.Errorf("%w: expected %q, found %q", ErrUnexpectedToken, label, tok)
	}
	return r.tok.nextInt()
}

// peekCountLine optionally consumes "<label> <n>" if the next token
// matches label, otherwise leaves the stream untouched and returns 0.
func (r *reader) peekCountLine(label string) (int, bool) {
	tok, ok := r.tok.peek()
	if !ok || !strings.EqualFold(tok, label) {
		return 0, false
	}
	r.tok.next()
	n, err := r.tok.nextInt()
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseTally consumes a full standard-tally block: the "tally <id> <i>
// <j> <k>" header, the particle list, an optional comment, the bin
// axes, the tally fluctuation chart, and the values.
func (r *reader) parseTally(_ string) error {
	id, err := r.tok.nextInt()
	i, err2 := r.tok.nextInt()
	kind, err3 := r.tok.nextInt()
	modifier, err4 := r.tok.nextInt()
	if err = firstErr(err, err2, err3, err4); err != nil {
		return err
	}
	_ = i

	tally := Tally{
		ID:       uint32(id),
		Kind:     TallyKind(kind),
		Modifier: Modifier(modifier),
	}

	if err := r.parseParticleList(&tally.Particles); err != nil {
		return err
	}

	if tok, ok := r.tok.peek(); ok && strings.HasPrefix(strings.ToLower(tok), "fc") {
		r.tok.next()
		tally.Comment = r.tok.restOfLine()
	}

	for {
		tok, ok := r.tok.peek()
		if !ok {
			break
		}
		lower := strings.ToLower(tok)
		switch {
		case block(tok) != blockUnknown:
			// Next data block keyword - this tally is finished even
			// without ever seeing "vals" (malformed input).
			r.m.Tallies = append(r.m.Tallies, tally)
			return nil
		case strings.HasPrefix(lower, "f"):
			tally.RegionBins, err = r.parseBinData(true)
		case strings.HasPrefix(lower, "d"):
			tally.FlaggedBins, err = r.parseBinData(false)
		case strings.HasPrefix(lower, "u"):
			tally.UserBins, err = r.parseBinData(true)
		case strings.HasPrefix(lower, "s"):
			tally.SegmentBins, err = r.parseBinData(true)
		case strings.HasPrefix(lower, "m"):
			tally.MultiplierBins, err = r.parseBinData(false)
		case strings.HasPrefix(lower, "c"):
			tally.CosineBins, err = r.parseBinData(true)
		case strings.HasPrefix(lower, "e"):
			tally.EnergyBins, err = r.parseBinData(true)
		case strings.HasPrefix(lower, "t") && !strings.HasPrefix(lower, "tfc"):
			tally.TimeBins, err = r.parseBinData(true)
		case strings.HasPrefix(lower, "tfc"):
			tally.Tfc, err = r.parseTfc()
		case strings.HasPrefix(lower, "vals"):
			r.tok.next()
			tally.Results, err = r.parseResults(tally.NExpectedResults())
			if err == nil {
				r.m.Tallies = append(r.m.Tallies, tally)
				return nil
			}
		default:
			// Next data block keyword - this tally is finished.
			r.m.Tallies = append(r.m.Tallies, tally)
			return nil
		}
		if err != nil {
			return err
		}
	}

	r.m.Tallies = append(r.m.Tallies, tally)
	return nil
}

func (r *reader) parseParticleList(into *[]mesh.Particle) error {
	if _, ok := r.peekCountLine("npar"); !ok {
		// Not every MCTAL writer emits "npar"; the particle list is then
		// left empty and the stream is left untouched. Non-fatal.
		return nil
	}
	for {
		tok, ok := r.tok.peek()
		if !ok {
			return nil
		}
		if _, err := strconv.Atoi(tok); err == nil {
			// a bare designator id, e.g. "1" for neutron
			r.tok.next()
			*into = append(*into, mesh.FromDesignator(tok))
			continue
		}
		return nil
	}
}

// parseBinData reads a bin-data token ("f", "ft", "e", "et", etc),
// its count, and - when the table calls for it - the list of values.
func (r *reader) parseBinData(hasValues bool) (BinData, error) {
	tok, err := r.tok.next()
	if err != nil {
		return BinData{}, err
	}
	token := tok[0]
	kind := BinKindNone
	if len(tok) > 1 {
		switch tok[1] {
		case 't', 'T':
			kind = BinKindTotal
		case 'c', 'C':
			kind = BinKindCumulative
		}
	}

	n, err := r.tok.nextInt()
	if err != nil {
		return BinData{}, err
	}

	bd := BinData{Token: token, Number: n, Kind: kind}
	if n == 0 {
		bd.Unbound = true
		return bd, nil
	}
	if hasValues {
		bd.Values, err = r.tok.floats(n)
		if err != nil {
			return BinData{}, err
		}
	}
	return bd, nil
}

func (r *reader) parseTfc() (Tfc, error) {
	r.tok.next() // consume "tfc"
	n, err := r.tok.nextInt()
	if err != nil {
		return Tfc{}, err
	}
	jtf, err := r.tok.floats(8)
	if err != nil {
		return Tfc{}, err
	}
	tfc := Tfc{
		NRecords:        uint32(n),
		NFlaggedBins:    uint32(jtf[0]),
		NRegionBins:     uint32(jtf[1]),
		NUserBins:       uint32(jtf[2]),
		NSegmentBins:    uint32(jtf[3]),
		NMultiplierBins: uint32(jtf[4]),
		NCosineBins:     uint32(jtf[5]),
		NEnergyBins:     uint32(jtf[6]),
		NTimeBins:       uint32(jtf[7]),
	}
	for len(tfc.Results) < n {
		row, err := r.tok.floats(4)
		if err != nil {
			return Tfc{}, err
		}
		tfc.Results = append(tfc.Results, TfcResult{
			Nps: uint64(row[0]), Value: row[1], Error: row[2], Fom: row[3],
		})
	}
	return tfc, nil
}

func (r *reader) parseResults(n int) ([]TallyResult, error) {
	values, err := r.tok.floats(n * 2)
	if err != nil {
		return nil, err
	}
	out := make([]TallyResult, n)
	for i := range out {
		out[i] = TallyResult{Value: values[2*i], Error: values[2*i+1]}
	}
	return out, nil
}

// parseTmesh consumes a superimposed mesh tally block: geometry, the
// three coordinate-edge arrays, the bin-count line, and the values.
func (r *reader) parseTmesh() error {
	id, err := r.tok.nextInt()
	if err != nil {
		return err
	}
	geomTok, err := r.tok.next()
	if err != nil {
		return err
	}

	tmesh := Tmesh{ID: uint32(id), Geometry: parseTmeshGeometry(geomTok)}

	if err := r.parseParticleList(&tmesh.Particles); err != nil {
		return err
	}

	tmesh.NCora, tmesh.Cora, err = r.parseLabelledFloats("cora")
	if err != nil {
		return err
	}
	tmesh.NCorb, tmesh.Corb, err = r.parseLabelledFloats("corb")
	if err != nil {
		return err
	}
	tmesh.NCorc, tmesh.Corc, err = r.parseLabelledFloats("corc")
	if err != nil {
		return err
	}
	tmesh.NVoxels = maxI(tmesh.NCora, 1) * maxI(tmesh.NCorb, 1) * maxI(tmesh.NCorc, 1)

	counts, err := r.parseCounts("bins", 7)
	if err != nil {
		return err
	}
	tmesh.NFlaggedBins = counts[0]
	tmesh.NUserBins = counts[1]
	tmesh.NSegmentBins = counts[2]
	tmesh.NMultiplierBins = counts[3]
	tmesh.NCosineBins = counts[4]
	tmesh.NEnergyBins = counts[5]
	tmesh.NTimeBins = counts[6]

	if _, err := r.parseCountLine("vals"); err != nil {
		return err
	}
	tmesh.Results, err = r.parseResults(tmesh.NExpectedResults())
	if err != nil {
		return err
	}

	r.m.Tmesh = append(r.m.Tmesh, tmesh)
	return nil
}

func maxI(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func parseTmeshGeometry(tok string) TmeshGeometry {
	switch strings.ToLower(tok) {
	case "cyl", "cylindrical":
		return TmeshCylindrical
	case "sph", "spherical":
		return TmeshSpherical
	default:
		return TmeshRectangular
	}
}

func (r *reader) parseLabelledFloats(label string) (int, []float64, error) {
	n, err := r.parseCountLine(label)
	if err != nil {
		return 0, nil, err
	}
	values, err := r.tok.floats(n)
	if err != nil {
		return 0, nil, err
	}
	return n, values, nil
}

func (r *reader) parseCounts(label string, n int) ([]int, error) {
	if _, err := r.parseCountLine(label); err != nil {
		return nil, err
	}
	out := make([]int, n)
	for i := 0; i < n-1; i++ {
		v, err := r.tok.nextInt()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// parseKcode consumes the KCODE block header and every cycle record.
func (r *reader) parseKcode() error {
	recorded, err := r.tok.nextInt()
	if err != nil {
		return err
	}
	settle, err := r.tok.nextInt()
	if err != nil {
		return err
	}
	nVars, err := r.tok.nextInt()
	if err != nil {
		return err
	}

	kcode := Kcode{
		RecordedCycles:    uint32(recorded),
		SettleCycles:      uint32(settle),
		VariablesProvided: uint32(nVars),
	}

	width := 18
	if nVars > 0 {
		width = 19
	}
	for {
		tok, ok := r.tok.peek()
		if !ok || block(tok) != blockUnknown {
			break
		}
		if _, err := strconv.ParseFloat(tok, 64); err != nil {
			break
		}
		values, err := r.tok.floats(width)
		if err != nil {
			return err
		}
		result, err := NewKcodeResult(values)
		if err != nil {
			return err
		}
		kcode.Results = append(kcode.Results, result)
	}

	r.m.Kcode = &kcode
	return nil
}

func firstErr(errs ...error) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}
