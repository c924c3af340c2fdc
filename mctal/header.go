package mctal

// Header is the MCTAL file's run metadata: the first data block of any
// file, containing the code/version/date line, the input-deck message,
// and the list of tally numbers contained in the dump.
//
// For example, the following header text:
//
//	mcnp6.mp   6     10/14/1066 22:31:17     2         1296681       281135206
//	 Four uranium cans in air and aluminum
//	ntal     2
//	    1    4
//
// parses to code="mcnp6.mp", version="6", date="10/14/1066 22:31:17",
// message="Four uranium cans in air and aluminum", dump=2,
// nParticles=1296681, nRandom=281135206, tallyNumbers=[1, 4].
type Header struct {
	Code           string
	Version        string
	Date           string
	Message        string
	Dump           uint32
	NParticles     uint64
	NRandom        uint64
	NPerturbations uint32
	NTallies       uint32
	TallyNumbers   []uint32
}

// TallyExists reports whether id is among the tallies this dump recorded.
func (h *Header) TallyExists(id uint32) bool {
	for _, n := range h.TallyNumbers {
		if n == id {
			return true
		}
	}
	return false
}
