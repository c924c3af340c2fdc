package posvol_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repositony/ntools-go/posvol"
)

// buildFixture constructs a minimal posvol binary: a 2x2x2 mesh
// (so 1 voxel) sampled at a 1x1x2 resolution (2 subvoxels), giving 2 cells.
func buildFixture(t *testing.T, cells []int32) string {
	t.Helper()

	var buf bytes.Buffer
	writeInt32 := func(v int32) {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, v))
	}

	writeInt32(24)
	writeInt32(1) // res_x
	writeInt32(1) // res_y
	writeInt32(2) // res_z
	writeInt32(2) // n_x
	writeInt32(2) // n_y
	writeInt32(2) // n_z
	writeInt32(24)

	writeInt32(int32(len(cells) * 4))
	for _, c := range cells {
		writeInt32(c)
	}

	path := filepath.Join(t.TempDir(), "posvol_example.bin")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestReadFileParsesDimensionsAndCells(t *testing.T) {
	path := buildFixture(t, []int32{7, 9})

	p, err := posvol.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, int32(1), p.Dimensions.ResX)
	assert.Equal(t, int32(2), p.Dimensions.ResZ)
	assert.Equal(t, int32(2), p.Dimensions.NX)

	assert.Equal(t, 1, p.NumberOfVoxels())
	assert.Equal(t, 2, p.NumberOfSubvoxels())
	assert.Equal(t, 2, p.NumberOfCells())
	assert.Equal(t, []int32{7, 9}, p.Cells)
}

func TestReadFileRejectsBadHeaderLength(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, int32(99)))

	path := filepath.Join(t.TempDir(), "bad.bin")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	_, err := posvol.ReadFile(path)
	assert.ErrorIs(t, err, posvol.ErrUnexpectedByteLength)
}

func TestSubvoxelsChunksCellsByVoxel(t *testing.T) {
	path := buildFixture(t, []int32{1, 2})
	p, err := posvol.ReadFile(path)
	require.NoError(t, err)

	subvoxels := p.Subvoxels()
	require.Len(t, subvoxels, 1)
	assert.Equal(t, []int32{1, 2}, subvoxels[0])
}

func TestWriteJSONRoundTrips(t *testing.T) {
	path := buildFixture(t, []int32{3, 4})
	p, err := posvol.ReadFile(path)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "posvol.json")
	require.NoError(t, posvol.WriteJSON(p, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"cells"`)
	assert.Contains(t, string(data), "3")
}

func TestWriteASCIIPrettyIncludesVoxelSummary(t *testing.T) {
	path := buildFixture(t, []int32{5, 6})
	p, err := posvol.ReadFile(path)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "pretty.txt")
	require.NoError(t, posvol.WriteASCIIPretty(p, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Total voxels: 1")
	assert.Contains(t, string(data), "Voxel[0] cells:")
}

func TestSummaryRenders(t *testing.T) {
	path := buildFixture(t, []int32{1, 2})
	p, err := posvol.ReadFile(path)
	require.NoError(t, err)

	summary := p.Summary()
	assert.Contains(t, summary, "Total cells")
}
