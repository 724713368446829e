package dataset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSVRoundTrip(t *testing.T) {
	original, err := testLoader().Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, original))

	reread, err := testLoader().Read(&buf)
	require.NoError(t, err)

	assert.Equal(t, original.Len(), reread.Len())
	assert.Equal(t, original.Fingerprint(), reread.Fingerprint())
}

func TestWriteCSVPreservesBlankCells(t *testing.T) {
	ds, err := testLoader().Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, ds))

	// The second record's GrowthRate was blank in the source
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[2], ",190,,64,")

	reread, err := testLoader().Read(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.True(t, reread.Records[1].IsMissing("GrowthRate"))
}

func TestWriteCSVHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, &Dataset{Columns: Columns}))
	assert.Equal(t, strings.Join(Columns, ","), strings.TrimSpace(buf.String()))
}
