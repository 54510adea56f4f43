package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/myenglish-suite/internal/content"
	"github.com/heartmarshall/myenglish-suite/internal/service/synth"
)

func TestWriteBatch(t *testing.T) {
	t.Parallel()

	entries, err := synth.Synthesize(content.DefaultSet(), content.ExtensionPool(), synth.Options{
		IDPrefix:   "x",
		BatchSize:  12,
		SavedEvery: 7,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteBatch(&buf, entries))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, len(entries)+1)

	assert.Equal(t, []string{"ID", "Word", "Definition", "Timestamp", "Example 1", "Example 2", "Saved"}, rows[0])

	first := rows[1]
	assert.Equal(t, "x1", first[0])
	assert.Equal(t, entries[0].Word, first[1])
	assert.Equal(t, "00:00", first[3])
	assert.Equal(t, entries[0].Examples[1], first[5])
	assert.Equal(t, "true", first[6])
	assert.Equal(t, "false", rows[2][6])

	assert.Equal(t, "x12", rows[12][0])
	assert.Equal(t, "05:30", rows[12][3])
}

func TestWriteBatch_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteBatch(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
