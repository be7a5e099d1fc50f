package hexpixel

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/bodgit/hexpixel/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *HistoryDB {
	t.Helper()
	db, err := NewHistoryDB(filepath.Join(t.TempDir(), "hexpixel.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestHistoryDB(t *testing.T) {
	db := newTestDB(t)

	created := time.Unix(1700000000, 0)
	require.NoError(t, db.Add(Record{SHA1: "AA", Path: "a.png", Width: 2, Height: 2, Pixels: 3, Direction: Encoded, Payload: "Hi!", Created: created}))
	require.NoError(t, db.Add(Record{SHA1: "AA", Path: "a.png", Width: 2, Height: 2, Pixels: 3, Direction: Decoded, Payload: "Hi!"}))
	require.NoError(t, db.Add(Record{SHA1: "BB", Path: "b.png", Width: 1, Height: 1, Pixels: 1, Direction: Encoded, Payload: "x"}))

	records, err := db.History(0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "BB", records[0].SHA1)
	assert.Equal(t, Decoded, records[1].Direction)
	assert.True(t, created.Equal(records[2].Created))

	records, err = db.History(1)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	records, err = db.FindBySHA1("AA")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, Encoded, records[0].Direction)
	assert.Equal(t, 3, records[0].Pixels)

	records, err = db.FindBySHA1("CC")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestWorkflowRecordsHistory(t *testing.T) {
	db := newTestDB(t)
	h, dir := newTest(t, db)
	img := filepath.Join(dir, "encoded_image.png")

	_, err := h.WriteImage(h.Table().Codes("SGk="), img, grid.Square)
	require.NoError(t, err)

	_, err = h.DecodeImage(img)
	require.NoError(t, err)

	records, err := db.History(0)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, Decoded, records[0].Direction)
	assert.Equal(t, Encoded, records[1].Direction)
	assert.Equal(t, records[0].SHA1, records[1].SHA1)
	assert.Equal(t, "SGk=", records[0].Payload)
	assert.Equal(t, 2, records[0].Width)
	assert.Equal(t, 4, records[0].Pixels)
}
