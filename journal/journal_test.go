package journal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestRecordAndGet(t *testing.T) {
	j := openTestJournal(t)

	id, err := j.Record(Entry{
		Domain:         "counter-broken",
		Property:       "count >= 0",
		Seed:           42,
		MaxActions:     100,
		Trial:          3,
		ViolationIndex: 7,
		Actions:        `[0,1,1]`,
		State:          `{"count":-1}`,
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	entry, err := j.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "counter-broken", entry.Domain)
	assert.Equal(t, "count >= 0", entry.Property)
	assert.Equal(t, int64(42), entry.Seed)
	assert.Equal(t, 100, entry.MaxActions)
	assert.Equal(t, 3, entry.Trial)
	assert.Equal(t, 7, entry.ViolationIndex)
	assert.Equal(t, `[0,1,1]`, entry.Actions)
	assert.Equal(t, `{"count":-1}`, entry.State)
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestGetMissingEntry(t *testing.T) {
	j := openTestJournal(t)

	_, err := j.Get(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList(t *testing.T) {
	j := openTestJournal(t)

	entries, err := j.List()
	require.NoError(t, err)
	assert.Empty(t, entries)

	for i := 0; i < 3; i++ {
		_, err := j.Record(Entry{Domain: "todo", Property: "unique item ids", Actions: "[]", State: "{}"})
		require.NoError(t, err)
	}

	entries, err = j.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Less(t, entries[0].ID, entries[1].ID)
	assert.Less(t, entries[1].ID, entries[2].ID)
}

func TestRecordRequiresDomain(t *testing.T) {
	j := openTestJournal(t)

	_, err := j.Record(Entry{})
	assert.ErrorContains(t, err, "domain is empty")
}

func TestMigrateIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	first, err := Open(path)
	require.NoError(t, err)
	_, err = first.Record(Entry{Domain: "counter", Property: "count >= 0", Actions: "[]", State: "{}"})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// Reopening migrates again and must keep existing entries.
	second, err := Open(path)
	require.NoError(t, err)
	defer second.Close()

	entries, err := second.List()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
