package flatfile

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(t.TempDir())
}

func TestStore_Initialize_SeedsCollections(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Initialize())

	users, err := s.Load(CollectionUsers)
	require.NoError(t, err)
	assert.Len(t, users, 4)

	resources, err := s.Load(CollectionResources)
	require.NoError(t, err)
	assert.Len(t, resources, 2)

	admins, err := s.Load(CollectionAdmins)
	require.NoError(t, err)
	assert.Len(t, admins, 1)

	bookings, err := s.Load(CollectionBookings)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestStore_Initialize_DoesNotOverwrite(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Initialize())

	require.NoError(t, s.Save(CollectionUsers, []Record{
		{"id": "42", "name": "Carol", "department": "Legal", "role": "individual", "email": "carol@example.com"},
	}))

	require.NoError(t, s.Initialize())

	users, err := s.Load(CollectionUsers)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Carol", users[0]["name"])
}

func TestStore_Load_MissingFile(t *testing.T) {
	s := newTestStore(t)

	records, err := s.Load(CollectionBookings)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_Load_UnknownCollection(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Load("payments")
	require.Error(t, err)
}

func TestStore_Load_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	// Second data row has a column too many.
	raw := "id,name,type\nboardroom,Boardroom,room\nvan-1,Pool Van,vehicle,extra\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "resources.csv"), []byte(raw), 0o644))

	_, err := s.Load(CollectionResources)
	require.Error(t, err)
}

func TestStore_Save_EmptyWritesHeaderOnly(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	require.NoError(t, s.Save(CollectionBookings, nil))

	raw, err := os.ReadFile(filepath.Join(dir, "bookings.csv"))
	require.NoError(t, err)
	assert.Equal(t, "id,resource,date,startTime,endTime,user,department,type,purpose,invitees\n", string(raw))

	records, err := s.Load(CollectionBookings)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_Save_FillsMissingFields(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save(CollectionBookings, []Record{
		{"id": "b1", "resource": "boardroom", "date": "2024-01-10", "startTime": "09:00", "endTime": "10:00", "user": "1"},
	}))

	records, err := s.Load(CollectionBookings)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "b1", records[0]["id"])
	assert.Equal(t, "", records[0]["purpose"])
	assert.Equal(t, "", records[0]["invitees"])
}

func TestStore_RoundTrip_ByteStable(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, s.Initialize())

	path := filepath.Join(dir, "users.csv")
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	records, err := s.Load(CollectionUsers)
	require.NoError(t, err)
	require.NoError(t, s.Save(CollectionUsers, records))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestStore_PreservesInsertionOrder(t *testing.T) {
	s := newTestStore(t)

	var want []string
	require.NoError(t, s.Update(CollectionResources, func(records []Record) ([]Record, error) {
		for _, id := range []string{"r3", "r1", "r2"} {
			records = append(records, Record{"id": id, "name": id, "type": "room"})
			want = append(want, id)
		}
		return records, nil
	}))

	records, err := s.Load(CollectionResources)
	require.NoError(t, err)
	var got []string
	for _, rec := range records {
		got = append(got, rec["id"])
	}
	assert.Equal(t, want, got)
}

func TestStore_QuotedFieldsSurvive(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save(CollectionBookings, []Record{
		{"id": "b1", "resource": "boardroom", "date": "2024-01-10", "startTime": "09:00", "endTime": "10:00",
			"user": "1", "purpose": "planning, budget \"draft\"\nsecond line", "invitees": "a@example.com,b@example.com"},
	}))

	records, err := s.Load(CollectionBookings)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "planning, budget \"draft\"\nsecond line", records[0]["purpose"])
	assert.Equal(t, "a@example.com,b@example.com", records[0]["invitees"])
}

func TestStore_Update_ErrorAborts(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Initialize())

	err := s.Update(CollectionUsers, func(records []Record) ([]Record, error) {
		return nil, assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	users, err := s.Load(CollectionUsers)
	require.NoError(t, err)
	assert.Len(t, users, 4)
}

func TestStore_Update_ConcurrentAppendsKeepAllRows(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Initialize())

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			err := s.Update(CollectionBookings, func(records []Record) ([]Record, error) {
				return append(records, Record{"id": string(rune('a' + i))}), nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	records, err := s.Load(CollectionBookings)
	require.NoError(t, err)
	assert.Len(t, records, n)
}
