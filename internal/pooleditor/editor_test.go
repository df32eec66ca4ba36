package pooleditor

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return NewCatalog([]FishRef{
		{ID: 1, Name: "Anchovy", Rarity: 1, BaseValue: 10},
		{ID: 2, Name: "Sardine", Rarity: 1, BaseValue: 15},
		{ID: 3, Name: "Mackerel", Rarity: 2, BaseValue: 40},
		{ID: 4, Name: "Sea Bass", Rarity: 2, BaseValue: 60},
		{ID: 5, Name: "Bluefin Tuna", Rarity: 4, BaseValue: 800},
		{ID: 6, Name: "Golden Koi", Rarity: 5, BaseValue: 5000},
	})
}

// checkSync asserts the invariants that must hold after every mutation:
// selected list and id set in 1:1 correspondence, total value equal to
// the sum of the selected base values.
func checkSync(t *testing.T, s *Session) {
	t.Helper()
	selected := s.Selected()
	ids := s.SelectedIDs()
	require.Equal(t, len(selected), len(ids), "selected list and id list must stay 1:1")

	seen := make(map[int64]bool)
	var total int64
	for _, f := range selected {
		require.False(t, seen[f.ID], "duplicate entry in selected list: %d", f.ID)
		seen[f.ID] = true
		total += f.BaseValue
	}
	for _, id := range ids {
		assert.True(t, seen[id], "id %d in serialized list but not in selected list", id)
	}
	assert.Equal(t, total, s.TotalValue())
}

func TestSession_SelectDeselect(t *testing.T) {
	reg := NewRegistry(0)
	s := reg.Open(1, testCatalog(), nil)

	assert.True(t, s.Select(1))
	assert.True(t, s.Select(5))
	checkSync(t, s)
	assert.Equal(t, int64(810), s.TotalValue())

	// Selecting an already-selected fish is a no-op.
	assert.False(t, s.Select(1))
	checkSync(t, s)
	assert.Equal(t, 2, len(s.SelectedIDs()))

	// Removing a non-selected fish is a no-op.
	assert.False(t, s.Deselect(3))
	checkSync(t, s)

	assert.True(t, s.Deselect(1))
	checkSync(t, s)
	assert.Equal(t, []int64{5}, s.SelectedIDs())
	assert.Equal(t, int64(800), s.TotalValue())

	// Unknown ids never enter the selection.
	assert.False(t, s.Select(999))
	checkSync(t, s)
}

func TestSession_CandidatesExcludeSelected(t *testing.T) {
	reg := NewRegistry(0)
	s := reg.Open(1, testCatalog(), nil)

	s.Select(3)
	for _, f := range s.Candidates() {
		assert.NotEqual(t, int64(3), f.ID, "selected fish must not appear in candidates")
	}
	assert.Equal(t, 5, len(s.Candidates()))
}

func TestSession_Filter(t *testing.T) {
	reg := NewRegistry(0)
	s := reg.Open(1, testCatalog(), nil)

	s.SetFilter(Filter{Query: "sea"})
	candidates := s.Candidates()
	require.Equal(t, 1, len(candidates))
	assert.Equal(t, "Sea Bass", candidates[0].Name)

	s.SetFilter(Filter{Rarity: 1})
	assert.Equal(t, 2, len(s.Candidates()))

	// Filtering never touches the selection itself.
	s.Select(6)
	s.SetFilter(Filter{Query: "no such fish"})
	assert.Empty(t, s.Candidates())
	assert.Equal(t, []int64{6}, s.SelectedIDs())
	checkSync(t, s)
}

func TestSession_RarityTriState(t *testing.T) {
	reg := NewRegistry(0)
	s := reg.Open(1, testCatalog(), nil)

	assert.Equal(t, Unchecked, s.RarityState(1))

	s.Select(1)
	assert.Equal(t, Indeterminate, s.RarityState(1))

	s.Select(2)
	assert.Equal(t, Checked, s.RarityState(1))

	s.Deselect(2)
	assert.Equal(t, Indeterminate, s.RarityState(1))

	// No visible fish of rarity 3 at all.
	assert.Equal(t, Unchecked, s.RarityState(3))

	// The text filter narrows what "all" means.
	s.SetFilter(Filter{Query: "anchovy"})
	assert.Equal(t, Checked, s.RarityState(1))
}

func TestSession_SelectRarity(t *testing.T) {
	reg := NewRegistry(0)
	s := reg.Open(1, testCatalog(), nil)

	added := s.SelectRarity(2)
	assert.Equal(t, 2, added)
	assert.Equal(t, Checked, s.RarityState(2))
	checkSync(t, s)

	// Selecting again adds nothing.
	assert.Equal(t, 0, s.SelectRarity(2))

	removed := s.DeselectRarity(2)
	assert.Equal(t, 2, removed)
	assert.Equal(t, Unchecked, s.RarityState(2))
	assert.Empty(t, s.SelectedIDs())
	checkSync(t, s)
}

func TestSession_SnapshotGroups(t *testing.T) {
	reg := NewRegistry(0)
	s := reg.Open(7, testCatalog(), []int64{1, 2})

	snap := s.Snapshot()
	assert.Equal(t, int64(7), snap.ZoneID)
	assert.Equal(t, 2, snap.SelectedCount)
	assert.Equal(t, []int64{1, 2}, snap.SelectedIDs)
	assert.Equal(t, int64(25), snap.TotalValue)

	// Both rarity-1 fish are selected, so candidates start at rarity 2.
	require.NotEmpty(t, snap.Groups)
	assert.Equal(t, 2, snap.Groups[0].Rarity)
	for _, g := range snap.Groups {
		assert.NotEmpty(t, g.Fish)
		for _, f := range g.Fish {
			assert.Equal(t, g.Rarity, f.Rarity)
		}
	}
}

func TestRegistry_SessionsAreIsolated(t *testing.T) {
	reg := NewRegistry(0)
	catalog := testCatalog()
	a := reg.Open(1, catalog, nil)
	b := reg.Open(1, catalog, nil)

	require.NotEqual(t, a.ID(), b.ID())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			a.Select(1)
			a.Select(3)
			a.Deselect(1)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			b.Select(5)
			b.Toggle(6)
		}
	}()
	wg.Wait()

	// a never touched 5 or 6; b never touched 1 or 3.
	for _, id := range a.SelectedIDs() {
		assert.Contains(t, []int64{1, 3}, id)
	}
	for _, id := range b.SelectedIDs() {
		assert.Contains(t, []int64{5, 6}, id)
	}
	checkSync(t, a)
	checkSync(t, b)
}

func TestSession_SnapshotConsistentUnderConcurrentMutation(t *testing.T) {
	reg := NewRegistry(0)
	s := reg.Open(1, testCatalog(), nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			s.Select(1)
			s.Select(3)
			s.Toggle(5)
			s.Deselect(1)
			s.SetFilter(Filter{Rarity: i % 3})
		}
	}()

	// Every snapshot taken mid-mutation must still agree with itself.
	for i := 0; i < 500; i++ {
		snap := s.Snapshot()
		require.Equal(t, snap.SelectedCount, len(snap.SelectedIDs))
		require.Equal(t, snap.SelectedCount, len(snap.Selected))

		var total int64
		ids := make(map[int64]bool, len(snap.SelectedIDs))
		for _, id := range snap.SelectedIDs {
			ids[id] = true
		}
		for _, f := range snap.Selected {
			require.True(t, ids[f.ID], "fish %d in selected list but not in id list", f.ID)
			total += f.BaseValue
		}
		require.Equal(t, total, snap.TotalValue)
	}
	<-done
}

func TestRegistry_GetAndClose(t *testing.T) {
	reg := NewRegistry(0)
	s := reg.Open(1, testCatalog(), nil)

	got, ok := reg.Get(s.ID())
	require.True(t, ok)
	assert.Same(t, s, got)

	reg.Close(s.ID())
	_, ok = reg.Get(s.ID())
	assert.False(t, ok)

	// Closing twice is harmless.
	reg.Close(s.ID())
	assert.Equal(t, 0, reg.Len())
}

func TestRegistry_Sweep(t *testing.T) {
	reg := NewRegistry(time.Minute)
	s := reg.Open(1, testCatalog(), nil)
	fresh := reg.Open(2, testCatalog(), nil)

	s.mu.Lock()
	s.touched = time.Now().Add(-2 * time.Minute)
	s.mu.Unlock()

	removed := reg.Sweep(time.Now())
	assert.Equal(t, 1, removed)
	_, ok := reg.Get(s.ID())
	assert.False(t, ok)
	_, ok = reg.Get(fresh.ID())
	assert.True(t, ok)
}

func TestRegistry_SweepDisabledWithoutTTL(t *testing.T) {
	reg := NewRegistry(0)
	reg.Open(1, testCatalog(), nil)

	removed := reg.Sweep(time.Now().Add(24 * time.Hour))
	assert.Equal(t, 0, removed)
	assert.Equal(t, 1, reg.Len())
}
