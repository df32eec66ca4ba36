// Package pooleditor holds the server-side state of a zone fish-pool
// editor dialog. Every open dialog owns one Session; sessions are
// isolated from each other and live in a Registry keyed by session ID.
package pooleditor

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FishRef is the slice of a fish template the editor needs.
type FishRef struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Rarity    int    `json:"rarity"`
	BaseValue int64  `json:"base_value"`
}

// Catalog is an immutable snapshot of the fish templates available to
// an editor session. Shared between sessions; never mutated after New.
type Catalog struct {
	fish []FishRef
	byID map[int64]FishRef
}

// NewCatalog builds a catalog ordered by rarity, then name, then id.
func NewCatalog(fish []FishRef) *Catalog {
	sorted := make([]FishRef, len(fish))
	copy(sorted, fish)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Rarity != sorted[j].Rarity {
			return sorted[i].Rarity < sorted[j].Rarity
		}
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].ID < sorted[j].ID
	})
	byID := make(map[int64]FishRef, len(sorted))
	for _, f := range sorted {
		byID[f.ID] = f
	}
	return &Catalog{fish: sorted, byID: byID}
}

// Lookup returns the fish with the given id.
func (c *Catalog) Lookup(id int64) (FishRef, bool) {
	f, ok := c.byID[id]
	return f, ok
}

// Len returns the number of fish in the catalog.
func (c *Catalog) Len() int {
	return len(c.fish)
}

// TriState is the aggregate state of a rarity group's select-all box.
type TriState string

const (
	Unchecked     TriState = "unchecked"
	Indeterminate TriState = "indeterminate"
	Checked       TriState = "checked"
)

// Filter narrows the candidate list. Rarity 0 means all tiers; Query
// matches case-insensitively against fish names.
type Filter struct {
	Query  string `json:"query"`
	Rarity int    `json:"rarity"`
}

func (f Filter) matches(fish FishRef) bool {
	if f.Rarity != 0 && fish.Rarity != f.Rarity {
		return false
	}
	if f.Query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(fish.Name), strings.ToLower(f.Query))
}

// RarityGroup is one rarity tier of the candidate list.
type RarityGroup struct {
	Rarity int       `json:"rarity"`
	Fish   []FishRef `json:"fish"`
	State  TriState  `json:"state"`
}

// Snapshot is the full render state returned after every mutation, so
// the client re-renders from it instead of reloading the page.
type Snapshot struct {
	SessionID     string        `json:"session_id"`
	ZoneID        int64         `json:"zone_id"`
	Filter        Filter        `json:"filter"`
	Groups        []RarityGroup `json:"groups"`
	Selected      []FishRef     `json:"selected"`
	SelectedIDs   []int64       `json:"selected_ids"`
	SelectedCount int           `json:"selected_count"`
	TotalValue    int64         `json:"total_value"`
}

// Session is the state of one open editor dialog. All methods are safe
// for concurrent use; distinct sessions share nothing but the catalog.
type Session struct {
	id      uuid.UUID
	zoneID  int64
	catalog *Catalog

	mu       sync.Mutex
	selected map[int64]struct{}
	order    []int64 // selection order, kept free of duplicates
	filter   Filter
	touched  time.Time
}

func newSession(zoneID int64, catalog *Catalog, initial []int64) *Session {
	s := &Session{
		id:       uuid.New(),
		zoneID:   zoneID,
		catalog:  catalog,
		selected: make(map[int64]struct{}),
		touched:  time.Now(),
	}
	for _, id := range initial {
		s.Select(id)
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// ZoneID returns the zone this session edits (0 for a new zone).
func (s *Session) ZoneID() int64 {
	return s.zoneID
}

// Select adds a fish to the pool. Unknown ids and ids that are already
// selected are no-ops; the return value reports whether state changed.
func (s *Session) Select(id int64) bool {
	if _, ok := s.catalog.Lookup(id); !ok {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.selected[id]; ok {
		return false
	}
	s.selected[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

// Deselect removes a fish from the pool. Removing an id that is not
// selected is a no-op.
func (s *Session) Deselect(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.selected[id]; !ok {
		return false
	}
	delete(s.selected, id)
	for i, sel := range s.order {
		if sel == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Toggle flips a fish's selection and reports whether it is now selected.
func (s *Session) Toggle(id int64) bool {
	if s.Select(id) {
		return true
	}
	s.Deselect(id)
	return false
}

// SelectRarity selects every catalog fish of the given rarity that
// matches the current text filter. Returns how many were newly added.
func (s *Session) SelectRarity(rarity int) int {
	added := 0
	for _, f := range s.visibleOfRarity(rarity) {
		if s.Select(f.ID) {
			added++
		}
	}
	return added
}

// DeselectRarity clears every selected fish of the given rarity that
// matches the current text filter. Returns how many were removed.
func (s *Session) DeselectRarity(rarity int) int {
	removed := 0
	for _, f := range s.visibleOfRarity(rarity) {
		if s.Deselect(f.ID) {
			removed++
		}
	}
	return removed
}

// SetFilter replaces the live filter.
func (s *Session) SetFilter(f Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
}

// visibleOfRarity lists catalog fish of one rarity passing the text
// filter, regardless of selection.
func (s *Session) visibleOfRarity(rarity int) []FishRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visibleOfRarityLocked(rarity)
}

func (s *Session) visibleOfRarityLocked(rarity int) []FishRef {
	query := Filter{Query: s.filter.Query, Rarity: rarity}
	var out []FishRef
	for _, f := range s.catalog.fish {
		if query.matches(f) {
			out = append(out, f)
		}
	}
	return out
}

// Candidates lists filtered, not-yet-selected fish in catalog order.
func (s *Session) Candidates() []FishRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.candidatesLocked()
}

func (s *Session) candidatesLocked() []FishRef {
	var out []FishRef
	for _, f := range s.catalog.fish {
		if _, ok := s.selected[f.ID]; ok {
			continue
		}
		if s.filter.matches(f) {
			out = append(out, f)
		}
	}
	return out
}

// Selected lists selected fish in the order they were added.
func (s *Session) Selected() []FishRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedLocked()
}

func (s *Session) selectedLocked() []FishRef {
	out := make([]FishRef, 0, len(s.order))
	for _, id := range s.order {
		if f, ok := s.catalog.Lookup(id); ok {
			out = append(out, f)
		}
	}
	return out
}

// SelectedIDs returns the selection as a sorted id list, the serialized
// form submitted with the zone.
func (s *Session) SelectedIDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedIDsLocked()
}

func (s *Session) selectedIDsLocked() []int64 {
	ids := make([]int64, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// TotalValue sums the base values of the selected fish.
func (s *Session) TotalValue() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalValueLocked()
}

func (s *Session) totalValueLocked() int64 {
	var total int64
	for _, f := range s.selectedLocked() {
		total += f.BaseValue
	}
	return total
}

// RarityState computes the select-all box state for one rarity tier:
// Checked iff every visible fish of that tier is selected,
// Indeterminate iff some but not all are, Unchecked otherwise.
func (s *Session) RarityState(rarity int) TriState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rarityStateLocked(rarity)
}

func (s *Session) rarityStateLocked(rarity int) TriState {
	visible := s.visibleOfRarityLocked(rarity)
	if len(visible) == 0 {
		return Unchecked
	}
	selected := 0
	for _, f := range visible {
		if _, ok := s.selected[f.ID]; ok {
			selected++
		}
	}
	switch selected {
	case 0:
		return Unchecked
	case len(visible):
		return Checked
	default:
		return Indeterminate
	}
}

// Snapshot assembles the complete render state. The whole snapshot is
// built under one lock acquisition so the groups, id list, count, and
// total can never disagree with each other.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidates := s.candidatesLocked()
	var groups []RarityGroup
	for _, f := range candidates {
		if len(groups) == 0 || groups[len(groups)-1].Rarity != f.Rarity {
			groups = append(groups, RarityGroup{Rarity: f.Rarity})
		}
		groups[len(groups)-1].Fish = append(groups[len(groups)-1].Fish, f)
	}
	for i := range groups {
		groups[i].State = s.rarityStateLocked(groups[i].Rarity)
	}

	ids := s.selectedIDsLocked()
	return Snapshot{
		SessionID:     s.id.String(),
		ZoneID:        s.zoneID,
		Filter:        s.filter,
		Groups:        groups,
		Selected:      s.selectedLocked(),
		SelectedIDs:   ids,
		SelectedCount: len(ids),
		TotalValue:    s.totalValueLocked(),
	}
}
