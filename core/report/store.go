package report

import (
	"sort"
	"sync"
)

// Store holds the rows of the current reporting session.
type Store interface {
	Replace(rows []Row)
	Upsert(r Row)
	List() []Row
}

// MemoryStore keeps rows in memory keyed by (line, shift). Rows never
// outlive the process: cross-session persistence is out of scope.
type MemoryStore struct {
	mu   sync.Mutex
	data map[rowKey]Row
}

type rowKey struct {
	line  string
	shift string
}

// NewMemoryStore returns a store seeded with the given rows.
func NewMemoryStore(seed ...Row) *MemoryStore {
	s := &MemoryStore{data: map[rowKey]Row{}}
	for _, r := range seed {
		s.Upsert(r)
	}
	return s
}

// Replace drops all rows and installs the given set.
func (s *MemoryStore) Replace(rows []Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = map[rowKey]Row{}
	for _, r := range rows {
		s.data[rowKey{r.Line, r.Shift}] = r
	}
}

// Upsert inserts or overwrites the row for its line/shift pair.
func (s *MemoryStore) Upsert(r Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[rowKey{r.Line, r.Shift}] = r
}

// List returns the rows sorted by line then shift.
func (s *MemoryStore) List() []Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]Row, 0, len(s.data))
	for _, r := range s.data {
		res = append(res, r)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Line != res[j].Line {
			return res[i].Line < res[j].Line
		}
		return res[i].Shift < res[j].Shift
	})
	return res
}
