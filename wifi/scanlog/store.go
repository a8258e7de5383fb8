// Package scanlog records scans to disk and plays them back.
package scanlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"wifidash/wifi"

	"github.com/peterbourgon/diskv/v3"
)

var (
	ErrNotFound = errors.New("scan not found")
	ErrEmpty    = errors.New("scan log is empty")
)

// Scan is one recorded scan.
type Scan struct {
	ID       string         `json:"id"`
	Taken    time.Time      `json:"taken"`
	Source   string         `json:"source,omitempty"`
	Stations []wifi.Station `json:"stations"`
}

const (
	idWidth = 8
	dirName = "scans"
	ext     = ".json"
)

// Store keeps scans in a directory, one file per scan. Ids are zero-padded
// sequence numbers, so lexical order is recording order.
type Store struct {
	d   *diskv.Diskv
	dir string
	now func() time.Time

	mu  sync.Mutex
	seq uint64
}

// Open opens or creates a store rooted at dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("scanlog: %w", err)
	}
	s := &Store{
		d: diskv.New(diskv.Options{
			BasePath:          dir,
			AdvancedTransform: keyToPath,
			InverseTransform:  pathToKey,
			CacheSizeMax:      256 * 1024,
		}),
		dir: dir,
		now: time.Now,
	}
	for _, id := range s.ids(context.Background()) {
		if n, err := strconv.ParseUint(id, 10, 64); err == nil && n > s.seq {
			s.seq = n
		}
	}
	return s, nil
}

func keyToPath(key string) *diskv.PathKey {
	return &diskv.PathKey{Path: []string{dirName}, FileName: key + ext}
}

func pathToKey(pk *diskv.PathKey) string {
	return strings.TrimSuffix(pk.FileName, ext)
}

// Dir returns the directory the store lives in.
func (s *Store) Dir() string { return s.dir }

// Append assigns the next id to sc, stamps it if needed, and writes it.
func (s *Store) Append(sc Scan) (Scan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc.ID = fmt.Sprintf("%0*d", idWidth, s.seq+1)
	if sc.Taken.IsZero() {
		sc.Taken = s.now().UTC()
	}
	b, err := json.Marshal(sc)
	if err != nil {
		return Scan{}, fmt.Errorf("scanlog: encode %s: %w", sc.ID, err)
	}
	if err := s.d.Write(sc.ID, b); err != nil {
		return Scan{}, fmt.Errorf("scanlog: write %s: %w", sc.ID, err)
	}
	s.seq++
	return sc, nil
}

// Get reads one scan.
func (s *Store) Get(id string) (Scan, error) {
	if !s.d.Has(id) {
		return Scan{}, fmt.Errorf("scanlog: %s: %w", id, ErrNotFound)
	}
	b, err := s.d.Read(id)
	if err != nil {
		return Scan{}, fmt.Errorf("scanlog: read %s: %w", id, err)
	}
	var sc Scan
	if err := json.Unmarshal(b, &sc); err != nil {
		return Scan{}, fmt.Errorf("scanlog: decode %s: %w", id, err)
	}
	sc.ID = id
	return sc, nil
}

func (s *Store) ids(ctx context.Context) []string {
	var ids []string
	for key := range s.d.Keys(ctx.Done()) {
		ids = append(ids, key)
	}
	sort.Strings(ids)
	return ids
}

// List returns every scan in recording order.
func (s *Store) List(ctx context.Context) ([]Scan, error) {
	var out []Scan
	for _, id := range s.ids(ctx) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sc, err := s.Get(id)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}

// Latest returns the most recent scan.
func (s *Store) Latest(ctx context.Context) (Scan, error) {
	ids := s.ids(ctx)
	if len(ids) == 0 {
		return Scan{}, ErrEmpty
	}
	return s.Get(ids[len(ids)-1])
}

// Prune deletes all but the newest keep scans. keep <= 0 keeps everything.
func (s *Store) Prune(ctx context.Context, keep int) (int, error) {
	if keep <= 0 {
		return 0, nil
	}
	ids := s.ids(ctx)
	n := 0
	for len(ids)-n > keep {
		if err := s.d.Erase(ids[n]); err != nil {
			return n, fmt.Errorf("scanlog: erase %s: %w", ids[n], err)
		}
		n++
	}
	return n, nil
}
