package scanlog

import (
	"context"
	"sync"

	"wifidash/wifi"

	"github.com/rs/zerolog"
)

// Recorder is a scanner that appends every successful scan to a store.
// Recording failures are logged; the scan result is still returned.
type Recorder struct {
	Scanner wifi.Scanner
	Store   *Store
	Source  string
	Keep    int
	Log     zerolog.Logger
}

func (r *Recorder) Scan(ctx context.Context) ([]wifi.Station, error) {
	st, err := r.Scanner.Scan(ctx)
	if err != nil {
		return nil, err
	}
	sc, err := r.Store.Append(Scan{Source: r.Source, Stations: st})
	if err != nil {
		r.Log.Error().Err(err).Msg("scanlog: record")
		return st, nil
	}
	r.Log.Debug().Str("id", sc.ID).Int("stations", len(st)).Msg("scanlog: recorded")
	if n, err := r.Store.Prune(ctx, r.Keep); err != nil {
		r.Log.Warn().Err(err).Msg("scanlog: prune")
	} else if n > 0 {
		r.Log.Debug().Int("pruned", n).Msg("scanlog: pruned")
	}
	return st, nil
}

// Replayer is a scanner that cycles through previously recorded scans.
type Replayer struct {
	mu    sync.Mutex
	scans []Scan
	next  int
}

// NewReplayer loads every scan in the store.
func NewReplayer(ctx context.Context, s *Store) (*Replayer, error) {
	scans, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(scans) == 0 {
		return nil, ErrEmpty
	}
	return &Replayer{scans: scans}, nil
}

func (r *Replayer) Scan(ctx context.Context) ([]wifi.Station, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	sc := r.scans[r.next]
	r.next = (r.next + 1) % len(r.scans)
	return append([]wifi.Station(nil), sc.Stations...), nil
}
