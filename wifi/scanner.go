package wifi

import (
	"context"
	"fmt"
)

// Scanner performs a blocking scan of nearby access points.
type Scanner interface {
	Scan(ctx context.Context) ([]Station, error)
}

// ScannerFunc adapts a function to Scanner.
type ScannerFunc func(ctx context.Context) ([]Station, error)

func (f ScannerFunc) Scan(ctx context.Context) ([]Station, error) { return f(ctx) }

// Simulated produces a stable population of plausible access points whose
// signal drifts between scans. The same seed yields the same sequence.
type Simulated struct {
	state uint64
	base  []Station
}

var simNames = []string{
	"HomeNet", "linksys", "NETGEAR-5G", "xfinitywifi", "CoffeeShop", "Guest",
	"TP-Link_2.4", "DIRECT-printer", "ATT-WiFi", "eduroam", "IoT", "",
	"Pretty Fly for a WiFi", "FBI Van", "Apartment 4B", "office-mesh",
}

// NewSimulated returns a simulated scanner with n access points.
func NewSimulated(seed uint64, n int) *Simulated {
	if seed == 0 {
		seed = 0x9E3779B97F4A7C15
	}
	s := &Simulated{state: seed}
	for i := 0; i < n; i++ {
		s.base = append(s.base, s.station(i))
	}
	return s
}

func (s *Simulated) next() uint64 {
	// xorshift64*
	x := s.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	s.state = x
	return x * 0x2545F4914F6CDD1D
}

func (s *Simulated) intn(n int) int { return int(s.next() % uint64(n)) }

func (s *Simulated) station(i int) Station {
	st := Station{
		SSID: simNames[s.intn(len(simNames))],
		RSSI: -30 - s.intn(60),
		Auth: Auth(s.intn(len(authNames))),
	}
	if st.SSID != "" && i >= len(simNames) {
		st.SSID = fmt.Sprintf("%s-%d", st.SSID, i)
	}
	for j := range st.BSSID {
		st.BSSID[j] = byte(s.next())
	}
	st.BSSID[0] &^= 1 // unicast

	if s.intn(3) == 0 {
		st.Channel = Channels50[s.intn(len(Channels50))]
		st.PHY = PHY11n | PHY11ac
	} else {
		st.Channel = Channels24[s.intn(len(Channels24))]
		st.PHY = PHY11g | PHY11n
		if s.intn(4) == 0 {
			st.PHY |= PHY11b
		}
	}
	if st.PHY&PHY11n != 0 && s.intn(3) == 0 {
		st.Secondary = SecondaryAbove + Secondary(s.intn(2))
	}
	return st
}

// Scan returns the population with fresh RSSI drift. Stations that drift under
// the noise floor are not heard.
func (s *Simulated) Scan(ctx context.Context) ([]Station, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Station, 0, len(s.base))
	for i := range s.base {
		b := &s.base[i]
		b.RSSI = min(max(b.RSSI+s.intn(7)-3, -95), -20)
		if b.RSSI < NoiseFloor {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}
