package wifi

import "errors"

var ErrBadBSSID = errors.New("invalid bssid")

// Band is a frequency band.
type Band uint8

const (
	BandUnknown Band = iota
	Band24
	Band50
)

func (b Band) String() string {
	switch b {
	case Band24:
		return "2.4 GHz"
	case Band50:
		return "5 GHz"
	default:
		return "unknown"
	}
}

// MaxChannel24 is the last 2.4 GHz channel of the US band plan.
const MaxChannel24 = 11

// Channel plans (US FCC) shown on the heatmaps.
var (
	Channels24 = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	Channels50 = []int{32, 36, 40, 44, 48, 149, 153, 157, 161, 165}
)

// BandOf maps a primary channel number to its band.
func BandOf(channel int) Band {
	switch {
	case channel <= 0:
		return BandUnknown
	case channel <= MaxChannel24:
		return Band24
	default:
		return Band50
	}
}

// Plan returns the channel plan of a band.
func Plan(b Band) []int {
	switch b {
	case Band24:
		return Channels24
	case Band50:
		return Channels50
	default:
		return nil
	}
}
