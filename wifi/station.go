// Package wifi models access points heard in a scan and the channel
// interference they cause.
package wifi

import (
	"cmp"
	"fmt"
	"slices"
)

// PHY is a bitmask of the 802.11 modes an access point advertises.
type PHY uint8

const (
	PHY11b PHY = 1 << iota
	PHY11g
	PHY11n
	PHY11ac
)

func (p PHY) String() string {
	if p == 0 {
		return "-"
	}
	s := ""
	for _, m := range [...]struct {
		bit  PHY
		name string
	}{{PHY11b, "b"}, {PHY11g, "g"}, {PHY11n, "n"}, {PHY11ac, "ac"}} {
		if p&m.bit != 0 {
			if s != "" {
				s += "/"
			}
			s += m.name
		}
	}
	return s
}

// Secondary is the position of the secondary channel of a 40 MHz link.
type Secondary uint8

const (
	SecondaryNone Secondary = iota
	SecondaryAbove
	SecondaryBelow
)

func (s Secondary) String() string {
	switch s {
	case SecondaryAbove:
		return "above"
	case SecondaryBelow:
		return "below"
	default:
		return "none"
	}
}

// Auth is the advertised authentication mode.
type Auth uint8

const (
	AuthOpen Auth = iota
	AuthWEP
	AuthWPA
	AuthWPA2
	AuthWPA3
)

var authNames = [...]string{"open", "WEP", "WPA", "WPA2", "WPA3"}

func (a Auth) String() string {
	if int(a) < len(authNames) {
		return authNames[a]
	}
	return "?"
}

// BSSID is the access point MAC address.
type BSSID [6]byte

func (b BSSID) String() string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", b[0], b[1], b[2], b[3], b[4], b[5])
}

func (b BSSID) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *BSSID) UnmarshalText(text []byte) error {
	v, err := ParseBSSID(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// ParseBSSID parses the colon separated form produced by String.
func ParseBSSID(s string) (BSSID, error) {
	var b BSSID
	n, err := fmt.Sscanf(s, "%02x:%02x:%02x:%02x:%02x:%02x", &b[0], &b[1], &b[2], &b[3], &b[4], &b[5])
	if err != nil || n != 6 {
		return BSSID{}, fmt.Errorf("parse bssid %q: %w", s, ErrBadBSSID)
	}
	return b, nil
}

// Station is one access point heard in a scan.
type Station struct {
	SSID      string    `json:"ssid" yaml:"ssid"`
	BSSID     BSSID     `json:"bssid" yaml:"bssid"`
	Channel   int       `json:"channel" yaml:"channel"`
	RSSI      int       `json:"rssi" yaml:"rssi"`
	Auth      Auth      `json:"auth" yaml:"auth"`
	PHY       PHY       `json:"phy" yaml:"phy"`
	Secondary Secondary `json:"secondary" yaml:"secondary"`
}

// Band returns the band of the station's primary channel.
func (s Station) Band() Band { return BandOf(s.Channel) }

// DisplaySSID substitutes a placeholder for hidden networks.
func (s Station) DisplaySSID() string {
	if s.SSID == "" {
		return "<hidden>"
	}
	return s.SSID
}

// SortByStrength orders stations strongest first. Ties keep scan order.
func SortByStrength(st []Station) {
	slices.SortStableFunc(st, func(a, b Station) int { return cmp.Compare(b.RSSI, a.RSSI) })
}
