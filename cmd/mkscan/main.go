// Command mkscan imports site surveys written as YAML into a scan log, and
// exports recorded scans back to YAML.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"wifidash/wifi"
	"wifidash/wifi/scanlog"

	"gopkg.in/yaml.v3"
)

func main() {
	var (
		dir    = flag.String("dir", "", "Scan log directory.")
		inPath = flag.String("in", "", "Survey YAML to import (import mode).")
		mode   = flag.String("mode", "import", "import|export.")
		id     = flag.String("id", "", "Scan id to export (default: latest).")
	)
	flag.Parse()

	if *dir == "" {
		fatalf("usage: mkscan -dir DIR -in survey.yaml\n       mkscan -mode export -dir DIR [-id ID] > survey.yaml")
	}
	st, err := scanlog.Open(*dir)
	if err != nil {
		fatalf("%v", err)
	}

	switch strings.ToLower(*mode) {
	case "import":
		if *inPath == "" {
			fatalf("import: -in is required")
		}
		f, err := os.Open(*inPath)
		if err != nil {
			fatalf("import: %v", err)
		}
		defer f.Close()
		sc, err := importSurvey(st, f)
		if err != nil {
			fatalf("import: %v", err)
		}
		fmt.Printf("%s: %d stations\n", sc.ID, len(sc.Stations))
	case "export":
		if err := exportScan(context.Background(), st, *id, os.Stdout); err != nil {
			fatalf("export: %v", err)
		}
	default:
		fatalf("unknown mode: %s", *mode)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// survey is the YAML document: modes are spelled out instead of bitmasks.
type survey struct {
	Source   string          `yaml:"source"`
	Taken    time.Time       `yaml:"taken,omitempty"`
	Stations []surveyStation `yaml:"stations"`
}

type surveyStation struct {
	SSID      string     `yaml:"ssid"`
	BSSID     wifi.BSSID `yaml:"bssid"`
	Channel   int        `yaml:"channel"`
	RSSI      int        `yaml:"rssi"`
	Auth      string     `yaml:"auth,omitempty"`
	PHY       string     `yaml:"phy,omitempty"`
	Secondary string     `yaml:"secondary,omitempty"`
}

func importSurvey(st *scanlog.Store, r io.Reader) (scanlog.Scan, error) {
	var doc survey
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return scanlog.Scan{}, fmt.Errorf("decode: %w", err)
	}
	sc := scanlog.Scan{Source: doc.Source, Taken: doc.Taken}
	if sc.Source == "" {
		sc.Source = "survey"
	}
	for i, s := range doc.Stations {
		ws, err := s.station()
		if err != nil {
			return scanlog.Scan{}, fmt.Errorf("station %d (%s): %w", i, s.SSID, err)
		}
		sc.Stations = append(sc.Stations, ws)
	}
	return st.Append(sc)
}

func (s surveyStation) station() (wifi.Station, error) {
	if wifi.BandOf(s.Channel) == wifi.BandUnknown {
		return wifi.Station{}, fmt.Errorf("channel %d is not in a known band", s.Channel)
	}
	auth, err := parseAuth(s.Auth)
	if err != nil {
		return wifi.Station{}, err
	}
	phy, err := parsePHY(s.PHY)
	if err != nil {
		return wifi.Station{}, err
	}
	sec, err := parseSecondary(s.Secondary)
	if err != nil {
		return wifi.Station{}, err
	}
	return wifi.Station{
		SSID: s.SSID, BSSID: s.BSSID, Channel: s.Channel, RSSI: s.RSSI,
		Auth: auth, PHY: phy, Secondary: sec,
	}, nil
}

func parseAuth(s string) (wifi.Auth, error) {
	if s == "" {
		return wifi.AuthOpen, nil
	}
	for a := wifi.AuthOpen; a <= wifi.AuthWPA3; a++ {
		if strings.EqualFold(a.String(), s) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown auth %q", s)
}

// parsePHY reads the "b/g/n" form PHY.String produces.
func parsePHY(s string) (wifi.PHY, error) {
	var p wifi.PHY
	if s == "" || s == "-" {
		return p, nil
	}
	for _, m := range strings.Split(strings.ToLower(s), "/") {
		switch strings.TrimSpace(m) {
		case "b":
			p |= wifi.PHY11b
		case "g":
			p |= wifi.PHY11g
		case "n":
			p |= wifi.PHY11n
		case "ac":
			p |= wifi.PHY11ac
		default:
			return 0, fmt.Errorf("unknown phy mode %q", m)
		}
	}
	return p, nil
}

func parseSecondary(s string) (wifi.Secondary, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return wifi.SecondaryNone, nil
	case "above":
		return wifi.SecondaryAbove, nil
	case "below":
		return wifi.SecondaryBelow, nil
	default:
		return 0, fmt.Errorf("unknown secondary %q", s)
	}
}

func exportScan(ctx context.Context, st *scanlog.Store, id string, w io.Writer) error {
	var (
		sc  scanlog.Scan
		err error
	)
	if id == "" {
		sc, err = st.Latest(ctx)
	} else {
		sc, err = st.Get(id)
	}
	if err != nil {
		return err
	}

	doc := survey{Source: sc.Source, Taken: sc.Taken}
	for _, s := range sc.Stations {
		doc.Stations = append(doc.Stations, surveyStation{
			SSID: s.SSID, BSSID: s.BSSID, Channel: s.Channel, RSSI: s.RSSI,
			Auth: s.Auth.String(), PHY: s.PHY.String(), Secondary: s.Secondary.String(),
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
