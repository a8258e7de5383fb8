package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"wifidash/wifi"
	"wifidash/wifi/scanlog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSurvey = `
source: office
stations:
  - ssid: Office
    bssid: "00:11:22:33:44:55"
    channel: 6
    rssi: -52
    auth: wpa2
    phy: g/n
    secondary: above
  - ssid: ""
    bssid: "00:11:22:33:44:66"
    channel: 149
    rssi: -67
    phy: ac
`

func TestImportThenExport(t *testing.T) {
	st, err := scanlog.Open(t.TempDir())
	require.NoError(t, err)

	sc, err := importSurvey(st, strings.NewReader(sampleSurvey))
	require.NoError(t, err)
	assert.Equal(t, "00000001", sc.ID)
	assert.Equal(t, "office", sc.Source)
	require.Len(t, sc.Stations, 2)
	assert.Equal(t, wifi.AuthWPA2, sc.Stations[0].Auth)
	assert.Equal(t, wifi.PHY11g|wifi.PHY11n, sc.Stations[0].PHY)
	assert.Equal(t, wifi.SecondaryAbove, sc.Stations[0].Secondary)
	assert.Equal(t, wifi.BSSID{0, 0x11, 0x22, 0x33, 0x44, 0x55}, sc.Stations[0].BSSID)

	var out bytes.Buffer
	require.NoError(t, exportScan(context.Background(), st, "", &out))
	assert.Contains(t, out.String(), "ssid: Office")
	assert.Contains(t, out.String(), "auth: WPA2")

	again, err := importSurvey(st, &out)
	require.NoError(t, err)
	assert.Equal(t, sc.Stations, again.Stations)
}

func TestImportRejectsBadInput(t *testing.T) {
	st, err := scanlog.Open(t.TempDir())
	require.NoError(t, err)

	for name, doc := range map[string]string{
		"channel":   "stations:\n  - {ssid: x, channel: 99, rssi: -50}\n",
		"auth":      "stations:\n  - {ssid: x, channel: 1, rssi: -50, auth: wpa9}\n",
		"phy":       "stations:\n  - {ssid: x, channel: 1, rssi: -50, phy: z}\n",
		"secondary": "stations:\n  - {ssid: x, channel: 1, rssi: -50, secondary: left}\n",
		"bssid":     "stations:\n  - {ssid: x, bssid: nope, channel: 1, rssi: -50}\n",
		"field":     "stations:\n  - {ssid: x, channel: 1, rssi: -50, color: red}\n",
	} {
		_, err := importSurvey(st, strings.NewReader(doc))
		assert.Error(t, err, name)
	}
}

func TestParsePHY(t *testing.T) {
	p, err := parsePHY("b/g/n")
	require.NoError(t, err)
	assert.Equal(t, "b/g/n", p.String())

	p, err = parsePHY("-")
	require.NoError(t, err)
	assert.Zero(t, p)
}
