package wifi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBandOf(t *testing.T) {
	assert.Equal(t, BandUnknown, BandOf(0))
	assert.Equal(t, Band24, BandOf(1))
	assert.Equal(t, Band24, BandOf(11))
	assert.Equal(t, Band50, BandOf(36))
	assert.Equal(t, Channels50, Plan(Band50))
	assert.Nil(t, Plan(BandUnknown))
}

func TestBSSIDText(t *testing.T) {
	b := BSSID{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01}
	assert.Equal(t, "DE:AD:BE:EF:00:01", b.String())

	got, err := ParseBSSID("de:ad:be:ef:00:01")
	require.NoError(t, err)
	assert.Equal(t, b, got)

	_, err = ParseBSSID("nope")
	require.ErrorIs(t, err, ErrBadBSSID)
}

func TestSortByStrength(t *testing.T) {
	st := []Station{{SSID: "a", RSSI: -70}, {SSID: "b", RSSI: -40}, {SSID: "c", RSSI: -70}, {SSID: "d", RSSI: -50}}
	SortByStrength(st)

	var names []string
	for _, s := range st {
		names = append(names, s.SSID)
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, names)
}

func TestSpectralMaskSelection(t *testing.T) {
	assert.Equal(t, Mask11b, SpectralMask(Station{Channel: 6, PHY: PHY11b | PHY11g | PHY11n}))
	assert.Equal(t, Mask11g, SpectralMask(Station{Channel: 6, PHY: PHY11g}))
	assert.Equal(t, Mask11g, SpectralMask(Station{Channel: 6, PHY: PHY11n}))
	assert.Equal(t, Mask11n40MHz24G, SpectralMask(Station{Channel: 6, PHY: PHY11n, Secondary: SecondaryAbove}))
	assert.Nil(t, SpectralMask(Station{Channel: 36, PHY: PHY11n}))
	assert.Equal(t, Mask11n40MHz50G, SpectralMask(Station{Channel: 36, PHY: PHY11n, Secondary: SecondaryBelow}))
}

type hit struct{ ch, level int }

func collect(s Station) []hit {
	var out []hit
	Interference(s, func(ch, level int) { out = append(out, hit{ch, level}) })
	return out
}

func TestInterference24(t *testing.T) {
	got := collect(Station{Channel: 2, RSSI: -50, PHY: PHY11b})
	assert.Equal(t, []hit{
		{2, -50},
		{3, -50}, {1, -50},
		{4, -50},
		{5, -80},
		{6, -80},
	}, got)
}

func TestInterferenceDropsBelowNoiseFloor(t *testing.T) {
	got := collect(Station{Channel: 11, RSSI: -70, PHY: PHY11g})
	assert.Equal(t, []hit{{11, -70}, {10, -70}, {9, -80}}, got)
}

func TestInterference50HasNoCrosstalk(t *testing.T) {
	got := collect(Station{Channel: 149, RSSI: -40, PHY: PHY11n, Secondary: SecondaryAbove})
	assert.Equal(t, []hit{{149, -40}}, got)
	assert.Empty(t, collect(Station{Channel: 0, RSSI: -40}))
}

func TestSimulatedIsDeterministic(t *testing.T) {
	ctx := context.Background()
	a, b := NewSimulated(42, 20), NewSimulated(42, 20)
	for i := 0; i < 3; i++ {
		sa, err := a.Scan(ctx)
		require.NoError(t, err)
		sb, err := b.Scan(ctx)
		require.NoError(t, err)
		assert.Equal(t, sa, sb)
	}
}

func TestSimulatedStationsArePlausible(t *testing.T) {
	st, err := NewSimulated(7, 30).Scan(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, st)
	for _, s := range st {
		assert.GreaterOrEqual(t, s.RSSI, NoiseFloor)
		assert.LessOrEqual(t, s.RSSI, -20)
		assert.NotEqual(t, BandUnknown, s.Band())
		assert.Zero(t, s.BSSID[0]&1, "unicast bssid")
	}
}

func TestSimulatedHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSimulated(1, 5).Scan(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestPHYString(t *testing.T) {
	assert.Equal(t, "b/g/n", (PHY11b | PHY11g | PHY11n).String())
	assert.Equal(t, "-", PHY(0).String())
}
