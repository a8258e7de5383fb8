package wifi

// NoiseFloor is the weakest signal counted as interference, in dBm.
const NoiseFloor = -90

// Spectral masks: attenuation in dB at 1, 2, 3... channels from the primary,
// applied on both sides.
var (
	Mask11b         = []int{0, 0, -30, -30}
	Mask11g         = []int{0, -10, -26, -28}
	Mask11n40MHz24G = []int{0, 0, 0, -10, -22, -25, -27, -30}
	Mask11n40MHz50G = []int{0, -10, -30}
)

// SpectralMask picks the mask for a station. 11b dominates when advertised
// since it is the widest of the 2.4 GHz masks.
func SpectralMask(s Station) []int {
	is24 := s.Band() == Band24
	switch {
	case s.PHY&PHY11b != 0:
		return Mask11b
	case s.PHY&(PHY11n|PHY11ac) != 0:
		if s.Secondary == SecondaryNone {
			if is24 {
				return Mask11g
			}
			return nil
		}
		if is24 {
			return Mask11n40MHz24G
		}
		return Mask11n40MHz50G
	default:
		return Mask11g
	}
}

// Interference reports every (channel, level) the station contributes to its
// band: the primary channel at full strength, then neighbours attenuated by
// the spectral mask. Levels under NoiseFloor are dropped.
//
// Crosstalk is only modelled on 2.4 GHz.
// TODO: offset 5 GHz 40 MHz masks by the secondary channel position.
func Interference(s Station, emit func(channel, level int)) {
	if s.Band() == BandUnknown {
		return
	}
	emit(s.Channel, s.RSSI)
	if s.Band() != Band24 {
		return
	}
	for i, db := range SpectralMask(s) {
		level := s.RSSI + db
		if level < NoiseFloor {
			continue
		}
		off := i + 1
		if ch := s.Channel + off; ch <= MaxChannel24 {
			emit(ch, level)
		}
		if ch := s.Channel - off; ch > 0 {
			emit(ch, level)
		}
	}
}
