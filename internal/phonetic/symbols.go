package phonetic

// Symbol sets. Every callsign is built from these.
const (
	Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits  = "0123456789"
	Symbols = Letters + Digits
)

// manifest maps each symbol to its asset names. I has an alternate
// recording.
var manifest = map[rune][]string{
	'A': {"alfa.wav"},
	'B': {"bravo.wav"},
	'C': {"charlie.wav"},
	'D': {"delta.wav"},
	'E': {"echo.wav"},
	'F': {"foxtrot.wav"},
	'G': {"golf.wav"},
	'H': {"hotel.wav"},
	'I': {"india.wav", "india-alt.wav"},
	'J': {"juliett.wav"},
	'K': {"kilo.wav"},
	'L': {"lima.wav"},
	'M': {"mike.wav"},
	'N': {"november.wav"},
	'O': {"oscar.wav"},
	'P': {"papa.wav"},
	'Q': {"quebec.wav"},
	'R': {"romeo.wav"},
	'S': {"sierra.wav"},
	'T': {"tango.wav"},
	'U': {"uniform.wav"},
	'V': {"victor.wav"},
	'W': {"whiskey.wav"},
	'X': {"xray.wav"},
	'Y': {"yankee.wav"},
	'Z': {"zulu.wav"},
	'0': {"zero.wav"},
	'1': {"one.wav"},
	'2': {"two.wav"},
	'3': {"three.wav"},
	'4': {"four.wav"},
	'5': {"five.wav"},
	'6': {"six.wav"},
	'7': {"seven.wav"},
	'8': {"eight.wav"},
	'9': {"nine.wav"},
}

// AssetNames returns the asset names for sym in manifest order.
func AssetNames(sym rune) []string {
	names := manifest[sym]
	out := make([]string, len(names))
	copy(out, names)
	return out
}
