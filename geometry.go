package leddy

// NoLED marks a grid cell without a physical key.
const NoLED = 0xff

// GridHeight is the number of key rows on both variants.
const GridHeight = 6

// LED indices of individual keys.
const (
	LEDFnLock    = 0
	LEDEscape    = 1
	LEDBacktick  = 2
	LEDTab       = 3
	LEDCapsLock  = 4
	LEDLShift    = 5
	LEDLControl  = 6
	LEDF1        = 7
	LED1         = 8
	LEDQ         = 9
	LEDA         = 10
	LEDISOPipe   = 11
	LEDMeta      = 12
	LEDF2        = 13
	LED2         = 14
	LEDW         = 15
	LEDS         = 16
	LEDZ         = 17
	LEDLAlt      = 18
	LEDF3        = 19
	LED3         = 20
	LEDE         = 21
	LEDD         = 22
	LEDX         = 23
	LEDF4        = 25
	LED4         = 26
	LEDR         = 27
	LEDF         = 28
	LEDC         = 29
	LEDF5        = 31
	LED5         = 32
	LEDT         = 33
	LEDG         = 34
	LEDV         = 35
	LEDSpace     = 36
	LEDF6        = 37
	LED6         = 38
	LEDY         = 39
	LEDH         = 40
	LEDB         = 41
	LEDF7        = 43
	LED7         = 44
	LEDU         = 45
	LEDJ         = 46
	LEDN         = 47
	LEDF8        = 49
	LED8         = 50
	LEDI         = 51
	LEDK         = 52
	LEDM         = 53
	LEDF9        = 55
	LED9         = 56
	LEDO         = 57
	LEDL         = 58
	LEDComma     = 59
	LEDRAlt      = 60
	LED0         = 61
	LEDMinus     = 62
	LEDP         = 63
	LEDSemicolon = 64
	LEDDot       = 65
	LEDSlash     = 66
	LEDF10       = 67
	LEDEqual     = 68
	LEDLBracket  = 69
	LEDQuote     = 70
	LEDFn        = 72
	LEDF11       = 73

	LEDRBracket      = 75
	LEDISOBackslash  = 76
	LEDRShift        = 77
	LEDMenu          = 78
	LEDF12           = 79
	LEDBackspace     = 80
	LEDANSIBackslash = 81
	LEDEnter         = 82
	LEDRControl      = 83
	LEDLeft          = 84
	LEDDown          = 85
	LEDRight         = 86
	LEDUp            = 87
	LEDDelete        = 88
	LEDInsert        = 89
	LEDPrint         = 90
	LEDMuteMic       = 91
	LEDMuteSpeaker   = 92
	LEDScrollLock    = 93
	LEDHome          = 94
	LEDEnd           = 95
	LEDPageDown      = 96
	LEDGamingMode    = 97
	LEDPause         = 98
	LEDPageUp        = 99

	// compact variant only
	LEDMiniSigPlate = 103

	// full-size variant only
	LEDNumLock      = 100
	LEDNum7         = 101
	LEDNum4         = 102
	LEDNum1         = 103
	LEDNum0         = 104
	LEDNum2         = 105
	LEDNum5         = 106
	LEDNum8         = 107
	LEDNumSlash     = 108
	LEDNumAsterisk  = 109
	LEDNum9         = 110
	LEDNum6         = 111
	LEDNum3         = 112
	LEDNumDecimal   = 113
	LEDNumEnter     = 114
	LEDNumPlus      = 115
	LEDNumMinus     = 116
	LEDVolumeKnob   = 118
	LEDFullSigPlate = 120
)

// Geometry maps the physical key grid of one keyboard variant to firmware
// LED indices.
type Geometry struct {
	Name     string
	Width    int
	Height   int
	LEDCount int

	// Width*Height entries, row first. Cells without a key hold NoLED.
	Map []uint8
}

var compactMap = [18 * GridHeight]uint8{
	1, 0, 7, 13, 19, 25, 31, 37, 43, 49, 103, 55, 67, 73, 79, 90, 93, 98,
	2, 8, 14, 20, 26, 32, 38, 44, 50, 56, 61, 62, 68, 74, 80, 89, 94, 99,
	3, 9, 15, 21, 27, 33, 39, 45, 51, 57, 63, 69, 75, 0xff, 81, 88, 95, 96,
	4, 0xff, 10, 16, 22, 28, 34, 40, 46, 52, 58, 64, 70, 76, 82, 0xff, 0xff, 0xff,
	5, 11, 17, 23, 29, 35, 41, 47, 53, 59, 65, 66, 71, 77, 0xff, 0xff, 87, 0xff,
	6, 12, 0xff, 18, 24, 30, 36, 42, 48, 54, 60, 72, 0xff, 78, 83, 84, 85, 86,
}

var fullSizeMap = [22 * GridHeight]uint8{
	1, 0, 7, 13, 19, 25, 31, 37, 43, 49, 120, 55, 67, 73, 79, 90, 93, 98, 91, 97, 92, 118,
	2, 8, 14, 20, 26, 32, 38, 44, 50, 56, 61, 62, 68, 74, 80, 89, 94, 99, 100, 108, 109, 116,
	3, 9, 15, 21, 27, 33, 39, 45, 51, 57, 63, 69, 75, 0xff, 81, 88, 95, 96, 101, 107, 110, 115,
	4, 0xff, 10, 16, 22, 28, 34, 40, 46, 52, 58, 64, 70, 76, 82, 0xff, 0xff, 0xff, 102, 106, 111, 0xff,
	5, 11, 17, 23, 29, 35, 41, 47, 53, 59, 65, 66, 71, 77, 0xff, 0xff, 87, 0xff, 103, 105, 112, 114,
	6, 12, 0xff, 18, 24, 30, 36, 42, 48, 54, 60, 72, 0xff, 78, 83, 84, 85, 86, 104, 0xff, 113, 0xff,
}

var (
	// Compact is the miniSTREAK layout.
	Compact = Geometry{
		Name:     "miniSTREAK",
		Width:    18,
		Height:   GridHeight,
		LEDCount: 106,
		Map:      compactMap[:],
	}

	// FullSize is the STREAK layout with numpad and media keys.
	FullSize = Geometry{
		Name:     "STREAK",
		Width:    22,
		Height:   GridHeight,
		LEDCount: 124,
		Map:      fullSizeMap[:],
	}
)

// GeometryFor returns the layout of the compact or the full-size variant.
func GeometryFor(mini bool) Geometry {
	if mini {
		return Compact
	}
	return FullSize
}

// LED returns the LED index at the given grid cell, and false if the cell
// has no key or lies outside the grid.
func (g Geometry) LED(row, col int) (int, bool) {
	if row < 0 || row >= g.Height || col < 0 || col >= g.Width {
		return 0, false
	}
	m := g.Map[row*g.Width+col]
	if m == NoLED {
		return 0, false
	}
	return int(m), true
}

// FrameSize is the number of raw bytes in one all-keys frame.
func (g Geometry) FrameSize() int {
	return g.LEDCount * 3
}
