package tracking

import (
	"github.com/shopspring/decimal"
)

// Grade summarizes bale quality after inspection
type Grade string

const (
	GradeA      Grade = "A"
	GradeB      Grade = "B"
	GradeC      Grade = "C"
	GradeD      Grade = "D"
	GradeReject Grade = "REJECT"
)

// BaleColor is the inspected color of a bale
type BaleColor string

const (
	ColorDarkGreen  BaleColor = "dark_green"
	ColorGreen      BaleColor = "green"
	ColorLightGreen BaleColor = "light_green"
	ColorBrown      BaleColor = "brown"
)

// IsValid reports whether the color is one of the known values
func (c BaleColor) IsValid() bool {
	switch c {
	case ColorDarkGreen, ColorGreen, ColorLightGreen, ColorBrown:
		return true
	default:
		return false
	}
}

func (c BaleColor) isGreenish() bool {
	return c == ColorDarkGreen || c == ColorGreen
}

// BaleWetness is the inspected wetness level of a bale
type BaleWetness string

const (
	WetnessDry  BaleWetness = "dry"
	WetnessDamp BaleWetness = "damp"
	WetnessWet  BaleWetness = "wet"
)

// IsValid reports whether the wetness is one of the known values
func (w BaleWetness) IsValid() bool {
	switch w {
	case WetnessDry, WetnessDamp, WetnessWet:
		return true
	default:
		return false
	}
}

// Grading rule boundaries. The rule order in ClassifyGrade decides ties,
// not the magnitude of these values.
var (
	moistureIdealMin  = decimal.NewFromInt(10)
	moistureIdealMax  = decimal.NewFromInt(14)
	moistureHighMax   = decimal.NewFromInt(25)
	moistureRejectMin = decimal.NewFromInt(30)
)

// ClassifyGrade maps raw inspection measurements to a grade. The function
// is pure and total: every input combination yields exactly one grade.
//
// Rules are evaluated in order and the first match wins:
//
//  1. mold, contamination, or wet wetness always reject.
//  2. dark green or green, moisture within [10, 14], and dry is grade A.
//  3. moisture above 30 is grade D.
//  4. moisture above 25 is grade C.
//  5. light green or brown color, moisture in (14, 25], or damp wetness
//     is grade B.
//  6. dark green or green and dry with unknown moisture is grade A.
//  7. anything else defaults to grade B.
//
// A nil moisture means the measurement was not taken.
func ClassifyGrade(moisture *decimal.Decimal, color BaleColor, wetness BaleWetness, mold, contamination bool) Grade {
	if mold || contamination || wetness == WetnessWet {
		return GradeReject
	}

	if color.isGreenish() && wetness == WetnessDry &&
		moisture != nil &&
		moisture.GreaterThanOrEqual(moistureIdealMin) &&
		moisture.LessThanOrEqual(moistureIdealMax) {
		return GradeA
	}

	if moisture != nil && moisture.GreaterThan(moistureRejectMin) {
		return GradeD
	}

	if moisture != nil && moisture.GreaterThan(moistureHighMax) {
		return GradeC
	}

	if color == ColorLightGreen || color == ColorBrown ||
		(moisture != nil && moisture.GreaterThan(moistureIdealMax) && moisture.LessThanOrEqual(moistureHighMax)) ||
		wetness == WetnessDamp {
		return GradeB
	}

	if color.isGreenish() && wetness == WetnessDry {
		return GradeA
	}

	return GradeB
}
