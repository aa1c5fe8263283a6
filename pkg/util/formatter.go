package util

import (
	"fmt"
	"math"
)

// FormatValueFactor renders value with an SI prefix and the given unit,
// so 0.0042 A prints as "4.200 mA" and 4700 Ohm as "4.700 kOhm".
func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case absValue >= 1e6:
		return fmt.Sprintf("%.3f M%s", value/1e6, unit)
	case absValue >= 1e3:
		return fmt.Sprintf("%.3f k%s", value/1e3, unit)
	case absValue >= 1:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.3f m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.3f u%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.3f n%s", value*1e9, unit)
	case absValue >= 1e-12:
		return fmt.Sprintf("%.3f p%s", value*1e12, unit)
	case absValue == 0:
		return fmt.Sprintf("%.3f %s", 0.0, unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}

// FormatMagnitude keeps tables aligned: scientific notation outside
// [0.001, 1000), fixed width inside.
func FormatMagnitude(value float64) string {
	if value >= 1000 || (value < 0.001 && value != 0) {
		return fmt.Sprintf("%8.2e", value) // "1.00e+03" or "5.43e-05"
	}
	return fmt.Sprintf("%8.3g", value) // "  732.5 "
}
