package utils

import (
	"strconv"
	"strings"
)

// CubicCentimeterToCubicMeter converts a volume from cm3 to m3.
func CubicCentimeterToCubicMeter(value float64) float64 {
	return value * 1e-6
}

// KilocalorieToKilojoule converts an energy from kcal to kJ.
// Uses the thermochemical calorie (1 cal = 4.184 J).
func KilocalorieToKilojoule(value float64) float64 {
	return value * 4.184
}

// CelsiusToKelvin converts a temperature from degrees Celsius to Kelvin.
func CelsiusToKelvin(value float64) float64 {
	return value + 273.15
}

// BarToPascal converts a pressure from bar to Pascal.
func BarToPascal(value float64) float64 {
	return value * 1e5
}

// ToFloat parses a leading floating-point number from a string, tolerating
// trailing garbage (e.g. "13.362 kcal" parses as 13.362). A bare sign with
// no digits or an unparseable string yields 0.
func ToFloat(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	seenDigit := false
scan:
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
			end = i + 1
		case c == '+' || c == '-':
			if i != 0 {
				break scan
			}
			end = i + 1
		case c == '.':
			end = i + 1
		case (c == 'e' || c == 'E') && seenDigit:
			if i+1 < len(s) && (s[i+1] == '+' || s[i+1] == '-') {
				i++
			}
			end = i + 1
		default:
			break scan
		}
	}
	if !seenDigit {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimRight(s[:end], "eE+-."), 64)
	if err != nil {
		return 0
	}
	return f
}
