package phreeqc

import (
	"strconv"
	"strings"
)

// parseFormula derives the elemental composition of a chemical formula such
// as "CaCO3", "Fe(OH)3" or "CaSO4:2H2O". Charge suffixes are ignored and
// lowercase-only tokens (e.g. the electron "e-") contribute nothing.
// Coefficients may be fractional.
func parseFormula(formula string) []CompositionEntry {
	if i := strings.IndexAny(formula, "+-"); i >= 0 {
		formula = formula[:i]
	}
	order, counts := parseGroup(formula, 1)
	entries := make([]CompositionEntry, 0, len(order))
	for _, symbol := range order {
		entries = append(entries, CompositionEntry{Element: symbol, Coefficient: counts[symbol]})
	}
	return entries
}

// parseGroup walks one formula segment, scaling every element count by
// factor. It returns element symbols in first-appearance order with their
// accumulated counts.
func parseGroup(s string, factor float64) ([]string, map[string]float64) {
	order := []string{}
	counts := map[string]float64{}
	add := func(symbol string, n float64) {
		if _, ok := counts[symbol]; !ok {
			order = append(order, symbol)
		}
		counts[symbol] += n
	}

	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			j := i + 1
			for j < len(s) && s[j] >= 'a' && s[j] <= 'z' {
				j++
			}
			symbol := s[i:j]
			count, k := readCount(s, j)
			add(symbol, count*factor)
			i = k
		case c == '(':
			depth, j := 1, i+1
			for j < len(s) && depth > 0 {
				if s[j] == '(' {
					depth++
				} else if s[j] == ')' {
					depth--
				}
				j++
			}
			inner := s[i+1 : j-1]
			count, k := readCount(s, j)
			innerOrder, innerCounts := parseGroup(inner, factor*count)
			for _, symbol := range innerOrder {
				add(symbol, innerCounts[symbol])
			}
			i = k
		case c == ':':
			// hydrate notation: the remainder is a formula with a leading
			// multiplier, e.g. ":2H2O"
			count, k := readCount(s, i+1)
			innerOrder, innerCounts := parseGroup(s[k:], factor*count)
			for _, symbol := range innerOrder {
				add(symbol, innerCounts[symbol])
			}
			return order, counts
		default:
			i++
		}
	}
	return order, counts
}

// readCount reads an optional numeric count at position i, defaulting to 1.
func readCount(s string, i int) (float64, int) {
	j := i
	for j < len(s) && (s[j] >= '0' && s[j] <= '9' || s[j] == '.') {
		j++
	}
	if j == i {
		return 1, i
	}
	value, err := strconv.ParseFloat(s[i:j], 64)
	if err != nil {
		return 1, j
	}
	return value, j
}
