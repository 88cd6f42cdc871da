package phreeqc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"thermodb/core/chem"
	"thermodb/core/utils"
)

// Reader parses a PHREEQC-style database stream into a RecordSet. A Reader
// is constructed per load call and consumed once.
type Reader struct {
	src io.Reader
}

// NewReader creates a Reader over the given stream.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: src}
}

// parser block states
const (
	blockNone = iota
	blockMasters
	blockSpecies
	blockPhases
)

// names that appear in SOLUTION_MASTER_SPECIES but are not chemical
// elements (alkalinity pseudo-element, electron)
var nonElementNames = map[string]bool{
	"Alkalinity": true,
	"E":          true,
	"e":          true,
}

type term struct {
	name  string
	coeff float64
}

// Records consumes the stream and returns the parsed record set. All
// structural problems are accumulated; any problem makes the whole read
// fail, per the load-fatal policy.
func (r *Reader) Records() (*RecordSet, error) {
	set := &RecordSet{}
	var errs []string

	block := blockNone
	var species *SpeciesRecord
	var phase *PhaseRecord
	seenElements := map[string]bool{}
	seenMasters := map[string]bool{}

	fail := func(line int, format string, args ...any) {
		errs = append(errs, fmt.Sprintf("line %d: %s", line, fmt.Sprintf(format, args...)))
	}

	// definitions are flushed once complete, i.e. when the next definition
	// or keyword starts
	flush := func() {
		if species != nil {
			set.Species = append(set.Species, *species)
			species = nil
		}
		if phase != nil {
			set.Phases = append(set.Phases, *phase)
			phase = nil
		}
	}

	scanner := bufio.NewScanner(r.src)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if isKeywordLine(line) {
			flush()
			switch line {
			case "SOLUTION_MASTER_SPECIES":
				block = blockMasters
			case "SOLUTION_SPECIES":
				block = blockSpecies
			case "PHASES":
				block = blockPhases
			default:
				// END and any unsupported keyword block
				block = blockNone
			}
			continue
		}

		switch block {
		case blockMasters:
			fields := strings.Fields(line)
			if len(fields) < 2 {
				fail(lineNo, "master species line needs element and species: %q", line)
				continue
			}
			if master := fields[1]; !seenMasters[master] {
				seenMasters[master] = true
				set.Masters = append(set.Masters, master)
			}
			elementName := fields[0]
			if nonElementNames[elementName] || strings.Contains(elementName, "(") {
				continue
			}
			if len(fields) < 4 || seenElements[elementName] {
				continue
			}
			gfw, err := strconv.ParseFloat(fields[len(fields)-1], 64)
			if err != nil {
				fail(lineNo, "element %s: bad gram formula weight %q", elementName, fields[len(fields)-1])
				continue
			}
			seenElements[elementName] = true
			set.Elements = append(set.Elements, ElementRecord{Name: elementName, MolarMass: gfw})

		case blockSpecies:
			if strings.Contains(line, "=") {
				flush()
				rec, err := parseSpeciesReaction(line)
				if err != nil {
					fail(lineNo, "%v", err)
					continue
				}
				species = &rec
				continue
			}
			if species == nil {
				fail(lineNo, "parameter line outside species definition: %q", line)
				continue
			}
			if err := applyParameter(line, &species.LogK, &species.DeltaH, &species.Analytic, nil); err != nil {
				fail(lineNo, "%v", err)
			}

		case blockPhases:
			if strings.Contains(line, "=") {
				if phase == nil {
					fail(lineNo, "reaction line without phase name: %q", line)
					continue
				}
				elements, reaction, err := parsePhaseReaction(line)
				if err != nil {
					fail(lineNo, "phase %s: %v", phase.Name, err)
					continue
				}
				phase.Elements = elements
				phase.Reaction = reaction
				continue
			}
			if strings.HasPrefix(line, "-") || isParameterLine(line) {
				if phase == nil {
					fail(lineNo, "parameter line outside phase definition: %q", line)
					continue
				}
				if err := applyParameter(line, &phase.LogK, &phase.DeltaH, &phase.Analytic, &phase.MolarVolume); err != nil {
					fail(lineNo, "%v", err)
				}
				continue
			}
			flush()
			name := strings.Fields(line)[0]
			phase = &PhaseRecord{
				Name: name,
				Gas:  strings.HasSuffix(name, "(g)"),
			}
		}
	}
	flush()
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading database stream: %w", err)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%d structural error(s) in database: %s", len(errs), strings.Join(errs, "; "))
	}
	return set, nil
}

// isKeywordLine reports whether the line is a PHREEQC keyword such as
// SOLUTION_SPECIES or END.
func isKeywordLine(line string) bool {
	if strings.ContainsAny(line, " \t=") {
		return false
	}
	for _, c := range line {
		if (c < 'A' || c > 'Z') && c != '_' {
			return false
		}
	}
	return len(line) >= 3
}

// isParameterLine reports whether the line starts with a known undashed
// parameter identifier.
func isParameterLine(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	switch strings.ToLower(fields[0]) {
	case "log_k", "logk", "delta_h", "deltah":
		return true
	}
	return false
}

// parseSpeciesReaction parses an association reaction line of the form
// "CO3-2 + 2 H+ = HCO3-". The defined species is the first right-hand-side
// term. Identity reactions (e.g. "H+ = H+") yield an empty equation.
func parseSpeciesReaction(line string) (SpeciesRecord, error) {
	lhs, rhs, err := splitReaction(line)
	if err != nil {
		return SpeciesRecord{}, err
	}
	defined := rhs[0].name
	rec := SpeciesRecord{
		Name:     defined,
		Charge:   chem.SpeciesCharge(defined),
		Elements: parseFormula(defined),
	}
	if len(lhs) == 1 && len(rhs) == 1 && lhs[0].name == defined {
		return rec, nil // identity reaction: elementary master species
	}
	for _, t := range lhs {
		rec.Reaction = append(rec.Reaction, ReactionEntry{Species: t.name, Coefficient: -t.coeff})
	}
	for _, t := range rhs[1:] {
		rec.Reaction = append(rec.Reaction, ReactionEntry{Species: t.name, Coefficient: t.coeff})
	}
	return rec, nil
}

// parsePhaseReaction parses a dissolution reaction line of the form
// "CaCO3 = CO3-2 + Ca+2". The first left-hand-side term is the phase
// formula itself; it supplies the composition and is excluded from the
// equation.
func parsePhaseReaction(line string) ([]CompositionEntry, []ReactionEntry, error) {
	lhs, rhs, err := splitReaction(line)
	if err != nil {
		return nil, nil, err
	}
	elements := parseFormula(lhs[0].name)
	var reaction []ReactionEntry
	for _, t := range lhs[1:] {
		reaction = append(reaction, ReactionEntry{Species: t.name, Coefficient: -t.coeff})
	}
	for _, t := range rhs {
		reaction = append(reaction, ReactionEntry{Species: t.name, Coefficient: t.coeff})
	}
	return elements, reaction, nil
}

// splitReaction splits a reaction line on '=' and tokenizes both sides.
func splitReaction(line string) (lhs, rhs []term, err error) {
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return nil, nil, fmt.Errorf("malformed reaction %q", line)
	}
	lhs, err = parseTerms(parts[0])
	if err != nil {
		return nil, nil, err
	}
	rhs, err = parseTerms(parts[1])
	if err != nil {
		return nil, nil, err
	}
	if len(lhs) == 0 || len(rhs) == 0 {
		return nil, nil, fmt.Errorf("reaction %q has an empty side", line)
	}
	return lhs, rhs, nil
}

// parseTerms tokenizes one side of a reaction. Terms are separated by
// standalone '+' tokens; a numeric token is the coefficient of the name
// that follows it.
func parseTerms(side string) ([]term, error) {
	var terms []term
	coeff := 1.0
	pending := false
	for _, token := range strings.Fields(side) {
		if token == "+" {
			continue
		}
		if v, err := strconv.ParseFloat(token, 64); err == nil {
			if pending {
				return nil, fmt.Errorf("dangling coefficient in %q", side)
			}
			coeff, pending = v, true
			continue
		}
		terms = append(terms, term{name: token, coeff: coeff})
		coeff, pending = 1.0, false
	}
	if pending {
		return nil, fmt.Errorf("dangling coefficient in %q", side)
	}
	return terms, nil
}

// applyParameter applies one parameter line (log_k, delta_h, -analytic,
// -Vm) to the given slots. molarVolume is nil for aqueous species, which
// have no -Vm parameter.
func applyParameter(line string, logK, deltaH *float64, analytic *[6]float64, molarVolume *float64) error {
	fields := strings.Fields(line)
	key := strings.ToLower(strings.TrimPrefix(fields[0], "-"))
	switch key {
	case "log_k", "logk":
		if len(fields) < 2 {
			return fmt.Errorf("log_k needs a value: %q", line)
		}
		*logK = utils.ToFloat(fields[1])
	case "delta_h", "deltah":
		if len(fields) < 2 {
			return fmt.Errorf("delta_h needs a value: %q", line)
		}
		value := utils.ToFloat(fields[1])
		if len(fields) > 2 && strings.HasPrefix(strings.ToLower(fields[2]), "kcal") {
			value = utils.KilocalorieToKilojoule(value)
		}
		*deltaH = value
	case "analytic", "analytical_expression", "a_e", "ae":
		for i, f := range fields[1:] {
			if i >= len(analytic) {
				break
			}
			analytic[i] = utils.ToFloat(f)
		}
	case "vm":
		if molarVolume == nil {
			return fmt.Errorf("-Vm is only valid for phases: %q", line)
		}
		if len(fields) < 2 {
			return fmt.Errorf("-Vm needs a value: %q", line)
		}
		*molarVolume = utils.ToFloat(fields[1])
	default:
		// unsupported parameter lines (-gamma, -dw, ...) are skipped
	}
	return nil
}
