package pokegpt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Generation identifies one era of battle mechanics, ordinals 1 through 9.
// Every table lookup in the engine is keyed off one of these, so an ordinal
// outside that window fails loudly instead of falling back to some era.
type Generation int

const (
	GEN_1 Generation = iota + 1
	GEN_2
	GEN_3
	GEN_4
	GEN_5
	GEN_6
	GEN_7
	GEN_8
	GEN_9
)

const (
	MIN_GENERATION = GEN_1
	MAX_GENERATION = GEN_9
)

var GENERATIONS = [...]Generation{GEN_1, GEN_2, GEN_3, GEN_4, GEN_5, GEN_6, GEN_7, GEN_8, GEN_9}

var romanNumerals = [...]string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX"}

// Strict numeral grammar. Additive sloppiness ("IIII"), bad subtractive pairs
// ("VX", "IC") and mixed-case numerals are rejected before any conversion.
var romanPattern = regexp.MustCompile(`^M{0,10}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`)

var arabicPattern = regexp.MustCompile(`^[0-9]+$`)

var romanDigits = map[byte]int{'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000}

// ParseGeneration reads a generation ordinal written either as an Arabic
// numeral ("1" .. "9") or an uppercase Roman numeral ("I" .. "IX").
// Anything else, including ordinals outside the window, wraps ErrFormat.
func ParseGeneration(value string) (Generation, error) {
	ordinal, err := parseOrdinal(strings.TrimSpace(value))
	if err != nil {
		return 0, err
	}

	return Generation(ordinal), nil
}

func (g Generation) Valid() bool {
	return g >= MIN_GENERATION && g <= MAX_GENERATION
}

// String renders the ordinal as its Roman numeral, matching how eras are
// usually written out.
func (g Generation) String() string {
	if !g.Valid() {
		return fmt.Sprintf("Generation(%d)", int(g))
	}

	return romanNumerals[g-1]
}

// Matches reports whether the generation falls inside a range expression.
// Three forms are accepted, with Arabic and Roman ordinals mixing freely:
//
//	"4"     exactly generation 4
//	"II-V"  generations 2 through 5 inclusive, bounds in either order
//	"6+"    generation 6 and everything after it
//
// A malformed expression or an invalid receiver wraps ErrFormat rather than
// quietly matching nothing.
func (g Generation) Matches(expr string) (bool, error) {
	if !g.Valid() {
		return false, fmt.Errorf("%w: generation ordinal %d out of range", ErrFormat, int(g))
	}

	expr = strings.TrimSpace(expr)
	switch {
	case strings.Contains(expr, "-"):
		bounds := strings.Split(expr, "-")
		if len(bounds) != 2 {
			return false, fmt.Errorf("%w: range %q needs exactly two bounds", ErrFormat, expr)
		}

		low, err := parseOrdinal(strings.TrimSpace(bounds[0]))
		if err != nil {
			return false, err
		}
		high, err := parseOrdinal(strings.TrimSpace(bounds[1]))
		if err != nil {
			return false, err
		}

		if low > high {
			low, high = high, low
		}

		return int(g) >= low && int(g) <= high, nil
	case strings.HasSuffix(expr, "+"):
		floor, err := parseOrdinal(strings.TrimSpace(strings.TrimSuffix(expr, "+")))
		if err != nil {
			return false, err
		}

		return int(g) >= floor, nil
	default:
		exact, err := parseOrdinal(expr)
		if err != nil {
			return false, err
		}

		return int(g) == exact, nil
	}
}

func parseOrdinal(token string) (int, error) {
	if token == "" {
		return 0, fmt.Errorf("%w: empty ordinal", ErrFormat)
	}

	var ordinal int
	if arabicPattern.MatchString(token) {
		// The pattern already excludes signs, so Atoi can only fail on overflow
		parsed, err := strconv.Atoi(token)
		if err != nil {
			return 0, fmt.Errorf("%w: ordinal %q out of range", ErrFormat, token)
		}
		ordinal = parsed
	} else {
		if !romanPattern.MatchString(token) {
			return 0, fmt.Errorf("%w: %q is not a numeral", ErrFormat, token)
		}
		ordinal = romanToInt(token)
	}

	if ordinal < int(MIN_GENERATION) || ordinal > int(MAX_GENERATION) {
		return 0, fmt.Errorf("%w: ordinal %q outside generations %d-%d", ErrFormat, token, MIN_GENERATION, MAX_GENERATION)
	}

	return ordinal, nil
}

// Standard subtractive scan. The strict grammar has already matched by the
// time this runs.
func romanToInt(numeral string) int {
	total := 0
	for i := 0; i < len(numeral); i++ {
		value := romanDigits[numeral[i]]
		if i+1 < len(numeral) && value < romanDigits[numeral[i+1]] {
			total -= value
		} else {
			total += value
		}
	}

	return total
}
