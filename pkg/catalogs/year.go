package catalogs

import (
	"strconv"
	"strings"

	"github.com/agentstation/moviemap/pkg/constants"
)

// YearKind classifies a parsed Year field.
type YearKind int

const (
	// YearUnknown means the field did not yield any year.
	YearUnknown YearKind = iota
	// YearSingle is a single release year.
	YearSingle
	// YearRange is an inclusive run of years, as used by series.
	YearRange
)

// String returns the kind name.
func (k YearKind) String() string {
	switch k {
	case YearSingle:
		return "single"
	case YearRange:
		return "range"
	default:
		return "unknown"
	}
}

// YearSpan is the parsed form of a Year field.
type YearSpan struct {
	Kind  YearKind
	Start int
	End   int // equal to Start for single years
}

// ParseYear parses a Year field such as "1994", "2008–2013" or "2008-2013".
//
// The field is split on the en-dash and the hyphen; empty tokens are
// discarded, so a trailing dash ("2016–") reads as a single year. If the
// first two tokens are integers the result is a range. Otherwise an integer
// first token yields a single year, and anything else is YearUnknown.
func ParseYear(field string) YearSpan {
	tokens := strings.FieldsFunc(field, func(r rune) bool {
		return strings.ContainsRune(constants.YearRangeDelimiters, r)
	})
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}
	if len(tokens) == 0 {
		return YearSpan{}
	}

	first, err := strconv.Atoi(tokens[0])
	if err != nil {
		return YearSpan{}
	}
	if len(tokens) > 1 {
		if last, err := strconv.Atoi(tokens[1]); err == nil {
			return YearSpan{Kind: YearRange, Start: first, End: last}
		}
	}
	return YearSpan{Kind: YearSingle, Start: first, End: first}
}

// IsRange reports whether the span came from a "start–end" field.
func (y YearSpan) IsRange() bool {
	return y.Kind == YearRange
}

// IsSingle reports whether the span is a single year.
func (y YearSpan) IsSingle() bool {
	return y.Kind == YearSingle
}

// Valid reports whether the span yields at least one year.
// A reversed range (start after end) is malformed and yields none, as is a
// range wider than constants.MaxYearRangeSpan.
func (y YearSpan) Valid() bool {
	switch y.Kind {
	case YearSingle:
		return true
	case YearRange:
		return y.Start <= y.End && y.End-y.Start <= constants.MaxYearRangeSpan
	default:
		return false
	}
}

// Contains reports whether year falls inside the span, inclusive.
func (y YearSpan) Contains(year int) bool {
	if !y.Valid() {
		return false
	}
	return y.Start <= year && year <= y.End
}

// Years expands the span into every year it covers, ascending.
func (y YearSpan) Years() []int {
	if !y.Valid() {
		return nil
	}
	years := make([]int, 0, y.End-y.Start+1)
	for year := y.Start; year <= y.End; year++ {
		years = append(years, year)
	}
	return years
}

// String renders the span in canonical form: "1994", "2008–2013", or "".
func (y YearSpan) String() string {
	switch y.Kind {
	case YearSingle:
		return strconv.Itoa(y.Start)
	case YearRange:
		return strconv.Itoa(y.Start) + "–" + strconv.Itoa(y.End)
	default:
		return ""
	}
}
