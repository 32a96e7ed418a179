// Package matcher matches movie titles against glob or regex patterns.
package matcher

import (
	"path"
	"regexp"
	"strings"

	"golang.org/x/text/cases"

	"github.com/agentstation/moviemap/pkg/errors"
)

// PatternType represents the type of pattern matching to use.
type PatternType int

const (
	// Glob uses shell-style glob patterns (*, ?, []).
	Glob PatternType = iota
	// Regex uses regular expressions.
	Regex
	// Auto detects the pattern type from its metacharacters.
	Auto
)

// String returns a string representation of the PatternType.
func (pt PatternType) String() string {
	switch pt {
	case Glob:
		return "glob"
	case Regex:
		return "regex"
	case Auto:
		return "auto"
	default:
		return "unknown"
	}
}

// Matcher reports whether titles match a compiled pattern.
type Matcher interface {
	// Match checks if the input matches the pattern
	Match(input string) bool
	// MatchAll returns the matching inputs in order.
	MatchAll(inputs ...string) []string
	// Pattern returns the original pattern string.
	Pattern() string
	// Type returns the pattern type being used.
	Type() PatternType
}

type matcher struct {
	pattern     string
	patternType PatternType
	glob        string
	compiled    *regexp.Regexp
	fold        bool
}

// Options configures the matcher behavior.
type Options struct {
	// CaseInsensitive folds case before glob matching and adds (?i) to regexes
	CaseInsensitive bool
	// Anchored adds ^ and $ to regex patterns if not present
	Anchored bool
}

// New compiles pattern. Titles are whole strings, so a glob must cover the
// entire title: "batman*" matches "Batman Begins" but "*dark*" is needed
// for "The Dark Knight".
func New(patternType PatternType, pattern string, opts ...Options) (Matcher, error) {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}

	m := &matcher{
		pattern:     pattern,
		patternType: patternType,
		fold:        o.CaseInsensitive,
	}
	if patternType == Auto {
		m.patternType = detectPatternType(pattern)
	}

	switch m.patternType {
	case Glob:
		m.glob = pattern
		if m.fold {
			m.glob = cases.Fold().String(pattern)
		}
		if _, err := path.Match(m.glob, ""); err != nil {
			return nil, errors.NewValidationError("pattern", pattern, "invalid glob pattern: "+err.Error())
		}
	case Regex:
		expr := pattern
		if o.Anchored {
			if !strings.HasPrefix(expr, "^") {
				expr = "^" + expr
			}
			if !strings.HasSuffix(expr, "$") {
				expr += "$"
			}
		}
		if m.fold && !strings.HasPrefix(expr, "(?i)") {
			expr = "(?i)" + expr
		}
		compiled, err := regexp.Compile(expr)
		if err != nil {
			return nil, errors.NewValidationError("pattern", pattern, "invalid regex pattern: "+err.Error())
		}
		m.compiled = compiled
	default:
		return nil, errors.NewValidationError("pattern_type", m.patternType.String(), "unsupported pattern type")
	}
	return m, nil
}

// Match checks if the input matches the pattern.
func (m *matcher) Match(input string) bool {
	switch m.patternType {
	case Glob:
		if m.fold {
			input = cases.Fold().String(input)
		}
		matched, _ := path.Match(m.glob, input)
		return matched
	case Regex:
		return m.compiled.MatchString(input)
	default:
		return false
	}
}

// MatchAll returns the matching inputs in order.
func (m *matcher) MatchAll(inputs ...string) []string {
	results := make([]string, 0)
	for _, input := range inputs {
		if m.Match(input) {
			results = append(results, input)
		}
	}
	return results
}

// Pattern returns the original pattern string.
func (m *matcher) Pattern() string {
	return m.pattern
}

// Type returns the pattern type being used.
func (m *matcher) Type() PatternType {
	return m.patternType
}

// detectPatternType treats anything with regex-only metacharacters as a
// regex and everything else as a glob.
func detectPatternType(pattern string) PatternType {
	regexIndicators := []string{
		"^", "$", `\d`, `\w`, `\s`, "(?i)", "{", "}", "+", "|", "(", ")", ".*",
	}
	for _, indicator := range regexIndicators {
		if strings.Contains(pattern, indicator) {
			return Regex
		}
	}
	return Glob
}
