package catalogs

import (
	"strings"

	"github.com/agentstation/moviemap/pkg/constants"
)

// SplitList splits a free-text list field on ',' and '-', trims each token
// and drops empty tokens and the "N/A" sentinel. Dataset order is kept and
// duplicates are not removed.
//
// Hyphenated names are split too: "Jean-Pierre Jeunet" yields "Jean" and
// "Pierre Jeunet".
func SplitList(field string) []string {
	parts := strings.FieldsFunc(field, func(r rune) bool {
		return strings.ContainsRune(constants.ListDelimiters, r)
	})

	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || p == constants.NotAvailable {
			continue
		}
		tokens = append(tokens, p)
	}
	return tokens
}
