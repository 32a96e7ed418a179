package table

import (
	"strconv"

	"github.com/agentstation/moviemap/pkg/catalogs"
)

// YearCounts returns how many movies cover each year.
func YearCounts(movies []catalogs.Movie) map[string]int {
	counts := make(map[string]int)
	for i := range movies {
		for _, y := range movies[i].Years.Years() {
			counts[strconv.Itoa(y)]++
		}
	}
	return counts
}

// TokenCounts returns how many movies list each token. A token repeated
// within one movie counts once.
func TokenCounts(movies []catalogs.Movie, tokens func(*catalogs.Movie) []string) map[string]int {
	counts := make(map[string]int)
	for i := range movies {
		seen := make(map[string]struct{})
		for _, t := range tokens(&movies[i]) {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			counts[t]++
		}
	}
	return counts
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
