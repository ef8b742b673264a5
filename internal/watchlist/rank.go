package watchlist

import (
	"sort"
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// rankByTitle sorts movies in place by Jaro-Winkler similarity between
// their titles and the search term, best matches first. Jaro-Winkler
// favors prefix matches, which suits movie titles. Ties keep the
// incoming (newest-first) order.
func rankByTitle(movies []*Movie, term string) {
	normalizedTerm := normalizeTitle(term)

	scores := make(map[*Movie]float64, len(movies))
	for _, m := range movies {
		scores[m] = float64(edlib.JaroWinklerSimilarity(normalizedTerm, normalizeTitle(m.Title)))
	}

	sort.SliceStable(movies, func(i, j int) bool {
		return scores[movies[i]] > scores[movies[j]]
	})
}

// normalizeTitle lowercases, strips accents and punctuation, and
// collapses whitespace for comparison purposes.
func normalizeTitle(title string) string {
	s := strings.ToLower(title)
	s = removeAccents(s)

	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == ':' || r == '.':
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
