package search

import "strings"

// Stop words to filter out of query term scoring
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true, "what": true, "when": true, "how": true,
}

// tokenizeAndFilter splits text into words, lowercases, trims punctuation, and removes stop words
func tokenizeAndFilter(text string) []string {
	words := strings.Fields(text)
	filtered := make([]string, 0, len(words))

	for _, word := range words {
		cleaned := strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}"))

		if cleaned != "" && !stopWords[cleaned] {
			filtered = append(filtered, cleaned)
		}
	}

	return filtered
}

// foldText lowercases document text and strips punctuation from word
// edges so phrase and term checks line up with canonical query text.
func foldText(text string) string {
	words := strings.Fields(strings.ToLower(text))
	folded := make([]string, 0, len(words))

	for _, word := range words {
		cleaned := strings.Trim(word, ".,!?;:'\"()[]{}")
		if cleaned != "" {
			folded = append(folded, cleaned)
		}
	}

	return strings.Join(folded, " ")
}

// countOccurrences counts non-overlapping occurrences of term in text on
// word boundaries. Both arguments must already be lower-cased.
func countOccurrences(text, term string) int {
	padded := " " + text + " "
	needle := " " + term + " "

	count := 0
	for {
		i := strings.Index(padded, needle)
		if i < 0 {
			return count
		}
		count++
		// Overlap the trailing space so adjacent occurrences are counted
		padded = padded[i+len(needle)-1:]
	}
}
