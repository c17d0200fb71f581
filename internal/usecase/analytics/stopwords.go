package analytics

import "strings"

// stopWords is the curated function-word set dropped when stop-word
// filtering is on. Matching is case- and diacritic-insensitive.
var stopWords = map[string]bool{}

func init() {
	for _, w := range []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "so",
		"of", "to", "in", "on", "at", "by", "for", "with", "from", "into",
		"about", "as", "is", "am", "are", "was", "were", "be", "been", "being",
		"do", "does", "did", "have", "has", "had", "will", "would", "can",
		"could", "should", "shall", "may", "might", "must",
		"i", "you", "he", "she", "it", "we", "they", "me", "him", "her",
		"us", "them", "my", "your", "his", "its", "our", "their", "this",
		"that", "these", "those", "there", "here",
		"not", "no", "yes", "yeah", "ok", "okay", "uh", "um", "uhm", "hmm",
		"like", "just", "well", "now", "also", "very", "really",
	} {
		stopWords[w] = true
	}
}

var diacriticFold = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ä", "a", "ã", "a", "å", "a",
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"í", "i", "ì", "i", "î", "i", "ï", "i",
	"ó", "o", "ò", "o", "ô", "o", "ö", "o", "õ", "o",
	"ú", "u", "ù", "u", "û", "u", "ü", "u",
	"ñ", "n", "ç", "c", "ß", "ss",
)

// foldWord lowercases and strips common diacritics so "Über" and "uber"
// compare equal
func foldWord(w string) string {
	return diacriticFold.Replace(strings.ToLower(w))
}

// IsStopWord reports whether a normalized word is in the stop-word set
func IsStopWord(word string) bool {
	return stopWords[foldWord(word)]
}
