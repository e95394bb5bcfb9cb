package geomask

import "strconv"
import "strings"

// Keep selects which occurrence of a duplicated value is left without a
// numeric suffix by [EnumerateDuplicates].
type Keep uint8

const (
	KeepNone  Keep = iota // suffix every occurrence
	KeepFirst             // leave the first occurrence untouched
	KeepLast              // leave the last occurrence untouched
)

// EnumerateDuplicates returns a copy of values where duplicated entries
// are disambiguated with a numeric suffix. Values that appear only once
// are returned unchanged, duplicate groups are independent of each other
// (suffix numbering restarts at 0 per group), and relative order is
// always preserved.
//
// The keep policy decides which occurrence stays unsuffixed:
//
//	EnumerateDuplicates([]string{"a", "a", "b"}, KeepNone)  // ["a0", "a1", "b"]
//	EnumerateDuplicates([]string{"a", "a", "b"}, KeepFirst) // ["a", "a0", "b"]
//	EnumerateDuplicates([]string{"a", "a", "b"}, KeepLast)  // ["a0", "a", "b"]
func EnumerateDuplicates(values []string, keep Keep) []string {
	counts := make(map[string]int, len(values))
	for _, value := range values {
		counts[value] += 1
	}

	result := make([]string, len(values))
	occurrences := make(map[string]int, len(values))
	for i, value := range values {
		occurrence := occurrences[value]
		occurrences[value] = occurrence + 1
		if counts[value] == 1 {
			result[i] = value
			continue
		}
		switch keep {
		case KeepFirst:
			if occurrence == 0 {
				result[i] = value
			} else {
				result[i] = value + strconv.Itoa(occurrence-1)
			}
		case KeepLast:
			if occurrence == counts[value]-1 {
				result[i] = value
			} else {
				result[i] = value + strconv.Itoa(occurrence)
			}
		default: // KeepNone
			result[i] = value + strconv.Itoa(occurrence)
		}
	}
	return result
}

// Brackets and dots are dropped outright; slashes and hyphens act as word
// separators, same as whitespace.
var abbrevCleaner = strings.NewReplacer(
	"(", "", ")", "", "[", "", "]", "", ".", "",
	"/", " ", "-", " ",
)

// ConstructAbbrevs derives a unique abbreviation for every name: each name
// is split into words, each word contributes up to its first three letters
// (non-letters are dropped), and the pieces are concatenated in order.
// Names that collapse to the same abbreviation are then disambiguated with
// [EnumerateDuplicates] under the [KeepNone] policy, so the result is
// always duplicate-free:
//
//	ConstructAbbrevs([]string{"Unit Square1", "Unit Square2"}) // ["UniSqu0", "UniSqu1"]
//	ConstructAbbrevs([]string{"Stuvw-Xyz"})                    // ["StuXyz"]
func ConstructAbbrevs(names []string) []string {
	abbrevs := make([]string, len(names))
	for i, name := range names {
		var builder strings.Builder
		for _, word := range strings.Fields(abbrevCleaner.Replace(name)) {
			builder.WriteString(wordLetters(word, 3))
		}
		abbrevs[i] = builder.String()
	}
	return EnumerateDuplicates(abbrevs, KeepNone)
}

// Returns the first maxLetters ASCII letters of the word, skipping any
// other characters along the way. Only A-Z and a-z count as letters,
// accented and non-latin characters are dropped like digits are.
func wordLetters(word string, maxLetters int) string {
	var builder strings.Builder
	letters := 0
	for _, codePoint := range word {
		if !isASCIILetter(codePoint) { continue }
		builder.WriteRune(codePoint)
		letters += 1
		if letters == maxLetters { break }
	}
	return builder.String()
}

func isASCIILetter(codePoint rune) bool {
	return (codePoint >= 'A' && codePoint <= 'Z') || (codePoint >= 'a' && codePoint <= 'z')
}
