package text

import "strings"

// irregulars maps irregular plural forms to their singular. Table-driven,
// never guessed.
var irregulars = map[string]string{
	"children": "child",
	"feet":     "foot",
	"geese":    "goose",
	"men":      "man",
	"mice":     "mouse",
	"oxen":     "ox",
	"people":   "person",
	"teeth":    "tooth",
	"women":    "woman",
	"knives":   "knife",
	"lives":    "life",
	"wives":    "wife",
	"leaves":   "leaf",
	"wolves":   "wolf",
	"halves":   "half",
	"indices":  "index",
	"matrices": "matrix",
	"analyses": "analysis",
	"crises":   "crisis",
	"buses":    "bus",

	// -ie stems the consonant+ies rule would mangle
	"movies":    "movie",
	"cookies":   "cookie",
	"zombies":   "zombie",
	"selfies":   "selfie",
	"smoothies": "smoothie",
	"calories":  "calorie",
	"genies":    "genie",
	"pixies":    "pixie",
}

// uncountables are forms identical in singular and plural; they pass through.
var uncountables = map[string]struct{}{
	"news": {}, "series": {}, "species": {}, "fish": {}, "sheep": {},
	"deer": {}, "music": {}, "equipment": {}, "information": {},
	"physics": {}, "politics": {}, "economics": {},
}

// esSuffixes are endings where the plural appends "es".
var esSuffixes = []string{"xes", "ches", "shes", "sses", "zes", "oes"}

// Singularize reduces a token to its singular form using deterministic
// morphological rules. Rule order: irregular table, uncountable table,
// consonant+ies, es-appending suffixes, trailing s. Tokens ending in
// ss/us/is are left alone.
func Singularize(word string) string {
	if s, ok := irregulars[word]; ok {
		return s
	}
	if _, ok := uncountables[word]; ok {
		return word
	}

	if strings.HasSuffix(word, "ies") && len(word) > 4 && !isVowel(word[len(word)-4]) {
		return word[:len(word)-3] + "y" // stories -> story
	}

	for _, suf := range esSuffixes {
		if strings.HasSuffix(word, suf) && len(word) > len(suf) {
			return word[:len(word)-2] // boxes -> box, heroes -> hero
		}
	}

	switch {
	case strings.HasSuffix(word, "ss"),
		strings.HasSuffix(word, "us"),
		strings.HasSuffix(word, "is"):
		return word // class, bus, basis
	case strings.HasSuffix(word, "s") && len(word) > 2:
		return word[:len(word)-1] // cats -> cat
	}

	return word
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
