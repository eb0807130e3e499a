package text

// synonyms maps tokens to their canonical form. The lookup is many-to-one
// and applied at most once per token: canonical forms never appear as keys,
// so folding cannot chain or fan out.
var synonyms = map[string]string{
	// content kinds
	"movie":    "film",
	"vid":      "video",
	"clip":     "video",
	"footage":  "video",
	"pic":      "image",
	"photo":    "image",
	"picture":  "image",
	"snapshot": "image",
	"track":    "song",
	"tune":     "song",

	// descriptors
	"amusing":      "funny",
	"comic":        "funny",
	"hilarious":    "funny",
	"humorous":     "funny",
	"enjoyable":    "fun",
	"entertaining": "fun",
	"fantastic":    "great",
	"awesome":      "great",
	"amazing":      "great",
	"fast":         "quick",
	"rapid":        "quick",
	"speedy":       "quick",
	"huge":         "big",
	"large":        "big",
	"giant":        "big",
	"tiny":         "small",
	"little":       "small",
	"simple":       "easy",
	"beginner":     "easy",
	"novice":       "easy",
	"difficult":    "hard",
	"advanced":     "hard",

	// activities
	"tutorial":    "guide",
	"walkthrough": "guide",
	"howto":       "guide",
	"unboxing":    "review",
	"reaction":    "review",
	"gameplay":    "gaming",
	"playthrough": "gaming",
	"livestream":  "stream",
	"broadcast":   "stream",
	"vlog":        "blog",
	"cooking":     "recipe",
	"baking":      "recipe",
	"workout":     "fitness",
	"exercise":    "fitness",
	"footy":       "football",
	"soccer":      "football",
	"automobile":  "car",
	"auto":        "car",
	"kitten":      "cat",
	"kitty":       "cat",
	"puppy":       "dog",
	"doggo":       "dog",
}
