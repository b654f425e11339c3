package sentence

// Category is the lexical category of a word, using the single letter
// symbols of the WordNet part-of-speech field.
type Category string

const (
	// Unknown lets the lexical resource consider every category.
	Unknown   Category = ""
	Noun      Category = "n"
	Verb      Category = "v"
	Adjective Category = "a"
	// Satellite adjectives are near synonyms of a head adjective.
	Satellite Category = "s"
	Adverb    Category = "r"
)

// Categories returns the concrete categories in lookup order.
func Categories() []Category {
	return []Category{Noun, Verb, Adjective, Satellite, Adverb}
}

func (c Category) String() string {
	switch c {
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	case Adjective:
		return "adj"
	case Satellite:
		return "adj_sat"
	case Adverb:
		return "adv"
	}

	return "unknown"
}

// ParseCategory converts a WordNet part-of-speech symbol. The second return
// value is false for unrecognized symbols.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case Noun, Verb, Adjective, Satellite, Adverb:
		return Category(s), true
	case Unknown:
		return Unknown, true
	}

	return Unknown, false
}

// Token represents a normalized word of the sentence.
type Token struct {
	// The lowercased word
	Text string `json:"text"`

	// The index of the word in the filtered sentence, starting at 0.
	Index int `json:"index"`
}

// Tagged is a Token with its part of speech and lemma.
type Tagged struct {
	Text string `json:"text"`

	// A string containing the raw treebank tag
	Tag string `json:"tag"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	Category Category `json:"pos"`
}

// Sense is a handle into the lexical hierarchy. Nil handles are never stored
// in a Sensed token; an unresolved token has a nil Sense field.
type Sense interface {
	// ID identifies the node in the hierarchy.
	ID() string

	// PathSimilarity returns the path similarity in [0,1]. The second
	// return value is false when the similarity is undefined.
	PathSimilarity(other Sense) (float64, bool)
}

// Sensed is a Tagged token with the sense picked by the disambiguator.
type Sensed struct {
	Lemma    string   `json:"lemma"`
	Category Category `json:"pos"`

	// Sense is nil when no sense could be resolved.
	Sense Sense `json:"-"`
}

// Resolved reports whether the token has a sense.
func (s Sensed) Resolved() bool {
	return s.Sense != nil
}

// SenseID returns the id of the sense or an empty string.
func (s Sensed) SenseID() string {
	if s.Sense == nil {
		return ""
	}

	return s.Sense.ID()
}
