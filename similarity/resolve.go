package similarity

import (
	"go.uber.org/zap"

	sent "github.com/revelaction/sentsem/sentence"
)

// Disambiguator picks the sense of a lemma that best fits a context
// sentence. It returns nil when the lemma has no sense for the category.
type Disambiguator interface {
	BestSense(context, lemma string, pos sent.Category) sent.Sense
}

// FallbackContext selects the context sentence of the satellite retry for
// the second sentence of a comparison.
type FallbackContext int

const (
	// FallbackOwn retries each sentence with its own text.
	FallbackOwn FallbackContext = iota

	// FallbackFirst retries the second sentence with the text of the first
	// one.
	FallbackFirst
)

func (f FallbackContext) String() string {
	if f == FallbackFirst {
		return "first"
	}

	return "own"
}

// ParseFallback parses "own" or "first".
func ParseFallback(s string) (FallbackContext, bool) {
	switch s {
	case "own", "":
		return FallbackOwn, true
	case "first":
		return FallbackFirst, true
	}

	return FallbackOwn, false
}

// Resolver attaches senses to tagged tokens.
type Resolver struct {
	disambiguator Disambiguator
	logger        *zap.Logger
}

// NewResolver returns a Resolver. A nil logger disables logging.
func NewResolver(d Disambiguator, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Resolver{disambiguator: d, logger: logger}
}

// Resolve returns one Sensed token per tagged token, in order. A token whose
// category yields no sense is retried as a satellite adjective with the
// fallback context. Unresolved tokens keep a nil sense.
func (r *Resolver) Resolve(context, fallback string, tagged []sent.Tagged) []sent.Sensed {
	sensed := make([]sent.Sensed, len(tagged))

	for i, t := range tagged {
		sensed[i] = sent.Sensed{Lemma: t.Lemma, Category: t.Category}

		s := r.disambiguator.BestSense(context, t.Lemma, t.Category)
		if s == nil {
			s = r.disambiguator.BestSense(fallback, t.Lemma, sent.Satellite)
		}

		if s == nil {
			r.logger.Debug("unresolved token", zap.String("lemma", t.Lemma), zap.Stringer("pos", t.Category))
			continue
		}

		sensed[i].Sense = s
	}

	return sensed
}
