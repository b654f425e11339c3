// Package similarity scores the semantic similarity of two sentences over a
// lexical hierarchy.
//
// Each sentence is normalized, tagged, lemmatized and its tokens resolved
// to senses. The path similarity of every pair of resolved tokens fills a
// matrix whose best matches along the shorter sentence are summed and
// normalized by the total token count:
//
//	score = 2 * sum / (lenA + lenB)
//
// Unresolved tokens contribute nothing to the sum but count in the lengths.
//
// A Scorer holds no mutable state. It is safe for concurrent use as long as
// its collaborators are, which holds for the read-only lexical hierarchy of
// package wordnet.
package similarity

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	sent "github.com/revelaction/sentsem/sentence"
)

// ErrEmpty is returned by Compare when both sentences have no token left
// after normalization. The score is then 0.
var ErrEmpty = errors.New("both sentences are empty after normalization")

// Normalizer splits a sentence into filtered tokens.
type Normalizer interface {
	Tokens(s string) []sent.Token
}

// Tagger tags and lemmatizes tokens.
type Tagger interface {
	TagAndLemmatize(tokens []sent.Token) []sent.Tagged
}

// Comparison holds every intermediate result of a sentence comparison.
type Comparison struct {
	TextA string `json:"text_a"`
	TextB string `json:"text_b"`

	TaggedA []sent.Tagged `json:"tagged_a"`
	TaggedB []sent.Tagged `json:"tagged_b"`

	// One entry per tagged token, unresolved ones included.
	A []sent.Sensed `json:"-"`
	B []sent.Sensed `json:"-"`

	Matrix Matrix `json:"matrix"`

	LenA int `json:"len_a"`
	LenB int `json:"len_b"`

	// Short is the side whose best matches were summed.
	Short Side    `json:"short"`
	Sum   float64 `json:"sum"`
	Score float64 `json:"score"`

	// Empty is set when both sentences have no token.
	Empty bool `json:"empty"`
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithFallback sets the context of the satellite retry.
func WithFallback(f FallbackContext) Option {
	return func(s *Scorer) {
		s.fallback = f
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Scorer) {
		if l != nil {
			s.logger = l
		}
	}
}

// Scorer compares sentences.
type Scorer struct {
	normalizer Normalizer
	tagger     Tagger
	resolver   *Resolver
	fallback   FallbackContext
	logger     *zap.Logger
}

// New returns a Scorer using the given collaborators.
func New(n Normalizer, t Tagger, d Disambiguator, opts ...Option) *Scorer {
	s := &Scorer{
		normalizer: n,
		tagger:     t,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.resolver = NewResolver(d, s.logger)
	return s
}

// Fallback returns the configured fallback context.
func (s *Scorer) Fallback() FallbackContext {
	return s.fallback
}

// Similarity returns the similarity score of a and b in [0, 1].
func (s *Scorer) Similarity(a, b string) float64 {
	c, _ := s.Compare(a, b)
	return c.Score
}

// Compare runs the whole pipeline and returns its intermediate results. The
// error is ErrEmpty when both sentences are empty after normalization; the
// returned Comparison is valid in that case too.
func (s *Scorer) Compare(a, b string) (Comparison, error) {
	c := Comparison{TextA: a, TextB: b}

	c.TaggedA = s.tagger.TagAndLemmatize(s.normalizer.Tokens(a))
	c.TaggedB = s.tagger.TagAndLemmatize(s.normalizer.Tokens(b))

	fallbackB := b
	if s.fallback == FallbackFirst {
		fallbackB = a
	}

	c.A = s.resolver.Resolve(a, a, c.TaggedA)
	c.B = s.resolver.Resolve(b, fallbackB, c.TaggedB)

	c.Matrix, c.LenA, c.LenB = BuildMatrix(c.A, c.B)
	c.Sum, c.Score, c.Short = Aggregate(c.Matrix, c.LenA, c.LenB)

	if c.LenA+c.LenB == 0 {
		c.Empty = true
		return c, ErrEmpty
	}

	s.logger.Debug("compared",
		zap.Int("len_a", c.LenA),
		zap.Int("len_b", c.LenB),
		zap.Stringer("short", c.Short),
		zap.Float64("score", c.Score),
	)

	return c, nil
}
