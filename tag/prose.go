package tag

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jdkato/prose/v2"
	"go.uber.org/zap"
)

// Prose tags with the prose averaged perceptron model. Its tokenizer may
// split tokens differently than the normalizer; tags are aligned back to
// the input tokens and an unaligned token gets NN.
type Prose struct {
	logger *zap.Logger

	// model is decoded once and shared by every Tag call
	model *prose.Model
}

var _ Tagger = (*Prose)(nil)

// NewProse returns a Prose tagger with the embedded model loaded. A nil
// logger disables logging.
func NewProse(logger *zap.Logger) (*Prose, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	doc, err := prose.NewDocument("model",
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, errors.Wrap(err, "loading prose model")
	}

	return &Prose{logger: logger, model: doc.Model}, nil
}

func (p *Prose) Tag(tokens []string) []string {
	tags := make([]string, len(tokens))
	for i := range tags {
		tags[i] = "NN"
	}

	if len(tokens) == 0 {
		return tags
	}

	doc, err := prose.NewDocument(strings.Join(tokens, " "),
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
		prose.UsingModel(p.model),
	)
	if err != nil {
		p.logger.Warn("prose tagging failed", zap.Error(err))
		return tags
	}

	return align(tokens, doc.Tokens(), tags)
}

// align copies the tag of each prose token whose text equals the next
// unaligned input token. Prose tokens that do not match are skipped.
func align(tokens []string, tagged []prose.Token, tags []string) []string {
	i := 0
	for _, t := range tagged {
		if i == len(tokens) {
			break
		}

		if strings.EqualFold(t.Text, tokens[i]) {
			tags[i] = t.Tag
			i++
			continue
		}

		// the tokenizer split the token: the first piece carries the tag
		if strings.HasPrefix(strings.ToLower(tokens[i]), strings.ToLower(t.Text)) && t.Text != "" {
			tags[i] = t.Tag
			i++
		}
	}

	return tags
}
