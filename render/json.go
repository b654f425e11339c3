package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/sentsem/batch"
	sent "github.com/revelaction/sentsem/sentence"
	"github.com/revelaction/sentsem/similarity"
)

// JSONRenderer writes comparisons as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

type sensedJSON struct {
	Lemma string        `json:"lemma"`
	Pos   sent.Category `json:"pos"`
	Sense string        `json:"sense,omitempty"`
}

type comparisonJSON struct {
	similarity.Comparison
	SensedA []sensedJSON `json:"sensed_a"`
	SensedB []sensedJSON `json:"sensed_b"`
}

func sensed(tokens []sent.Sensed) []sensedJSON {
	res := make([]sensedJSON, len(tokens))
	for i, t := range tokens {
		res[i] = sensedJSON{Lemma: t.Lemma, Pos: t.Category, Sense: t.SenseID()}
	}

	return res
}

// Render serializes the comparison as one JSON object per line.
func (r *JSONRenderer) Render(c similarity.Comparison) error {
	if c.Matrix == nil {
		c.Matrix = similarity.Matrix{}
	}

	return json.NewEncoder(r.W).Encode(comparisonJSON{
		Comparison: c,
		SensedA:    sensed(c.A),
		SensedB:    sensed(c.B),
	})
}

// RenderResult serializes a batch result as one JSON object per line.
func (r *JSONRenderer) RenderResult(res batch.Result) error {
	return json.NewEncoder(r.W).Encode(res)
}
