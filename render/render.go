package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/revelaction/sentsem/batch"
	sent "github.com/revelaction/sentsem/sentence"
	"github.com/revelaction/sentsem/similarity"
	"github.com/revelaction/sentsem/wordnet"
)

const (
	Defaultformat = "score"

	// width of a matrix cell
	cellWidth = 7
)

var (
	Red       = "\033[1;31m"
	Green     = "\033[1;32m"
	Yellow    = "\033[0;33m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

func SupportedFormats() []string {
	return []string{"score", "matrix", "json"}
}

// IsSupported reports whether format is one of SupportedFormats.
func IsSupported(format string) bool {
	for _, f := range SupportedFormats() {
		if f == format {
			return true
		}
	}

	return false
}

// Suggester returns lemmas close to word.
type Suggester interface {
	Suggest(word string, limit int) []wordnet.Suggestion
}

type Renderer struct {
	HasColor bool

	// Format determines how a comparison is written
	//
	// score: the score only
	// matrix: the sensed tokens of both sentences, the similarity matrix and the score
	// json: the comparison as one JSON object
	Format string

	Out io.Writer
}

func NewRenderer() *Renderer {
	return &Renderer{Format: Defaultformat, Out: os.Stdout}
}

// Comparison writes c in the current format.
func (r *Renderer) Comparison(c similarity.Comparison) error {
	switch r.Format {
	case "json":
		return NewJSONRenderer(r.Out).Render(c)
	case "matrix":
		_, err := io.WriteString(r.Out, r.MatrixString(c))
		return err
	}

	_, err := fmt.Fprintln(r.Out, r.score(c))
	return err
}

// Result writes one batch result line.
func (r *Renderer) Result(res batch.Result) error {
	if r.Format == "json" {
		return NewJSONRenderer(r.Out).RenderResult(res)
	}

	_, err := fmt.Fprintf(r.Out, "%d\t%.4f\n", res.Line, res.Score)
	return err
}

func (r *Renderer) score(c similarity.Comparison) string {
	if c.Empty {
		return r.color(Yellow, fmt.Sprintf("%.4f", c.Score)) + " (empty)"
	}

	return fmt.Sprintf("%.4f", c.Score)
}

// MatrixString renders the resolved tokens of both sentences as a table of
// path similarities. The best match of each token of the short side is
// highlighted.
func (r *Renderer) MatrixString(c similarity.Comparison) string {
	var str strings.Builder

	rows, cols := similarity.Usable(c.A), similarity.Usable(c.B)
	width := labelWidth(rows)

	str.WriteString(strings.Repeat(" ", width))
	for _, col := range cols {
		fmt.Fprintf(&str, " %*s", cellWidth, truncate(col.Lemma, cellWidth))
	}
	str.WriteString("\n")

	for i, row := range rows {
		fmt.Fprintf(&str, "%-*s", width, row.Lemma)
		for j := range cols {
			cell := fmt.Sprintf(" %*.3f", cellWidth, c.Matrix[i][j])
			if r.isBest(c, i, j) {
				cell = r.color(Green256, cell)
			}
			str.WriteString(cell)
		}
		str.WriteString("\n")
	}

	fmt.Fprintf(&str, "%s %s (sum %.4f, len %d+%d, short %s)\n", r.color(Grey256, "score"), r.score(c), c.Sum, c.LenA, c.LenB, c.Short)
	return str.String()
}

// isBest reports whether cell i,j is the maximum of its row or column along
// the aggregated direction.
func (r *Renderer) isBest(c similarity.Comparison, i, j int) bool {
	v := c.Matrix[i][j]
	if v == 0 {
		return false
	}

	if c.Short == similarity.SideA {
		for _, o := range c.Matrix[i] {
			if o > v {
				return false
			}
		}
		return true
	}

	for k := range c.Matrix {
		if c.Matrix[k][j] > v {
			return false
		}
	}
	return true
}

// Explain writes the sensed tokens of both sentences, with suggestions for
// unresolved lemmas, followed by the matrix.
func (r *Renderer) Explain(c similarity.Comparison, s Suggester) error {
	var str strings.Builder

	for _, side := range []struct {
		name   string
		text   string
		tagged []sent.Tagged
		sensed []sent.Sensed
	}{
		{"a", c.TextA, c.TaggedA, c.A},
		{"b", c.TextB, c.TaggedB, c.B},
	} {
		fmt.Fprintf(&str, "%s %s\n", r.color(Yellow256, side.name), side.text)
		for i, t := range side.sensed {
			tg := side.tagged[i]
			fmt.Fprintf(&str, "  %-16s %-4s %-7s ", tg.Text, tg.Tag, t.Category)

			if t.Resolved() {
				fmt.Fprintf(&str, "%s\n", r.color(Green, t.SenseID()))
				continue
			}

			str.WriteString(r.color(Red, "unresolved"))
			if s != nil {
				if sug := s.Suggest(t.Lemma, 3); len(sug) > 0 {
					str.WriteString(" did you mean: ")
					for k, sg := range sug {
						if k > 0 {
							str.WriteString(", ")
						}
						str.WriteString(sg.Lemma)
					}
				}
			}
			str.WriteString("\n")
		}
	}

	str.WriteString(r.MatrixString(c))

	_, err := io.WriteString(r.Out, str.String())
	return err
}

func (r *Renderer) color(code, s string) string {
	if !r.HasColor {
		return s
	}

	return code + s + Off
}

func labelWidth(rows []sent.Sensed) int {
	w := cellWidth
	for _, r := range rows {
		w = max(w, len([]rune(r.Lemma)))
	}

	return w
}

func truncate(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}

	return string(rs[:n])
}

// NextFormat sets the Renderer Format option to a different one, following
// the SupportedFormats() order.
func (r *Renderer) NextFormat() {
	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			r.Format = supported[(i+1)%len(supported)]
			return
		}
	}

	r.Format = supported[0]
}
