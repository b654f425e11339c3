package query

import (
	"fmt"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/cockroachdb/errors"

	"github.com/revelaction/sentsem/render"
	"github.com/revelaction/sentsem/similarity"
)

const (
	completionThreshold = 2

	// maximum lemma suggestions shown
	completionLimit = 12

	// separator is the Character in the prompt that separates both sentences
	separator = "|"
)

// Completer returns the index lemmas starting with a prefix.
type Completer interface {
	Complete(prefix string, limit int) []string
}

type Handler struct {
	Scorer    *similarity.Scorer
	Completer Completer
	Renderer  *render.Renderer
}

func NewHandler(s *similarity.Scorer, c Completer, r *render.Renderer) *Handler {
	return &Handler{
		Scorer:    s,
		Completer: c,
		Renderer:  r,
	}
}

func (h *Handler) Run() error {
	fmt.Println("🔑 sentence a | sentence b, Ctrl+F: next Format, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {
		in := prompt.Input("      ⚖ ", h.completer,
			prompt.OptionTitle("sentsem query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(completionLimit),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Println("Format set to: " + h.Renderer.Format)
				}}),
		)

		if in == "quit" {
			return nil
		}

		history = append(history, in)

		a, b, err := Parse(in)
		if err != nil {
			fmt.Println(err)
			continue
		}

		c, err := h.Scorer.Compare(a, b)
		if err != nil && !errors.Is(err, similarity.ErrEmpty) {
			fmt.Printf("Error comparing: %v\n", err)
			continue
		}

		if err := h.Renderer.Comparison(c); err != nil {
			return err
		}
	}
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	return h.suggest(in.GetWordBeforeCursor())
}

// suggest completes word with index lemmas.
func (h *Handler) suggest(word string) []prompt.Suggest {
	s := []prompt.Suggest{}

	if len(word) < completionThreshold || word == separator {
		return s
	}

	for _, l := range h.Completer.Complete(strings.ToLower(word), completionLimit) {
		// collocations are typed with spaces
		if strings.Contains(l, "_") {
			continue
		}
		s = append(s, prompt.Suggest{Text: l})
	}

	return s
}

// Parse splits "sentence a | sentence b".
func Parse(in string) (string, string, error) {
	a, b, ok := strings.Cut(in, separator)
	if !ok {
		return "", "", errors.Newf("expected two sentences separated by %q", separator)
	}

	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == "" && b == "" {
		return "", "", errors.New("both sentences are empty")
	}

	return a, b, nil
}
