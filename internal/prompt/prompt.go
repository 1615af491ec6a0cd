package prompt

import (
	"errors"
	"fmt"
	"strings"

	"aura-ai/internal/catalog"
)

const (
	MaxSelections   = 5
	MaxInstructions = MaxSelections + 1

	Fallback = "A realistic, high-quality photograph."
	Preamble = "Generate a photorealistic image. It is crucial to maintain the exact facial features, expression, and clothing of the person in the original photo. Apply the following style or pose: "
)

var ErrSelectionLimit = errors.New("selection limit reached")

// Selection is an ordered set of style ids in the order they were chosen.
type Selection []string

func (s Selection) Contains(id string) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// Toggle removes id when present and appends it otherwise. A full selection
// is returned unchanged together with ErrSelectionLimit.
func (s Selection) Toggle(id string) (Selection, error) {
	if s.Contains(id) {
		out := make(Selection, 0, len(s)-1)
		for _, v := range s {
			if v != id {
				out = append(out, v)
			}
		}
		return out, nil
	}
	if len(s) >= MaxSelections {
		return s, fmt.Errorf("%w: max %d", ErrSelectionLimit, MaxSelections)
	}
	out := make(Selection, 0, len(s)+1)
	out = append(out, s...)
	return append(out, id), nil
}

func (s Selection) Clear() Selection {
	return Selection{}
}

func (s Selection) Remaining() int {
	if n := MaxSelections - len(s); n > 0 {
		return n
	}
	return 0
}

// Count is the number of images a generation would produce.
func Count(sel Selection, custom string) int {
	n := len(sel)
	if strings.TrimSpace(custom) != "" {
		n++
	}
	return n
}

// Assemble turns the selection and custom text into raw instructions,
// selection order first and custom text last.
func Assemble(sel Selection, custom string, c *catalog.Catalog) ([]string, error) {
	out := make([]string, 0, len(sel)+1)
	for _, id := range sel {
		opt, err := c.Lookup(id)
		if err != nil {
			return nil, err
		}
		out = append(out, opt.Prompt)
	}
	if custom = strings.TrimSpace(custom); custom != "" {
		out = append(out, custom)
	}
	if len(out) == 0 {
		out = append(out, Fallback)
	}
	return out, nil
}

func Wrap(instruction string) string {
	return Preamble + instruction
}

// Instructions assembles and wraps, producing what is sent to the model.
func Instructions(sel Selection, custom string, c *catalog.Catalog) ([]string, error) {
	raw, err := Assemble(sel, custom, c)
	if err != nil {
		return nil, err
	}
	for i := range raw {
		raw[i] = Wrap(raw[i])
	}
	return raw, nil
}
