package dataset

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

var (
	ErrNoCategories = errors.New("at least one category is required")
	ErrNoTemplates  = errors.New("at least one template is required")
	ErrNoCurrencies = errors.New("at least one currency token is required, use the empty string for none")
)

// Example is a single labeled training sentence.
type Example struct {
	Text     string
	Category string
}

// Generator draws synthetic examples from a Config.
//
// A Generator is not safe for concurrent use.
type Generator struct {
	config Config
	rand   *rand.Rand
}

// NewGenerator returns a Generator that draws from the tables in cfg
// using src as its source of randomness.
func NewGenerator(cfg Config, src rand.Source) (*Generator, error) {
	if len(cfg.Categories) == 0 {
		return nil, ErrNoCategories
	}

	if len(cfg.Templates) == 0 {
		return nil, ErrNoTemplates
	}

	if len(cfg.Currencies) == 0 {
		return nil, ErrNoCurrencies
	}

	for _, category := range cfg.Categories {
		if len(category.Items) == 0 {
			return nil, fmt.Errorf("category %q has no items", category.Name)
		}

		if category.Amount.Min > category.Amount.Max {
			return nil, fmt.Errorf("category %q has an empty amount range %d-%d", category.Name, category.Amount.Min, category.Amount.Max)
		}
	}

	return &Generator{
		config: cfg,
		rand:   rand.New(src),
	}, nil
}

// Example draws a single example.
func (g *Generator) Example() Example {
	category := g.config.Categories[g.rand.IntN(len(g.config.Categories))]
	item := category.Items[g.rand.IntN(len(category.Items))]
	template := g.config.Templates[g.rand.IntN(len(g.config.Templates))]
	currency := g.config.Currencies[g.rand.IntN(len(g.config.Currencies))]
	amount := category.Amount.Min + g.rand.IntN(category.Amount.Max-category.Amount.Min+1)

	text := strings.NewReplacer(
		"{item}", item,
		"{amount}", strconv.Itoa(amount),
		"{currency}", currency,
	).Replace(template)

	return Example{
		// Fields trims and collapses the gap an empty currency leaves behind
		Text:     strings.Join(strings.Fields(text), " "),
		Category: category.Name,
	}
}

// Generate draws n examples. If progress is not nil, it is called
// with the number of generated examples after each one.
func (g *Generator) Generate(n int, progress func(done int)) []Example {
	examples := make([]Example, 0, max(n, 0))
	for i := range n {
		examples = append(examples, g.Example())

		if progress != nil {
			progress(i + 1)
		}
	}

	return examples
}
