// Package expense turns a free text description of a purchase into
// an item, an amount and a spending category.
package expense

import (
	"errors"
)

var ErrNoAmount = errors.New("could not determine the amount from the text")

// Predictor predicts a category label for each text.
type Predictor interface {
	Predict(texts []string) []string
}

// Result is a parsed expense.
type Result struct {
	Item     string
	Amount   float64
	Category string
}

// Parser parses expense texts. It is immutable after construction
// and safe for concurrent use if its Predictor is.
type Parser struct {
	predictor Predictor
	stopWords []string
}

// Option configures a Parser.
type Option func(*Parser)

// WithStopWords replaces the stop words used for item extraction.
func WithStopWords(words []string) Option {
	return func(p *Parser) {
		p.stopWords = words
	}
}

// NewParser returns a Parser that predicts categories with the predictor.
func NewParser(predictor Predictor, opts ...Option) *Parser {
	p := &Parser{
		predictor: predictor,
		stopWords: StopWords,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse predicts the category of the text and extracts amount and item.
//
// If no amount can be found, ErrNoAmount is returned and the predicted
// category is discarded.
func (p *Parser) Parse(text string) (Result, error) {
	category := p.predictor.Predict([]string{text})[0]

	amount, ok := ExtractAmount(text)
	if !ok {
		return Result{}, ErrNoAmount
	}

	return Result{
		Item:     ExtractItem(text, amount, p.stopWords),
		Amount:   amount,
		Category: category,
	}, nil
}
