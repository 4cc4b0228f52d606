package expense_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/envelope-zero/expense-parser/internal/expense"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keywordPredictor predicts the category of the first keyword found in the text.
type keywordPredictor struct {
	mu       sync.Mutex
	calls    int
	keywords map[string]string
}

func (p *keywordPredictor) Predict(texts []string) []string {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	out := make([]string, len(texts))
	for i, text := range texts {
		out[i] = "Other"
		for keyword, category := range p.keywords {
			if strings.Contains(strings.ToLower(text), keyword) {
				out[i] = category
			}
		}
	}

	return out
}

func newPredictor() *keywordPredictor {
	return &keywordPredictor{keywords: map[string]string{
		"pizza": "Food",
		"phone": "Utilities",
		"shoes": "Shopping",
	}}
}

func TestParse(t *testing.T) {
	p := expense.NewParser(newPredictor())

	tests := []struct {
		text     string
		expected expense.Result
	}{
		{"Bought pizza for 250 rupees", expense.Result{Item: "Pizza", Amount: 250, Category: "Food"}},
		{"Got new shoes for 1500 rs", expense.Result{Item: "Shoes", Amount: 1500, Category: "Shopping"}},
		{"paid 40", expense.Result{Item: expense.UnknownItem, Amount: 40, Category: "Other"}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			result, err := p.Parse(tt.text)
			require.Nil(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseRecharge(t *testing.T) {
	result, err := expense.NewParser(newPredictor()).Parse("recharged my phone with 199")
	require.Nil(t, err)

	assert.Equal(t, 199.0, result.Amount)
	assert.Equal(t, "Utilities", result.Category)
	assert.NotContains(t, result.Item, "199")
	assert.NotContains(t, strings.ToLower(result.Item), "recharged")
}

func TestParseNoAmount(t *testing.T) {
	predictor := newPredictor()

	result, err := expense.NewParser(predictor).Parse("bought pizza")
	assert.ErrorIs(t, err, expense.ErrNoAmount)
	assert.Equal(t, expense.Result{}, result, "the prediction is discarded")
	assert.Equal(t, 1, predictor.calls)
}

func TestWithStopWords(t *testing.T) {
	p := expense.NewParser(newPredictor(), expense.WithStopWords([]string{"bought", "for"}))

	result, err := p.Parse("Bought pizza for 250 rupees")
	require.Nil(t, err)
	assert.Equal(t, "Pizza Rupees", result.Item)
}

func TestParseConcurrent(t *testing.T) {
	p := expense.NewParser(newPredictor())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				result, err := p.Parse("Bought pizza for 250 rupees")
				assert.Nil(t, err)
				assert.Equal(t, "Pizza", result.Item)
			}
		}()
	}
	wg.Wait()
}
