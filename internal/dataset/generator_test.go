package dataset_test

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/envelope-zero/expense-parser/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var number = regexp.MustCompile(`\d+`)

func newGenerator(t *testing.T, seed uint64) *dataset.Generator {
	g, err := dataset.NewGenerator(dataset.DefaultConfig(), rand.NewPCG(seed, seed))
	require.Nil(t, err)
	return g
}

func TestGenerateCount(t *testing.T) {
	for _, n := range []int{0, 1, 100, dataset.DefaultRows} {
		assert.Len(t, newGenerator(t, 1).Generate(n, nil), n)
	}
}

func TestGenerateProgress(t *testing.T) {
	var calls []int
	newGenerator(t, 1).Generate(5, func(done int) {
		calls = append(calls, done)
	})

	assert.Equal(t, []int{1, 2, 3, 4, 5}, calls)
}

func TestExamplesAreConsistent(t *testing.T) {
	ranges := make(map[string]dataset.AmountRange)
	for _, category := range dataset.Categories {
		ranges[category.Name] = category.Amount
	}

	for _, example := range newGenerator(t, 42).Generate(2000, nil) {
		amountRange, ok := ranges[example.Category]
		require.True(t, ok, "unknown category %q", example.Category)

		assert.Equal(t, strings.Join(strings.Fields(example.Text), " "), example.Text, "whitespace must be collapsed")
		assert.NotContains(t, example.Text, "{")

		amount, err := strconv.Atoi(number.FindString(example.Text))
		require.Nil(t, err, example.Text)
		assert.GreaterOrEqual(t, amount, amountRange.Min, example.Text)
		assert.LessOrEqual(t, amount, amountRange.Max, example.Text)
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	assert.Equal(t, newGenerator(t, 9).Generate(50, nil), newGenerator(t, 9).Generate(50, nil))
	assert.NotEqual(t, newGenerator(t, 9).Generate(50, nil), newGenerator(t, 10).Generate(50, nil))
}

func TestAmountBoundsInclusive(t *testing.T) {
	cfg := dataset.Config{
		Categories: []dataset.Category{{Name: "Fixed", Items: []string{"tea"}, Amount: dataset.AmountRange{Min: 7, Max: 7}}},
		Templates:  []string{"  {item}   {amount} {currency}  "},
		Currencies: []string{""},
	}

	g, err := dataset.NewGenerator(cfg, rand.NewPCG(1, 1))
	require.Nil(t, err)

	assert.Equal(t, dataset.Example{Text: "tea 7", Category: "Fixed"}, g.Example())
}

func TestNewGeneratorErrors(t *testing.T) {
	valid := dataset.Category{Name: "Food", Items: []string{"tea"}, Amount: dataset.AmountRange{Min: 1, Max: 2}}

	tests := []struct {
		name string
		cfg  dataset.Config
		err  error
		msg  string
	}{
		{"No categories", dataset.Config{Templates: dataset.Templates, Currencies: dataset.Currencies}, dataset.ErrNoCategories, ""},
		{"No templates", dataset.Config{Categories: dataset.Categories, Currencies: dataset.Currencies}, dataset.ErrNoTemplates, ""},
		{"No currencies", dataset.Config{Categories: dataset.Categories, Templates: dataset.Templates}, dataset.ErrNoCurrencies, ""},
		{"No items", dataset.Config{Categories: []dataset.Category{valid, {Name: "Empty", Amount: valid.Amount}}, Templates: dataset.Templates, Currencies: dataset.Currencies}, nil, `category "Empty" has no items`},
		{"Inverted range", dataset.Config{Categories: []dataset.Category{{Name: "Inverted", Items: valid.Items, Amount: dataset.AmountRange{Min: 5, Max: 4}}}, Templates: dataset.Templates, Currencies: dataset.Currencies}, nil, "empty amount range 5-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dataset.NewGenerator(tt.cfg, rand.NewPCG(1, 1))
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.ErrorContains(t, err, tt.msg)
			}
		})
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{
		"Food", "Transport", "Shopping", "Utilities", "Health",
		"Entertainment", "Education", "Personal Care", "Gifts & Donations", "Other",
	}, dataset.DefaultConfig().Names())
}
