package textclf_test

import (
	"math"
	"testing"

	"github.com/envelope-zero/expense-parser/internal/textclf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		text     string
		expected []string
	}{
		{"Bought 2 Pizzas, 250.50 rs!", []string{"bought", "pizzas", "250", "50", "rs"}},
		{"a b c", nil},
		{"Café_au_lait x", []string{"café_au_lait"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.expected, textclf.Tokenize(tt.text))
		})
	}
}

func TestFitVocabulary(t *testing.T) {
	v := textclf.NewTFIDF(textclf.EnglishStopWords)
	v.Fit([]string{"bought pizza for 250", "paid for the taxi", "Pizza again"})

	assert.Equal(t, map[string]int{
		"250":    0,
		"bought": 1,
		"paid":   2,
		"pizza":  3,
		"taxi":   4,
	}, v.Vocabulary)
	assert.Equal(t, 5, v.Dim())
}

func TestSmoothIDF(t *testing.T) {
	v := textclf.NewTFIDF(nil)
	v.Fit([]string{"pizza pizza tea", "tea"})

	require.Equal(t, map[string]int{"pizza": 0, "tea": 1}, v.Vocabulary)
	assert.InDelta(t, math.Log(3.0/2.0)+1, v.IDF[0], 1e-12)
	assert.InDelta(t, 1.0, v.IDF[1], 1e-12)

	vec := v.Transform("pizza pizza tea")
	pizza, tea := 2*v.IDF[0], v.IDF[1]
	norm := math.Hypot(pizza, tea)

	assert.Equal(t, []int{0, 1}, vec.Indices)
	assert.InDelta(t, pizza/norm, vec.Values[0], 1e-12)
	assert.InDelta(t, tea/norm, vec.Values[1], 1e-12)
}

func TestTransformUnknownTerms(t *testing.T) {
	v := textclf.NewTFIDF(nil)
	v.Fit([]string{"pizza", "taxi"})

	vec := v.Transform("spaceship tickets")
	assert.Empty(t, vec.Indices)
	assert.Empty(t, vec.Values)
	assert.Equal(t, 0.0, vec.Dot([]float64{1, 1}))

	vec = v.Transform("taxi to the spaceship")
	assert.Equal(t, []int{1}, vec.Indices)
	assert.InDelta(t, 1.0, vec.Values[0], 1e-12, "vectors are L2 normalized")
}

func TestTransformAll(t *testing.T) {
	v := textclf.NewTFIDF(nil)
	docs := []string{"pizza", "taxi", "pizza taxi"}
	v.Fit(docs)

	vectors := v.TransformAll(docs)
	require.Len(t, vectors, 3)
	assert.Equal(t, v.Transform("pizza taxi"), vectors[2])
}

func TestDot(t *testing.T) {
	vec := textclf.Vector{Indices: []int{0, 2}, Values: []float64{0.5, 2}}
	assert.Equal(t, 0.5*4+2*3, vec.Dot([]float64{4, 100, 3}))
}
