// Package textclf implements a linear text classifier: a TF-IDF vectorizer
// followed by a one-vs-rest linear model fitted with stochastic gradient descent.
package textclf

import (
	"math"
	"regexp"
	"strings"

	"golang.org/x/exp/slices"
)

// tokenPattern matches runs of two or more word characters.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Tokenize lowercases the text and splits it into tokens of at least
// two word characters. Everything else is treated as a separator.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// Vector is a sparse feature vector. Indices are sorted in ascending order.
type Vector struct {
	Indices []int
	Values  []float64
}

// Dot returns the dot product of the vector with the dense weights w.
func (v Vector) Dot(w []float64) float64 {
	var sum float64
	for i, index := range v.Indices {
		sum += v.Values[i] * w[index]
	}

	return sum
}

// TFIDF converts text into L2 normalized term-frequency, inverse document
// frequency vectors over a vocabulary learned with Fit.
//
// After fitting, a TFIDF is read-only and safe for concurrent use.
type TFIDF struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
	StopWords  []string       `json:"stopWords"`

	stop map[string]struct{}
}

// NewTFIDF returns an unfitted vectorizer that ignores the given stop words.
func NewTFIDF(stopWords []string) *TFIDF {
	v := &TFIDF{StopWords: stopWords}
	v.prepare()

	return v
}

func (v *TFIDF) prepare() {
	v.stop = make(map[string]struct{}, len(v.StopWords))
	for _, word := range v.StopWords {
		v.stop[word] = struct{}{}
	}
}

// Dim returns the number of features, which is the vocabulary size.
func (v *TFIDF) Dim() int {
	return len(v.IDF)
}

func (v *TFIDF) terms(doc string) []string {
	tokens := Tokenize(doc)

	terms := tokens[:0]
	for _, token := range tokens {
		if _, ok := v.stop[token]; ok {
			continue
		}
		terms = append(terms, token)
	}

	return terms
}

// Fit learns the vocabulary and the smoothed inverse document frequencies
// from the documents.
func (v *TFIDF) Fit(docs []string) {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, term := range v.terms(doc) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	slices.Sort(terms)

	n := float64(len(docs))
	v.Vocabulary = make(map[string]int, len(terms))
	v.IDF = make([]float64, len(terms))
	for i, term := range terms {
		v.Vocabulary[term] = i
		v.IDF[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
}

// Transform returns the feature vector for a single document.
// Terms outside the vocabulary are dropped.
func (v *TFIDF) Transform(doc string) Vector {
	counts := make(map[int]float64)
	for _, term := range v.terms(doc) {
		if index, ok := v.Vocabulary[term]; ok {
			counts[index]++
		}
	}

	vec := Vector{
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for index := range counts {
		vec.Indices = append(vec.Indices, index)
	}
	slices.Sort(vec.Indices)

	var norm float64
	for _, index := range vec.Indices {
		value := counts[index] * v.IDF[index]
		vec.Values = append(vec.Values, value)
		norm += value * value
	}

	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec.Values {
			vec.Values[i] /= norm
		}
	}

	return vec
}

// TransformAll transforms every document.
func (v *TFIDF) TransformAll(docs []string) []Vector {
	vectors := make([]Vector, len(docs))
	for i, doc := range docs {
		vectors[i] = v.Transform(doc)
	}

	return vectors
}
