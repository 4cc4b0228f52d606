package textclf

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// DefaultModelFile is the file the trainer writes and the service loads.
const DefaultModelFile = "category_classifier.json"

// artifactKind identifies files written by Pipeline.Save
const artifactKind = "tfidf-sgd"

var ErrInvalidArtifact = errors.New("the model file is not a valid classifier")

// Pipeline chains a TFIDF vectorizer and a LinearClassifier.
//
// A fitted or loaded Pipeline is never modified and can be shared
// between goroutines.
type Pipeline struct {
	Vectorizer *TFIDF
	Classifier *LinearClassifier
}

// Fit fits the vectorizer on the texts, then the classifier on the vectorized texts.
func Fit(ctx context.Context, texts, labels []string, cfg SGDConfig) (*Pipeline, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyTrainingSet
	}

	if len(texts) != len(labels) {
		return nil, ErrLengthMismatch
	}

	vectorizer := NewTFIDF(EnglishStopWords)
	vectorizer.Fit(texts)

	classifier, err := cfg.Fit(ctx, vectorizer.TransformAll(texts), vectorizer.Dim(), labels)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		Vectorizer: vectorizer,
		Classifier: classifier,
	}, nil
}

// Predict returns the predicted label for each text.
func (p *Pipeline) Predict(texts []string) []string {
	labels := make([]string, len(texts))
	for i, text := range texts {
		labels[i] = p.Classifier.Predict(p.Vectorizer.Transform(text))
	}

	return labels
}

// Classes returns the labels the pipeline can predict, sorted.
func (p *Pipeline) Classes() []string {
	return p.Classifier.Classes
}

type artifact struct {
	Kind       string            `json:"kind"`
	Vectorizer *TFIDF            `json:"vectorizer"`
	Classifier *LinearClassifier `json:"classifier"`
}

// Save writes the pipeline to w.
func (p *Pipeline) Save(w io.Writer) error {
	return json.NewEncoder(w).Encode(artifact{
		Kind:       artifactKind,
		Vectorizer: p.Vectorizer,
		Classifier: p.Classifier,
	})
}

// SaveFile writes the pipeline to the file at path, replacing it if it exists.
func (p *Pipeline) SaveFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return p.Save(f)
}

// Load reads a pipeline written by Save.
func Load(r io.Reader) (*Pipeline, error) {
	var a artifact
	if err := json.NewDecoder(r).Decode(&a); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArtifact, err)
	}

	if a.Kind != artifactKind {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidArtifact, a.Kind)
	}

	if err := a.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArtifact, err)
	}

	a.Vectorizer.prepare()

	return &Pipeline{
		Vectorizer: a.Vectorizer,
		Classifier: a.Classifier,
	}, nil
}

// LoadFile reads a pipeline from the file at path.
//
// If the file does not exist, the returned error wraps fs.ErrNotExist.
func LoadFile(path string) (*Pipeline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

func (a artifact) validate() error {
	if a.Vectorizer == nil || a.Classifier == nil {
		return errors.New("vectorizer or classifier missing")
	}

	dim := a.Vectorizer.Dim()
	if len(a.Vectorizer.Vocabulary) != dim {
		return fmt.Errorf("vocabulary has %d terms, but there are %d idf weights", len(a.Vectorizer.Vocabulary), dim)
	}

	for term, index := range a.Vectorizer.Vocabulary {
		if index < 0 || index >= dim {
			return fmt.Errorf("term %q has out of range index %d", term, index)
		}
	}

	c := a.Classifier
	if len(c.Classes) < 2 {
		return ErrSingleClass
	}

	rows := len(c.Classes)
	if rows == 2 {
		rows = 1
	}

	if len(c.Coef) != rows || len(c.Intercept) != rows {
		return fmt.Errorf("expected %d coefficient rows and intercepts for %d classes, got %d and %d", rows, len(c.Classes), len(c.Coef), len(c.Intercept))
	}

	for i, coef := range c.Coef {
		if len(coef) != dim {
			return fmt.Errorf("coefficient row %d has %d weights, expected %d", i, len(coef), dim)
		}
	}

	return nil
}
