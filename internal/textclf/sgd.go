package textclf

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

var (
	ErrEmptyTrainingSet = errors.New("the training set is empty")
	ErrLengthMismatch   = errors.New("the number of samples and labels differ")
	ErrSingleClass      = errors.New("at least two distinct labels are needed for training")
)

// SGDConfig holds the hyperparameters for fitting a LinearClassifier.
type SGDConfig struct {
	// Alpha is the strength of the L2 regularization.
	Alpha float64

	// MaxIter is the number of passes over the training data.
	MaxIter int

	// Seed seeds the shuffling of the training data.
	Seed uint64
}

// DefaultSGDConfig returns the hyperparameters used for the expense classifier.
func DefaultSGDConfig() SGDConfig {
	return SGDConfig{
		Alpha:   1e-3,
		MaxIter: 10,
		Seed:    42,
	}
}

// intercepts are updated more slowly for sparse input
const sparseInterceptDecay = 0.01

// LinearClassifier is a fitted one-vs-rest linear model.
//
// For two classes, Coef holds a single row that scores the second class.
type LinearClassifier struct {
	Classes   []string    `json:"classes"`
	Coef      [][]float64 `json:"coef"`
	Intercept []float64   `json:"intercept"`
}

// Fit trains a LinearClassifier with hinge loss and L2 penalty on the
// samples. dim is the dimension of the feature space.
//
// Binary problems of the one-vs-rest scheme are fitted concurrently.
// The result only depends on the configuration and the input.
func (cfg SGDConfig) Fit(ctx context.Context, samples []Vector, dim int, labels []string) (*LinearClassifier, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyTrainingSet
	}

	if len(samples) != len(labels) {
		return nil, ErrLengthMismatch
	}

	classes := slices.Clone(labels)
	slices.Sort(classes)
	classes = slices.Compact(classes)
	if len(classes) < 2 {
		return nil, ErrSingleClass
	}

	// For two classes, a single model separates the second class from the first
	positives := classes
	if len(classes) == 2 {
		positives = classes[1:]
	}

	clf := &LinearClassifier{
		Classes:   classes,
		Coef:      make([][]float64, len(positives)),
		Intercept: make([]float64, len(positives)),
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, positive := range positives {
		g.Go(func() error {
			y := make([]float64, len(labels))
			for j, label := range labels {
				y[j] = -1
				if label == positive {
					y[j] = 1
				}
			}

			src := rand.NewPCG(cfg.Seed, uint64(i))
			coef, intercept, err := cfg.fitBinary(ctx, samples, y, dim, rand.New(src))
			if err != nil {
				return err
			}

			clf.Coef[i] = coef
			clf.Intercept[i] = intercept
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return clf, nil
}

// fitBinary runs plain SGD with the "optimal" learning rate schedule
// eta = 1 / (alpha * (t0 + t)).
func (cfg SGDConfig) fitBinary(ctx context.Context, samples []Vector, y []float64, dim int, r *rand.Rand) ([]float64, float64, error) {
	// The weights are w = scale * v so that the L2 shrinkage is O(1)
	v := make([]float64, dim)
	scale := 1.0
	intercept := 0.0

	typw := math.Sqrt(1.0 / math.Sqrt(cfg.Alpha))
	t0 := 1.0 / (typw * cfg.Alpha)
	t := 1.0

	order := make([]int, len(samples))
	for i := range order {
		order[i] = i
	}

	for range cfg.MaxIter {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		r.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})

		for _, i := range order {
			x := samples[i]
			p := x.Dot(v)*scale + intercept
			eta := 1.0 / (cfg.Alpha * (t0 + t - 1))

			var update float64
			if p*y[i] <= 1 {
				update = eta * y[i]
			}

			scale *= math.Max(0, 1-eta*cfg.Alpha)
			if scale == 0 {
				clear(v)
				scale = 1
			}

			if update != 0 {
				for k, index := range x.Indices {
					v[index] += update * x.Values[k] / scale
				}
				intercept += update * sparseInterceptDecay
			}

			if scale < 1e-9 {
				for k := range v {
					v[k] *= scale
				}
				scale = 1
			}

			t++
		}
	}

	for k := range v {
		v[k] *= scale
	}

	return v, intercept, nil
}

// Decision returns the score for each row of Coef.
func (c *LinearClassifier) Decision(x Vector) []float64 {
	scores := make([]float64, len(c.Coef))
	for i, coef := range c.Coef {
		scores[i] = x.Dot(coef) + c.Intercept[i]
	}

	return scores
}

// Predict returns the label with the highest score. Ties go to the
// class that sorts first.
func (c *LinearClassifier) Predict(x Vector) string {
	scores := c.Decision(x)

	if len(c.Classes) == 2 {
		if scores[0] > 0 {
			return c.Classes[1]
		}
		return c.Classes[0]
	}

	best := 0
	for i, score := range scores {
		if score > scores[best] {
			best = i
		}
	}

	return c.Classes[best]
}
