package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/envelope-zero/expense-parser/internal/dataset"
	"github.com/envelope-zero/expense-parser/internal/textclf"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func trainCmd(v *viper.Viper) *cobra.Command {
	defaults := textclf.DefaultSGDConfig()

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train the category classifier",
		Long: `Train the TF-IDF and SGD category classifier on a dataset written
by "expensectl generate" and save it for the expense parser.

An existing model file is overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTrain(cmd, v)
		},
	}

	cmd.Flags().StringP("data", "d", dataset.DefaultDataFile, "path of the CSV dataset")
	cmd.Flags().StringP("model", "m", textclf.DefaultModelFile, "path to write the trained model to")
	cmd.Flags().Float64("alpha", defaults.Alpha, "L2 regularization strength")
	cmd.Flags().Int("max-iter", defaults.MaxIter, "number of passes over the training data")
	cmd.Flags().Uint64("seed", defaults.Seed, "seed for shuffling the training data")

	_ = v.BindPFlag("train.data", cmd.Flags().Lookup("data"))
	_ = v.BindPFlag("train.model", cmd.Flags().Lookup("model"))
	_ = v.BindPFlag("train.alpha", cmd.Flags().Lookup("alpha"))
	_ = v.BindPFlag("train.max_iter", cmd.Flags().Lookup("max-iter"))
	_ = v.BindPFlag("train.seed", cmd.Flags().Lookup("seed"))

	return cmd
}

func runTrain(cmd *cobra.Command, v *viper.Viper) error {
	data := v.GetString("train.data")
	model := v.GetString("train.model")

	cfg := textclf.SGDConfig{
		Alpha:   v.GetFloat64("train.alpha"),
		MaxIter: v.GetInt("train.max_iter"),
		Seed:    v.GetUint64("train.seed"),
	}

	if cfg.Alpha <= 0 {
		return fmt.Errorf("alpha must be positive, got %v", cfg.Alpha)
	}

	if cfg.MaxIter < 1 {
		return fmt.Errorf("max-iter must be at least 1, got %d", cfg.MaxIter)
	}

	examples, err := dataset.ReadFile(data)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("dataset %s does not exist, create it with 'expensectl generate' first: %w", data, err)
	} else if err != nil {
		return fmt.Errorf("reading %s: %w", data, err)
	}

	log.Info().Int("examples", len(examples)).Str("path", data).Msg("dataset loaded")

	texts, categories := dataset.Split(examples)
	pipeline, err := textclf.Fit(cmd.Context(), texts, categories, cfg)
	if err != nil {
		return fmt.Errorf("training: %w", err)
	}

	log.Debug().Int("features", pipeline.Vectorizer.Dim()).Strs("categories", pipeline.Classes()).Msg("model fitted")

	if err := pipeline.SaveFile(model); err != nil {
		return fmt.Errorf("saving the model to %s: %w", model, err)
	}

	log.Info().Str("path", model).Msg("model trained and saved")
	return nil
}
