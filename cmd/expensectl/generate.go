package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/envelope-zero/expense-parser/internal/dataset"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// progressStep is the number of rows between progress updates.
const progressStep = 100

func generateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a labeled dataset of expense sentences",
		Long: `Generate synthetic expense sentences from templates and write them
to a CSV file with the columns "text" and "category".

An existing file is overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, v)
		},
	}

	cmd.Flags().IntP("rows", "n", dataset.DefaultRows, "number of examples to generate")
	cmd.Flags().StringP("output", "o", dataset.DefaultDataFile, "path of the CSV file to write")
	cmd.Flags().Uint64("seed", 0, "seed for the random source, 0 picks a random seed")
	cmd.Flags().Bool("no-progress", false, "do not show a progress bar")

	_ = v.BindPFlag("generate.rows", cmd.Flags().Lookup("rows"))
	_ = v.BindPFlag("generate.output", cmd.Flags().Lookup("output"))
	_ = v.BindPFlag("generate.seed", cmd.Flags().Lookup("seed"))
	_ = v.BindPFlag("generate.no_progress", cmd.Flags().Lookup("no-progress"))

	return cmd
}

func runGenerate(cmd *cobra.Command, v *viper.Viper) error {
	rows := v.GetInt("generate.rows")
	if rows < 0 {
		return fmt.Errorf("the number of rows must not be negative, got %d", rows)
	}

	output := v.GetString("generate.output")

	seed := v.GetUint64("generate.seed")
	if seed == 0 {
		seed = rand.Uint64()
	}

	generator, err := dataset.NewGenerator(dataset.DefaultConfig(), rand.NewPCG(seed, seed))
	if err != nil {
		return err
	}

	log.Debug().Int("rows", rows).Uint64("seed", seed).Msg("generating examples")

	progress := func(int) {}
	if !v.GetBool("generate.no_progress") {
		bar := progressbar.NewOptions(rows,
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionSetDescription("Generating examples"),
		)

		progress = func(done int) {
			if done%progressStep == 0 || done == rows {
				_ = bar.Set(done)
			}
		}
		defer func() { _ = bar.Finish() }()
	}

	examples := generator.Generate(rows, progress)

	if err := dataset.WriteFile(output, examples); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	log.Info().Int("rows", len(examples)).Str("path", output).Msg("dataset written")
	return nil
}
