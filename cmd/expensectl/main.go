// Command expensectl generates training data for the expense parser
// and trains the category classifier on it.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/envelope-zero/expense-parser/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "expensectl",
		Short: "Prepare the model for the expense parser",
		Long: `expensectl creates everything the expense parser needs to run.

Generate a labeled dataset first, then train the category classifier on it:

  expensectl generate --output sample_data.csv
  expensectl train --data sample_data.csv --model category_classifier.json`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, v)
		},
	}

	cmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "human", "log format (human, json)")

	_ = v.BindPFlag("logging.level", cmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("logging.format", cmd.PersistentFlags().Lookup("log-format"))

	cmd.AddCommand(generateCmd(v))
	cmd.AddCommand(trainCmd(v))

	return cmd
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	// EXPENSECTL_GENERATE_ROWS sets generate.rows and so on
	v.SetEnvPrefix("EXPENSECTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	level, err := zerolog.ParseLevel(v.GetString("logging.level"))
	if err != nil || level == zerolog.NoLevel {
		return fmt.Errorf("invalid log level: %s", v.GetString("logging.level"))
	}

	format := v.GetString("logging.format")
	if format != "human" && format != "json" {
		return fmt.Errorf("invalid log format: %s", format)
	}

	logging.Configure(cmd.ErrOrStderr(), format, level, false)
	return nil
}
