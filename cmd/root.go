package cmd

import (
	"fmt"
	"os"

	log "github.com/jensneuse/abstractlogger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "graphql-colocate",
	Short: "graphql-colocate writes GraphQL document exports next to their sources",
	Long: `graphql-colocate is a companion of GraphQL code generators that write all typed documents into a single file.
For every .graphql source it writes a .g.ts file into the same directory which re-exports the documents
of that source from the generated file, so operations can be imported from right next to where they are written.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default is .graphql-colocate.yaml in the working or home directory)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enables debug logging")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(cmd *cobra.Command) (log.Logger, func(), error) {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, nil, err
	}

	config := zap.NewProductionConfig()
	level := log.InfoLevel
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		level = log.DebugLevel
	}

	logger, err := config.Build()
	if err != nil {
		return nil, nil, err
	}

	return log.NewZapLogger(logger, level), func() { _ = logger.Sync() }, nil
}
