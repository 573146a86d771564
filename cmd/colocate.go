package cmd

import (
	"fmt"
	"strings"

	log "github.com/jensneuse/abstractlogger"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jensneuse/graphql-colocate/pkg/colocate"
	"github.com/jensneuse/graphql-colocate/pkg/documents"
	"github.com/jensneuse/graphql-colocate/pkg/operationreport"
)

const (
	envPrefix      = "GRAPHQL_COLOCATE"
	configFileName = ".graphql-colocate"
)

var appFs afero.Fs = afero.NewOsFs()

// colocateSettings are the options that can be set by flag, environment or config file.
type colocateSettings struct {
	Documents            []string `mapstructure:"documents"`
	DocumentsJSON        string   `mapstructure:"documentsJSON"`
	OutputFile           string   `mapstructure:"outputFile"`
	IncludeFileExtension bool     `mapstructure:"includeFileExtension"`
	GraphqlTagName       string   `mapstructure:"graphqlTagName"`
	NamingConvention     string   `mapstructure:"namingConvention"`
}

var colocateSettingKeys = []string{
	"documents",
	"documentsJSON",
	"outputFile",
	"includeFileExtension",
	"graphqlTagName",
	"namingConvention",
}

// colocateCmd represents the colocate command
var colocateCmd = &cobra.Command{
	Use:   "colocate",
	Short: "Writes a .g.ts file next to every GraphQL document that re-exports its operations",
	Long: `colocate reads GraphQL documents and writes one file per document location into the directory of the document.
The file exports the document constants of all named operations of that location from the shared output file, e.g.

  ops/user.graphql -> ops/user.g.ts: export { GetUserDocument } from "../src/generated";`,
	Example: `graphql-colocate gen colocate --documents 'src/**/*.graphql' --outputFile src/generated.ts`,
	Args:    cobra.NoArgs,
	RunE:    runColocate,
}

func init() {
	genCmd.AddCommand(colocateCmd)

	addColocateFlags(colocateCmd.Flags())
	colocateCmd.Flags().Bool("dryRun", false, "prints the files that would be written instead of writing them")
	colocateCmd.Flags().String("format", string(colocate.ManifestFormatYAML), "output format of dryRun: yaml or json")
	colocateCmd.Flags().Bool("check", false, "fails if any generated file is missing or outdated, nothing is written")
}

func addColocateFlags(flags *pflag.FlagSet) {
	flags.StringSliceP("documents", "d", nil, "glob pattern of GraphQL documents, ** matches any number of directories (repeatable)")
	flags.String("documentsJSON", "", "JSON file of already parsed documents, used instead of --documents")
	flags.StringP("outputFile", "o", "", "file the document constants are generated into, e.g. src/generated.ts")
	flags.Bool("includeFileExtension", false, "keeps the file extension of outputFile in import paths")
	flags.String("graphqlTagName", "gql", "name of the graphql template tag, accepted for compatibility")
	flags.String("namingConvention", string(colocate.NamingConventionKeep), "naming of exported documents: keep or pascalCase")
}

func runColocate(cmd *cobra.Command, args []string) error {
	logger, sync, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer sync()

	settings, err := loadColocateSettings(cmd)
	if err != nil {
		return err
	}

	config := colocate.Config{
		OutputFile:           settings.OutputFile,
		IncludeFileExtension: settings.IncludeFileExtension,
		GraphqlTagName:       settings.GraphqlTagName,
		NamingConvention:     colocate.NamingConvention(settings.NamingConvention),
	}
	if err := config.Validate(); err != nil {
		return err
	}

	documentFiles, err := loadDocuments(settings, logger)
	if err != nil {
		if message, ok := operationreport.ExternalErrorMessage(err, formatReport); ok {
			fmt.Fprint(cmd.ErrOrStderr(), message)
			return errors.New("documents contain errors")
		}
		return err
	}

	generator := colocate.New(colocate.WithFs(appFs), colocate.WithLogger(logger))

	dryRun, _ := cmd.Flags().GetBool("dryRun")
	check, _ := cmd.Flags().GetBool("check")
	switch {
	case dryRun:
		format, _ := cmd.Flags().GetString("format")
		return printManifest(cmd, generator, documentFiles, config, colocate.ManifestFormat(format))
	case check:
		return checkFiles(cmd, generator, documentFiles, config)
	default:
		return generator.Generate(documentFiles, config)
	}
}

func loadColocateSettings(cmd *cobra.Command) (colocateSettings, error) {
	v := viper.New()
	v.SetFs(appFs)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	for _, key := range colocateSettingKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return colocateSettings{}, errors.Wrapf(err, "bind flag %s", key)
		}
	}

	configFile, _ := cmd.Flags().GetString("config")
	if configFile != "" {
		expanded, err := homedir.Expand(configFile)
		if err != nil {
			return colocateSettings{}, err
		}
		v.SetConfigFile(expanded)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return colocateSettings{}, errors.Wrap(err, "read config")
		}
	}

	var settings colocateSettings
	if err := v.UnmarshalExact(&settings); err != nil {
		return colocateSettings{}, errors.Wrap(err, "invalid config")
	}
	return settings, nil
}

func loadDocuments(settings colocateSettings, logger log.Logger) ([]colocate.DocumentFile, error) {
	switch {
	case settings.DocumentsJSON != "":
		logger.Debug("loadDocuments", log.String("documentsJSON", settings.DocumentsJSON))
		return documents.LoadJSONFile(appFs, settings.DocumentsJSON)
	case len(settings.Documents) > 0:
		logger.Debug("loadDocuments", log.String("documents", strings.Join(settings.Documents, ",")))
		return documents.NewScanner(appFs).ScanPatterns(settings.Documents...)
	default:
		return nil, errors.New("no documents: set documents or documentsJSON")
	}
}

func printManifest(cmd *cobra.Command, generator *colocate.Generator, documentFiles []colocate.DocumentFile, config colocate.Config, format colocate.ManifestFormat) error {
	files, err := generator.Plan(documentFiles, config)
	if err != nil {
		return err
	}
	manifest, err := colocate.MarshalManifest(files, format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(manifest)
	return err
}

func checkFiles(cmd *cobra.Command, generator *colocate.Generator, documentFiles []colocate.DocumentFile, config colocate.Config) error {
	stale, err := generator.Check(documentFiles, config)
	if err != nil {
		return err
	}
	for i := range stale {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", stale[i].Filename, stale[i].Reason)
	}
	if len(stale) > 0 {
		return errors.Errorf("%d generated files are not up to date", len(stale))
	}
	return nil
}

func formatReport(report *operationreport.Report) string {
	var sb strings.Builder
	for i := range report.ExternalErrors {
		sb.WriteString(report.ExternalErrors[i].Error())
		sb.WriteString("\n")
	}
	for i := range report.InternalErrors {
		sb.WriteString(report.InternalErrors[i].Error())
		sb.WriteString("\n")
	}
	return sb.String()
}
