package colocate

import (
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

// ErrMissingOutputFile is returned before any file is touched when the run has no output file.
var ErrMissingOutputFile = errors.New("Missing outputFile in plugin configuration")

type NamingConvention string

const (
	// NamingConventionKeep uses the operation name as written: GetUser -> GetUserDocument.
	NamingConventionKeep NamingConvention = "keep"
	// NamingConventionPascalCase converts the operation name first: getUser -> GetUserDocument.
	NamingConventionPascalCase NamingConvention = "pascalCase"
)

// Config is the configuration of a single generation run.
type Config struct {
	// OutputFile is the module that already exports the generated document constants.
	OutputFile string
	// IncludeFileExtension keeps the extension of OutputFile in the rendered import path.
	IncludeFileExtension bool
	// GraphqlTagName is accepted for compatibility with other document plugins and not used.
	GraphqlTagName string
	// NamingConvention must match the convention of the step generating OutputFile.
	// Empty means NamingConventionKeep.
	NamingConvention NamingConvention
}

type ConfigurationError struct {
	Field string
	Err   error
}

func (c *ConfigurationError) Error() string {
	return c.Err.Error()
}

func (c *ConfigurationError) Unwrap() error {
	return c.Err
}

func (c Config) Validate() error {
	if c.OutputFile == "" {
		return &ConfigurationError{Field: "outputFile", Err: ErrMissingOutputFile}
	}

	switch c.NamingConvention {
	case "", NamingConventionKeep, NamingConventionPascalCase:
	default:
		return &ConfigurationError{
			Field: "namingConvention",
			Err:   errors.Errorf("unknown namingConvention %q, expected %q or %q", c.NamingConvention, NamingConventionKeep, NamingConventionPascalCase),
		}
	}

	return nil
}

// outputFilePath validates the config and returns OutputFile with a leading ~ expanded.
func (c Config) outputFilePath() (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	outputFile, err := homedir.Expand(c.OutputFile)
	if err != nil {
		return "", &ConfigurationError{Field: "outputFile", Err: errors.Wrapf(err, "expand %s", c.OutputFile)}
	}

	return outputFile, nil
}
