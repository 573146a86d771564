// Package colocate writes a companion file next to every GraphQL document that contains operations.
//
// The companion file re-exports the document constants of its operations from the shared output file
// of the document generation step, so they can be imported from right next to the .graphql source:
//
//	ops/user.graphql  ->  ops/user.g.ts: export { GetUserDocument } from "../src/generated";
//
// Generation runs in stages: Extract, GroupByLocation, WithOperations, path resolution,
// RenderExports and finally the FileWriter. Only the last stage has side effects.
package colocate

import (
	"os"
	"path/filepath"

	log "github.com/jensneuse/abstractlogger"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// File is a generated file ready to be written.
type File struct {
	Filename   string
	Contents   string
	Location   string
	ImportPath string
	Exports    []string
}

type Generator struct {
	fs      afero.Fs
	writer  FileWriter
	log     log.Logger
	baseDir string
}

type Option func(g *Generator)

// WithFs sets the filesystem used for writing and checking. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(g *Generator) {
		g.fs = fs
	}
}

// WithWriter replaces the writer built from the filesystem.
func WithWriter(writer FileWriter) Option {
	return func(g *Generator) {
		g.writer = writer
	}
}

func WithLogger(logger log.Logger) Option {
	return func(g *Generator) {
		g.log = logger
	}
}

// WithBaseDir sets the directory relative locations and output files are resolved against,
// generated files of relative locations are written there too. Defaults to the working directory.
func WithBaseDir(baseDir string) Option {
	return func(g *Generator) {
		g.baseDir = baseDir
	}
}

func New(options ...Option) *Generator {
	g := &Generator{
		fs:  afero.NewOsFs(),
		log: log.NoopLogger,
	}
	for _, option := range options {
		option(g)
	}
	if g.writer == nil {
		g.writer = NewFsWriter(g.fs)
	}
	return g
}

// Plan computes the files of a run without writing them.
func (g *Generator) Plan(documents []DocumentFile, config Config) ([]File, error) {
	records, outputFile, err := Extract(documents, config)
	if err != nil {
		return nil, err
	}

	resolver, err := g.pathResolver()
	if err != nil {
		return nil, err
	}

	groups := GroupByLocation(records).WithOperations()
	files := make([]File, 0, groups.Len())
	derivedFrom := make(map[string]string, groups.Len())
	for _, location := range groups.Locations() {
		filename := g.filename(location)
		if previous, exists := derivedFrom[filename]; exists {
			return nil, errors.Errorf("locations %s and %s both generate %s", previous, location, filename)
		}
		derivedFrom[filename] = location

		importPath, err := resolver.ImportPath(filename, outputFile, config.IncludeFileExtension)
		if err != nil {
			return nil, err
		}

		exports := ExportNames(groups.Definitions(location), config.NamingConvention)
		files = append(files, File{
			Filename:   filename,
			Contents:   renderExportNames(exports, importPath),
			Location:   location,
			ImportPath: importPath,
			Exports:    exports,
		})
	}

	return files, nil
}

// Generate plans the files of a run and writes them one after another.
// The first failing write aborts the run, files written before stay in place.
func (g *Generator) Generate(documents []DocumentFile, config Config) error {
	files, err := g.Plan(documents, config)
	if err != nil {
		return err
	}

	for i := range files {
		err = g.writer.WriteFile(files[i].Filename, []byte(files[i].Contents))
		if err != nil {
			return errors.Wrapf(err, "write %s", files[i].Filename)
		}
		g.log.Debug("Generator.Generate",
			log.String("filename", files[i].Filename),
			log.Int("exports", len(files[i].Exports)),
		)
	}

	g.log.Info("Generator.Generate", log.Int("files", len(files)))
	return nil
}

// Plugin follows the convention of codegen plugins: the output is written to disk
// and the returned content is always empty.
func (g *Generator) Plugin(documents []DocumentFile, config Config) (string, error) {
	return "", g.Generate(documents, config)
}

// filename returns the companion file of location. Relative locations are placed
// under the base directory if one is set, otherwise they stay relative to the working directory.
func (g *Generator) filename(location string) string {
	filename := DerivedFilename(location)
	if g.baseDir == "" || filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(g.baseDir, filename)
}

func (g *Generator) pathResolver() (PathResolver, error) {
	baseDir := g.baseDir
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return PathResolver{}, errors.Wrap(err, "working directory")
		}
		baseDir = wd
	}
	if !filepath.IsAbs(baseDir) {
		absoluteBaseDir, err := filepath.Abs(baseDir)
		if err != nil {
			return PathResolver{}, errors.Wrapf(err, "resolve %s", baseDir)
		}
		baseDir = absoluteBaseDir
	}
	return PathResolver{BaseDir: baseDir}, nil
}
