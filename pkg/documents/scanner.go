// Package documents loads the GraphQL documents a generation run works on.
//
// Documents are either parsed from .graphql sources found by glob patterns,
// or read from a JSON list of already parsed documents.
package documents

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/jensneuse/graphql-colocate/pkg/colocate"
	"github.com/jensneuse/graphql-colocate/pkg/operationreport"
)

var (
	importStatementRegex = regexp.MustCompile(`(#import "[^";]+")`)
	pathStatementRegex   = regexp.MustCompile(`"(.*?)"`)
)

// Scanner finds and parses GraphQL source files.
// Files referenced by "#import" comments are scanned as well. Unless a pattern matches
// them too, they contribute their fragments only, so they never get a generated file.
type Scanner struct {
	fs           afero.Fs
	knownFiles   map[string]struct{}
	matchedFiles map[string]struct{}
	documents    []colocate.DocumentFile
	report       operationreport.Report
}

func NewScanner(fs afero.Fs) *Scanner {
	return &Scanner{fs: fs}
}

// ScanPatterns parses every file matching one of the patterns.
// Patterns support "**" to match any number of directories.
// Syntax errors of all files are returned together as operationreport.Report.
func (s *Scanner) ScanPatterns(patterns ...string) ([]colocate.DocumentFile, error) {
	s.knownFiles = map[string]struct{}{}
	s.matchedFiles = map[string]struct{}{}
	s.documents = nil
	s.report = operationreport.Report{}

	for _, pattern := range patterns {
		err := s.scanPattern(pattern, false)
		if err != nil {
			return nil, err
		}
	}

	if s.report.HasErrors() {
		return nil, s.report
	}

	for i := range s.documents {
		if _, matched := s.matchedFiles[s.documents[i].Location]; !matched {
			s.documents[i].Definitions = fragmentDefinitions(s.documents[i].Definitions)
		}
	}

	return s.documents, nil
}

func (s *Scanner) scanPattern(pattern string, imported bool) error {
	matches, err := s.match(pattern)
	if err != nil {
		return err
	}
	for _, match := range matches {
		if !imported {
			s.matchedFiles[filepath.Clean(match)] = struct{}{}
		}
		err = s.scanFile(match)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Scanner) scanFile(filePath string) error {
	filePath = filepath.Clean(filePath)
	if _, exists := s.knownFiles[filePath]; exists {
		return nil
	}
	s.knownFiles[filePath] = struct{}{}

	content, err := afero.ReadFile(s.fs, filePath)
	if err != nil {
		return errors.Wrapf(err, "read %s", filePath)
	}

	document, err := ParseDocument(filePath, content)
	if err != nil {
		var externalError operationreport.ExternalError
		if errors.As(err, &externalError) {
			s.report.AddExternalError(externalError)
		} else {
			s.report.AddInternalError(err)
		}
	} else {
		s.documents = append(s.documents, document)
	}

	fileDir := filepath.Dir(filePath)
	importStatements := importStatementRegex.FindAll(content, -1)
	for i := 0; i < len(importStatements); i++ {
		importFilePath := s.importFilePath(string(importStatements[i]))
		if importFilePath == "" {
			continue
		}
		err = s.scanPattern(filepath.Join(fileDir, filepath.FromSlash(importFilePath)), true)
		if err != nil {
			return err
		}
	}

	return nil
}

func fragmentDefinitions(definitions []colocate.Definition) []colocate.Definition {
	out := make([]colocate.Definition, 0, len(definitions))
	for i := range definitions {
		if definitions[i].Kind == colocate.KindFragmentDefinition {
			out = append(out, definitions[i])
		}
	}
	return out
}

func (s *Scanner) importFilePath(importStatement string) string {
	out := pathStatementRegex.FindString(importStatement)
	out = strings.TrimLeft(out, "\"")
	out = strings.TrimRight(out, "\"")
	return out
}

// match returns the files matching pattern in lexical order.
// A pattern whose base directory does not exist matches nothing.
func (s *Scanner) match(pattern string) ([]string, error) {
	base, filePattern := doublestar.SplitPattern(filepath.ToSlash(pattern))
	if !doublestar.ValidatePattern(filePattern) {
		return nil, errors.Wrapf(doublestar.ErrBadPattern, "pattern %s", pattern)
	}

	// without "**" directories deeper than the pattern can never match
	maxDepth := -1
	if !strings.Contains(filePattern, "**") {
		maxDepth = strings.Count(filePattern, "/")
	}

	root := filepath.FromSlash(base)
	var matches []string
	err := afero.Walk(s.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root && os.IsNotExist(err) {
				return nil
			}
			return err
		}
		relativePath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != root && maxDepth >= 0 && depth(relativePath) > maxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		ok, err := doublestar.Match(filePattern, filepath.ToSlash(relativePath))
		if err != nil {
			return err
		}
		if ok {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "match %s", pattern)
	}

	return matches, nil
}

func depth(relativePath string) int {
	return strings.Count(filepath.ToSlash(relativePath), "/") + 1
}
