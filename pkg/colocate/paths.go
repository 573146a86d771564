package colocate

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// GeneratedFileExtension replaces the extension of every location.
const GeneratedFileExtension = ".g.ts"

var fileExtensionRegex = regexp.MustCompile(`\.[^/.]+$`)

// DerivedFilename returns the companion file of location: same directory,
// same base name, GeneratedFileExtension. A relative location stays relative.
func DerivedFilename(location string) string {
	base := filepath.Base(location)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" {
		// dot files like .graphqlrc have no extension
		name = base
	}
	return filepath.Join(filepath.Dir(location), name+GeneratedFileExtension)
}

// RemoveFileExtension trims the last extension of a slash separated path.
// Dots in directory names are left untouched.
func RemoveFileExtension(path string) string {
	return fileExtensionRegex.ReplaceAllString(path, "")
}

// PathResolver derives import paths between generated files and the output file.
// Relative paths are resolved against BaseDir, or the working directory if BaseDir is empty.
type PathResolver struct {
	BaseDir string
}

// RelativeImportPath returns the path from the directory of fromFile to toFile,
// always slash separated and always starting with "./" or "../".
func (p PathResolver) RelativeImportPath(fromFile, toFile string) (string, error) {
	fromDir, err := p.abs(filepath.Dir(fromFile))
	if err != nil {
		return "", err
	}
	to, err := p.abs(toFile)
	if err != nil {
		return "", err
	}

	relativePath, err := filepath.Rel(fromDir, to)
	if err != nil {
		return "", errors.Wrapf(err, "relative path from %s to %s", fromDir, to)
	}

	relativePath = filepath.ToSlash(relativePath)
	switch {
	case relativePath == ".":
		return "./" + filepath.Base(to), nil
	case relativePath == "..", strings.HasPrefix(relativePath, "../"):
		return relativePath, nil
	default:
		return "./" + relativePath, nil
	}
}

// ImportPath is RelativeImportPath with the extension removed unless includeFileExtension is set.
func (p PathResolver) ImportPath(fromFile, toFile string, includeFileExtension bool) (string, error) {
	relativePath, err := p.RelativeImportPath(fromFile, toFile)
	if err != nil {
		return "", err
	}
	if includeFileExtension {
		return relativePath, nil
	}
	return RemoveFileExtension(relativePath), nil
}

func (p PathResolver) abs(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	if p.BaseDir != "" {
		return filepath.Join(p.BaseDir, path), nil
	}
	absolutePath, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "resolve %s", path)
	}
	return absolutePath, nil
}
