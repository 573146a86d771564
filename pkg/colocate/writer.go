package colocate

import (
	"os"

	"github.com/spf13/afero"
)

//go:generate mockgen -destination=../mocks/colocate/mock_writer.go -package=mock_colocate . FileWriter

// FileWriter persists generated files. Existing files are overwritten.
type FileWriter interface {
	WriteFile(filename string, data []byte) error
}

const generatedFilePerm os.FileMode = 0644

type FsWriter struct {
	fs afero.Fs
}

func NewFsWriter(fs afero.Fs) *FsWriter {
	return &FsWriter{fs: fs}
}

func (f *FsWriter) WriteFile(filename string, data []byte) error {
	return afero.WriteFile(f.fs, filename, data, generatedFilePerm)
}
