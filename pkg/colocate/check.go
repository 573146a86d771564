package colocate

import (
	"os"

	"github.com/cespare/xxhash/v2"
	log "github.com/jensneuse/abstractlogger"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

type StaleReason string

const (
	StaleReasonMissing  StaleReason = "missing"
	StaleReasonOutdated StaleReason = "outdated"
)

// StaleFile is a generated file whose content on disk differs from the planned content.
type StaleFile struct {
	Filename string
	Reason   StaleReason
}

// Check plans a run and compares the result with the files on the filesystem.
// Nothing is written. An empty result means the generated files are up to date.
func (g *Generator) Check(documents []DocumentFile, config Config) ([]StaleFile, error) {
	files, err := g.Plan(documents, config)
	if err != nil {
		return nil, err
	}

	var stale []StaleFile
	for i := range files {
		existing, err := afero.ReadFile(g.fs, files[i].Filename)
		switch {
		case os.IsNotExist(err):
			stale = append(stale, StaleFile{Filename: files[i].Filename, Reason: StaleReasonMissing})
			continue
		case err != nil:
			return nil, errors.Wrapf(err, "read %s", files[i].Filename)
		}

		if xxhash.Sum64(existing) != xxhash.Sum64String(files[i].Contents) {
			stale = append(stale, StaleFile{Filename: files[i].Filename, Reason: StaleReasonOutdated})
		}
	}

	g.log.Debug("Generator.Check",
		log.Int("files", len(files)),
		log.Int("stale", len(stale)),
	)

	return stale, nil
}
