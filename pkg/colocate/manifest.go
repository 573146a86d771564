package colocate

import (
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v2"
)

type ManifestFormat string

const (
	ManifestFormatYAML ManifestFormat = "yaml"
	ManifestFormatJSON ManifestFormat = "json"
)

type manifestEntry struct {
	Location   string   `yaml:"location" json:"location"`
	Filename   string   `yaml:"filename" json:"filename"`
	ImportPath string   `yaml:"importPath" json:"importPath"`
	Exports    []string `yaml:"exports" json:"exports"`
}

type manifest struct {
	Files []manifestEntry `yaml:"files"`
}

// MarshalManifest lists planned files for a dry run.
func MarshalManifest(files []File, format ManifestFormat) ([]byte, error) {
	entries := make([]manifestEntry, 0, len(files))
	for i := range files {
		exports := files[i].Exports
		if exports == nil {
			exports = []string{}
		}
		entries = append(entries, manifestEntry{
			Location:   files[i].Location,
			Filename:   files[i].Filename,
			ImportPath: files[i].ImportPath,
			Exports:    exports,
		})
	}

	switch format {
	case ManifestFormatYAML:
		return yaml.Marshal(manifest{Files: entries})
	case ManifestFormatJSON:
		return marshalJSONManifest(entries)
	default:
		return nil, errors.Errorf("unknown manifest format %q", format)
	}
}

func marshalJSONManifest(entries []manifestEntry) ([]byte, error) {
	out := []byte(`{"files":[]}`)
	var err error
	for i := range entries {
		out, err = sjson.SetBytes(out, "files.-1", entries[i])
		if err != nil {
			return nil, errors.Wrapf(err, "manifest entry %s", entries[i].Filename)
		}
	}
	return []byte(gjson.GetBytes(out, "@pretty").Raw), nil
}
