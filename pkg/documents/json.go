package documents

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/tidwall/gjson"

	"github.com/jensneuse/graphql-colocate/pkg/colocate"
)

// LoadJSON reads documents that were parsed by another tool, in the shape codegen tools hand them to plugins:
//
//	[{"location": "ops/user.graphql", "document": {"definitions": [
//		{"kind": "OperationDefinition", "operation": "query", "name": {"value": "GetUser"}}
//	]}}]
func LoadJSON(data []byte) ([]colocate.DocumentFile, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("documents JSON is not valid JSON")
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, errors.Errorf("documents JSON must be an array, got %s", root.Type)
	}

	documents := make([]colocate.DocumentFile, 0, len(root.Array()))
	var err error
	root.ForEach(func(_, value gjson.Result) bool {
		var document colocate.DocumentFile
		document, err = jsonDocument(value)
		if err != nil {
			return false
		}
		documents = append(documents, document)
		return true
	})
	if err != nil {
		return nil, err
	}

	return documents, nil
}

func LoadJSONFile(fs afero.Fs, filename string) ([]colocate.DocumentFile, error) {
	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", filename)
	}
	documents, err := LoadJSON(data)
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}
	return documents, nil
}

func jsonDocument(value gjson.Result) (colocate.DocumentFile, error) {
	definitions := value.Get("document.definitions")
	document := colocate.DocumentFile{
		Location:    value.Get("location").String(),
		Definitions: make([]colocate.Definition, 0, len(definitions.Array())),
	}

	var err error
	definitions.ForEach(func(_, definition gjson.Result) bool {
		next := colocate.Definition{
			Kind:      colocate.DefinitionKind(definition.Get("kind").String()),
			Operation: colocate.OperationType(definition.Get("operation").String()),
			Name:      definition.Get("name.value").String(),
		}
		if next.Kind == colocate.KindOperationDefinition && !next.Operation.Valid() {
			err = errors.Errorf("%s: unknown operation %q", document.Location, next.Operation)
			return false
		}
		document.Definitions = append(document.Definitions, next)
		return true
	})

	return document, err
}
