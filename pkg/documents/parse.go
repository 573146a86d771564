package documents

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/jensneuse/graphql-colocate/pkg/colocate"
	"github.com/jensneuse/graphql-colocate/pkg/operationreport"
)

// ParseDocument parses an executable GraphQL document read from location.
// Definitions keep their order in the source.
func ParseDocument(location string, content []byte) (colocate.DocumentFile, error) {
	queryDocument, err := parser.ParseQuery(&ast.Source{Name: location, Input: string(content)})
	if err != nil {
		return colocate.DocumentFile{}, externalError(location, err)
	}

	type positionedDefinition struct {
		offset     int
		definition colocate.Definition
	}

	definitions := make([]positionedDefinition, 0, len(queryDocument.Operations)+len(queryDocument.Fragments))
	for _, operation := range queryDocument.Operations {
		definitions = append(definitions, positionedDefinition{
			offset: startOffset(operation.Position),
			definition: colocate.Definition{
				Kind:      colocate.KindOperationDefinition,
				Operation: colocate.OperationType(operation.Operation),
				Name:      operation.Name,
			},
		})
	}
	for _, fragment := range queryDocument.Fragments {
		definitions = append(definitions, positionedDefinition{
			offset: startOffset(fragment.Position),
			definition: colocate.Definition{
				Kind: colocate.KindFragmentDefinition,
				Name: fragment.Name,
			},
		})
	}

	sort.SliceStable(definitions, func(i, j int) bool {
		return definitions[i].offset < definitions[j].offset
	})

	document := colocate.DocumentFile{
		Location:    location,
		Definitions: make([]colocate.Definition, 0, len(definitions)),
	}
	for i := range definitions {
		document.Definitions = append(document.Definitions, definitions[i].definition)
	}

	return document, nil
}

func startOffset(position *ast.Position) int {
	if position == nil {
		return 0
	}
	return position.Start
}

func externalError(location string, err error) operationreport.ExternalError {
	var gqlErr *gqlerror.Error
	if !errors.As(err, &gqlErr) {
		return operationreport.ExternalError{Message: err.Error(), Location: location}
	}

	externalError := operationreport.ExternalError{
		Message:  gqlErr.Message,
		Location: location,
	}
	if len(gqlErr.Locations) > 0 {
		externalError.Line = gqlErr.Locations[0].Line
		externalError.Column = gqlErr.Locations[0].Column
	}
	return externalError
}
