// Package unsafeparser is for testing purposes only: it parses GraphQL documents and panics on errors.
package unsafeparser

import (
	"github.com/jensneuse/graphql-colocate/pkg/colocate"
	"github.com/jensneuse/graphql-colocate/pkg/documents"
)

func ParseGraphqlDocumentString(location, input string) colocate.DocumentFile {
	return ParseGraphqlDocumentBytes(location, []byte(input))
}

func ParseGraphqlDocumentBytes(location string, input []byte) colocate.DocumentFile {
	document, err := documents.ParseDocument(location, input)
	if err != nil {
		panic(err)
	}
	return document
}
