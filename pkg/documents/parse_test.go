package documents

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jensneuse/graphql-colocate/pkg/colocate"
	"github.com/jensneuse/graphql-colocate/pkg/operationreport"
)

func TestParseDocument(t *testing.T) {
	t.Run("definitions in source order", func(t *testing.T) {
		document, err := ParseDocument("ops/user.graphql", []byte(`
			fragment UserFields on User { id name }
			query GetUser { me { ...UserFields } }
			mutation UpdateUser($name: String!) { updateUser(name: $name) { id } }
			subscription OnUserUpdated { userUpdated { id } }
		`))
		require.NoError(t, err)

		assert.Equal(t, "ops/user.graphql", document.Location)
		assert.Equal(t, []colocate.Definition{
			{Kind: colocate.KindFragmentDefinition, Name: "UserFields"},
			{Kind: colocate.KindOperationDefinition, Operation: colocate.OperationTypeQuery, Name: "GetUser"},
			{Kind: colocate.KindOperationDefinition, Operation: colocate.OperationTypeMutation, Name: "UpdateUser"},
			{Kind: colocate.KindOperationDefinition, Operation: colocate.OperationTypeSubscription, Name: "OnUserUpdated"},
		}, document.Definitions)
	})

	t.Run("anonymous shorthand query", func(t *testing.T) {
		document, err := ParseDocument("ops/me.graphql", []byte(`{ me { id } }`))
		require.NoError(t, err)

		require.Len(t, document.Definitions, 1)
		assert.Equal(t, colocate.KindOperationDefinition, document.Definitions[0].Kind)
		assert.Equal(t, colocate.OperationTypeQuery, document.Definitions[0].Operation)
		assert.Equal(t, "", document.Definitions[0].Name)
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := ParseDocument("ops/broken.graphql", []byte("query GetUser {\n  me {\n"))
		require.Error(t, err)

		var externalError operationreport.ExternalError
		require.True(t, errors.As(err, &externalError))
		assert.Equal(t, "ops/broken.graphql", externalError.Location)
		assert.NotEmpty(t, externalError.Message)
		assert.Greater(t, externalError.Line, 0)
		assert.Greater(t, externalError.Column, 0)
	})
}
