package colocate

// DefinitionKind is the kind tag of a top-level definition as reported by the parser,
// e.g. "OperationDefinition" or "FragmentDefinition".
type DefinitionKind string

const (
	KindOperationDefinition DefinitionKind = "OperationDefinition"
	KindFragmentDefinition  DefinitionKind = "FragmentDefinition"
)

type OperationType string

const (
	OperationTypeQuery        OperationType = "query"
	OperationTypeMutation     OperationType = "mutation"
	OperationTypeSubscription OperationType = "subscription"
)

func (o OperationType) Valid() bool {
	switch o {
	case OperationTypeQuery, OperationTypeMutation, OperationTypeSubscription:
		return true
	default:
		return false
	}
}

// Definition is one top-level definition of a parsed document.
// Operation and Name are only meaningful for operation definitions.
type Definition struct {
	Kind      DefinitionKind
	Operation OperationType
	Name      string
}

// DocumentFile is a parsed document together with the file it was read from.
// An empty Location means the document has no known source file.
type DocumentFile struct {
	Location    string
	Definitions []Definition
}

type OperationDefinitionInfo struct {
	Kind      DefinitionKind
	Operation OperationType
	Name      string
}

func (o OperationDefinitionInfo) IsAnonymous() bool {
	return o.Name == ""
}

// DocumentRecord is a document reduced to its operation definitions.
type DocumentRecord struct {
	Location    string
	Definitions []OperationDefinitionInfo
}

func (d DocumentRecord) HasLocation() bool {
	return d.Location != ""
}
