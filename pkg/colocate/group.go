package colocate

// LocationGroups maps source locations to the operation definitions found there.
// Locations iterate in the order they were first appended.
type LocationGroups struct {
	locations   []string
	definitions map[string][]OperationDefinitionInfo
}

func NewLocationGroups() *LocationGroups {
	return &LocationGroups{
		definitions: map[string][]OperationDefinitionInfo{},
	}
}

// Append adds definitions to location. The location is registered even if definitions is empty.
func (l *LocationGroups) Append(location string, definitions ...OperationDefinitionInfo) {
	existing, ok := l.definitions[location]
	if !ok {
		l.locations = append(l.locations, location)
		existing = make([]OperationDefinitionInfo, 0, len(definitions))
	}
	l.definitions[location] = append(existing, definitions...)
}

func (l *LocationGroups) Locations() []string {
	out := make([]string, len(l.locations))
	copy(out, l.locations)
	return out
}

func (l *LocationGroups) Definitions(location string) []OperationDefinitionInfo {
	return l.definitions[location]
}

func (l *LocationGroups) Len() int {
	return len(l.locations)
}

// GroupByLocation concatenates the definitions of all records sharing a location
// in input order. Records without a location are skipped.
func GroupByLocation(records []DocumentRecord) *LocationGroups {
	groups := NewLocationGroups()
	for i := range records {
		if !records[i].HasLocation() {
			continue
		}
		groups.Append(records[i].Location, records[i].Definitions...)
	}
	return groups
}

// WithOperations returns the groups holding at least one operation definition.
func (l *LocationGroups) WithOperations() *LocationGroups {
	out := NewLocationGroups()
	for _, location := range l.locations {
		operations := make([]OperationDefinitionInfo, 0, len(l.definitions[location]))
		for _, definition := range l.definitions[location] {
			if definition.Kind == KindOperationDefinition {
				operations = append(operations, definition)
			}
		}
		if len(operations) == 0 {
			continue
		}
		out.Append(location, operations...)
	}
	return out
}
