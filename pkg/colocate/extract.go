package colocate

// Extract reduces every document to its operation definitions, keeping their order,
// and returns the output file of the run.
// A config without output file fails with ErrMissingOutputFile.
func Extract(documents []DocumentFile, config Config) ([]DocumentRecord, string, error) {
	outputFile, err := config.outputFilePath()
	if err != nil {
		return nil, "", err
	}

	records := make([]DocumentRecord, 0, len(documents))
	for i := range documents {
		records = append(records, DocumentRecord{
			Location:    documents[i].Location,
			Definitions: operationDefinitions(documents[i].Definitions),
		})
	}

	return records, outputFile, nil
}

func operationDefinitions(definitions []Definition) []OperationDefinitionInfo {
	out := make([]OperationDefinitionInfo, 0, len(definitions))
	for _, definition := range definitions {
		if definition.Kind != KindOperationDefinition {
			continue
		}
		out = append(out, OperationDefinitionInfo{
			Kind:      definition.Kind,
			Operation: definition.Operation,
			Name:      definition.Name,
		})
	}
	return out
}
