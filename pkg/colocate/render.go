package colocate

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// importPathEscaper escapes a path for a double quoted JavaScript string literal.
// Everything else, non ASCII characters included, is written as is.
var importPathEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
)

// DocumentSuffix is appended to an operation name to get the exported document symbol.
// It has to match the naming of the step that generates the output file.
const DocumentSuffix = "Document"

func ExportName(operationName string, convention NamingConvention) string {
	if convention == NamingConventionPascalCase {
		operationName = strcase.ToCamel(operationName)
	}
	return operationName + DocumentSuffix
}

// ExportNames returns the export symbols of all named definitions in order.
func ExportNames(definitions []OperationDefinitionInfo, convention NamingConvention) []string {
	names := make([]string, 0, len(definitions))
	for _, definition := range definitions {
		if definition.IsAnonymous() {
			continue
		}
		names = append(names, ExportName(definition.Name, convention))
	}
	return names
}

// RenderExports renders the single export statement of a generated file:
//
//	export { GetUserDocument, UpdateUserDocument } from "./generated";
//
// If every definition is anonymous the statement exports nothing: export {} from "./generated";
func RenderExports(definitions []OperationDefinitionInfo, importPath string, convention NamingConvention) string {
	return renderExportNames(ExportNames(definitions, convention), importPath)
}

func renderExportNames(names []string, importPath string) string {
	var sb strings.Builder
	sb.WriteString("export {")
	if len(names) > 0 {
		sb.WriteString(" ")
		sb.WriteString(strings.Join(names, ", "))
		sb.WriteString(" ")
	}
	sb.WriteString("} from \"")
	importPathEscaper.WriteString(&sb, importPath)
	sb.WriteString("\";\n")
	return sb.String()
}
