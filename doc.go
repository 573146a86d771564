// Command graphql-colocate writes GraphQL document exports next to the documents they belong to.
//
// About colocation
//
// GraphQL code generators usually emit every typed document of a project into one large file, e.g. src/generated.ts.
// Importing a query then means importing from that central file instead of from the .graphql file the query is written in.
//
// This tool runs after such a generator. For every document location it writes a .g.ts file into the same directory
// which re-exports the documents of that location from the generated file:
//
//	ops/user.graphql -> ops/user.g.ts: export { GetUserDocument, UpdateUserDocument } from "../src/generated";
//
// Documents are read from .graphql sources by glob pattern or from a JSON list of already parsed documents.
// Besides writing, the tool can print the planned files (--dryRun) or verify that the written files are up to date (--check).
//
// Usage
//
//	graphql-colocate gen colocate --documents 'src/**/*.graphql' --outputFile src/generated.ts
package main
