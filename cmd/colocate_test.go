package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func setupFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, filepath.FromSlash(name), []byte(content), 0644))
	}

	previous := appFs
	appFs = fs
	t.Cleanup(func() {
		appFs = previous
	})
	return fs
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	resetFlags(t, rootCmd)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"gen", "colocate"}, args...))
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// resetFlags restores the defaults of all flags of cmd and its children,
// the commands are package level and keep parsed values between executions.
func resetFlags(t *testing.T, cmd *cobra.Command) {
	t.Helper()
	reset := func(flag *pflag.Flag) {
		flag.Changed = false
		if sliceValue, ok := flag.Value.(pflag.SliceValue); ok {
			require.NoError(t, sliceValue.Replace(nil))
			return
		}
		require.NoError(t, flag.Value.Set(flag.DefValue))
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(t, child)
	}
}

func readFile(t *testing.T, fs afero.Fs, name string) string {
	t.Helper()
	content, err := afero.ReadFile(fs, filepath.FromSlash(name))
	require.NoError(t, err)
	return string(content)
}

var userDocuments = map[string]string{
	"/work/ops/user.graphql":       "query GetUser { me { id } }\nmutation UpdateUser { updateUser { id } }",
	"/work/ops/posts/list.graphql": "query ListPosts { posts { id } }",
}

func TestColocateCmd(t *testing.T) {
	t.Run("generates files for documents", func(t *testing.T) {
		fs := setupFs(t, userDocuments)

		_, _, err := execute(t, "--documents", "/work/ops/**/*.graphql", "--outputFile", "/work/src/generated.ts")
		require.NoError(t, err)

		assert.Equal(t, "export { GetUserDocument, UpdateUserDocument } from \"../src/generated\";\n", readFile(t, fs, "/work/ops/user.g.ts"))
		assert.Equal(t, "export { ListPostsDocument } from \"../../src/generated\";\n", readFile(t, fs, "/work/ops/posts/list.g.ts"))
	})

	t.Run("generates files for documents json", func(t *testing.T) {
		fs := setupFs(t, map[string]string{
			"/work/documents.json": `[{"location": "/work/ops/user.graphql", "document": {"definitions": [
				{"kind": "OperationDefinition", "operation": "query", "name": {"value": "getUser"}}
			]}}]`,
		})

		_, _, err := execute(t, "--documentsJSON", "/work/documents.json", "--outputFile", "/work/ops/generated.ts", "--includeFileExtension", "--namingConvention", "pascalCase")
		require.NoError(t, err)

		assert.Equal(t, "export { GetUserDocument } from \"./generated.ts\";\n", readFile(t, fs, "/work/ops/user.g.ts"))
	})

	t.Run("missing outputFile", func(t *testing.T) {
		setupFs(t, userDocuments)

		_, _, err := execute(t, "--documents", "/work/ops/**/*.graphql")
		assert.EqualError(t, err, "Missing outputFile in plugin configuration")
	})

	t.Run("missing documents", func(t *testing.T) {
		setupFs(t, nil)

		_, _, err := execute(t, "--outputFile", "/work/src/generated.ts")
		assert.EqualError(t, err, "no documents: set documents or documentsJSON")
	})

	t.Run("syntax errors are printed", func(t *testing.T) {
		fs := setupFs(t, map[string]string{
			"/work/ops/broken.graphql": "query Broken {",
		})

		_, stderr, err := execute(t, "--documents", "/work/ops/*.graphql", "--outputFile", "/work/src/generated.ts")
		assert.EqualError(t, err, "documents contain errors")
		assert.Contains(t, stderr, filepath.FromSlash("/work/ops/broken.graphql")+":1:")

		exists, existsErr := afero.Exists(fs, filepath.FromSlash("/work/ops/broken.g.ts"))
		require.NoError(t, existsErr)
		assert.False(t, exists)
	})

	t.Run("dry run prints manifest", func(t *testing.T) {
		fs := setupFs(t, userDocuments)

		stdout, _, err := execute(t, "--documents", "/work/ops/user.graphql", "--outputFile", "/work/src/generated.ts", "--dryRun", "--format", "json")
		require.NoError(t, err)

		assert.Equal(t, filepath.FromSlash("/work/ops/user.g.ts"), gjson.Get(stdout, "files.0.filename").String())
		assert.Equal(t, "../src/generated", gjson.Get(stdout, "files.0.importPath").String())
		assert.Equal(t, int64(2), gjson.Get(stdout, "files.0.exports.#").Int())

		exists, existsErr := afero.Exists(fs, filepath.FromSlash("/work/ops/user.g.ts"))
		require.NoError(t, existsErr)
		assert.False(t, exists)
	})

	t.Run("check", func(t *testing.T) {
		setupFs(t, userDocuments)
		args := []string{"--documents", "/work/ops/**/*.graphql", "--outputFile", "/work/src/generated.ts"}

		stdout, _, err := execute(t, append(args, "--check")...)
		assert.EqualError(t, err, "2 generated files are not up to date")
		assert.Contains(t, stdout, filepath.FromSlash("/work/ops/user.g.ts")+": missing")

		_, _, err = execute(t, args...)
		require.NoError(t, err)

		_, _, err = execute(t, append(args, "--check")...)
		assert.NoError(t, err)
	})
}

func TestColocateCmd_Config(t *testing.T) {
	t.Run("config file", func(t *testing.T) {
		files := map[string]string{
			"/work/.graphql-colocate.yaml": "documents:\n  - /work/ops/**/*.graphql\noutputFile: /work/ops/generated.ts\nnamingConvention: pascalCase\n",
			"/work/ops/user.graphql":       "query getUser { me { id } }",
		}
		fs := setupFs(t, files)

		_, _, err := execute(t, "--config", "/work/.graphql-colocate.yaml")
		require.NoError(t, err)

		assert.Equal(t, "export { GetUserDocument } from \"./generated\";\n", readFile(t, fs, "/work/ops/user.g.ts"))
	})

	t.Run("flags override config file", func(t *testing.T) {
		files := map[string]string{
			"/work/.graphql-colocate.yaml": "documents:\n  - /work/ops/**/*.graphql\noutputFile: /work/ops/generated.ts\n",
			"/work/ops/user.graphql":       "query GetUser { me { id } }",
		}
		fs := setupFs(t, files)

		_, _, err := execute(t, "--config", "/work/.graphql-colocate.yaml", "--outputFile", "/work/src/generated.ts")
		require.NoError(t, err)

		assert.Equal(t, "export { GetUserDocument } from \"../src/generated\";\n", readFile(t, fs, "/work/ops/user.g.ts"))
	})

	t.Run("unknown config key", func(t *testing.T) {
		setupFs(t, map[string]string{
			"/work/.graphql-colocate.yaml": "outputFile: /work/ops/generated.ts\noutputDir: /work/out\n",
		})

		_, _, err := execute(t, "--config", "/work/.graphql-colocate.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
		assert.Contains(t, err.Error(), "outputdir")
	})

	t.Run("missing config file", func(t *testing.T) {
		setupFs(t, nil)

		_, _, err := execute(t, "--config", "/work/missing.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config")
	})

	t.Run("environment", func(t *testing.T) {
		fs := setupFs(t, userDocuments)
		t.Setenv("GRAPHQL_COLOCATE_OUTPUTFILE", "/work/src/generated.ts")

		_, _, err := execute(t, "--documents", "/work/ops/user.graphql")
		require.NoError(t, err)

		assert.Equal(t, "export { GetUserDocument, UpdateUserDocument } from \"../src/generated\";\n", readFile(t, fs, "/work/ops/user.g.ts"))
	})
}
