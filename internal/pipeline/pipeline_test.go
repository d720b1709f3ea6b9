package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"builder-generator/internal/analyze"
	"builder-generator/internal/gen"
	"builder-generator/internal/plan"
)

const (
	commandDir  = "../../examples/command"
	orderingDir = "../../examples/ordering"
	shapesDir   = "../../examples/shapes"
)

func request(dir string) Request {
	return Request{Dir: dir, GenerateComments: true}
}

func TestRun_ExplicitType(t *testing.T) {
	req := request(commandDir)
	req.Types = []string{"Command"}

	res, err := Run(context.Background(), req, nil)
	require.NoError(t, err)
	require.Len(t, res.Files, 1)

	file := res.Files[0]
	assert.Equal(t, "command_builder.go", file.Filename)
	assert.Equal(t, "Command", file.Record)

	onDisk, err := os.ReadFile(filepath.Join(commandDir, "command_builder.go"))
	require.NoError(t, err)
	assert.Equal(t, string(onDisk), string(file.Content))
}

func TestRun_DirectiveInference(t *testing.T) {
	req := request(commandDir)
	req.GoFile = "command.go"

	res, err := Run(context.Background(), req, nil)
	require.NoError(t, err)
	require.Len(t, res.Plan.Builders, 1, spew.Sdump(res.Plan.Diagnostics))
	assert.Equal(t, "Command", res.Plan.Builders[0].Record.Name())
}

func TestRun_DirectiveAbsoluteGoFile(t *testing.T) {
	abs, err := filepath.Abs(filepath.Join(orderingDir, "ordering.go"))
	require.NoError(t, err)

	req := request(orderingDir)
	req.GoFile = abs

	res, err := Run(context.Background(), req, nil)
	require.NoError(t, err)
	require.Len(t, res.Files, 1)
	assert.Equal(t, "triple_builder.go", res.Files[0].Filename)
}

func TestRun_UnsupportedShape(t *testing.T) {
	for _, name := range []string{"Pair", "Nothing", "Padding", "Level", "Event", "Box", "Handler", "Label", "Settings"} {
		t.Run(name, func(t *testing.T) {
			req := request(shapesDir)
			req.Types = []string{name}

			res, err := Run(context.Background(), req, nil)
			require.ErrorIs(t, err, analyze.ErrUnsupportedShape)
			require.NotNil(t, res)
			assert.Empty(t, res.Files)
			require.Len(t, res.Plan.Diagnostics.Errors, 1)
			assert.Equal(t, "unsupported_shape", res.Plan.Diagnostics.Errors[0].Code)
		})
	}
}

func TestRun_TypeNotFound(t *testing.T) {
	req := request(shapesDir)
	req.Types = []string{"Missing"}

	_, err := Run(context.Background(), req, nil)
	require.ErrorIs(t, err, analyze.ErrTypeNotFound)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestRun_TypeNotFoundSuggestsNames(t *testing.T) {
	req := request(commandDir)
	req.Types = []string{"Comand"}

	_, err := Run(context.Background(), req, nil)
	require.ErrorIs(t, err, analyze.ErrTypeNotFound)
	assert.Contains(t, err.Error(), "Comand (did you mean Command?)")
}

func TestRun_NoSelection(t *testing.T) {
	_, err := Run(context.Background(), request(shapesDir), nil)
	require.ErrorIs(t, err, ErrNoTypes)
}

func TestRun_ConfigPatterns(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "builders.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
defaults:
  setter_prefix: With
builders:
  - type: "*"
    suffix: Factory
`), 0o600))

	req := request(shapesDir)
	req.ConfigFile = cfgPath

	res, err := Run(context.Background(), req, nil)
	require.NoError(t, err)
	require.Len(t, res.Plan.Builders, 1, "only Config has named fields")

	skipped := map[string]bool{}
	for _, d := range res.Plan.Diagnostics.Infos {
		if d.Code == "skipped_shape" {
			skipped[d.Type] = true
		}
	}

	assert.True(t, skipped["Pair"], spew.Sdump(res.Plan.Diagnostics.Infos))
	assert.True(t, skipped["Level"])
	assert.False(t, skipped["Config"])

	bp := res.Plan.Builders[0]
	assert.Equal(t, "ConfigFactory", bp.BuilderName)
	assert.Equal(t, "NewConfigFactory", bp.ConstructorName)
	assert.Equal(t, "config_factory.go", bp.Filename)

	setters := make([]string, 0, len(bp.Setters))
	for _, sp := range bp.Setters {
		setters = append(setters, sp.Setter)
	}

	assert.Equal(t, []string{
		"WithName", "WithTimeout", "WithEndpoint", "WithOutput", "WithLabels", "WithType", "WithRetries",
	}, setters)

	content := string(res.Files[0].Content)
	assert.Contains(t, content, "\t\"io\"\n")
	assert.Contains(t, content, "\t\"net/url\"\n")
	assert.Contains(t, content, "\ttype_    optional.Option[string]\n")
	assert.Contains(t, content, "func (b *ConfigFactory) WithEndpoint(v *url.URL) *ConfigFactory {")
}

func TestRun_LiteralConfigTypeKeepsShapeCheck(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "builders.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("builders:\n  - type: [Config, Pair]\n"), 0o600))

	req := request(shapesDir)
	req.ConfigFile = cfgPath

	_, err := Run(context.Background(), req, nil)
	require.ErrorIs(t, err, analyze.ErrUnsupportedShape)
}

func TestRun_OptionsOverrideConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "builders.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("builders:\n  - type: Command\n    suffix: Factory\n"), 0o600))

	req := request(commandDir)
	req.ConfigFile = cfgPath
	req.Options = plan.Options{BuildMethod: "Finish"}

	res, err := Run(context.Background(), req, nil)
	require.NoError(t, err)
	require.Len(t, res.Plan.Builders, 1)

	bp := res.Plan.Builders[0]
	assert.Equal(t, "CommandFactory", bp.BuilderName)
	assert.Equal(t, "Finish", bp.BuildMethod)
}

func TestRun_InvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "builders.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("builders:\n  - suffix: Factory\n"), 0o600))

	req := request(commandDir)
	req.ConfigFile = cfgPath

	_, err := Run(context.Background(), req, nil)
	require.Error(t, err)
}

func TestCheck_ExamplesUpToDate(t *testing.T) {
	for dir, typeName := range map[string]string{commandDir: "Command", orderingDir: "Triple"} {
		req := request(dir)
		req.Types = []string{typeName}

		checks, err := Check(context.Background(), req, nil)
		require.NoError(t, err, dir)
		require.Len(t, checks, 1)
		assert.Equal(t, gen.StatusUpToDate, checks[0].Status)
	}
}

func TestCheck_MissingOutput(t *testing.T) {
	dir := modulePackage(t, map[string]string{"job.go": jobSrc})

	req := request(dir)
	req.Types = []string{"Job"}

	checks, err := Check(context.Background(), req, nil)
	require.ErrorIs(t, err, ErrStale)
	require.Len(t, checks, 1)
	assert.Equal(t, gen.StatusMissing, checks[0].Status)

	res, err := Run(context.Background(), req, nil)
	require.NoError(t, err)
	require.NoError(t, gen.WriteFiles(res.Files))

	_, err = Check(context.Background(), req, nil)
	require.NoError(t, err)
}

func TestRun_RegenerateAfterFieldRename(t *testing.T) {
	dir := modulePackage(t, map[string]string{"job.go": jobSrc})

	req := request(dir)
	req.Types = []string{"Job"}

	res, err := Run(context.Background(), req, nil)
	require.NoError(t, err)
	require.NoError(t, gen.WriteFiles(res.Files))
	requireTypeChecks(t, dir)

	renamed := strings.Replace(jobSrc, "Tries", "Attempts", 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "job.go"), []byte(renamed), 0o600))

	// The builder on disk still reads out.Tries and no longer compiles.
	res, err = Run(context.Background(), req, nil)
	require.NoError(t, err)
	require.Len(t, res.Files, 1)

	content := string(res.Files[0].Content)
	assert.Contains(t, content, "out.Attempts")
	assert.NotContains(t, content, "Tries")

	require.NoError(t, gen.WriteFiles(res.Files))
	requireTypeChecks(t, dir)

	_, err = Check(context.Background(), req, nil)
	require.NoError(t, err)
}

func TestRun_ErrorsOutsideBuilderFilesStillFail(t *testing.T) {
	dir := modulePackage(t, map[string]string{
		"job.go": jobSrc,
		"use.go": "package job\n\nfunc attempts(j Job) int { return j.Attempts }\n",
	})

	req := request(dir)
	req.Types = []string{"Job"}

	_, err := Run(context.Background(), req, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Attempts")
}

const jobSrc = `package job

type Job struct {
	Name  string
	Tries int
}
`

// modulePackage writes files into a fresh package directory inside this
// module, so that generated code can import the module's runtime packages.
func modulePackage(t *testing.T, files map[string]string) string {
	t.Helper()

	dir, err := os.MkdirTemp(".", "testpkg")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	for name, src := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o600))
	}

	abs, err := filepath.Abs(dir)
	require.NoError(t, err)

	return abs
}

// requireTypeChecks fails the test unless the package in dir compiles.
func requireTypeChecks(t *testing.T, dir string) {
	t.Helper()

	pkgs, err := packages.Load(&packages.Config{Mode: analyze.LoadMode, Dir: dir}, ".")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	require.Empty(t, pkgs[0].Errors)
}

func TestInspect(t *testing.T) {
	summaries, err := Inspect(context.Background(), request(shapesDir))
	require.NoError(t, err)

	byName := make(map[string]TypeSummary, len(summaries))
	for _, s := range summaries {
		byName[s.ID.Name] = s
	}

	assert.Equal(t, analyze.ShapeNamedFields, byName["Config"].Shape)
	assert.Equal(t, "ConfigBuilder", byName["Config"].Builder)
	assert.Equal(t, []string{"Name", "Timeout", "Endpoint", "Output", "Labels", "Type", "retries"}, byName["Config"].Fields)

	assert.Equal(t, analyze.ShapeEmbedded, byName["Pair"].Shape)
	assert.Empty(t, byName["Pair"].Fields)
	assert.Equal(t, analyze.ShapeEnum, byName["Level"].Shape)
	assert.Equal(t, analyze.ShapeUnion, byName["Event"].Shape)
	assert.Equal(t, analyze.ShapeGeneric, byName["Box"].Shape)
	assert.Equal(t, analyze.ShapeOther, byName["Settings"].Shape)
}
