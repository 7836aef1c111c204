package workflow

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func fullWorkflow() Workflow {
	return NewWorkflow("release").
		RunName("Release ${{ github.ref_name }}").
		OnPush(NewPush().Branch("main").Tag("v*").IgnoreTag("v0.*").Path("src/**").IgnorePath("docs/**").Build()).
		OnPullRequest(NewPullRequest().Branch("main").Type("opened").Type("synchronize").Build()).
		OnPullRequestTarget(NewPullRequest().Path("deploy/**").Build()).
		OnSchedule(NewSchedule().Cron("0 2 * * *").Build()).
		OnWorkflowCall(NewWorkflowCall().
			Input("target", NewInput().Description("Where to deploy").Default("staging").Required().Type("string").Build()).
			Output("url", NewOutput().Value("${{ jobs.deploy.outputs.url }}").Build()).
			Secret("token", NewSecret().Required().Build()).
			Build()).
		OnWorkflowDispatch(NewWorkflowDispatch().
			Input("dry-run", NewInput().Type("boolean").Default(false).Build()).
			Build()).
		OnWorkflowRun(NewWorkflowRun().Workflow("CI").Type("completed").Build()).
		ContentsWrite().
		IDTokenWrite().
		Env("GOFLAGS", "-mod=readonly").
		DefaultRunShell("bash").
		ConcurrencyGroup("release-${{ github.ref }}").
		CancelInProgress().
		AddJob("build", NewJob().
			Name("Build").
			RunsOn("ubuntu-latest").
			PackagesWrite().
			Output("digest", "${{ steps.push.outputs.digest }}").
			Strategy(NewStrategy().Matrix("go", "1.24", "1.25").AddToMatrix("os", "linux").FailFast(false).MaxParallel(2).Build()).
			TimeoutMinutes(30).
			Container(NewContainer().Image("golang:1.25").Credentials("bot", "${{ secrets.PASSWORD }}").Port(8080).Volume("/cache").Build()).
			Service("db", NewContainer().Image("postgres:16").Env("POSTGRES_DB", "test").Option("--health-cmd pg_isready").Build()).
			AddStep(NewStep().Uses("actions/checkout@v4").With("fetch-depth", 0).Build()).
			AddStep(NewStep().
				ID("push").
				If("github.event_name == 'push'").
				Name("Push").
				Run("make push").
				WorkingDirectory("src").
				Shell("bash").
				Env("TAG", "latest").
				Strategy(NewStrategy().AddToMatrix("arch", "amd64").Build()).
				ContinueOnError(true).
				TimeoutMinutes(10).
				Build()).
			Build()).
		AddJob("deploy", NewJob().
			Needs("build").
			If("success()").
			Environment("production", "https://example.com").
			Uses("octo-org/deploy/.github/workflows/deploy.yml@v1").
			With("target", "production").
			With("replicas", 3).
			Secret("token", "${{ secrets.DEPLOY_TOKEN }}").
			Build()).
		Build()
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		workflow Workflow
	}{
		{"name only", NewWorkflow("minimal").Build()},
		{"test workflow", NewWorkflow("test-workflow").
			OnPush(NewPush().Branch("main").Tag("v?.[0-9]+.[0-9]+.[0-9]+").Build()).
			OnPullRequest(NewPullRequest().IgnoreBranch("test").Build()).
			AddJob("some-job", NewJob().
				AddStep(NewStep().
					Uses("some-action-user/some-action").
					With("key", "value").
					With("complex", map[string]any{"inner-key": "inner-value", "inner-key2": 1}).
					Build()).
				Build()).
			Build()},
		{"every field", fullWorkflow()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := mustMarshal(t, tt.workflow)

			got, err := Parse(data)
			if err != nil {
				t.Fatalf("Parse() error = %v\n%s", err, data)
			}
			if diff := cmp.Diff(tt.workflow, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}

			again := mustMarshal(t, got)
			if string(again) != string(data) {
				t.Errorf("re-encoded document differs:\n%s\nwant:\n%s", again, data)
			}
		})
	}
}

func TestParse_PermissionTokens(t *testing.T) {
	doc := `name: perms
permissions:
  contents: write
  issues: read
  packages: none
`
	w, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := &Permissions{Contents: Write, Issues: Read}
	if diff := cmp.Diff(want, w.Permissions); diff != "" {
		t.Errorf("Permissions mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		sentinel error
		path     string
		line     int
	}{
		{
			name: "invalid permission token",
			doc: `name: x
jobs:
  build:
    permissions:
      contents: admin
`,
			sentinel: ErrInvalidPermission,
			path:     "jobs.build.permissions.contents",
			line:     5,
		},
		{
			name: "permission is not a scalar",
			doc: `name: x
permissions:
  contents: [read]
`,
			sentinel: ErrSchemaMismatch,
			path:     "permissions.contents",
			line:     3,
		},
		{
			name:     "list where a mapping is expected",
			doc:      "name: x\njobs:\n  - build\n",
			sentinel: ErrSchemaMismatch,
			path:     "jobs",
			line:     3,
		},
		{
			name: "step with parameters of the wrong shape",
			doc: `name: x
jobs:
  build:
    steps:
      - uses: actions/checkout@v4
      - with: [1, 2]
`,
			sentinel: ErrSchemaMismatch,
			path:     "jobs.build.steps[1].with",
			line:     6,
		},
		{
			name:     "unknown top level field",
			doc:      "name: x\nbogus: true\n",
			sentinel: ErrSchemaMismatch,
			path:     "bogus",
			line:     2,
		},
		{
			name: "unknown trigger",
			doc: `name: x
on:
  release:
    types: [published]
`,
			sentinel: ErrSchemaMismatch,
			path:     "on.release",
			line:     3,
		},
		{
			name: "schedule as a mapping",
			doc: `name: x
on:
  schedule:
    cron: "0 2 * * *"
`,
			sentinel: ErrSchemaMismatch,
			path:     "on.schedule",
			line:     4,
		},
		{
			name: "matrix values not a list",
			doc: `name: x
jobs:
  test:
    strategy:
      matrix:
        go: "1.25"
`,
			sentinel: ErrSchemaMismatch,
			path:     "jobs.test.strategy.matrix.go",
			line:     6,
		},
		{
			name:     "document is a list",
			doc:      "- a\n- b\n",
			sentinel: ErrSchemaMismatch,
			path:     "",
			line:     1,
		},
		{
			name:     "empty document",
			doc:      "",
			sentinel: ErrSchemaMismatch,
			path:     "",
			line:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("Parse() expected error, got nil")
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("Parse() error = %v, want %v", err, tt.sentinel)
			}

			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("Parse() error = %T, want *DecodeError", err)
			}
			if de.Path != tt.path {
				t.Errorf("Path = %q, want %q", de.Path, tt.path)
			}
			if de.Line != tt.line {
				t.Errorf("Line = %d, want %d", de.Line, tt.line)
			}

			if diff := cmp.Diff(Workflow{}, w); diff != "" {
				t.Errorf("Parse() returned a partial workflow:\n%s", diff)
			}
		})
	}
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := Parse([]byte("name: [unterminated\n"))
	if err == nil {
		t.Fatal("Parse() expected error, got nil")
	}

	var de *DecodeError
	if errors.As(err, &de) {
		t.Errorf("Parse() error = %v, want a YAML syntax error", err)
	}
}

func TestParse_EmptySections(t *testing.T) {
	doc := `name: x
on:
  workflow_dispatch:
jobs:
  build:
    permissions:
`
	w, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if w.On.WorkflowDispatch == nil {
		t.Error("On.WorkflowDispatch = nil, want an empty trigger")
	}
	if w.Jobs["build"].Permissions == nil {
		t.Error("Permissions = nil, want an empty block")
	}

	out := string(mustMarshal(t, w))
	for _, absent := range []string{"workflow_dispatch", "permissions"} {
		if strings.Contains(out, absent) {
			t.Errorf("re-encoded document contains %q:\n%s", absent, out)
		}
	}
}

func TestDecode_ByteOrderMark(t *testing.T) {
	w, err := Decode(strings.NewReader("\ufeffname: bom\n"))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if w.Name != "bom" {
		t.Errorf("Name = %q, want bom", w.Name)
	}
}

func TestDecodeError_Error(t *testing.T) {
	tests := []struct {
		err  *DecodeError
		want string
	}{
		{&DecodeError{Path: "jobs.build", Line: 3, Column: 5, Err: ErrSchemaMismatch}, "jobs.build (line 3, column 5): schema mismatch"},
		{&DecodeError{Path: "jobs", Err: ErrSchemaMismatch}, "jobs: schema mismatch"},
		{&DecodeError{Err: ErrSchemaMismatch}, "document: schema mismatch"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
