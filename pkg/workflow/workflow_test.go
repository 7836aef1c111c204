package workflow

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func toMap(t *testing.T, w Workflow) map[string]any {
	t.Helper()

	data, err := Marshal(w)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var out map[string]any
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v\n%s", err, data)
	}
	return out
}

func keys(m map[string]any) []string {
	var out []string
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

func testWorkflow() Workflow {
	return NewWorkflow("test-workflow").
		OnPush(NewPush().
			Branch("main").
			Tag("v?.[0-9]+.[0-9]+.[0-9]+").
			Build()).
		OnPullRequest(NewPullRequest().
			IgnoreBranch("test").
			Build()).
		OnWorkflowDispatch(NewWorkflowDispatch().Build()).
		AddJob("some-job", NewJob().
			AddStep(NewStep().
				Uses("some-action-user/some-action").
				With("key", "value").
				With("complex", map[string]any{
					"inner-key":  "inner-value",
					"inner-key2": 1,
				}).
				Build()).
			Build()).
		Build()
}

func TestMarshal_TestWorkflow(t *testing.T) {
	doc := toMap(t, testWorkflow())

	if got, want := keys(doc), []string{"jobs", "name", "on"}; !slices.Equal(got, want) {
		t.Fatalf("top level keys = %v, want %v", got, want)
	}
	if doc["name"] != "test-workflow" {
		t.Errorf("name = %v, want test-workflow", doc["name"])
	}

	wantOn := map[string]any{
		"push": map[string]any{
			"branches": []any{"main"},
			"tags":     []any{"v?.[0-9]+.[0-9]+.[0-9]+"},
		},
		"pull_request": map[string]any{
			"branches-ignore": []any{"test"},
		},
	}
	if diff := cmp.Diff(wantOn, doc["on"]); diff != "" {
		t.Errorf("on mismatch (-want +got):\n%s", diff)
	}

	wantJobs := map[string]any{
		"some-job": map[string]any{
			"steps": []any{
				map[string]any{
					"uses": "some-action-user/some-action",
					"with": map[string]any{
						"key": "value",
						"complex": map[string]any{
							"inner-key":  "inner-value",
							"inner-key2": 1,
						},
					},
				},
			},
		},
	}
	if diff := cmp.Diff(wantJobs, doc["jobs"]); diff != "" {
		t.Errorf("jobs mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshal_EmptyWorkflowHasOnlyName(t *testing.T) {
	w := NewWorkflow("empty").
		OnPush(NewPush().Build()).
		OnSchedule(NewSchedule().Build()).
		OnWorkflowCall(NewWorkflowCall().Build()).
		OnWorkflowDispatch(NewWorkflowDispatch().Build()).
		Build()
	w.Permissions = &Permissions{}

	doc := toMap(t, w)
	if got, want := keys(doc), []string{"name"}; !slices.Equal(got, want) {
		t.Errorf("top level keys = %v, want %v", got, want)
	}
}

func TestMarshal_Omission(t *testing.T) {
	tests := []struct {
		name    string
		job     Job
		present []string
	}{
		{
			name:    "empty job",
			job:     NewJob().Build(),
			present: nil,
		},
		{
			name:    "runner only",
			job:     NewJob().RunsOn("ubuntu-latest").Build(),
			present: []string{"runs-on"},
		},
		{
			name:    "zero timeout is still written",
			job:     NewJob().TimeoutMinutes(0).Build(),
			present: []string{"timeout-minutes"},
		},
		{
			name:    "empty substructures are dropped",
			job:     NewJob().Strategy(NewStrategy().Build()).Container(NewContainer().Build()).Environment("", "").Build(),
			present: nil,
		},
		{
			name:    "cancel in progress alone keeps concurrency",
			job:     NewJob().CancelInProgress().Build(),
			present: []string{"concurrency"},
		},
		{
			name:    "default shell keeps defaults",
			job:     NewJob().DefaultRunShell("bash").Needs("setup").Build(),
			present: []string{"defaults", "needs"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := toMap(t, NewWorkflow("w").AddJob("job", tt.job).Build())
			jobs, _ := doc["jobs"].(map[string]any)
			job, _ := jobs["job"].(map[string]any)
			if got := keys(job); !slices.Equal(got, tt.present) {
				t.Errorf("job keys = %v, want %v", got, tt.present)
			}
		})
	}
}

func TestMarshal_Schedule(t *testing.T) {
	w := NewWorkflow("nightly").
		OnSchedule(NewSchedule().Cron("0 2 * * *").Cron("30 4 * * 1").Build()).
		Build()

	doc := toMap(t, w)
	want := map[string]any{
		"schedule": []any{
			map[string]any{"cron": "0 2 * * *"},
			map[string]any{"cron": "30 4 * * 1"},
		},
	}
	if diff := cmp.Diff(want, doc["on"]); diff != "" {
		t.Errorf("on mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshal_Permissions(t *testing.T) {
	w := NewWorkflow("perms").
		ContentsWrite().
		IDTokenWrite().
		PullRequestsRead().
		Build()

	doc := toMap(t, w)
	want := map[string]any{
		"contents":      "write",
		"id-token":      "write",
		"pull-requests": "read",
	}
	if diff := cmp.Diff(want, doc["permissions"]); diff != "" {
		t.Errorf("permissions mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshal_PreservesListOrder(t *testing.T) {
	w := NewWorkflow("order").
		OnPush(NewPush().Branch("zeta").Branch("alpha").Branch("mid").Path("b/**").Path("a/**").Build()).
		AddJob("build", NewJob().
			AddStep(NewStep().Name("third").Build()).
			AddStep(NewStep().Name("first").Build()).
			AddStep(NewStep().Name("second").Build()).
			Build()).
		Build()

	got, err := Parse(mustMarshal(t, w))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if want := []string{"zeta", "alpha", "mid"}; !slices.Equal(got.On.Push.Branches, want) {
		t.Errorf("branches = %v, want %v", got.On.Push.Branches, want)
	}
	if want := []string{"b/**", "a/**"}; !slices.Equal(got.On.Push.Paths, want) {
		t.Errorf("paths = %v, want %v", got.On.Push.Paths, want)
	}

	var names []string
	for _, s := range got.Jobs["build"].Steps {
		names = append(names, s.Name)
	}
	if want := []string{"third", "first", "second"}; !slices.Equal(names, want) {
		t.Errorf("step names = %v, want %v", names, want)
	}
}

func TestTriggers_IsZero(t *testing.T) {
	tests := []struct {
		name     string
		triggers Triggers
		want     bool
	}{
		{"no triggers", Triggers{}, true},
		{"empty dispatch", Triggers{WorkflowDispatch: &WorkflowDispatch{}}, true},
		{"empty push and schedule", Triggers{Push: &Push{}, Schedule: &Schedule{}}, true},
		{"push with branch", Triggers{Push: &Push{Branches: []string{"main"}}}, false},
		{"run with workflow", Triggers{WorkflowRun: &WorkflowRun{Workflows: []string{"ci"}}}, false},
		{"call with secret", Triggers{WorkflowCall: &WorkflowCall{Secrets: map[string]Secret{"token": {}}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.triggers.IsZero(); got != tt.want {
				t.Errorf("IsZero() = %v, want %v", got, tt.want)
			}
		})
	}
}

func mustMarshal(t *testing.T, w Workflow) []byte {
	t.Helper()
	data, err := Marshal(w)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	return data
}
