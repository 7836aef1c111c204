package generator

import (
	"fmt"
	"log/slog"
	"path"
	"slices"
	"strings"

	"github.com/greboid/workflowgen/pkg/config"
	"github.com/greboid/workflowgen/pkg/graph"
	"github.com/greboid/workflowgen/pkg/util"
	"github.com/greboid/workflowgen/pkg/workflow"
)

const (
	dirPerms  = 0755
	filePerms = 0644

	setupJob  = "setup"
	commitJob = "commit-changes"

	checkoutAction  = "actions/checkout@v4"
	setupGoAction   = "actions/setup-go@v5"
	installerAction = "mattdowdell/go-installer@v0.3.0"
	loginAction     = "docker/login-action@v3"
	buildPushAction = "docker/build-push-action@v6"

	toolPackage = "github.com/greboid/workflowgen/cmd/workflowgen"
	workflowDir = ".github/workflows"
)

type Generator struct {
	config *config.Config
	fs     util.WritableFS
}

func New(cfg *config.Config, fs util.WritableFS) *Generator {
	return &Generator{
		config: cfg,
		fs:     fs,
	}
}

// Generate builds the workflow and writes it to outputPath.
func (g *Generator) Generate(outputPath string) error {
	w, err := g.Build()
	if err != nil {
		return err
	}

	data, err := workflow.Marshal(w)
	if err != nil {
		return err
	}

	if err := g.fs.MkdirAll(path.Dir(outputPath), dirPerms); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := g.fs.WriteFile(outputPath, data, filePerms); err != nil {
		return fmt.Errorf("writing workflow file: %w", err)
	}

	slog.Info("Generated workflow", "path", outputPath, "jobs", len(w.Jobs))
	return nil
}

// Build assembles the container-build workflow: a setup job, one build job
// per container, one update job per dependency layer and a final commit job.
func (g *Generator) Build() (workflow.Workflow, error) {
	layers, err := graph.FromConfig(g.config).TopologicalSort()
	if err != nil {
		return workflow.Workflow{}, fmt.Errorf("ordering containers: %w", err)
	}

	b := g.skeleton()
	b.AddJob(setupJob, g.setupJob())
	g.addContainerBuildJobs(b, layers)
	g.addUpdateJobs(b, layers)
	g.addCommitJob(b, layers)

	return b.Build(), nil
}

func (g *Generator) skeleton() *workflow.WorkflowBuilder {
	b := workflow.NewWorkflow(g.config.Name).
		OnWorkflowDispatch(workflow.NewWorkflowDispatch().Build()).
		ContentsWrite().
		PackagesWrite()

	if len(g.config.Branches) > 0 {
		push := workflow.NewPush()
		for _, branch := range g.config.Branches {
			push.Branch(branch)
		}
		b.OnPush(push.Build())
	}

	if len(g.config.Schedule) > 0 {
		schedule := workflow.NewSchedule()
		for _, cron := range g.config.Schedule {
			schedule.Cron(cron)
		}
		b.OnSchedule(schedule.Build())
	}

	if g.config.Concurrency != "" {
		b.ConcurrencyGroup(g.config.Concurrency)
	}

	return b
}

func (g *Generator) setupJob() workflow.Job {
	return workflow.NewJob().
		Name("Check workflows").
		RunsOn(g.config.RunsOn).
		AddStep(checkoutStep("")).
		AddStep(setupGoStep()).
		AddStep(installStep()).
		AddStep(workflow.NewStep().
			Name("Check workflow files").
			Run(fmt.Sprintf("workflowgen check %s", workflowDir)).
			Build()).
		Build()
}

func (g *Generator) addContainerBuildJobs(b *workflow.WorkflowBuilder, layers [][]string) {
	var previousUpdateJob string

	for layerIdx, layer := range layers {
		for _, containerName := range layer {
			needs := g.buildNeeds(containerName, previousUpdateJob)
			b.AddJob(containerName, g.containerBuildJob(containerName, needs))
		}
		previousUpdateJob = updateJobName(layerIdx)
	}
}

func (g *Generator) containerBuildJob(containerName string, needs []string) workflow.Job {
	registry := g.registry()

	job := workflow.NewJob().
		Name(fmt.Sprintf("Build %s", containerName)).
		RunsOn(g.config.RunsOn).
		Output("digest", "${{ steps.build.outputs.digest }}")
	for _, need := range needs {
		job.Needs(need)
	}

	return job.
		AddStep(checkoutStep("")).
		AddStep(workflow.NewStep().
			Name("Log in to registry").
			Uses(loginAction).
			With("registry", registry).
			With("username", "${{ github.actor }}").
			With("password", "${{ secrets.GITHUB_TOKEN }}").
			Build()).
		AddStep(workflow.NewStep().
			ID("build").
			Name(fmt.Sprintf("Build %s", containerName)).
			Uses(buildPushAction).
			With("context", g.config.Containers[containerName].Path).
			With("push", true).
			With("tags", fmt.Sprintf("%s/%s:latest", registry, containerName)).
			Build()).
		Build()
}

func (g *Generator) addUpdateJobs(b *workflow.WorkflowBuilder, layers [][]string) {
	for layerIdx, layer := range layers {
		needs := append([]string{setupJob}, layer...)
		b.AddJob(updateJobName(layerIdx), g.updateJob(layerIdx, needs, layer))
	}
}

func (g *Generator) updateJob(layerIdx int, needs []string, layer []string) workflow.Job {
	job := workflow.NewJob().
		Name(fmt.Sprintf("Update layer %d references", layerIdx)).
		RunsOn(g.config.RunsOn)
	for _, need := range needs {
		job.Needs(need)
	}

	return job.
		AddStep(checkoutStep("${{ secrets.GITHUB_TOKEN }}")).
		AddStep(setupGoStep()).
		AddStep(installStep()).
		AddStep(workflow.NewStep().
			Name(fmt.Sprintf("Pin layer %d images", layerIdx)).
			Run(buildUpdateScript(layer)).
			Build()).
		Build()
}

func (g *Generator) addCommitJob(b *workflow.WorkflowBuilder, layers [][]string) {
	if len(layers) == 0 {
		return
	}

	b.AddJob(commitJob, workflow.NewJob().
		Name("Commit updated files").
		Needs(updateJobName(len(layers)-1)).
		RunsOn(g.config.RunsOn).
		AddStep(checkoutStep("${{ secrets.GITHUB_TOKEN }}")).
		AddStep(setupGoStep()).
		AddStep(installStep()).
		AddStep(workflow.NewStep().
			Name("Pin all workflow images to built digests").
			Run(buildFinalUpdateScript(layers)).
			Build()).
		AddStep(workflow.NewStep().
			Name("Commit and push changes").
			Run(getCommitScript()).
			Build()).
		Build())
}

func (g *Generator) registry() string {
	return fmt.Sprintf("${{ secrets.%s }}", g.config.RegistrySecret)
}

// buildNeeds lists setup first, followed by the sorted previous update job
// and in-graph dependencies.
func (g *Generator) buildNeeds(containerName string, previousUpdateJob string) []string {
	var deps []string

	if previousUpdateJob != "" {
		deps = append(deps, previousUpdateJob)
	}

	for _, dep := range g.config.Containers[containerName].DependsOn {
		if _, exists := g.config.Containers[dep]; exists {
			deps = append(deps, dep)
		}
	}

	slices.Sort(deps)
	return append([]string{setupJob}, slices.Compact(deps)...)
}

func updateJobName(layerIdx int) string {
	return fmt.Sprintf("update-layer-%d", layerIdx)
}

func checkoutStep(token string) workflow.Step {
	step := workflow.NewStep().
		Name("Checkout code").
		Uses(checkoutAction)
	if token != "" {
		step.With("token", token)
	}
	return step.Build()
}

func setupGoStep() workflow.Step {
	return workflow.NewStep().
		Name("Setup Go").
		Uses(setupGoAction).
		With("go-version", "stable").
		With("cache", false).
		Build()
}

func installStep() workflow.Step {
	return workflow.NewStep().
		Name("Install workflowgen").
		Uses(installerAction).
		With("package", toolPackage).
		Build()
}

func buildUpdateScript(layer []string) string {
	var script strings.Builder
	script.WriteString("set -e\n")
	for _, containerName := range layer {
		fmt.Fprintf(&script, "echo 'Pinning %s...'\n", containerName)
	}
	fmt.Fprintf(&script, "workflowgen update --images %s\n", workflowDir)
	return script.String()
}

func buildFinalUpdateScript(layers [][]string) string {
	var script strings.Builder
	script.WriteString("set -e\necho 'Pinning images built in this run...'\n")
	for _, layer := range layers {
		for _, containerName := range layer {
			fmt.Fprintf(&script, "echo '  %s'\n", containerName)
		}
	}
	fmt.Fprintf(&script, "workflowgen update --images %s\n", workflowDir)
	return script.String()
}

func getCommitScript() string {
	return `git config user.name "github-actions[bot]"
git config user.email "github-actions[bot]@users.noreply.github.com"
git add .
if git diff --staged --quiet; then
  echo "No changes to commit"
else
  git commit -m "Pin workflow images to built digests"
  git pull --rebase origin $(git branch --show-current)
  git push
fi`
}
