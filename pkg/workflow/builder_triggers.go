package workflow

type PullRequestBuilder struct {
	staging[PullRequest]
}

func NewPullRequest() *PullRequestBuilder {
	return &PullRequestBuilder{stage(PullRequest{})}
}

func (b *PullRequestBuilder) Build() PullRequest {
	return b.build()
}

func (b *PullRequestBuilder) Branch(branch string) *PullRequestBuilder {
	p := b.get()
	p.Branches = append(p.Branches, branch)
	return b
}

func (b *PullRequestBuilder) IgnoreBranch(branch string) *PullRequestBuilder {
	p := b.get()
	p.BranchesIgnore = append(p.BranchesIgnore, branch)
	return b
}

func (b *PullRequestBuilder) Path(path string) *PullRequestBuilder {
	p := b.get()
	p.Paths = append(p.Paths, path)
	return b
}

func (b *PullRequestBuilder) IgnorePath(path string) *PullRequestBuilder {
	p := b.get()
	p.PathsIgnore = append(p.PathsIgnore, path)
	return b
}

func (b *PullRequestBuilder) Type(activity string) *PullRequestBuilder {
	p := b.get()
	p.Types = append(p.Types, activity)
	return b
}

type PushBuilder struct {
	staging[Push]
}

func NewPush() *PushBuilder {
	return &PushBuilder{stage(Push{})}
}

func (b *PushBuilder) Build() Push {
	return b.build()
}

func (b *PushBuilder) Branch(branch string) *PushBuilder {
	p := b.get()
	p.Branches = append(p.Branches, branch)
	return b
}

func (b *PushBuilder) IgnoreBranch(branch string) *PushBuilder {
	p := b.get()
	p.BranchesIgnore = append(p.BranchesIgnore, branch)
	return b
}

func (b *PushBuilder) Tag(tag string) *PushBuilder {
	p := b.get()
	p.Tags = append(p.Tags, tag)
	return b
}

func (b *PushBuilder) IgnoreTag(tag string) *PushBuilder {
	p := b.get()
	p.TagsIgnore = append(p.TagsIgnore, tag)
	return b
}

func (b *PushBuilder) Path(path string) *PushBuilder {
	p := b.get()
	p.Paths = append(p.Paths, path)
	return b
}

func (b *PushBuilder) IgnorePath(path string) *PushBuilder {
	p := b.get()
	p.PathsIgnore = append(p.PathsIgnore, path)
	return b
}

func (b *PushBuilder) Type(activity string) *PushBuilder {
	p := b.get()
	p.Types = append(p.Types, activity)
	return b
}

type ScheduleBuilder struct {
	staging[Schedule]
}

func NewSchedule() *ScheduleBuilder {
	return &ScheduleBuilder{stage(Schedule{})}
}

func (b *ScheduleBuilder) Build() Schedule {
	return b.build()
}

// Cron appends a cron expression, e.g. "0 2 * * *".
func (b *ScheduleBuilder) Cron(expr string) *ScheduleBuilder {
	s := b.get()
	s.Cron = append(s.Cron, expr)
	return b
}

type WorkflowCallBuilder struct {
	staging[WorkflowCall]
}

func NewWorkflowCall() *WorkflowCallBuilder {
	return &WorkflowCallBuilder{stage(WorkflowCall{})}
}

func (b *WorkflowCallBuilder) Build() WorkflowCall {
	return b.build()
}

func (b *WorkflowCallBuilder) Input(name string, input Input) *WorkflowCallBuilder {
	put(&b.get().Inputs, name, input)
	return b
}

func (b *WorkflowCallBuilder) Output(name string, output Output) *WorkflowCallBuilder {
	put(&b.get().Outputs, name, output)
	return b
}

func (b *WorkflowCallBuilder) Secret(name string, secret Secret) *WorkflowCallBuilder {
	put(&b.get().Secrets, name, secret)
	return b
}

func (b *WorkflowCallBuilder) Branch(branch string) *WorkflowCallBuilder {
	c := b.get()
	c.Branches = append(c.Branches, branch)
	return b
}

func (b *WorkflowCallBuilder) IgnoreBranch(branch string) *WorkflowCallBuilder {
	c := b.get()
	c.BranchesIgnore = append(c.BranchesIgnore, branch)
	return b
}

func (b *WorkflowCallBuilder) Type(activity string) *WorkflowCallBuilder {
	c := b.get()
	c.Types = append(c.Types, activity)
	return b
}

type WorkflowDispatchBuilder struct {
	staging[WorkflowDispatch]
}

func NewWorkflowDispatch() *WorkflowDispatchBuilder {
	return &WorkflowDispatchBuilder{stage(WorkflowDispatch{})}
}

func (b *WorkflowDispatchBuilder) Build() WorkflowDispatch {
	return b.build()
}

func (b *WorkflowDispatchBuilder) Input(name string, input Input) *WorkflowDispatchBuilder {
	put(&b.get().Inputs, name, input)
	return b
}

func (b *WorkflowDispatchBuilder) Type(activity string) *WorkflowDispatchBuilder {
	d := b.get()
	d.Types = append(d.Types, activity)
	return b
}

type WorkflowRunBuilder struct {
	staging[WorkflowRun]
}

func NewWorkflowRun() *WorkflowRunBuilder {
	return &WorkflowRunBuilder{stage(WorkflowRun{})}
}

func (b *WorkflowRunBuilder) Build() WorkflowRun {
	return b.build()
}

func (b *WorkflowRunBuilder) Workflow(name string) *WorkflowRunBuilder {
	r := b.get()
	r.Workflows = append(r.Workflows, name)
	return b
}

func (b *WorkflowRunBuilder) Type(activity string) *WorkflowRunBuilder {
	r := b.get()
	r.Types = append(r.Types, activity)
	return b
}

func (b *WorkflowRunBuilder) Branch(branch string) *WorkflowRunBuilder {
	r := b.get()
	r.Branches = append(r.Branches, branch)
	return b
}

func (b *WorkflowRunBuilder) IgnoreBranch(branch string) *WorkflowRunBuilder {
	r := b.get()
	r.BranchesIgnore = append(r.BranchesIgnore, branch)
	return b
}

type InputBuilder struct {
	staging[Input]
}

func NewInput() *InputBuilder {
	return &InputBuilder{stage(Input{})}
}

func (b *InputBuilder) Build() Input {
	return b.build()
}

func (b *InputBuilder) Description(text string) *InputBuilder {
	b.get().Description = text
	return b
}

func (b *InputBuilder) Default(v Value) *InputBuilder {
	b.get().Default = v
	return b
}

func (b *InputBuilder) Required() *InputBuilder {
	b.get().Required = true
	return b
}

// Type sets the input type, e.g. "string", "boolean" or "choice".
func (b *InputBuilder) Type(kind string) *InputBuilder {
	b.get().Type = kind
	return b
}

type OutputBuilder struct {
	staging[Output]
}

func NewOutput() *OutputBuilder {
	return &OutputBuilder{stage(Output{})}
}

func (b *OutputBuilder) Build() Output {
	return b.build()
}

func (b *OutputBuilder) Description(text string) *OutputBuilder {
	b.get().Description = text
	return b
}

func (b *OutputBuilder) Value(v Value) *OutputBuilder {
	b.get().Value = v
	return b
}

func (b *OutputBuilder) Default(v Value) *OutputBuilder {
	b.get().Default = v
	return b
}

func (b *OutputBuilder) Required() *OutputBuilder {
	b.get().Required = true
	return b
}

func (b *OutputBuilder) Type(kind string) *OutputBuilder {
	b.get().Type = kind
	return b
}

type SecretBuilder struct {
	staging[Secret]
}

func NewSecret() *SecretBuilder {
	return &SecretBuilder{stage(Secret{})}
}

func (b *SecretBuilder) Build() Secret {
	return b.build()
}

func (b *SecretBuilder) Description(text string) *SecretBuilder {
	b.get().Description = text
	return b
}

func (b *SecretBuilder) Required() *SecretBuilder {
	b.get().Required = true
	return b
}
