package workflow

type JobBuilder struct {
	staging[Job]
}

func NewJob() *JobBuilder {
	return &JobBuilder{stage(Job{})}
}

// Build returns the finished Job. The builder must not be used again.
func (b *JobBuilder) Build() Job {
	return b.build()
}

func (b *JobBuilder) Name(name Value) *JobBuilder {
	b.get().Name = name
	return b
}

func (b *JobBuilder) ID(id Value) *JobBuilder {
	b.get().ID = id
	return b
}

// ReadPermission grants read access to scope, creating the job's permissions
// block if needed.
func (b *JobBuilder) ReadPermission(scope Scope) *JobBuilder {
	grant(&b.get().Permissions, scope, Read)
	return b
}

// WritePermission grants write access to scope, creating the job's
// permissions block if needed.
func (b *JobBuilder) WritePermission(scope Scope) *JobBuilder {
	grant(&b.get().Permissions, scope, Write)
	return b
}

// Needs appends a job id this job depends on.
func (b *JobBuilder) Needs(jobID string) *JobBuilder {
	j := b.get()
	j.Needs = append(j.Needs, jobID)
	return b
}

func (b *JobBuilder) If(condition string) *JobBuilder {
	b.get().If = condition
	return b
}

func (b *JobBuilder) RunsOn(runner string) *JobBuilder {
	b.get().RunsOn = runner
	return b
}

func (b *JobBuilder) Environment(name, url string) *JobBuilder {
	b.get().Environment = Environment{Name: name, URL: url}
	return b
}

func (b *JobBuilder) ConcurrencyGroup(group Value) *JobBuilder {
	b.get().Concurrency.Group = group
	return b
}

// CancelInProgress sets cancel-in-progress to true.
func (b *JobBuilder) CancelInProgress() *JobBuilder {
	b.get().Concurrency.CancelInProgress = true
	return b
}

func (b *JobBuilder) Output(name, expr string) *JobBuilder {
	put(&b.get().Outputs, name, expr)
	return b
}

func (b *JobBuilder) Env(key, value string) *JobBuilder {
	put(&b.get().Env, key, value)
	return b
}

func (b *JobBuilder) DefaultRunShell(shell string) *JobBuilder {
	b.get().Defaults.Run.Shell = shell
	return b
}

func (b *JobBuilder) DefaultRunWorkingDirectory(dir string) *JobBuilder {
	b.get().Defaults.Run.WorkingDirectory = dir
	return b
}

// AddStep appends a step; steps run in the order they were added.
func (b *JobBuilder) AddStep(step Step) *JobBuilder {
	j := b.get()
	j.Steps = append(j.Steps, step)
	return b
}

func (b *JobBuilder) Strategy(strategy Strategy) *JobBuilder {
	b.get().Strategy = strategy
	return b
}

func (b *JobBuilder) TimeoutMinutes(minutes Value) *JobBuilder {
	b.get().TimeoutMinutes = minutes
	return b
}

func (b *JobBuilder) Container(container Container) *JobBuilder {
	b.get().Container = container
	return b
}

func (b *JobBuilder) Service(name string, container Container) *JobBuilder {
	put(&b.get().Services, name, container)
	return b
}

// Uses makes the job call a reusable workflow, e.g.
// "octo-org/repo/.github/workflows/build.yml@v1".
func (b *JobBuilder) Uses(ref Value) *JobBuilder {
	b.get().Uses = ref
	return b
}

// With sets an input passed to the called workflow.
func (b *JobBuilder) With(key string, v Value) *JobBuilder {
	put(&b.get().With, key, v)
	return b
}

func (b *JobBuilder) Secret(name, value string) *JobBuilder {
	put(&b.get().Secrets, name, value)
	return b
}

type StepBuilder struct {
	staging[Step]
}

func NewStep() *StepBuilder {
	return &StepBuilder{stage(Step{})}
}

func (b *StepBuilder) Build() Step {
	return b.build()
}

func (b *StepBuilder) ID(id string) *StepBuilder {
	b.get().ID = id
	return b
}

func (b *StepBuilder) If(condition string) *StepBuilder {
	b.get().If = condition
	return b
}

func (b *StepBuilder) Name(name string) *StepBuilder {
	b.get().Name = name
	return b
}

func (b *StepBuilder) Uses(action string) *StepBuilder {
	b.get().Uses = action
	return b
}

func (b *StepBuilder) Run(command string) *StepBuilder {
	b.get().Run = command
	return b
}

func (b *StepBuilder) WorkingDirectory(dir string) *StepBuilder {
	b.get().WorkingDirectory = dir
	return b
}

func (b *StepBuilder) Shell(shell string) *StepBuilder {
	b.get().Shell = shell
	return b
}

func (b *StepBuilder) With(key string, v Value) *StepBuilder {
	put(&b.get().With, key, v)
	return b
}

func (b *StepBuilder) Env(key, value string) *StepBuilder {
	put(&b.get().Env, key, value)
	return b
}

func (b *StepBuilder) Strategy(strategy Strategy) *StepBuilder {
	b.get().Strategy = &strategy
	return b
}

// AddToMatrix appends v to the step strategy's matrix list for key, creating
// the strategy and the list as needed.
func (b *StepBuilder) AddToMatrix(key string, v Value) *StepBuilder {
	addToMatrix(ensure(&b.get().Strategy), key, v)
	return b
}

func (b *StepBuilder) ContinueOnError(v Value) *StepBuilder {
	b.get().ContinueOnError = v
	return b
}

func (b *StepBuilder) TimeoutMinutes(minutes Value) *StepBuilder {
	b.get().TimeoutMinutes = minutes
	return b
}

type StrategyBuilder struct {
	staging[Strategy]
}

func NewStrategy() *StrategyBuilder {
	return &StrategyBuilder{stage(Strategy{})}
}

func (b *StrategyBuilder) Build() Strategy {
	return b.build()
}

// Matrix replaces the whole list of values for key.
func (b *StrategyBuilder) Matrix(key string, values ...Value) *StrategyBuilder {
	put(&b.get().Matrix, key, append([]Value(nil), values...))
	return b
}

// AddToMatrix appends one value to the list for key, creating it if absent.
func (b *StrategyBuilder) AddToMatrix(key string, v Value) *StrategyBuilder {
	addToMatrix(b.get(), key, v)
	return b
}

func (b *StrategyBuilder) FailFast(v Value) *StrategyBuilder {
	b.get().FailFast = v
	return b
}

func (b *StrategyBuilder) MaxParallel(v Value) *StrategyBuilder {
	b.get().MaxParallel = v
	return b
}

func addToMatrix(s *Strategy, key string, v Value) {
	if s.Matrix == nil {
		s.Matrix = make(map[string][]Value)
	}
	s.Matrix[key] = append(s.Matrix[key], v)
}

type ContainerBuilder struct {
	staging[Container]
}

func NewContainer() *ContainerBuilder {
	return &ContainerBuilder{stage(Container{})}
}

func (b *ContainerBuilder) Build() Container {
	return b.build()
}

func (b *ContainerBuilder) Image(image Value) *ContainerBuilder {
	b.get().Image = image
	return b
}

func (b *ContainerBuilder) Credentials(username, password string) *ContainerBuilder {
	b.get().Credentials = Credentials{Username: username, Password: password}
	return b
}

func (b *ContainerBuilder) Env(key string, v Value) *ContainerBuilder {
	put(&b.get().Env, key, v)
	return b
}

func (b *ContainerBuilder) Port(port Value) *ContainerBuilder {
	c := b.get()
	c.Ports = append(c.Ports, port)
	return b
}

func (b *ContainerBuilder) Volume(volume Value) *ContainerBuilder {
	c := b.get()
	c.Volumes = append(c.Volumes, volume)
	return b
}

func (b *ContainerBuilder) Option(option Value) *ContainerBuilder {
	c := b.get()
	c.Options = append(c.Options, option)
	return b
}
