package workflow

import (
	"fmt"
)

// staging is the state shared by every builder: the value under construction,
// which becomes nil once Build has handed it out.
type staging[T any] struct {
	v *T
}

func stage[T any](v T) staging[T] {
	return staging[T]{v: &v}
}

func (s *staging[T]) get() *T {
	if s.v == nil {
		var zero T
		panic(fmt.Sprintf("workflow: %T builder used after Build", zero))
	}
	return s.v
}

func (s *staging[T]) build() T {
	v := s.get()
	s.v = nil
	return *v
}

// ensure returns *p, allocating a zero-valued T first if it is nil. Fields
// already set on an existing value are left alone.
func ensure[T any](p **T) *T {
	if *p == nil {
		*p = new(T)
	}
	return *p
}

func put[V any](m *map[string]V, key string, value V) {
	if *m == nil {
		*m = make(map[string]V)
	}
	(*m)[key] = value
}

// WorkflowBuilder stages a Workflow. The name is required up front.
type WorkflowBuilder struct {
	staging[Workflow]
}

func NewWorkflow(name string) *WorkflowBuilder {
	return &WorkflowBuilder{stage(Workflow{Name: name})}
}

// Build returns the finished Workflow. The builder must not be used again.
func (b *WorkflowBuilder) Build() Workflow {
	return b.build()
}

func (b *WorkflowBuilder) RunName(name string) *WorkflowBuilder {
	b.get().RunName = name
	return b
}

func (b *WorkflowBuilder) OnPullRequest(pr PullRequest) *WorkflowBuilder {
	b.get().On.PullRequest = &pr
	return b
}

func (b *WorkflowBuilder) OnPullRequestTarget(pr PullRequest) *WorkflowBuilder {
	b.get().On.PullRequestTarget = &pr
	return b
}

func (b *WorkflowBuilder) OnPush(push Push) *WorkflowBuilder {
	b.get().On.Push = &push
	return b
}

func (b *WorkflowBuilder) OnSchedule(schedule Schedule) *WorkflowBuilder {
	b.get().On.Schedule = &schedule
	return b
}

func (b *WorkflowBuilder) OnWorkflowCall(call WorkflowCall) *WorkflowBuilder {
	b.get().On.WorkflowCall = &call
	return b
}

func (b *WorkflowBuilder) OnWorkflowDispatch(dispatch WorkflowDispatch) *WorkflowBuilder {
	b.get().On.WorkflowDispatch = &dispatch
	return b
}

func (b *WorkflowBuilder) OnWorkflowRun(run WorkflowRun) *WorkflowBuilder {
	b.get().On.WorkflowRun = &run
	return b
}

// ReadPermission grants read access to scope, creating the permissions block
// if needed. It replaces any earlier grant for the same scope.
func (b *WorkflowBuilder) ReadPermission(scope Scope) *WorkflowBuilder {
	grant(&b.get().Permissions, scope, Read)
	return b
}

// WritePermission grants write access to scope, creating the permissions
// block if needed. It replaces any earlier grant for the same scope.
func (b *WorkflowBuilder) WritePermission(scope Scope) *WorkflowBuilder {
	grant(&b.get().Permissions, scope, Write)
	return b
}

func (b *WorkflowBuilder) Env(key, value string) *WorkflowBuilder {
	put(&b.get().Env, key, value)
	return b
}

func (b *WorkflowBuilder) DefaultRunShell(shell string) *WorkflowBuilder {
	b.get().Defaults.Run.Shell = shell
	return b
}

func (b *WorkflowBuilder) DefaultRunWorkingDirectory(dir string) *WorkflowBuilder {
	b.get().Defaults.Run.WorkingDirectory = dir
	return b
}

func (b *WorkflowBuilder) ConcurrencyGroup(group Value) *WorkflowBuilder {
	b.get().Concurrency.Group = group
	return b
}

// CancelInProgress sets cancel-in-progress to true.
func (b *WorkflowBuilder) CancelInProgress() *WorkflowBuilder {
	b.get().Concurrency.CancelInProgress = true
	return b
}

// AddJob stores job under id, replacing any job already stored there.
func (b *WorkflowBuilder) AddJob(id string, job Job) *WorkflowBuilder {
	put(&b.get().Jobs, id, job)
	return b
}
