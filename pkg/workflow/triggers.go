package workflow

import (
	"gopkg.in/yaml.v3"
)

// Triggers is the "on" section. Every descriptor is optional, and a descriptor
// that is present but empty is omitted just like an absent one.
type Triggers struct {
	PullRequest       *PullRequest      `yaml:"pull_request,omitempty"`
	PullRequestTarget *PullRequest      `yaml:"pull_request_target,omitempty"`
	Push              *Push             `yaml:"push,omitempty"`
	Schedule          *Schedule         `yaml:"schedule,omitempty"`
	WorkflowCall      *WorkflowCall     `yaml:"workflow_call,omitempty"`
	WorkflowDispatch  *WorkflowDispatch `yaml:"workflow_dispatch,omitempty"`
	WorkflowRun       *WorkflowRun      `yaml:"workflow_run,omitempty"`
}

func (t Triggers) IsZero() bool {
	return (t.PullRequest == nil || t.PullRequest.IsZero()) &&
		(t.PullRequestTarget == nil || t.PullRequestTarget.IsZero()) &&
		(t.Push == nil || t.Push.IsZero()) &&
		(t.Schedule == nil || t.Schedule.IsZero()) &&
		(t.WorkflowCall == nil || t.WorkflowCall.IsZero()) &&
		(t.WorkflowDispatch == nil || t.WorkflowDispatch.IsZero()) &&
		(t.WorkflowRun == nil || t.WorkflowRun.IsZero())
}

func (t *Triggers) UnmarshalYAML(node *yaml.Node) error {
	var d Triggers
	err := decodeMapping(node, map[string]fieldDecoder{
		"pull_request":        optional(&d.PullRequest),
		"pull_request_target": optional(&d.PullRequestTarget),
		"push":                optional(&d.Push),
		"schedule":            optional(&d.Schedule),
		"workflow_call":       optional(&d.WorkflowCall),
		"workflow_dispatch":   optional(&d.WorkflowDispatch),
		"workflow_run":        optional(&d.WorkflowRun),
	})
	if err != nil {
		return err
	}
	*t = d
	return nil
}

// PullRequest filters pull_request and pull_request_target events.
type PullRequest struct {
	Branches       []string `yaml:"branches,omitempty"`
	BranchesIgnore []string `yaml:"branches-ignore,omitempty"`
	Paths          []string `yaml:"paths,omitempty"`
	PathsIgnore    []string `yaml:"paths-ignore,omitempty"`
	Types          []string `yaml:"types,omitempty"`
}

func (p PullRequest) IsZero() bool {
	return len(p.Branches) == 0 &&
		len(p.BranchesIgnore) == 0 &&
		len(p.Paths) == 0 &&
		len(p.PathsIgnore) == 0 &&
		len(p.Types) == 0
}

func (p *PullRequest) UnmarshalYAML(node *yaml.Node) error {
	var d PullRequest
	err := decodeMapping(node, map[string]fieldDecoder{
		"branches":        stringList(&d.Branches),
		"branches-ignore": stringList(&d.BranchesIgnore),
		"paths":           stringList(&d.Paths),
		"paths-ignore":    stringList(&d.PathsIgnore),
		"types":           stringList(&d.Types),
	})
	if err != nil {
		return err
	}
	*p = d
	return nil
}

// Push filters push events.
type Push struct {
	Branches       []string `yaml:"branches,omitempty"`
	Tags           []string `yaml:"tags,omitempty"`
	BranchesIgnore []string `yaml:"branches-ignore,omitempty"`
	TagsIgnore     []string `yaml:"tags-ignore,omitempty"`
	Paths          []string `yaml:"paths,omitempty"`
	PathsIgnore    []string `yaml:"paths-ignore,omitempty"`
	Types          []string `yaml:"types,omitempty"`
}

func (p Push) IsZero() bool {
	return len(p.Branches) == 0 &&
		len(p.Tags) == 0 &&
		len(p.BranchesIgnore) == 0 &&
		len(p.TagsIgnore) == 0 &&
		len(p.Paths) == 0 &&
		len(p.PathsIgnore) == 0 &&
		len(p.Types) == 0
}

func (p *Push) UnmarshalYAML(node *yaml.Node) error {
	var d Push
	err := decodeMapping(node, map[string]fieldDecoder{
		"branches":        stringList(&d.Branches),
		"tags":            stringList(&d.Tags),
		"branches-ignore": stringList(&d.BranchesIgnore),
		"tags-ignore":     stringList(&d.TagsIgnore),
		"paths":           stringList(&d.Paths),
		"paths-ignore":    stringList(&d.PathsIgnore),
		"types":           stringList(&d.Types),
	})
	if err != nil {
		return err
	}
	*p = d
	return nil
}

// Schedule holds cron expressions. It is written as a sequence of
// single-key {cron: ...} mappings, in order.
type Schedule struct {
	Cron []string
}

type cronEntry struct {
	Cron string `yaml:"cron"`
}

func (e *cronEntry) UnmarshalYAML(node *yaml.Node) error {
	return decodeMapping(node, map[string]fieldDecoder{
		"cron": scalar(&e.Cron),
	})
}

func (s Schedule) IsZero() bool {
	return len(s.Cron) == 0
}

func (s Schedule) MarshalYAML() (any, error) {
	entries := make([]cronEntry, len(s.Cron))
	for i, expr := range s.Cron {
		entries[i] = cronEntry{Cron: expr}
	}
	return entries, nil
}

func (s *Schedule) UnmarshalYAML(node *yaml.Node) error {
	var entries []cronEntry
	if err := sequence(&entries, object[cronEntry])(node); err != nil {
		return err
	}

	var d Schedule
	for _, e := range entries {
		d.Cron = append(d.Cron, e.Cron)
	}
	*s = d
	return nil
}

// WorkflowCall makes the workflow callable from other workflows.
type WorkflowCall struct {
	Inputs         map[string]Input  `yaml:"inputs,omitempty"`
	Outputs        map[string]Output `yaml:"outputs,omitempty"`
	Secrets        map[string]Secret `yaml:"secrets,omitempty"`
	Branches       []string          `yaml:"branches,omitempty"`
	BranchesIgnore []string          `yaml:"branches-ignore,omitempty"`
	Types          []string          `yaml:"types,omitempty"`
}

func (c WorkflowCall) IsZero() bool {
	return len(c.Inputs) == 0 &&
		len(c.Outputs) == 0 &&
		len(c.Secrets) == 0 &&
		len(c.Branches) == 0 &&
		len(c.BranchesIgnore) == 0 &&
		len(c.Types) == 0
}

func (c *WorkflowCall) UnmarshalYAML(node *yaml.Node) error {
	var d WorkflowCall
	err := decodeMapping(node, map[string]fieldDecoder{
		"inputs":          mapping(&d.Inputs, object[Input]),
		"outputs":         mapping(&d.Outputs, object[Output]),
		"secrets":         mapping(&d.Secrets, object[Secret]),
		"branches":        stringList(&d.Branches),
		"branches-ignore": stringList(&d.BranchesIgnore),
		"types":           stringList(&d.Types),
	})
	if err != nil {
		return err
	}
	*c = d
	return nil
}

// WorkflowDispatch allows the workflow to be started manually.
type WorkflowDispatch struct {
	Inputs map[string]Input `yaml:"inputs,omitempty"`
	Types  []string         `yaml:"types,omitempty"`
}

func (d WorkflowDispatch) IsZero() bool {
	return len(d.Inputs) == 0 && len(d.Types) == 0
}

func (d *WorkflowDispatch) UnmarshalYAML(node *yaml.Node) error {
	var out WorkflowDispatch
	err := decodeMapping(node, map[string]fieldDecoder{
		"inputs": mapping(&out.Inputs, object[Input]),
		"types":  stringList(&out.Types),
	})
	if err != nil {
		return err
	}
	*d = out
	return nil
}

// WorkflowRun starts the workflow when other named workflows run.
type WorkflowRun struct {
	Workflows      []string `yaml:"workflows,omitempty"`
	Types          []string `yaml:"types,omitempty"`
	Branches       []string `yaml:"branches,omitempty"`
	BranchesIgnore []string `yaml:"branches-ignore,omitempty"`
}

func (r WorkflowRun) IsZero() bool {
	return len(r.Workflows) == 0 &&
		len(r.Types) == 0 &&
		len(r.Branches) == 0 &&
		len(r.BranchesIgnore) == 0
}

func (r *WorkflowRun) UnmarshalYAML(node *yaml.Node) error {
	var d WorkflowRun
	err := decodeMapping(node, map[string]fieldDecoder{
		"workflows":       stringList(&d.Workflows),
		"types":           stringList(&d.Types),
		"branches":        stringList(&d.Branches),
		"branches-ignore": stringList(&d.BranchesIgnore),
	})
	if err != nil {
		return err
	}
	*r = d
	return nil
}

// Input is a parameter of a callable or manually dispatched workflow.
type Input struct {
	Description string `yaml:"description,omitempty"`
	Default     Value  `yaml:"default,omitempty"`
	Required    bool   `yaml:"required,omitempty"`
	Type        string `yaml:"type,omitempty"`
}

func (in *Input) UnmarshalYAML(node *yaml.Node) error {
	var d Input
	err := decodeMapping(node, map[string]fieldDecoder{
		"description": scalar(&d.Description),
		"default":     value(&d.Default),
		"required":    scalar(&d.Required),
		"type":        scalar(&d.Type),
	})
	if err != nil {
		return err
	}
	*in = d
	return nil
}

// Output is a value exposed by a callable workflow.
type Output struct {
	Description string `yaml:"description,omitempty"`
	Value       Value  `yaml:"value,omitempty"`
	Default     Value  `yaml:"default,omitempty"`
	Required    bool   `yaml:"required,omitempty"`
	Type        string `yaml:"type,omitempty"`
}

func (o *Output) UnmarshalYAML(node *yaml.Node) error {
	var d Output
	err := decodeMapping(node, map[string]fieldDecoder{
		"description": scalar(&d.Description),
		"value":       value(&d.Value),
		"default":     value(&d.Default),
		"required":    scalar(&d.Required),
		"type":        scalar(&d.Type),
	})
	if err != nil {
		return err
	}
	*o = d
	return nil
}

// Secret is a secret accepted by a callable workflow.
type Secret struct {
	Description string `yaml:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty"`
}

func (s *Secret) UnmarshalYAML(node *yaml.Node) error {
	var d Secret
	err := decodeMapping(node, map[string]fieldDecoder{
		"description": scalar(&d.Description),
		"required":    scalar(&d.Required),
	})
	if err != nil {
		return err
	}
	*s = d
	return nil
}
