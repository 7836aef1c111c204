// Package workflow models CI workflow definitions (triggers, jobs, steps,
// permissions and execution strategy), builds them incrementally and renders
// them as YAML.
//
// Values are assembled through builders (NewWorkflow, NewJob, NewStep, ...).
// Every builder is a mutable staging object owned by one goroutine; Build
// hands back a plain value and invalidates the builder, so any later call on
// it panics. Built values hold no references back into a builder and can be
// read concurrently.
//
// Output is minimal: a field that is absent, empty or at its default value is
// never written. Each type decides this for itself through an IsZero method,
// and a struct is empty only when all of its fields are.
package workflow

import (
	"gopkg.in/yaml.v3"
)

// Value is free-form structured data: a scalar, a []any sequence or a
// map[string]any mapping, in any combination yaml.v3 can encode. Mapping keys
// are written in sorted order.
type Value = any

// Workflow is the root of a workflow document.
type Workflow struct {
	Name        string            `yaml:"name"`
	RunName     string            `yaml:"run-name,omitempty"`
	On          Triggers          `yaml:"on,omitempty"`
	Permissions *Permissions      `yaml:"permissions,omitempty"`
	Env         map[string]string `yaml:"env,omitempty"`
	Defaults    Defaults          `yaml:"defaults,omitempty"`
	Concurrency Concurrency       `yaml:"concurrency,omitempty"`
	Jobs        map[string]Job    `yaml:"jobs,omitempty"`
}

func (w *Workflow) UnmarshalYAML(node *yaml.Node) error {
	var d Workflow
	err := decodeMapping(node, map[string]fieldDecoder{
		"name":        scalar(&d.Name),
		"run-name":    scalar(&d.RunName),
		"on":          object(&d.On),
		"permissions": optional(&d.Permissions),
		"env":         stringMap(&d.Env),
		"defaults":    object(&d.Defaults),
		"concurrency": object(&d.Concurrency),
		"jobs":        mapping(&d.Jobs, object[Job]),
	})
	if err != nil {
		return err
	}
	*w = d
	return nil
}

// Defaults applies to every run step beneath the workflow or job.
type Defaults struct {
	Run RunDefaults `yaml:"run,omitempty"`
}

func (d Defaults) IsZero() bool {
	return d.Run.IsZero()
}

func (d *Defaults) UnmarshalYAML(node *yaml.Node) error {
	var out Defaults
	if err := decodeMapping(node, map[string]fieldDecoder{"run": object(&out.Run)}); err != nil {
		return err
	}
	*d = out
	return nil
}

type RunDefaults struct {
	Shell            string `yaml:"shell,omitempty"`
	WorkingDirectory string `yaml:"working-directory,omitempty"`
}

func (r RunDefaults) IsZero() bool {
	return r.Shell == "" && r.WorkingDirectory == ""
}

func (r *RunDefaults) UnmarshalYAML(node *yaml.Node) error {
	var d RunDefaults
	err := decodeMapping(node, map[string]fieldDecoder{
		"shell":             scalar(&d.Shell),
		"working-directory": scalar(&d.WorkingDirectory),
	})
	if err != nil {
		return err
	}
	*r = d
	return nil
}

// Concurrency limits how many runs sharing a group execute at once.
type Concurrency struct {
	Group            Value `yaml:"group,omitempty"`
	CancelInProgress Value `yaml:"cancel-in-progress,omitempty"`
}

func (c Concurrency) IsZero() bool {
	return c.Group == nil && c.CancelInProgress == nil
}

func (c *Concurrency) UnmarshalYAML(node *yaml.Node) error {
	var d Concurrency
	err := decodeMapping(node, map[string]fieldDecoder{
		"group":              value(&d.Group),
		"cancel-in-progress": value(&d.CancelInProgress),
	})
	if err != nil {
		return err
	}
	*c = d
	return nil
}
