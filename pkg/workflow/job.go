package workflow

import (
	"gopkg.in/yaml.v3"
)

// Job is one unit of execution. A job may call a reusable workflow (Uses,
// With, Secrets) and still carry inline steps; no combination of fields is
// rejected here.
type Job struct {
	Name           Value                `yaml:"name,omitempty"`
	ID             Value                `yaml:"id,omitempty"`
	Permissions    *Permissions         `yaml:"permissions,omitempty"`
	Needs          []string             `yaml:"needs,omitempty"`
	If             string               `yaml:"if,omitempty"`
	RunsOn         string               `yaml:"runs-on,omitempty"`
	Environment    Environment          `yaml:"environment,omitempty"`
	Concurrency    Concurrency          `yaml:"concurrency,omitempty"`
	Outputs        map[string]string    `yaml:"outputs,omitempty"`
	Env            map[string]string    `yaml:"env,omitempty"`
	Defaults       Defaults             `yaml:"defaults,omitempty"`
	Steps          []Step               `yaml:"steps,omitempty"`
	Strategy       Strategy             `yaml:"strategy,omitempty"`
	TimeoutMinutes Value                `yaml:"timeout-minutes,omitempty"`
	Container      Container            `yaml:"container,omitempty"`
	Services       map[string]Container `yaml:"services,omitempty"`
	Uses           Value                `yaml:"uses,omitempty"`
	With           map[string]Value     `yaml:"with,omitempty"`
	Secrets        map[string]string    `yaml:"secrets,omitempty"`
}

func (j *Job) UnmarshalYAML(node *yaml.Node) error {
	var d Job
	err := decodeMapping(node, map[string]fieldDecoder{
		"name":            value(&d.Name),
		"id":              value(&d.ID),
		"permissions":     optional(&d.Permissions),
		"needs":           stringList(&d.Needs),
		"if":              scalar(&d.If),
		"runs-on":         scalar(&d.RunsOn),
		"environment":     object(&d.Environment),
		"concurrency":     object(&d.Concurrency),
		"outputs":         stringMap(&d.Outputs),
		"env":             stringMap(&d.Env),
		"defaults":        object(&d.Defaults),
		"steps":           sequence(&d.Steps, object[Step]),
		"strategy":        object(&d.Strategy),
		"timeout-minutes": value(&d.TimeoutMinutes),
		"container":       object(&d.Container),
		"services":        mapping(&d.Services, object[Container]),
		"uses":            value(&d.Uses),
		"with":            mapping(&d.With, value),
		"secrets":         stringMap(&d.Secrets),
	})
	if err != nil {
		return err
	}
	*j = d
	return nil
}

// Environment names the deployment environment a job targets.
type Environment struct {
	Name string `yaml:"name,omitempty"`
	URL  string `yaml:"url,omitempty"`
}

func (e Environment) IsZero() bool {
	return e.Name == "" && e.URL == ""
}

func (e *Environment) UnmarshalYAML(node *yaml.Node) error {
	var d Environment
	err := decodeMapping(node, map[string]fieldDecoder{
		"name": scalar(&d.Name),
		"url":  scalar(&d.URL),
	})
	if err != nil {
		return err
	}
	*e = d
	return nil
}

// Step is one ordered action within a job: either an action reference (Uses)
// or a command (Run). Both may be set.
type Step struct {
	ID               string            `yaml:"id,omitempty"`
	If               string            `yaml:"if,omitempty"`
	Name             string            `yaml:"name,omitempty"`
	Uses             string            `yaml:"uses,omitempty"`
	Run              string            `yaml:"run,omitempty"`
	WorkingDirectory string            `yaml:"working-directory,omitempty"`
	Shell            string            `yaml:"shell,omitempty"`
	With             map[string]Value  `yaml:"with,omitempty"`
	Env              map[string]string `yaml:"env,omitempty"`
	Strategy         *Strategy         `yaml:"strategy,omitempty"`
	ContinueOnError  Value             `yaml:"continue-on-error,omitempty"`
	TimeoutMinutes   Value             `yaml:"timeout-minutes,omitempty"`
}

func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	var d Step
	err := decodeMapping(node, map[string]fieldDecoder{
		"id":                scalar(&d.ID),
		"if":                scalar(&d.If),
		"name":              scalar(&d.Name),
		"uses":              scalar(&d.Uses),
		"run":               scalar(&d.Run),
		"working-directory": scalar(&d.WorkingDirectory),
		"shell":             scalar(&d.Shell),
		"with":              mapping(&d.With, value),
		"env":               stringMap(&d.Env),
		"strategy":          optional(&d.Strategy),
		"continue-on-error": value(&d.ContinueOnError),
		"timeout-minutes":   value(&d.TimeoutMinutes),
	})
	if err != nil {
		return err
	}
	*s = d
	return nil
}

// Strategy fans a job out over the cross product of its matrix.
type Strategy struct {
	Matrix      map[string][]Value `yaml:"matrix,omitempty"`
	FailFast    Value              `yaml:"fail-fast,omitempty"`
	MaxParallel Value              `yaml:"max-parallel,omitempty"`
}

func (s Strategy) IsZero() bool {
	return len(s.Matrix) == 0 && s.FailFast == nil && s.MaxParallel == nil
}

func (s *Strategy) UnmarshalYAML(node *yaml.Node) error {
	var d Strategy
	err := decodeMapping(node, map[string]fieldDecoder{
		"matrix": mapping(&d.Matrix, func(values *[]Value) fieldDecoder {
			return sequence(values, value)
		}),
		"fail-fast":    value(&d.FailFast),
		"max-parallel": value(&d.MaxParallel),
	})
	if err != nil {
		return err
	}
	*s = d
	return nil
}

// Container describes the image a job or service runs in.
type Container struct {
	Image       Value            `yaml:"image,omitempty"`
	Credentials Credentials      `yaml:"credentials,omitempty"`
	Env         map[string]Value `yaml:"env,omitempty"`
	Ports       []Value          `yaml:"ports,omitempty"`
	Volumes     []Value          `yaml:"volumes,omitempty"`
	Options     []Value          `yaml:"options,omitempty"`
}

func (c Container) IsZero() bool {
	return c.Image == nil &&
		c.Credentials.IsZero() &&
		len(c.Env) == 0 &&
		len(c.Ports) == 0 &&
		len(c.Volumes) == 0 &&
		len(c.Options) == 0
}

func (c *Container) UnmarshalYAML(node *yaml.Node) error {
	var d Container
	err := decodeMapping(node, map[string]fieldDecoder{
		"image":       value(&d.Image),
		"credentials": object(&d.Credentials),
		"env":         mapping(&d.Env, value),
		"ports":       sequence(&d.Ports, value),
		"volumes":     sequence(&d.Volumes, value),
		"options":     sequence(&d.Options, value),
	})
	if err != nil {
		return err
	}
	*c = d
	return nil
}

// Credentials authenticate against the registry hosting a container image.
type Credentials struct {
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
}

func (c Credentials) IsZero() bool {
	return c.Username == "" && c.Password == ""
}

func (c *Credentials) UnmarshalYAML(node *yaml.Node) error {
	var d Credentials
	err := decodeMapping(node, map[string]fieldDecoder{
		"username": scalar(&d.Username),
		"password": scalar(&d.Password),
	})
	if err != nil {
		return err
	}
	*c = d
	return nil
}
