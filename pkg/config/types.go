package config

const (
	DefaultRunsOn         = "ubuntu-latest"
	DefaultRegistrySecret = "REGISTRY"
)

// Config describes the container-build workflow to generate.
type Config struct {
	Name           string               `yaml:"name"`
	RunsOn         string               `yaml:"runs-on,omitempty"`
	Branches       []string             `yaml:"branches,omitempty"`
	Schedule       []string             `yaml:"schedule,omitempty"`
	RegistrySecret string               `yaml:"registry-secret,omitempty"`
	Concurrency    string               `yaml:"concurrency,omitempty"`
	Containers     map[string]Container `yaml:"containers"`
}

type Container struct {
	Path      string   `yaml:"path,omitempty"`
	DependsOn []string `yaml:"depends-on,omitempty"`
}
