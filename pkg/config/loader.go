package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

func Load(fs fs.ReadFileFS, path string) (*Config, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var config Config

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	applyDefaults(&config)

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func applyDefaults(config *Config) {
	if config.RunsOn == "" {
		config.RunsOn = DefaultRunsOn
	}
	if config.RegistrySecret == "" {
		config.RegistrySecret = DefaultRegistrySecret
	}

	for name, container := range config.Containers {
		if container.Path == "" {
			container.Path = name
			config.Containers[name] = container
		}
	}
}

func Validate(config *Config) error {
	if config.Name == "" {
		return fmt.Errorf("name is required")
	}

	if len(config.Containers) == 0 {
		return fmt.Errorf("at least one container is required in 'containers'")
	}

	names := make([]string, 0, len(config.Containers))
	for name := range config.Containers {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if err := validateContainer(name, config.Containers[name], config.Containers); err != nil {
			return err
		}
	}

	for _, cron := range config.Schedule {
		if len(strings.Fields(cron)) != 5 {
			return fmt.Errorf("schedule %q: cron expression must have five fields", cron)
		}
	}

	return nil
}

func validateContainer(name string, container Container, all map[string]Container) error {
	if strings.ContainsAny(name, " \t\n\r") {
		return fmt.Errorf("container %q: name must be a single word (no whitespace allowed)", name)
	}

	for _, dep := range container.DependsOn {
		if dep == name {
			return fmt.Errorf("container %q: cannot depend on itself", name)
		}
		if _, exists := all[dep]; !exists {
			return fmt.Errorf("container %q: depends on unknown container %q", name, dep)
		}
	}

	return nil
}
