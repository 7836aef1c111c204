package config

import (
	"strings"
	"testing"

	"github.com/greboid/workflowgen/pkg/util"
)

func checkError(t *testing.T, err error, expectError bool, errorMsg string) {
	t.Helper()
	if expectError {
		if err == nil {
			t.Errorf("expected error containing %q, got nil", errorMsg)
			return
		}
		if errorMsg != "" && !strings.Contains(err.Error(), errorMsg) {
			t.Errorf("expected error containing %q, got %q", errorMsg, err.Error())
		}
	} else {
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      *Config
		expectError bool
		errorMsg    string
	}{
		{
			name: "valid single container",
			config: &Config{
				Name:       "Update Containers",
				Containers: map[string]Container{"app": {Path: "app"}},
			},
			expectError: false,
		},
		{
			name: "valid dependency chain",
			config: &Config{
				Name: "Update Containers",
				Containers: map[string]Container{
					"base": {},
					"app":  {DependsOn: []string{"base"}},
				},
				Schedule: []string{"0 4 * * *"},
			},
			expectError: false,
		},
		{
			name: "missing name",
			config: &Config{
				Containers: map[string]Container{"app": {}},
			},
			expectError: true,
			errorMsg:    "name is required",
		},
		{
			name:        "no containers",
			config:      &Config{Name: "empty"},
			expectError: true,
			errorMsg:    "at least one container is required",
		},
		{
			name: "container name with whitespace",
			config: &Config{
				Name:       "bad",
				Containers: map[string]Container{"my app": {}},
			},
			expectError: true,
			errorMsg:    "name must be a single word",
		},
		{
			name: "self dependency",
			config: &Config{
				Name:       "bad",
				Containers: map[string]Container{"app": {DependsOn: []string{"app"}}},
			},
			expectError: true,
			errorMsg:    "cannot depend on itself",
		},
		{
			name: "unknown dependency",
			config: &Config{
				Name:       "bad",
				Containers: map[string]Container{"app": {DependsOn: []string{"base"}}},
			},
			expectError: true,
			errorMsg:    `depends on unknown container "base"`,
		},
		{
			name: "malformed cron",
			config: &Config{
				Name:       "bad",
				Containers: map[string]Container{"app": {}},
				Schedule:   []string{"@daily"},
			},
			expectError: true,
			errorMsg:    "cron expression must have five fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.config)
			checkError(t, err, tt.expectError, tt.errorMsg)
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		expectError bool
		errorMsg    string
	}{
		{
			name: "valid yaml",
			yaml: `name: Update Containers
containers:
  base:
    path: images/base
  app:
    depends-on: [base]`,
			expectError: false,
		},
		{
			name:        "invalid yaml syntax",
			yaml:        `name: [unclosed`,
			expectError: true,
			errorMsg:    "parsing YAML",
		},
		{
			name: "unknown field",
			yaml: `name: test
registry: ghcr.io
containers:
  app: {}`,
			expectError: true,
			errorMsg:    "field registry not found",
		},
		{
			name: "valid yaml but invalid config",
			yaml: `name: ""
containers:
  app: {}`,
			expectError: true,
			errorMsg:    "name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			checkError(t, err, tt.expectError, tt.errorMsg)
		})
	}
}

func TestParse_Defaults(t *testing.T) {
	config, err := Parse([]byte(`name: test
containers:
  base: {}
  app:
    path: images/app`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.RunsOn != DefaultRunsOn {
		t.Errorf("RunsOn = %q, want %q", config.RunsOn, DefaultRunsOn)
	}
	if config.RegistrySecret != DefaultRegistrySecret {
		t.Errorf("RegistrySecret = %q, want %q", config.RegistrySecret, DefaultRegistrySecret)
	}
	if got := config.Containers["base"].Path; got != "base" {
		t.Errorf("base path = %q, want %q", got, "base")
	}
	if got := config.Containers["app"].Path; got != "images/app" {
		t.Errorf("app path = %q, want %q", got, "images/app")
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads valid config from file", func(t *testing.T) {
		fs := util.NewTestFS()

		yaml := `name: Update Containers
runs-on: self-hosted
branches: [master]
containers:
  app:
    path: app`

		_ = fs.WriteFile("workflowgen.yaml", []byte(yaml), 0644)

		config, err := Load(fs, "workflowgen.yaml")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if config.Name != "Update Containers" {
			t.Errorf("expected name 'Update Containers', got %q", config.Name)
		}
		if config.RunsOn != "self-hosted" {
			t.Errorf("expected runs-on 'self-hosted', got %q", config.RunsOn)
		}
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		fs := util.NewTestFS()

		_, err := Load(fs, "nonexistent/workflowgen.yaml")
		if err == nil {
			t.Fatal("expected error for non-existent file")
		}
		if !strings.Contains(err.Error(), "reading config file") {
			t.Errorf("expected error about reading file, got: %v", err)
		}
	})
}
