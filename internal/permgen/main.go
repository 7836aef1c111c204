// Command permgen writes the named permission mutators for the workflow
// builders, one read/write pair per scope.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log/slog"
	"os"
	"strings"
	"text/template"

	"github.com/greboid/workflowgen/pkg/workflow"
)

var initialisms = map[string]string{
	"id": "ID",
}

var builders = []string{"WorkflowBuilder", "JobBuilder"}

var source = template.Must(template.New("permissions").Parse(`// Code generated by permgen. DO NOT EDIT.

package workflow
{{range $builder := .Builders}}{{range $.Scopes}}
// {{.Name}}Read grants read access to the {{.Key}} scope.
func (b *{{$builder}}) {{.Name}}Read() *{{$builder}} {
	return b.ReadPermission({{.Const}})
}

// {{.Name}}Write grants write access to the {{.Key}} scope.
func (b *{{$builder}}) {{.Name}}Write() *{{$builder}} {
	return b.WritePermission({{.Const}})
}
{{end}}{{end}}`))

type scope struct {
	Name  string
	Key   string
	Const string
}

func main() {
	output := flag.String("o", "permissions_gen.go", "file to write")
	flag.Parse()

	if err := run(*output); err != nil {
		slog.Error("Failed to generate permission mutators", "error", err)
		os.Exit(1)
	}
}

func run(output string) error {
	src, err := generate()
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	slog.Info("Generated permission mutators", "file", output)
	return nil
}

func generate() ([]byte, error) {
	var scopes []scope
	for _, s := range workflow.Scopes() {
		name := goName(s.Key())
		scopes = append(scopes, scope{Name: name, Key: s.Key(), Const: "Scope" + name})
	}

	var buf bytes.Buffer
	err := source.Execute(&buf, struct {
		Builders []string
		Scopes   []scope
	}{builders, scopes})
	if err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

// goName turns a hyphenated scope key into an exported identifier:
// "id-token" becomes "IDToken".
func goName(key string) string {
	var b strings.Builder
	for _, part := range strings.Split(key, "-") {
		if upper, ok := initialisms[part]; ok {
			b.WriteString(upper)
			continue
		}
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return b.String()
}
