package workflow

//go:generate go run ../../internal/permgen -o permissions_gen.go

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidPermission is returned when a permission scope holds a token other
// than read, write or none.
var ErrInvalidPermission = errors.New("invalid permission")

// Permission is the access level granted to a single scope. The zero value is
// Unset, which is never written out.
type Permission uint8

const (
	Unset Permission = iota
	Read
	Write
)

// ParsePermission converts a document token into a Permission. The token
// "none" maps to Unset, so an explicit "none" does not survive a round trip.
func ParsePermission(token string) (Permission, error) {
	switch token {
	case "read":
		return Read, nil
	case "write":
		return Write, nil
	case "none":
		return Unset, nil
	default:
		return Unset, fmt.Errorf("%w %q: must be one of read, write or none", ErrInvalidPermission, token)
	}
}

func (p Permission) String() string {
	switch p {
	case Read:
		return "read"
	case Write:
		return "write"
	default:
		return "none"
	}
}

func (p Permission) IsZero() bool {
	return p == Unset
}

func (p Permission) MarshalYAML() (any, error) {
	return p.String(), nil
}

func (p *Permission) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return shapeError(node, "scalar")
	}
	parsed, err := ParsePermission(node.Value)
	if err != nil {
		return &DecodeError{Line: node.Line, Column: node.Column, Err: err}
	}
	*p = parsed
	return nil
}

// Scope identifies one of the fixed set of grantable capabilities.
type Scope uint8

const (
	ScopeActions Scope = iota
	ScopeAttestations
	ScopeChecks
	ScopeContents
	ScopeDeployments
	ScopeIDToken
	ScopeIssues
	ScopeDiscussions
	ScopePackages
	ScopePages
	ScopePullRequests
	ScopeRepositoryProjects
	ScopeSecurityEvents
	ScopeStatuses

	scopeCount
)

var scopeKeys = [scopeCount]string{
	ScopeActions:            "actions",
	ScopeAttestations:       "attestations",
	ScopeChecks:             "checks",
	ScopeContents:           "contents",
	ScopeDeployments:        "deployments",
	ScopeIDToken:            "id-token",
	ScopeIssues:             "issues",
	ScopeDiscussions:        "discussions",
	ScopePackages:           "packages",
	ScopePages:              "pages",
	ScopePullRequests:       "pull-requests",
	ScopeRepositoryProjects: "repository-projects",
	ScopeSecurityEvents:     "security-events",
	ScopeStatuses:           "statuses",
}

// Scopes returns every scope in declaration order.
func Scopes() []Scope {
	scopes := make([]Scope, scopeCount)
	for i := range scopes {
		scopes[i] = Scope(i)
	}
	return scopes
}

// ParseScope looks up a scope by its document key, e.g. "pull-requests".
func ParseScope(key string) (Scope, bool) {
	for i, k := range scopeKeys {
		if k == key {
			return Scope(i), true
		}
	}
	return 0, false
}

// Key returns the document key of the scope.
func (s Scope) Key() string {
	if s >= scopeCount {
		return fmt.Sprintf("scope(%d)", uint8(s))
	}
	return scopeKeys[s]
}

func (s Scope) String() string {
	return s.Key()
}

// Permissions holds one Permission per scope. It is considered empty, and is
// omitted from output, when every scope is Unset.
type Permissions struct {
	Actions            Permission `yaml:"actions,omitempty"`
	Attestations       Permission `yaml:"attestations,omitempty"`
	Checks             Permission `yaml:"checks,omitempty"`
	Contents           Permission `yaml:"contents,omitempty"`
	Deployments        Permission `yaml:"deployments,omitempty"`
	IDToken            Permission `yaml:"id-token,omitempty"`
	Issues             Permission `yaml:"issues,omitempty"`
	Discussions        Permission `yaml:"discussions,omitempty"`
	Packages           Permission `yaml:"packages,omitempty"`
	Pages              Permission `yaml:"pages,omitempty"`
	PullRequests       Permission `yaml:"pull-requests,omitempty"`
	RepositoryProjects Permission `yaml:"repository-projects,omitempty"`
	SecurityEvents     Permission `yaml:"security-events,omitempty"`
	Statuses           Permission `yaml:"statuses,omitempty"`
}

func (p *Permissions) field(s Scope) *Permission {
	switch s {
	case ScopeActions:
		return &p.Actions
	case ScopeAttestations:
		return &p.Attestations
	case ScopeChecks:
		return &p.Checks
	case ScopeContents:
		return &p.Contents
	case ScopeDeployments:
		return &p.Deployments
	case ScopeIDToken:
		return &p.IDToken
	case ScopeIssues:
		return &p.Issues
	case ScopeDiscussions:
		return &p.Discussions
	case ScopePackages:
		return &p.Packages
	case ScopePages:
		return &p.Pages
	case ScopePullRequests:
		return &p.PullRequests
	case ScopeRepositoryProjects:
		return &p.RepositoryProjects
	case ScopeSecurityEvents:
		return &p.SecurityEvents
	case ScopeStatuses:
		return &p.Statuses
	default:
		panic(fmt.Sprintf("workflow: unknown permission scope %d", uint8(s)))
	}
}

// Get returns the permission held for a scope.
func (p Permissions) Get(s Scope) Permission {
	return *p.field(s)
}

// Set replaces the permission held for a scope.
func (p *Permissions) Set(s Scope, value Permission) {
	*p.field(s) = value
}

func (p Permissions) IsZero() bool {
	for _, s := range Scopes() {
		if !p.Get(s).IsZero() {
			return false
		}
	}
	return true
}

func (p *Permissions) UnmarshalYAML(node *yaml.Node) error {
	var decoded Permissions
	fields := make(map[string]fieldDecoder, scopeCount)
	for _, s := range Scopes() {
		fields[s.Key()] = permission(decoded.field(s))
	}
	if err := decodeMapping(node, fields); err != nil {
		return err
	}
	*p = decoded
	return nil
}

func permission(dst *Permission) fieldDecoder {
	return dst.UnmarshalYAML
}

// grant is the single get-or-create-then-set operation behind every
// permission mutator on WorkflowBuilder and JobBuilder.
func grant(perms **Permissions, s Scope, value Permission) {
	ensure(perms).Set(s, value)
}
