package versions

import (
	"strings"
)

// ActionRef is a remote action reference of the form owner/repo[/path]@ref.
type ActionRef struct {
	Owner string
	Repo  string
	Path  string
	Ref   string
}

// ParseActionRef splits a step's uses value. Local actions ("./...") and
// container actions ("docker://...") are not remote refs and report false.
func ParseActionRef(uses string) (ActionRef, bool) {
	if strings.HasPrefix(uses, "./") || strings.HasPrefix(uses, "docker://") {
		return ActionRef{}, false
	}

	name, ref, ok := strings.Cut(uses, "@")
	if !ok || ref == "" {
		return ActionRef{}, false
	}

	parts := strings.SplitN(name, "/", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return ActionRef{}, false
	}

	action := ActionRef{Owner: parts[0], Repo: parts[1], Ref: ref}
	if len(parts) == 3 {
		action.Path = parts[2]
	}
	return action, true
}

func (a ActionRef) String() string {
	name := a.Owner + "/" + a.Repo
	if a.Path != "" {
		name += "/" + a.Path
	}
	return name + "@" + a.Ref
}

// RepoURL is the clone URL the action's tags are read from.
func (a ActionRef) RepoURL() string {
	return "https://github.com/" + a.Owner + "/" + a.Repo
}

// IsCommit reports whether the ref pins a full commit SHA.
func (a ActionRef) IsCommit() bool {
	if len(a.Ref) != 40 {
		return false
	}
	for _, c := range a.Ref {
		if !strings.ContainsRune("0123456789abcdef", c) {
			return false
		}
	}
	return true
}

// IsVersion reports whether the ref looks like a version tag such as v4 or
// 1.2.3, rather than a branch name.
func (a ActionRef) IsVersion() bool {
	v := strings.TrimPrefix(a.Ref, "v")
	return v != "" && v[0] >= '0' && v[0] <= '9'
}

// withPrecision renders tag with as many components as current has, keeping
// current's "v" prefix: current "v4" and tag "4.2.1" give "v4".
func withPrecision(current, tag string) string {
	prefix := ""
	if strings.HasPrefix(current, "v") {
		prefix = "v"
	}

	want := len(strings.Split(strings.TrimPrefix(current, "v"), "."))
	parts := strings.Split(strings.TrimPrefix(tag, "v"), ".")
	if want < len(parts) {
		parts = parts[:want]
	}

	return prefix + strings.Join(parts, ".")
}
