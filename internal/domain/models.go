package domain

import "strings"

// Ref is one upstream reference (tag or branch head) of a repository
type Ref struct {
	Name string `json:"name"` // full ref name, e.g. refs/tags/v4.5.0
	Hash string `json:"hash"`
}

// IsTag reports whether the ref is a tag
func (r Ref) IsTag() bool {
	return strings.HasPrefix(r.Name, "refs/tags/")
}

// IsBranch reports whether the ref is a branch head
func (r Ref) IsBranch() bool {
	return strings.HasPrefix(r.Name, "refs/heads/")
}

// Short returns the ref name without its refs/tags/ or refs/heads/ prefix
func (r Ref) Short() string {
	name := strings.TrimPrefix(r.Name, "refs/tags/")
	name = strings.TrimPrefix(name, "refs/heads/")
	return name
}
