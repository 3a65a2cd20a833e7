package validator

import "fmt"

// Kind classifies a schema violation
type Kind string

// Violation kinds
const (
	KindMissingField  Kind = "missing-field"
	KindEmptyField    Kind = "empty-field"
	KindDuplicateID   Kind = "duplicate-id"
	KindBadPattern    Kind = "bad-pattern"
	KindUnexpectedRev Kind = "unexpected-rev"
	KindUnknownStage  Kind = "unknown-stage"
)

// Violation describes one schema violation found in a manifest.
// HookIndex is -1 for repo-level violations.
type Violation struct {
	RepoIndex int    `json:"repo_index"`
	HookIndex int    `json:"hook_index"`
	Field     string `json:"field"`
	Kind      Kind   `json:"kind"`
	Message   string `json:"message"`
	Line      int    `json:"line,omitempty"`
}

func (v Violation) String() string {
	where := fmt.Sprintf("repos[%d]", v.RepoIndex)
	if v.HookIndex >= 0 {
		where = fmt.Sprintf("%s.hooks[%d]", where, v.HookIndex)
	}
	if v.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s: %s", v.Line, where, v.Field, v.Message)
	}
	return fmt.Sprintf("%s: %s: %s", where, v.Field, v.Message)
}
