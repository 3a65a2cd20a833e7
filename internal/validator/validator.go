// Package validator checks a loaded manifest against the manifest schema:
// required fields present and non-empty, hook IDs unique within their repo,
// and file patterns syntactically valid. Checks are a single linear pass;
// violations are collected rather than failing fast.
package validator

import (
	"fmt"
	"regexp"

	"github.com/domenicocinque/hooklint-go/internal/manifest"
)

// Known hook stages, matching the conventional git hook names plus the
// scheduler stages the manifest format defines.
var knownStages = map[string]bool{
	"commit":             true,
	"commit-msg":         true,
	"manual":             true,
	"merge-commit":       true,
	"post-checkout":      true,
	"post-commit":        true,
	"post-merge":         true,
	"post-rewrite":       true,
	"pre-commit":         true,
	"pre-merge-commit":   true,
	"pre-push":           true,
	"pre-rebase":         true,
	"prepare-commit-msg": true,
	"push":               true,
}

// Validator validates manifest configurations
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// Validate runs all schema checks over the manifest and returns the
// violations found, in manifest order. An empty result means the manifest
// is valid; an empty manifest is valid.
func (v *Validator) Validate(cfg *manifest.Config) []Violation {
	var out []Violation

	if cfg.Exclude != "" {
		if _, err := regexp.Compile(cfg.Exclude); err != nil {
			out = append(out, Violation{
				RepoIndex: -1,
				HookIndex: -1,
				Field:     "exclude",
				Kind:      KindBadPattern,
				Message:   fmt.Sprintf("invalid exclude pattern: %v", err),
			})
		}
	}

	for i := range cfg.Repos {
		out = append(out, v.validateRepo(i, &cfg.Repos[i])...)
	}
	return out
}

func (v *Validator) validateRepo(idx int, repo *manifest.Repo) []Violation {
	var out []Violation

	if repo.Repo == "" {
		out = append(out, Violation{
			RepoIndex: idx,
			HookIndex: -1,
			Field:     "repo",
			Kind:      KindEmptyField,
			Message:   "repo must not be empty",
			Line:      repo.Line,
		})
	}

	switch {
	case repo.IsRemote() && repo.Rev == "":
		out = append(out, Violation{
			RepoIndex: idx,
			HookIndex: -1,
			Field:     "rev",
			Kind:      KindMissingField,
			Message:   fmt.Sprintf("remote repo %q must pin a rev", repo.Repo),
			Line:      repo.Line,
		})
	case !repo.IsRemote() && repo.Rev != "":
		out = append(out, Violation{
			RepoIndex: idx,
			HookIndex: -1,
			Field:     "rev",
			Kind:      KindUnexpectedRev,
			Message:   fmt.Sprintf("%s repos take no rev", repo.Repo),
			Line:      repo.Line,
		})
	}

	if len(repo.Hooks) == 0 {
		out = append(out, Violation{
			RepoIndex: idx,
			HookIndex: -1,
			Field:     "hooks",
			Kind:      KindMissingField,
			Message:   "repo declares no hooks",
			Line:      repo.Line,
		})
	}

	seen := make(map[string]bool, len(repo.Hooks))
	for j := range repo.Hooks {
		hook := &repo.Hooks[j]
		out = append(out, v.validateHook(idx, j, hook)...)

		if hook.ID == "" {
			continue
		}
		if seen[hook.ID] {
			out = append(out, Violation{
				RepoIndex: idx,
				HookIndex: j,
				Field:     "id",
				Kind:      KindDuplicateID,
				Message:   fmt.Sprintf("duplicate hook id %q", hook.ID),
				Line:      hook.Line,
			})
		}
		seen[hook.ID] = true
	}

	return out
}

func (v *Validator) validateHook(repoIdx, hookIdx int, hook *manifest.Hook) []Violation {
	var out []Violation

	if hook.ID == "" {
		out = append(out, Violation{
			RepoIndex: repoIdx,
			HookIndex: hookIdx,
			Field:     "id",
			Kind:      KindEmptyField,
			Message:   "hook id must not be empty",
			Line:      hook.Line,
		})
	}

	for _, field := range []struct {
		name    string
		pattern string
	}{
		{"exclude", hook.Exclude},
		{"files", hook.Files},
	} {
		if field.pattern == "" {
			continue
		}
		if _, err := regexp.Compile(field.pattern); err != nil {
			out = append(out, Violation{
				RepoIndex: repoIdx,
				HookIndex: hookIdx,
				Field:     field.name,
				Kind:      KindBadPattern,
				Message:   fmt.Sprintf("invalid %s pattern: %v", field.name, err),
				Line:      hook.Line,
			})
		}
	}

	for _, stage := range hook.Stages {
		if !knownStages[stage] {
			out = append(out, Violation{
				RepoIndex: repoIdx,
				HookIndex: hookIdx,
				Field:     "stages",
				Kind:      KindUnknownStage,
				Message:   fmt.Sprintf("unknown stage %q", stage),
				Line:      hook.Line,
			})
		}
	}

	return out
}
