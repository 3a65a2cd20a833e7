package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domenicocinque/hooklint-go/internal/manifest"
)

func validManifest() *manifest.Config {
	return &manifest.Config{
		Repos: []manifest.Repo{
			{
				Repo: "https://github.com/pre-commit/pre-commit-hooks",
				Rev:  "v4.5.0",
				Hooks: []manifest.Hook{
					{ID: "end-of-file-fixer"},
					{ID: "trailing-whitespace", Exclude: `^docs/`},
				},
			},
			{
				Repo:  "local",
				Hooks: []manifest.Hook{{ID: "fmt", Name: "Format sources"}},
			},
		},
	}
}

func TestValidator_Validate_WellFormed(t *testing.T) {
	v := New()

	violations := v.Validate(validManifest())

	assert.Empty(t, violations)
}

func TestValidator_Validate_EmptyManifest(t *testing.T) {
	v := New()

	violations := v.Validate(&manifest.Config{})

	assert.Empty(t, violations)
}

func TestValidator_Validate_MissingRev(t *testing.T) {
	v := New()
	cfg := &manifest.Config{
		Repos: []manifest.Repo{
			{Repo: "https://github.com/org/tool", Hooks: []manifest.Hook{{ID: "a"}}},
		},
	}

	violations := v.Validate(cfg)

	require.Len(t, violations, 1)
	assert.Equal(t, KindMissingField, violations[0].Kind)
	assert.Equal(t, "rev", violations[0].Field)
	assert.Equal(t, 0, violations[0].RepoIndex)
	assert.Equal(t, -1, violations[0].HookIndex)
}

func TestValidator_Validate_RevOnLocalRepo(t *testing.T) {
	v := New()
	cfg := &manifest.Config{
		Repos: []manifest.Repo{
			{Repo: "local", Rev: "v1.0", Hooks: []manifest.Hook{{ID: "a"}}},
		},
	}

	violations := v.Validate(cfg)

	require.Len(t, violations, 1)
	assert.Equal(t, KindUnexpectedRev, violations[0].Kind)
}

func TestValidator_Validate_DuplicateHookIDs(t *testing.T) {
	v := New()
	cfg := &manifest.Config{
		Repos: []manifest.Repo{
			{
				Repo:  "example/tool",
				Rev:   "1.0",
				Hooks: []manifest.Hook{{ID: "a"}, {ID: "a"}},
			},
		},
	}

	violations := v.Validate(cfg)

	require.Len(t, violations, 1)
	assert.Equal(t, KindDuplicateID, violations[0].Kind)
	assert.Equal(t, 0, violations[0].RepoIndex)
	assert.Equal(t, 1, violations[0].HookIndex)
}

func TestValidator_Validate_DuplicateAcrossReposAllowed(t *testing.T) {
	v := New()
	cfg := &manifest.Config{
		Repos: []manifest.Repo{
			{Repo: "https://github.com/org/a", Rev: "v1", Hooks: []manifest.Hook{{ID: "lint"}}},
			{Repo: "https://github.com/org/b", Rev: "v1", Hooks: []manifest.Hook{{ID: "lint"}}},
		},
	}

	violations := v.Validate(cfg)

	assert.Empty(t, violations)
}

func TestValidator_Validate_EmptyFields(t *testing.T) {
	v := New()
	cfg := &manifest.Config{
		Repos: []manifest.Repo{
			{Repo: "", Rev: "v1", Hooks: []manifest.Hook{{ID: ""}}},
		},
	}

	violations := v.Validate(cfg)

	kinds := make(map[Kind]int)
	for _, violation := range violations {
		kinds[violation.Kind]++
	}
	// one for the empty repo locator, one for the empty hook id
	assert.Equal(t, 2, kinds[KindEmptyField])
	assert.Len(t, violations, 2)
}

func TestValidator_Validate_NoHooks(t *testing.T) {
	v := New()
	cfg := &manifest.Config{
		Repos: []manifest.Repo{
			{Repo: "https://github.com/org/tool", Rev: "v1"},
		},
	}

	violations := v.Validate(cfg)

	require.Len(t, violations, 1)
	assert.Equal(t, KindMissingField, violations[0].Kind)
	assert.Equal(t, "hooks", violations[0].Field)
}

func TestValidator_Validate_BadPatterns(t *testing.T) {
	v := New()
	cfg := &manifest.Config{
		Exclude: `([unclosed`,
		Repos: []manifest.Repo{
			{
				Repo: "https://github.com/org/tool",
				Rev:  "v1",
				Hooks: []manifest.Hook{
					{ID: "a", Exclude: `([bad`, Line: 7},
					{ID: "b", Files: `*invalid`},
				},
			},
		},
	}

	violations := v.Validate(cfg)

	require.Len(t, violations, 3)
	for _, violation := range violations {
		assert.Equal(t, KindBadPattern, violation.Kind)
	}
	// hook-level violations carry the hook's source line
	assert.Equal(t, 7, violations[1].Line)
}

func TestValidator_Validate_UnknownStage(t *testing.T) {
	v := New()
	cfg := &manifest.Config{
		Repos: []manifest.Repo{
			{
				Repo: "https://github.com/org/tool",
				Rev:  "v1",
				Hooks: []manifest.Hook{
					{ID: "a", Stages: []string{"pre-commit", "launch"}},
				},
			},
		},
	}

	violations := v.Validate(cfg)

	require.Len(t, violations, 1)
	assert.Equal(t, KindUnknownStage, violations[0].Kind)
	assert.Contains(t, violations[0].Message, "launch")
}

func TestViolation_String(t *testing.T) {
	v := Violation{RepoIndex: 1, HookIndex: 2, Field: "id", Kind: KindDuplicateID, Message: "dup", Line: 9}
	assert.Equal(t, "line 9: repos[1].hooks[2]: id: dup", v.String())

	v = Violation{RepoIndex: 0, HookIndex: -1, Field: "rev", Kind: KindMissingField, Message: "missing"}
	assert.Equal(t, "repos[0]: rev: missing", v.String())
}
