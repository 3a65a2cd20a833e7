package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
}

func TestLoader_Load_FileNotFound(t *testing.T) {
	loader := NewLoader()

	cfg, err := loader.Load("/nonexistent/path/.pre-commit-config.yaml")

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoader_Load_ValidYAML(t *testing.T) {
	loader := NewLoader()

	yamlContent := `
repos:
  - repo: https://github.com/pre-commit/pre-commit-hooks
    rev: v4.5.0
    hooks:
      - id: end-of-file-fixer
      - id: trailing-whitespace
        exclude: ^docs/
  - repo: local
    hooks:
      - id: fmt
        name: Format sources
        args: ["--check"]
`

	tmpDir := t.TempDir()
	manifestPath := filepath.Join(tmpDir, "test.yaml")
	err := os.WriteFile(manifestPath, []byte(yamlContent), 0644)
	require.NoError(t, err)

	cfg, err := loader.Load(manifestPath)

	assert.NoError(t, err)
	require.NotNil(t, cfg)
	require.Len(t, cfg.Repos, 2)
	assert.Equal(t, "https://github.com/pre-commit/pre-commit-hooks", cfg.Repos[0].Repo)
	assert.Equal(t, "v4.5.0", cfg.Repos[0].Rev)
	require.Len(t, cfg.Repos[0].Hooks, 2)
	assert.Equal(t, "end-of-file-fixer", cfg.Repos[0].Hooks[0].ID)
	assert.Equal(t, "^docs/", cfg.Repos[0].Hooks[1].Exclude)
	assert.Equal(t, "local", cfg.Repos[1].Repo)
	assert.Empty(t, cfg.Repos[1].Rev)
	require.Len(t, cfg.Repos[1].Hooks, 1)
	assert.Equal(t, "Format sources", cfg.Repos[1].Hooks[0].Name)
	assert.Equal(t, []string{"--check"}, cfg.Repos[1].Hooks[0].Args)
}

func TestLoader_Load_AnnotatesLines(t *testing.T) {
	loader := NewLoader()

	yamlContent := `repos:
  - repo: https://github.com/org/tool
    rev: v1.0.0
    hooks:
      - id: a
      - id: b
`

	cfg, err := loader.LoadFromBytes([]byte(yamlContent), ".yaml")

	require.NoError(t, err)
	require.Len(t, cfg.Repos, 1)
	assert.Equal(t, 2, cfg.Repos[0].Line)
	require.Len(t, cfg.Repos[0].Hooks, 2)
	assert.Equal(t, 5, cfg.Repos[0].Hooks[0].Line)
	assert.Equal(t, 6, cfg.Repos[0].Hooks[1].Line)
}

func TestLoader_Load_ValidJSON(t *testing.T) {
	loader := NewLoader()

	jsonContent := `{
		"repos": [
			{"repo": "https://github.com/org/tool", "rev": "1.0", "hooks": [{"id": "a"}]}
		]
	}`

	cfg, err := loader.LoadFromBytes([]byte(jsonContent), ".json")

	assert.NoError(t, err)
	require.NotNil(t, cfg)
	require.Len(t, cfg.Repos, 1)
	assert.Equal(t, "1.0", cfg.Repos[0].Rev)
	require.Len(t, cfg.Repos[0].Hooks, 1)
	assert.Equal(t, "a", cfg.Repos[0].Hooks[0].ID)
}

func TestLoader_Load_InvalidYAML(t *testing.T) {
	loader := NewLoader()

	yamlContent := `
repos:
  - repo: https://github.com/org/tool
broken: [unclosed
`

	cfg, err := loader.LoadFromBytes([]byte(yamlContent), ".yaml")

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Greater(t, parseErr.Line, 0)
}

func TestLoader_Load_WrongShape(t *testing.T) {
	loader := NewLoader()

	// repos must be a sequence
	yamlContent := `
repos: just-a-string
`

	cfg, err := loader.LoadFromBytes([]byte(yamlContent), ".yaml")

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestLoader_Load_InvalidJSON(t *testing.T) {
	loader := NewLoader()

	cfg, err := loader.LoadFromBytes([]byte("{broken"), ".json")

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestLoader_Load_UnsupportedExt(t *testing.T) {
	loader := NewLoader()

	cfg, err := loader.LoadFromBytes([]byte("repos: []"), ".toml")

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrUnsupportedExt)
}

func TestLoader_Load_EmptyInput(t *testing.T) {
	loader := NewLoader()

	cfg, err := loader.LoadFromBytes(nil, ".yaml")

	assert.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Empty(t, cfg.Repos)
}

func TestConfig_Marshal_RoundTrip(t *testing.T) {
	loader := NewLoader()

	original := &Config{
		Exclude: `\.generated\.go$`,
		Repos: []Repo{
			{
				Repo: "https://github.com/org/tool",
				Rev:  "v2.1.0",
				Hooks: []Hook{
					{ID: "first", Args: []string{"--fix"}},
					{ID: "second", Name: "Second hook", Files: `\.go$`},
				},
			},
			{
				Repo:  "local",
				Hooks: []Hook{{ID: "fmt"}},
			},
		},
	}

	data, err := original.Marshal()
	require.NoError(t, err)

	reloaded, err := loader.LoadFromBytes(data, ".yaml")
	require.NoError(t, err)

	require.Len(t, reloaded.Repos, len(original.Repos))
	for i, repo := range original.Repos {
		assert.Equal(t, repo.Repo, reloaded.Repos[i].Repo)
		assert.Equal(t, repo.Rev, reloaded.Repos[i].Rev)
		require.Len(t, reloaded.Repos[i].Hooks, len(repo.Hooks))
		for j, hook := range repo.Hooks {
			assert.Equal(t, hook.ID, reloaded.Repos[i].Hooks[j].ID)
			assert.Equal(t, hook.Args, reloaded.Repos[i].Hooks[j].Args)
		}
	}
	assert.Equal(t, original.Exclude, reloaded.Exclude)
}
