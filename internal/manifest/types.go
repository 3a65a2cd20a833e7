package manifest

// Repo locators with special meaning: hooks under these run from the local
// checkout (or are built in) and carry no pinned revision.
const (
	LocalRepo = "local"
	MetaRepo  = "meta"
)

// Config represents a complete hook manifest
type Config struct {
	Repos          []Repo   `yaml:"repos" json:"repos"`
	DefaultStages  []string `yaml:"default_stages,omitempty" json:"default_stages,omitempty"`
	Exclude        string   `yaml:"exclude,omitempty" json:"exclude,omitempty"`
	FailFast       bool     `yaml:"fail_fast,omitempty" json:"fail_fast,omitempty"`
	MinimumVersion string   `yaml:"minimum_pre_commit_version,omitempty" json:"minimum_pre_commit_version,omitempty"`
}

// Repo represents one tool repository entry with its pinned revision
// and the hooks enabled from it
type Repo struct {
	Repo  string `yaml:"repo" json:"repo"`
	Rev   string `yaml:"rev,omitempty" json:"rev,omitempty"`
	Hooks []Hook `yaml:"hooks" json:"hooks"`

	// Line is the source line the entry starts on, for diagnostics.
	// Zero when the manifest was built programmatically.
	Line int `yaml:"-" json:"-"`
}

// Hook represents one hook enabled from a repository
type Hook struct {
	ID                     string   `yaml:"id" json:"id"`
	Name                   string   `yaml:"name,omitempty" json:"name,omitempty"`
	Args                   []string `yaml:"args,omitempty" json:"args,omitempty"`
	Exclude                string   `yaml:"exclude,omitempty" json:"exclude,omitempty"`
	Files                  string   `yaml:"files,omitempty" json:"files,omitempty"`
	Stages                 []string `yaml:"stages,omitempty" json:"stages,omitempty"`
	AdditionalDependencies []string `yaml:"additional_dependencies,omitempty" json:"additional_dependencies,omitempty"`
	AlwaysRun              bool     `yaml:"always_run,omitempty" json:"always_run,omitempty"`
	Language               string   `yaml:"language,omitempty" json:"language,omitempty"`

	Line int `yaml:"-" json:"-"`
}

// IsRemote reports whether the repo entry points at an upstream repository
// (as opposed to the local/meta sentinels)
func (r *Repo) IsRemote() bool {
	return r.Repo != LocalRepo && r.Repo != MetaRepo
}

// HookCount returns the total number of hooks across all repos
func (c *Config) HookCount() int {
	n := 0
	for _, repo := range c.Repos {
		n += len(repo.Hooks)
	}
	return n
}

// DisplayName returns the hook's name when set, falling back to its ID
func (h *Hook) DisplayName() string {
	if h.Name != "" {
		return h.Name
	}
	return h.ID
}
