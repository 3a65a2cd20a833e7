package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFilename is the conventional manifest filename
const DefaultFilename = ".pre-commit-config.yaml"

// Loader loads hook manifest files
type Loader struct{}

// NewLoader creates a new manifest loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses a manifest file from the given path
func (l *Loader) Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	return l.LoadFromBytes(data, filepath.Ext(path))
}

// LoadFromBytes parses a manifest from raw bytes. The extension selects
// the decoder; empty extension defaults to YAML.
func (l *Loader) LoadFromBytes(data []byte, ext string) (*Config, error) {
	switch strings.ToLower(ext) {
	case "", ".yaml", ".yml":
		return l.loadYAML(data)
	case ".json":
		return l.loadJSON(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, ext)
	}
}

func (l *Loader) loadYAML(data []byte) (*Config, error) {
	// Decode through the node tree so source lines survive into the
	// typed manifest for diagnostics.
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, wrapYAMLError(err)
	}

	// An empty document (no entries) is a valid manifest.
	if root.Kind == 0 {
		return &Config{}, nil
	}

	var cfg Config
	if err := root.Decode(&cfg); err != nil {
		return nil, wrapYAMLError(err)
	}

	annotateLines(&root, &cfg)
	return &cfg, nil
}

func (l *Loader) loadJSON(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		var syn *json.SyntaxError
		if errors.As(err, &syn) {
			return nil, &ParseError{
				Line: lineAtOffset(data, syn.Offset),
				Err:  err,
			}
		}
		return nil, &ParseError{Err: err}
	}
	return &cfg, nil
}

// Marshal serializes the manifest back to YAML. Loading the result yields
// a semantically equivalent manifest (same repos, same order).
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// yamlLineRe matches the position yaml.v3 embeds in its error strings.
var yamlLineRe = regexp.MustCompile(`line (\d+)`)

func wrapYAMLError(err error) error {
	pe := &ParseError{Err: err}
	if m := yamlLineRe.FindStringSubmatch(err.Error()); m != nil {
		pe.Line, _ = strconv.Atoi(m[1])
	}
	return pe
}

func lineAtOffset(data []byte, offset int64) int {
	if offset <= 0 || offset > int64(len(data)) {
		return 0
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}

// annotateLines walks the decoded node tree and records the source line of
// each repo and hook mapping on the typed manifest.
func annotateLines(root *yaml.Node, cfg *Config) {
	doc := root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return
	}

	repos := mappingValue(doc, "repos")
	if repos == nil || repos.Kind != yaml.SequenceNode {
		return
	}

	for i, repoNode := range repos.Content {
		if i >= len(cfg.Repos) {
			break
		}
		cfg.Repos[i].Line = repoNode.Line

		hooks := mappingValue(repoNode, "hooks")
		if hooks == nil || hooks.Kind != yaml.SequenceNode {
			continue
		}
		for j, hookNode := range hooks.Content {
			if j >= len(cfg.Repos[i].Hooks) {
				break
			}
			cfg.Repos[i].Hooks[j].Line = hookNode.Line
		}
	}
}

// mappingValue returns the value node for a key in a mapping node, or nil.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
