// Package manifest provides types and utilities for loading hook manifests.
// A manifest declares a set of tool repositories, each pinned to a revision,
// with an ordered list of hooks enabled from that repository.
//
// # Manifest Format
//
// Manifests follow the conventional .pre-commit-config.yaml shape:
//
//	repos:
//	  - repo: https://github.com/pre-commit/pre-commit-hooks
//	    rev: v4.5.0
//	    hooks:
//	      - id: end-of-file-fixer
//	      - id: trailing-whitespace
//	        exclude: ^docs/
//	  - repo: local
//	    hooks:
//	      - id: fmt
//	        name: Format sources
//	        args: ["--check"]
//
// # Usage
//
// Load a manifest file:
//
//	loader := manifest.NewLoader()
//	cfg, err := loader.Load(".pre-commit-config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, repo := range cfg.Repos {
//	    // Inspect each repo and its hooks
//	}
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - ErrInvalidFormat: file is not valid YAML/JSON
//   - ErrFileNotFound: manifest file does not exist
//   - ErrUnsupportedExt: unsupported file extension
//
// Parse failures additionally carry a *ParseError with the offending line
// where the underlying decoder reports one. Structural checks beyond basic
// shape (empty fields, duplicate hook IDs, bad patterns) are the job of the
// validator package, not the loader.
package manifest
