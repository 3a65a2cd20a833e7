// Package remote verifies that the revisions a manifest pins still exist
// in their upstream repositories, the moral equivalent of git ls-remote
// for every remote repo entry.
package remote

import (
	"context"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/storage/memory"

	"github.com/domenicocinque/hooklint-go/internal/domain"
)

// Client defines the interface for listing upstream refs
type Client interface {
	ListRefs(ctx context.Context, repoURL string) ([]domain.Ref, error)
}

// GitClient implements Client using go-git
type GitClient struct{}

// NewClient creates a new GitClient
func NewClient() *GitClient {
	return &GitClient{}
}

// ListRefs lists the advertised refs of a remote repository without
// cloning it
func (c *GitClient) ListRefs(ctx context.Context, repoURL string) ([]domain.Ref, error) {
	rem := git.NewRemote(memory.NewStorage(), &gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{repoURL},
	})

	advertised, err := rem.ListContext(ctx, &git.ListOptions{})
	if err != nil {
		return nil, domain.NewLookupError(repoURL, err)
	}

	refs := make([]domain.Ref, 0, len(advertised))
	for _, ref := range advertised {
		refs = append(refs, domain.Ref{
			Name: ref.Name().String(),
			Hash: ref.Hash().String(),
		})
	}
	return refs, nil
}
