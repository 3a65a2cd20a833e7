package remote

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/domenicocinque/hooklint-go/internal/cache"
	"github.com/domenicocinque/hooklint-go/internal/domain"
	"github.com/domenicocinque/hooklint-go/internal/manifest"
	"github.com/domenicocinque/hooklint-go/internal/utils"
)

// Status is the outcome of checking one remote repo's pinned rev
type Status struct {
	Repo      string `json:"repo"`
	Rev       string `json:"rev"`
	Found     bool   `json:"found"`
	LatestTag string `json:"latest_tag,omitempty"`
	FromCache bool   `json:"from_cache"`
	Err       string `json:"error,omitempty"`
}

// Stale reports whether the pin resolves but a newer tag exists
func (s *Status) Stale() bool {
	return s.Found && s.LatestTag != "" && s.LatestTag != s.Rev
}

// Checker verifies manifest rev pins against upstream refs
type Checker struct {
	client   Client
	cache    domain.Cache
	retrier  *Retrier
	cacheTTL time.Duration
	workers  int
	logger   *utils.Logger
}

// CheckerOptions contains options for creating a Checker
type CheckerOptions struct {
	Client   Client
	Cache    domain.Cache // nil disables caching
	Retrier  *Retrier
	CacheTTL time.Duration
	Workers  int
	Logger   *utils.Logger
}

// NewChecker creates a new Checker
func NewChecker(opts CheckerOptions) *Checker {
	if opts.Client == nil {
		opts.Client = NewClient()
	}
	if opts.Retrier == nil {
		opts.Retrier = NewRetrier(DefaultRetrierOptions())
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 24 * time.Hour
	}
	if opts.Logger == nil {
		opts.Logger = utils.NewDefaultLogger()
	}

	return &Checker{
		client:   opts.Client,
		cache:    opts.Cache,
		retrier:  opts.Retrier,
		cacheTTL: opts.CacheTTL,
		workers:  opts.Workers,
		logger:   opts.Logger.WithComponent("remote"),
	}
}

// Check verifies every remote repo in the manifest concurrently and
// returns one status per remote repo, in manifest order. onProgress, when
// non-nil, is invoked once per finished repo.
func (c *Checker) Check(ctx context.Context, cfg *manifest.Config, onProgress func()) []Status {
	var repos []manifest.Repo
	for _, repo := range cfg.Repos {
		if repo.IsRemote() {
			repos = append(repos, repo)
		}
	}

	statuses := make([]Status, len(repos))
	indices := make([]int, len(repos))
	for i := range repos {
		indices[i] = i
	}

	utils.ParallelForEach(ctx, indices, c.workers, func(ctx context.Context, i int) error {
		statuses[i] = c.checkRepo(ctx, &repos[i])
		if onProgress != nil {
			onProgress()
		}
		return nil
	})

	return statuses
}

func (c *Checker) checkRepo(ctx context.Context, repo *manifest.Repo) Status {
	status := Status{Repo: repo.Repo, Rev: repo.Rev}

	refs, fromCache, err := c.listRefs(ctx, repo.Repo)
	if err != nil {
		c.logger.WithRepo(repo.Repo).Debug().Err(err).Msg("ref listing failed")
		status.Err = err.Error()
		return status
	}
	status.FromCache = fromCache
	status.Found = revMatches(refs, repo.Rev)
	status.LatestTag = latestTag(refs)
	return status
}

// listRefs returns the refs for a repo, serving from the cache when a
// fresh entry exists
func (c *Checker) listRefs(ctx context.Context, repoURL string) ([]domain.Ref, bool, error) {
	key := cache.RefsKey(repoURL)

	if c.cache != nil {
		if data, err := c.cache.Get(ctx, key); err == nil {
			var entry cache.Entry
			if err := json.Unmarshal(data, &entry); err == nil && !entry.IsExpired() {
				return entry.Refs, true, nil
			}
		}
	}

	refs, err := RetryWithValue(ctx, c.retrier, func() ([]domain.Ref, error) {
		return c.client.ListRefs(ctx, repoURL)
	})
	if err != nil {
		return nil, false, err
	}

	if c.cache != nil {
		entry := cache.Entry{
			Repo:      repoURL,
			Refs:      refs,
			FetchedAt: time.Now(),
			ExpiresAt: time.Now().Add(c.cacheTTL),
		}
		if data, err := json.Marshal(entry); err == nil {
			if err := c.cache.Set(ctx, key, data, c.cacheTTL); err != nil {
				c.logger.WithRepo(repoURL).Debug().Err(err).Msg("cache write failed")
			}
		}
	}

	return refs, false, nil
}

// revMatches reports whether the pinned rev resolves against the refs:
// as a tag or branch name, or as a commit hash prefix of at least seven
// hex characters.
func revMatches(refs []domain.Ref, rev string) bool {
	if rev == "" {
		return false
	}
	for _, ref := range refs {
		if ref.Short() == rev {
			return true
		}
		if len(rev) >= 7 && strings.HasPrefix(ref.Hash, rev) {
			return true
		}
	}
	return false
}

// latestTag returns the highest version-looking tag among the refs, or
// empty when the repo has no tags
func latestTag(refs []domain.Ref) string {
	best := ""
	for _, ref := range refs {
		if !ref.IsTag() {
			continue
		}
		tag := ref.Short()
		// Peeled tag refs advertise a trailing ^{}; skip the duplicates.
		if strings.HasSuffix(tag, "^{}") {
			continue
		}
		if best == "" || compareVersions(tag, best) > 0 {
			best = tag
		}
	}
	return best
}

// compareVersions orders tags by their dotted numeric segments, falling
// back to string comparison for non-numeric segments
func compareVersions(a, b string) int {
	as := strings.Split(strings.TrimPrefix(a, "v"), ".")
	bs := strings.Split(strings.TrimPrefix(b, "v"), ".")

	for i := 0; i < len(as) && i < len(bs); i++ {
		an, aerr := strconv.Atoi(as[i])
		bn, berr := strconv.Atoi(bs[i])
		switch {
		case aerr == nil && berr == nil:
			if an != bn {
				if an < bn {
					return -1
				}
				return 1
			}
		default:
			if cmp := strings.Compare(as[i], bs[i]); cmp != 0 {
				return cmp
			}
		}
	}

	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	}
	return 0
}
