// Package release resolves the newest published release asset of the
// configured JDK distribution from a GitHub-style release-listing API.
package release

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/glorpus-work/jdkup/pkg/errors"
	"github.com/glorpus-work/jdkup/pkg/model"
)

// Resolver queries a release-listing endpoint for the latest release and
// selects a single asset by filename pattern.
type Resolver struct {
	client    *http.Client
	apiBase   string
	userAgent string
}

// NewResolver creates a resolver against apiBase with the given timeout.
func NewResolver(apiBase string, timeout time.Duration) *Resolver {
	return &Resolver{
		client:    &http.Client{Timeout: timeout},
		apiBase:   strings.TrimRight(apiBase, "/"),
		userAgent: "jdkup/1.0",
	}
}

// ResolveLatest fetches the latest release of the given repository and returns
// the asset whose name matches pattern (case-insensitive glob). When several
// assets match, the lexicographically smallest name wins so repeated runs
// against the same listing stay deterministic. Zero matches is an error.
func (r *Resolver) ResolveLatest(ctx context.Context, repository, pattern string) (*model.Asset, error) {
	rel, err := r.fetchLatest(ctx, repository)
	if err != nil {
		return nil, err
	}

	matches := make([]model.Asset, 0, 1)
	for _, asset := range rel.Assets {
		ok, err := path.Match(strings.ToLower(pattern), strings.ToLower(asset.Name))
		if err != nil {
			return nil, errors.Wrapf(errors.ErrResolution, "invalid asset pattern %q", pattern)
		}
		if ok {
			matches = append(matches, asset)
		}
	}
	if len(matches) == 0 {
		return nil, errors.Wrapf(errors.ErrResolution,
			"no release asset matching %q in %s release %s", pattern, repository, rel.TagName)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Name < matches[j].Name })
	return &matches[0], nil
}

func (r *Resolver) fetchLatest(ctx context.Context, repository string) (*model.Release, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", r.apiBase, repository)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", r.userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrResolution, "failed to fetch release listing for %s: %v", repository, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(errors.ErrResolution,
			"unexpected status code %d from release listing for %s", resp.StatusCode, repository)
	}

	var rel model.Release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, errors.Wrapf(errors.ErrResolution, "failed to decode release listing for %s: %v", repository, err)
	}
	return &rel, nil
}
