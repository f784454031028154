//go:generate mockgen -destination=mocks/download.go -package=mocks . Manager

package download

import (
	"context"
	"net/url"

	"github.com/glorpus-work/jdkup/pkg/errors"
)

// Manager defines the interface for downloading a remote archive to local
// storage. The returned path is owned by the caller, who is responsible for
// deleting the file once it has been consumed.
type Manager interface {
	// Fetch downloads the resource at item.URL into opts.Dir and returns the
	// absolute local file path.
	Fetch(ctx context.Context, item Item, opts Options) (string, error)
}

// Item represents one remote resource to download.
type Item struct {
	URL      *url.URL // source URL to download
	Filename string   // optional preferred filename; if empty, derived from the URL
}

// NewItem builds an Item from a raw URL string.
func NewItem(rawURL string) (Item, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Item{}, errors.Wrapf(errors.ErrAcquisition, "invalid download URL %q: %v", rawURL, err)
	}
	return Item{URL: u}, nil
}

// Options control the behavior of the download manager.
type Options struct {
	Dir string // destination directory; if empty, the system temp directory is used
}
