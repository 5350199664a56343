// Package assets manages the vis-network front-end bundle that generated
// pages depend on.
//
// The bundle version is pinned; remote pages reference the CDN directly,
// while local and inline pages need the files on disk or embedded in the
// page. [Fetcher] downloads the pinned files once, verifies them against
// the hash recorded on first download, and serves later requests from the
// cache.
package assets

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/visnet/pkg/cache"
	"github.com/matzehuels/visnet/pkg/errors"
	"github.com/matzehuels/visnet/pkg/httputil"
)

// Version is the pinned vis-network release.
const Version = "9.1.2"

// CDN locations of the pinned bundle.
const (
	ScriptURL = "https://cdnjs.cloudflare.com/ajax/libs/vis-network/" + Version + "/standalone/umd/vis-network.min.js"
	StyleURL  = "https://cdnjs.cloudflare.com/ajax/libs/vis-network/" + Version + "/dist/dist/vis-network.min.css"
)

// Local filenames used when assets are written next to generated pages.
const (
	ScriptFile = "vis-network.min.js"
	StyleFile  = "vis-network.min.css"
	LocalDir   = "lib"
)

// Asset identifies one downloadable file of the bundle.
type Asset struct {
	URL  string
	Name string
}

// Manifest lists the files that make up the bundle.
func Manifest() []Asset {
	return []Asset{
		{URL: ScriptURL, Name: ScriptFile},
		{URL: StyleURL, Name: StyleFile},
	}
}

// Bundle holds the bundle contents in memory, for inlining into a page.
type Bundle struct {
	Script []byte
	Style  []byte
}

// Fetcher downloads bundle files with caching and integrity checking.
type Fetcher struct {
	cache  cache.Cache
	client *http.Client
	ttl    time.Duration
}

// NewFetcher returns a Fetcher backed by c. A nil cache disables caching;
// a nil client uses [httputil.DefaultClient].
func NewFetcher(c cache.Cache, client *http.Client) *Fetcher {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Fetcher{cache: c, client: client}
}

// Fetch returns the contents of url, preferring the cache. On a cache
// miss it downloads with retry, checks the payload against the hash
// recorded when the URL was first seen, and stores both. A payload whose
// hash differs from the recorded one fails with ErrCodeHashMismatch.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if data, ok, err := f.cache.Get(ctx, url); err == nil && ok {
		return data, nil
	}

	var data []byte
	err := httputil.RetryWithBackoff(ctx, func() error {
		var err error
		data, err = httputil.Get(ctx, f.client, url)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "download %s", url)
	}

	sum := cache.Hash(data)
	hashKey := "sha256:" + url
	recorded, ok, err := f.cache.Get(ctx, hashKey)
	if err != nil {
		// A backend failure must not reset the recorded baseline.
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read recorded hash for %s", url)
	}
	if ok {
		if string(recorded) != sum {
			return nil, errors.New(errors.ErrCodeHashMismatch,
				"%s: payload hash %s does not match recorded %s", url, sum, recorded)
		}
	} else {
		// First download of this URL: record the hash for later checks.
		if err := f.cache.Set(ctx, hashKey, []byte(sum), 0); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "record hash for %s", url)
		}
	}

	if err := f.cache.Set(ctx, url, data, f.ttl); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "cache %s", url)
	}
	return data, nil
}

// FetchBundle downloads the whole bundle.
func (f *Fetcher) FetchBundle(ctx context.Context) (*Bundle, error) {
	script, err := f.Fetch(ctx, ScriptURL)
	if err != nil {
		return nil, err
	}
	style, err := f.Fetch(ctx, StyleURL)
	if err != nil {
		return nil, err
	}
	return &Bundle{Script: script, Style: style}, nil
}

// EnsureLocal places the bundle files under dir/lib, creating the
// directory as needed. Files already present are left alone. It returns
// the directory holding the files.
func (f *Fetcher) EnsureLocal(ctx context.Context, dir string) (string, error) {
	libDir := filepath.Join(dir, LocalDir)
	if err := os.MkdirAll(libDir, 0o755); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "create asset directory %s", libDir)
	}

	for _, a := range Manifest() {
		path := filepath.Join(libDir, a.Name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		data, err := f.Fetch(ctx, a.URL)
		if err != nil {
			return "", err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return "", errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
		}
	}
	return libDir, nil
}
