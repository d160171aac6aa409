package tracker

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"

	"github.com/etnz/tracker/date"
)

// HTTP plumbing shared by the market data providers.

// diskCache caches successful GET responses in the temp dir. The cache key
// includes today's date, so entries expire at midnight without bookkeeping.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return c.base.RoundTrip(req)
	}
	key := cacheKey(req)
	if resp, err := readCached(key, req); err == nil {
		return resp, nil
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	if err := store(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

func cacheKey(req *http.Request) string {
	raw := fmt.Sprintf("%s %s %s", date.Today(), req.Method, req.URL)
	return fmt.Sprintf("tracker-%x", sha1.Sum([]byte(raw)))
}

func readCached(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(os.TempDir(), key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
}

// store dumps the response to disk and leaves resp readable for the caller.
func store(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(os.TempDir(), key), content, 0o600)
}

// DailyCachedClient returns an HTTP client that caches successful responses
// on disk for the rest of the day, so repeated commands do not hammer the
// market APIs. A zero timeout means no timeout.
func DailyCachedClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &diskCache{base: http.DefaultTransport},
		Timeout:   timeout,
	}
}
