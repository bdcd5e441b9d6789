package yahoo

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"

	"github.com/mfcarvalho/simulador/date"
)

// diskCache is an http.RoundTripper that stores successful responses on
// disk, keyed by day. Daily bars do not change within a day, so re-running a
// simulation costs no second request, and the key expires by itself at
// midnight.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (*http.Response, error) {
	key := fmt.Sprintf("%s %s %s", date.Today(), req.Method, req.URL.String())
	key = fmt.Sprintf("simulador-%x", sha1.Sum([]byte(key)))

	if cached, err := c.get(key, req); err == nil {
		return cached, nil
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(os.TempDir(), key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

func (c *diskCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(os.TempDir(), key), content, 0644)
}

// newDailyCachingClient returns a client whose responses expire daily.
func newDailyCachingClient() *http.Client {
	return &http.Client{Transport: &diskCache{base: http.DefaultTransport}}
}

// jwget performs an HTTP GET and unmarshals the JSON response into data.
// Yahoo rejects the default Go user agent, so a browser-ish one is set.
func jwget(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "curl/8")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(content, data)
}
