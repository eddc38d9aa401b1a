package dashboard

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// diskCache implements a disk cache for HTTP responses. Entries expire at the
// end of the ttl window they were fetched in.
type diskCache struct {
	base   http.RoundTripper
	dir    string
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// the key embeds the current ttl window, so an entry is never read after its window.
	window := c.now().Truncate(c.ttl).Unix()
	key := fmt.Sprintf("%d %s %s", window, req.Method, req.URL.String())
	key = fmt.Sprintf("dash-%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		c.logger.Debug("quote cache hit", zap.String("url", req.URL.String()))
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	c.logger.Info("quote fetched",
		zap.String("method", resp.Request.Method),
		zap.String("host", resp.Request.URL.Host),
		zap.String("path", resp.Request.URL.Path),
		zap.String("status", resp.Status))
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		c.logger.Warn("quote cache write failed (ignored)", zap.Error(err))
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	content, err := os.ReadFile(filepath.Join(c.dir, key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.dir, key), content, 0o644)
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
