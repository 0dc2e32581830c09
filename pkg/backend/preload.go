package backend

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Preload warms the backend by hitting every collection endpoint in
// parallel, the same set the site's loading screen waits on. It is
// best-effort: failures are logged and swallowed, never fatal.
func (c *Client) Preload(ctx context.Context) {
	paths := []string{"/projects", "/team", "/testimonials", "/companies", "/tech"}

	start := time.Now()
	var wg sync.WaitGroup
	for _, p := range paths {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			resp, err := c.http.R().SetContext(ctx).Get(path)
			if err != nil {
				log.WithError(err).Warnf("preload %s failed", path)
				return
			}
			if resp.IsError() {
				log.Warnf("preload %s: backend returned %d", path, resp.StatusCode())
			}
		}(p)
	}
	wg.Wait()

	log.Debugf("preload finished in %s", time.Since(start))
}
