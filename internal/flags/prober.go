// Package flags checks whether flag images can be retrieved. Terminals
// cannot draw the vector flags, so a probe only decides between the flag
// glyph and the placeholder.
package flags

import (
	"bufio"
	"bytes"
	"context"
	"net/http"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	Glyph       = "⚑"
	Placeholder = "✗"

	DefaultLimit = 4
	sniffLen     = 512
)

type Status struct {
	URL string
	OK  bool
	Err error
}

func (s Status) Glyph() string {
	if s.OK {
		return Glyph
	}
	return Placeholder
}

type Prober struct {
	Client *http.Client
	Limit  int
	Logger *zap.Logger
}

func NewProber(limit int, logger *zap.Logger) *Prober {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Prober{Client: http.DefaultClient, Limit: limit, Logger: logger}
}

// Probe fetches url and reports whether it looks like a vector image.
func (p *Prober) Probe(ctx context.Context, url string) Status {
	st := Status{URL: url}
	if url == "" {
		return st
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		st.Err = err
		return st
	}
	req.Header.Set("Accept", "image/svg+xml")

	resp, err := p.Client.Do(req)
	if err != nil {
		p.Logger.Debug("Flag probe failed", zap.String("url", url), zap.Error(err))
		st.Err = err
		return st
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		p.Logger.Debug("Flag probe status", zap.String("url", url), zap.Int("status", resp.StatusCode))
		return st
	}

	head, _ := bufio.NewReader(resp.Body).Peek(sniffLen)
	st.OK = looksLikeSVG(head)
	return st
}

func looksLikeSVG(head []byte) bool {
	head = bytes.TrimSpace(head)
	head = bytes.TrimPrefix(head, []byte("\xef\xbb\xbf"))
	return bytes.HasPrefix(head, []byte("<svg")) ||
		bytes.HasPrefix(head, []byte("<?xml")) ||
		bytes.Contains(head, []byte("<svg"))
}

// ProbeAll probes urls concurrently, at most Limit at a time.
func (p *Prober) ProbeAll(ctx context.Context, urls []string) map[string]Status {
	results := make(map[string]Status, len(urls))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, p.Limit))

	for _, url := range urls {
		mu.Lock()
		if _, seen := results[url]; seen {
			mu.Unlock()
			continue
		}
		results[url] = Status{URL: url}
		mu.Unlock()

		g.Go(func() error {
			st := p.Probe(gctx, url)
			mu.Lock()
			results[url] = st
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()
	return results
}
