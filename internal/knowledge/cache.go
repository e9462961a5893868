package knowledge

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Status is the lifecycle of a Cache. Empty and Ready are terminal.
type Status string

const (
	StatusUninitialized Status = "uninitialized"
	StatusComputing     Status = "computing"
	StatusEmpty         Status = "empty"
	StatusReady         Status = "ready"
)

const flightKey = "knowledge"

// Provider supplies the knowledge context interpolated into prompts.
type Provider interface {
	Context(ctx context.Context) string
}

// Static always returns the same text. The zero value disables knowledge context.
type Static string

func (s Static) Context(context.Context) string {
	return string(s)
}

type Options struct {
	Dir        string
	Ingester   Ingester
	Summarizer Summarizer
	Poll       PollPolicy
}

// Cache computes the knowledge context once per process and memoizes it,
// including an empty result. Concurrent first callers share one computation.
type Cache struct {
	opts Options

	mu     sync.RWMutex
	status Status
	value  string

	group singleflight.Group
}

func NewCache(opts Options) *Cache {
	if opts.Poll.Interval <= 0 {
		opts.Poll.Interval = time.Second
	}
	if opts.Poll.MaxAttempts <= 0 {
		opts.Poll.MaxAttempts = 120
	}
	return &Cache{opts: opts, status: StatusUninitialized}
}

func (c *Cache) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// Context returns the cached digest, computing it on first use. A caller whose
// ctx ends while waiting gets "" without affecting the shared computation.
func (c *Cache) Context(ctx context.Context) string {
	if v, ok := c.cached(); ok {
		return v
	}

	ch := c.group.DoChan(flightKey, func() (interface{}, error) {
		if v, ok := c.cached(); ok {
			return v, nil
		}
		c.mu.Lock()
		c.status = StatusComputing
		c.mu.Unlock()

		value := c.safeCompute(context.WithoutCancel(ctx))

		c.mu.Lock()
		c.value = value
		if value == "" {
			c.status = StatusEmpty
		} else {
			c.status = StatusReady
		}
		c.mu.Unlock()
		return value, nil
	})

	select {
	case res := <-ch:
		v, _ := res.Val.(string)
		return v
	case <-ctx.Done():
		log.Printf("[knowledge] stage=wait_cancel err=%v", ctx.Err())
		return ""
	}
}

func (c *Cache) cached() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	switch c.status {
	case StatusEmpty, StatusReady:
		return c.value, true
	}
	return "", false
}

// safeCompute turns a panic inside compute into an empty context. singleflight
// re-panics on its own goroutine, out of reach of the HTTP recover middleware.
func (c *Cache) safeCompute(ctx context.Context) (value string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[knowledge] stage=compute_panic err=%v", r)
			value = ""
		}
	}()
	return c.compute(ctx)
}

func (c *Cache) compute(ctx context.Context) string {
	start := time.Now()
	src, err := Scan(c.opts.Dir)
	if err != nil {
		log.Printf("[knowledge] stage=scan_fail dir=%s err=%v", c.opts.Dir, err)
		return ""
	}
	log.Printf("[knowledge] stage=scan dir=%s notes=%d documents=%d", c.opts.Dir, len(src.Notes), len(src.Documents))
	if src.Empty() {
		return ""
	}
	if c.opts.Summarizer == nil {
		log.Printf("[knowledge] stage=skip reason=no_summarizer")
		return ""
	}

	var docs []Document
	for _, f := range src.Documents {
		if c.opts.Ingester == nil {
			log.Printf("[knowledge] stage=ingest_skip file=%s reason=no_ingester", f.Path)
			continue
		}
		doc, err := Ingest(ctx, c.opts.Ingester, f, c.opts.Poll)
		if err != nil {
			log.Printf("[knowledge] stage=ingest_fail file=%s err=%v", f.Path, err)
			continue
		}
		log.Printf("[knowledge] stage=ingest_ok file=%s uri=%s", f.Path, doc.URI)
		docs = append(docs, doc)
	}

	notes := src.NotesText()
	if notes == "" && len(docs) == 0 {
		return ""
	}

	summary, err := c.opts.Summarizer.Summarize(ctx, notes, docs)
	if err != nil {
		log.Printf("[knowledge] stage=summarize_fail err=%v", err)
		return ""
	}
	log.Printf("[knowledge] stage=summarize_ok len=%d totalMs=%d", len(summary), time.Since(start).Milliseconds())
	return summary
}
