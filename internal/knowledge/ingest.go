package knowledge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

type State string

const (
	StateProcessing State = "PROCESSING"
	StateActive     State = "ACTIVE"
	StateFailed     State = "FAILED"
)

var (
	ErrIngestFailed  = errors.New("document processing failed")
	ErrIngestTimeout = errors.New("document processing timed out")
)

// Document is a reference file held by the external service.
type Document struct {
	Name        string
	DisplayName string
	URI         string
	MIMEType    string
	State       State
}

// Ingester uploads a document and reports its processing state.
type Ingester interface {
	Upload(ctx context.Context, path, mimeType string) (Document, error)
	Status(ctx context.Context, name string) (Document, error)
}

// Summarizer turns notes and ingested documents into one prose digest.
type Summarizer interface {
	Summarize(ctx context.Context, notes string, docs []Document) (string, error)
}

type PollPolicy struct {
	Interval    time.Duration
	MaxAttempts int
}

// Ingest uploads path and polls at a fixed interval until the document leaves
// the processing state, giving up with ErrIngestTimeout after MaxAttempts polls.
func Ingest(ctx context.Context, ing Ingester, f DocumentFile, policy PollPolicy) (Document, error) {
	doc, err := ing.Upload(ctx, f.Path, f.MIMEType)
	if err != nil {
		return Document{}, fmt.Errorf("upload %s: %w", f.Path, err)
	}
	return waitReady(ctx, ing, doc, policy)
}

func waitReady(ctx context.Context, ing Ingester, doc Document, policy PollPolicy) (Document, error) {
	interval := policy.Interval
	if interval <= 0 {
		interval = time.Second
	}
	limiter := rate.NewLimiter(rate.Every(interval), 1)
	// first poll waits a full interval after upload
	limiter.Allow()

	for attempt := 0; doc.State == StateProcessing; attempt++ {
		if attempt >= policy.MaxAttempts {
			return doc, fmt.Errorf("%w: %s still processing after %d polls", ErrIngestTimeout, doc.Name, attempt)
		}
		if err := limiter.Wait(ctx); err != nil {
			return doc, err
		}
		next, err := ing.Status(ctx, doc.Name)
		if err != nil {
			return doc, fmt.Errorf("status %s: %w", doc.Name, err)
		}
		doc = next
	}
	if doc.State == StateFailed {
		return doc, fmt.Errorf("%w: %s", ErrIngestFailed, doc.Name)
	}
	return doc, nil
}
