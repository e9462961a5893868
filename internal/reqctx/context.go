package reqctx

import "context"

type ctxKey string

const (
	keyRID    ctxKey = "transform_rid"
	keyUpload ctxKey = "transform_upload"
)

// WithRID stores the request correlation id for transform logs.
func WithRID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, keyRID, rid)
}

// RID returns correlation id if present.
func RID(ctx context.Context) string {
	v, _ := ctx.Value(keyRID).(string)
	return v
}

// WithUpload stores the unique upload name once the photo is persisted.
func WithUpload(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, keyUpload, name)
}

// Upload returns the upload name if present.
func Upload(ctx context.Context) string {
	v, _ := ctx.Value(keyUpload).(string)
	return v
}
