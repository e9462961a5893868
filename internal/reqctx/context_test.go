package reqctx

import (
	"context"
	"testing"
)

func TestValues(t *testing.T) {
	ctx := context.Background()
	if RID(ctx) != "" || Upload(ctx) != "" {
		t.Fatal("expected empty values on bare context")
	}
	ctx = WithUpload(WithRID(ctx, "rid-1"), "abc_street.jpg")
	if got := RID(ctx); got != "rid-1" {
		t.Fatalf("RID=%q", got)
	}
	if got := Upload(ctx); got != "abc_street.jpg" {
		t.Fatalf("Upload=%q", got)
	}
}
