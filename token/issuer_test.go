package token

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"authsrv/kvstore"
)

var uuidV4Shape = regexp.MustCompile(
	`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`,
)

func newTestIssuer(t *testing.T) (*miniredis.Miniredis, *Issuer) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return mr, NewIssuer(kvstore.NewClient(rdb, time.Second), "", 0)
}

func TestIssueShapeAndInspect(t *testing.T) {
	_, issuer := newTestIssuer(t)
	ctx := context.Background()

	tok, err := issuer.Issue(ctx, "alice")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if len(tok) != 36 || !uuidV4Shape.MatchString(tok) {
		t.Fatalf("expected a hyphenated UUID-v4, got %q", tok)
	}

	got, live, err := issuer.Inspect(ctx, "alice")
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if !live || got != tok {
		t.Fatalf("expected live token %q, got %q (live=%v)", tok, got, live)
	}
}

func TestInspectDoesNotExtendTTL(t *testing.T) {
	mr, issuer := newTestIssuer(t)
	ctx := context.Background()

	if _, err := issuer.Issue(ctx, "alice"); err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	mr.FastForward(30 * time.Second)
	if _, _, err := issuer.Inspect(ctx, "alice"); err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if ttl := mr.TTL(DefaultKeyPrefix + "alice"); ttl != 30*time.Second {
		t.Fatalf("Inspect must not touch the TTL; remaining %v", ttl)
	}
}

func TestTokenExpires(t *testing.T) {
	mr, issuer := newTestIssuer(t)
	ctx := context.Background()

	if _, err := issuer.Issue(ctx, "alice"); err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	mr.FastForward(DefaultTTL + time.Second)

	_, live, err := issuer.Inspect(ctx, "alice")
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if live {
		t.Fatal("expected token to expire after the TTL window")
	}
}

func TestReissueReplacesToken(t *testing.T) {
	mr, issuer := newTestIssuer(t)
	ctx := context.Background()

	first, err := issuer.Issue(ctx, "alice")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	mr.FastForward(45 * time.Second)

	second, err := issuer.Issue(ctx, "alice")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if second == first {
		t.Fatal("re-issue must generate a fresh token")
	}

	got, live, err := issuer.Inspect(ctx, "alice")
	if err != nil || !live {
		t.Fatalf("Inspect failed: live=%v err=%v", live, err)
	}
	if got != second {
		t.Fatal("the most recently issued token must win")
	}
	if ttl := mr.TTL(DefaultKeyPrefix + "alice"); ttl != DefaultTTL {
		t.Fatalf("re-issue must reset the TTL, remaining %v", ttl)
	}
}
