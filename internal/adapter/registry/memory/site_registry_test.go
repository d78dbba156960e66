package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/user/captcha-relay/internal/domain"
)

func TestSiteRegistry_RegisterAndLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("Lookup After Register", func(t *testing.T) {
		reg := NewSiteRegistry(nil)

		err := reg.Register(ctx, domain.SiteRecord{SiteKey: "key-1", Domain: "example.com", SecretKey: "s1"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		record, err := reg.Lookup(ctx, "key-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if record.Domain != "example.com" || record.SecretKey != "s1" {
			t.Errorf("unexpected record: %+v", record)
		}
		if record.CreatedAt.IsZero() {
			t.Error("expected CreatedAt to be stamped")
		}
	})

	t.Run("Lookup Unknown Key", func(t *testing.T) {
		reg := NewSiteRegistry(nil)

		_, err := reg.Lookup(ctx, "nope")
		if !errors.Is(err, domain.ErrSiteNotFound) {
			t.Errorf("expected ErrSiteNotFound, got %v", err)
		}
	})

	t.Run("Last Write Wins", func(t *testing.T) {
		reg := NewSiteRegistry(nil)

		reg.Register(ctx, domain.SiteRecord{SiteKey: "a", Domain: "x.com", SecretKey: "s1"})
		reg.Register(ctx, domain.SiteRecord{SiteKey: "a", Domain: "y.com", SecretKey: "s2"})

		record, err := reg.Lookup(ctx, "a")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if record.Domain != "y.com" {
			t.Errorf("expected domain y.com, got %s", record.Domain)
		}
		if record.SecretKey != "s2" {
			t.Errorf("expected secret s2, got %s", record.SecretKey)
		}

		count, _ := reg.Count(ctx)
		if count != 1 {
			t.Errorf("expected overwrite to count as one site, got %d", count)
		}
	})
}

func TestSiteRegistry_List(t *testing.T) {
	ctx := context.Background()
	reg := NewSiteRegistry(nil)

	reg.Register(ctx, domain.SiteRecord{SiteKey: "k1", Domain: "a.com", SecretKey: "s1"})
	reg.Register(ctx, domain.SiteRecord{SiteKey: "k2", Domain: "b.com", SecretKey: "s2"})

	summaries, err := reg.List(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}

	seen := make(map[string]domain.SiteSummary)
	for _, s := range summaries {
		seen[s.SiteKey] = s
	}
	if seen["k1"].Domain != "a.com" || seen["k2"].Domain != "b.com" {
		t.Errorf("unexpected summaries: %+v", summaries)
	}
	for _, s := range summaries {
		if s.CreatedAt.IsZero() {
			t.Errorf("expected CreatedAt on summary for %s", s.SiteKey)
		}
	}
}

func TestSiteRegistry_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	reg := NewSiteRegistry(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n%10)
			reg.Register(ctx, domain.SiteRecord{SiteKey: key, Domain: "example.com", SecretKey: fmt.Sprintf("secret-%d", n)})
		}(i)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n%10)
			record, err := reg.Lookup(ctx, key)
			if err != nil {
				return // not registered yet is fine
			}
			// A record must always be a whole snapshot of one write.
			if record.SiteKey != key || record.Domain != "example.com" {
				t.Errorf("torn record: %+v", record)
			}
		}(i)
	}
	wg.Wait()

	count, _ := reg.Count(ctx)
	if count != 10 {
		t.Errorf("expected 10 distinct sites, got %d", count)
	}
}
