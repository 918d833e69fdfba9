package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_SingleFlightsConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				t.Errorf("GetOrLoad: %v", err)
				return
			}
			if got, _ := v.(string); got != "value" {
				t.Errorf("got %v, want value", v)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_ReturnsCachedValue(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	for i := 0; i < 2; i++ {
		if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
			t.Fatalf("GetOrLoad %d: %v", i, err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("fetch failed")
		}
		return "ok", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err == nil {
		t.Fatal("expected first load to fail")
	}
	v, err := store.GetOrLoad(context.Background(), "k", loader)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if v != "ok" {
		t.Fatalf("got %v, want ok", v)
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(0)
	store.Set(ctx, "sheet:nphl:standings", 1)
	store.Set(ctx, "sheet:nphl:schedule", 2)
	store.Set(ctx, "sheet:wchl:standings", 3)

	store.DeletePrefix(ctx, "sheet:nphl:")

	if _, ok := store.Get(ctx, "sheet:nphl:standings"); ok {
		t.Fatal("prefixed entry survived DeletePrefix")
	}
	if _, ok := store.Get(ctx, "sheet:wchl:standings"); !ok {
		t.Fatal("unrelated entry was deleted")
	}
}

func TestStore_FlushDropsEverything(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(0)
	store.Set(ctx, "a", 1)
	store.Set(ctx, "b", 2)

	store.Flush(ctx)

	if _, ok := store.Get(ctx, "a"); ok {
		t.Fatal("entry survived Flush")
	}
	if _, ok := store.Get(ctx, "b"); ok {
		t.Fatal("entry survived Flush")
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(10 * time.Millisecond)
	store.Set(ctx, "k", "v")

	time.Sleep(25 * time.Millisecond)

	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatal("expired entry still readable")
	}
}

func TestStore_EvictionSparesRefreshedEntry(t *testing.T) {
	t.Parallel()

	// A reader that saw an expired entry defers its eviction to the write
	// lock; a Set landing in between must win.
	ctx := context.Background()
	store := NewStore(10 * time.Millisecond)
	store.Set(ctx, "k", "stale")

	time.Sleep(25 * time.Millisecond)
	observedAt := time.Now()

	store.Set(ctx, "k", "fresh")
	store.evictExpired("k", observedAt)

	v, ok := store.Get(ctx, "k")
	if !ok {
		t.Fatal("refreshed entry was evicted")
	}
	if got, _ := v.(string); got != "fresh" {
		t.Fatalf("got %v, want fresh", v)
	}
}

func TestStore_EvictionRemovesStillExpiredEntry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(10 * time.Millisecond)
	store.Set(ctx, "k", "stale")

	time.Sleep(25 * time.Millisecond)
	store.evictExpired("k", time.Now())

	store.mu.RLock()
	_, ok := store.entries["k"]
	store.mu.RUnlock()
	if ok {
		t.Fatal("expired entry survived eviction")
	}
}
