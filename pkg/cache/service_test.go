package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type counter struct {
	Value int `json:"value"`
}

func newTestService(t *testing.T) (Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewService(client), mr
}

func TestGetMiss(t *testing.T) {
	svc, _ := newTestService(t)

	var c counter
	err := svc.Get(context.Background(), "missing", &c)
	if !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get() error = %v, want ErrCacheMiss", err)
	}
}

func TestUpdateGetRoundTrip(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	var c counter
	if err := svc.Update(ctx, "k", time.Minute, &c, func(bool) error {
		c.Value = 7
		return nil
	}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if ttl := mr.TTL("k"); ttl != time.Minute {
		t.Errorf("TTL = %v, want 1m", ttl)
	}

	var got counter
	if err := svc.Get(ctx, "k", &got); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Value != 7 {
		t.Errorf("Get() value = %d, want 7", got.Value)
	}
}

func TestUpdateSeesStoredValue(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	if err := mr.Set("k", `{"value":41}`); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var c counter
	err := svc.Update(ctx, "k", time.Minute, &c, func(found bool) error {
		if !found {
			t.Error("found = false for a stored key")
		}
		c.Value++
		return nil
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got, _ := mr.Get("k"); got != `{"value":42}` {
		t.Errorf("stored = %s, want value 42", got)
	}
}

func TestUpdateInitialisesOnMiss(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	var c counter
	err := svc.Update(ctx, "u", time.Minute, &c, func(found bool) error {
		if found {
			t.Error("found = true for a fresh key")
		}
		c = counter{Value: 1}
		return nil
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	var stored counter
	if err := svc.Get(ctx, "u", &stored); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if stored.Value != 1 {
		t.Errorf("stored value = %d, want 1", stored.Value)
	}
}

func TestUpdateAbortsOnCallbackError(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()
	boom := errors.New("boom")

	var c counter
	err := svc.Update(ctx, "u", time.Minute, &c, func(bool) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("Update() error = %v, want %v", err, boom)
	}
	if mr.Exists("u") {
		t.Error("key written despite callback error")
	}
}

func TestUpdateConcurrentIncrements(t *testing.T) {
	svc, _ := newTestService(t)
	s := svc.(*service)
	s.maxRetries = 1000
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var c counter
			err := svc.Update(ctx, "n", time.Minute, &c, func(found bool) error {
				if !found {
					c = counter{}
				}
				c.Value++
				return nil
			})
			if err != nil {
				t.Errorf("Update() error = %v", err)
			}
		}()
	}
	wg.Wait()

	var got counter
	if err := svc.Get(ctx, "n", &got); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Value != workers {
		t.Errorf("value = %d, want %d", got.Value, workers)
	}
}
