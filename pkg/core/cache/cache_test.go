package cache

import (
	"errors"
	"testing"
	"time"
)

func TestCache_GetSet(t *testing.T) {
	c := New[int](DefaultConfig())

	if _, ok := c.Get("a"); ok {
		t.Fatal("empty cache should miss")
	}

	c.Set("a", 1)
	got, ok := c.Get("a")
	if !ok || got != 1 {
		t.Errorf("Get(a) = %v, %v, want 1, true", got, ok)
	}

	hits, misses, rate := c.Stats()
	if hits != 1 || misses != 1 || rate != 50 {
		t.Errorf("Stats() = %d, %d, %v", hits, misses, rate)
	}

	c.Delete("a")
	if c.Size() != 0 {
		t.Errorf("Size() after Delete = %d", c.Size())
	}
}

func TestCache_Expiry(t *testing.T) {
	c := New[string](Config{TTL: time.Minute})
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Set("k", "v")
	now = now.Add(2 * time.Minute)

	if _, ok := c.Get("k"); ok {
		t.Error("expired entry should miss")
	}
	if c.Size() != 0 {
		t.Error("expired entry should be removed")
	}
}

func TestCache_Eviction(t *testing.T) {
	c := New[int](Config{MaxItems: 2, TTL: time.Minute})
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Set("first", 1)
	now = now.Add(time.Second)
	c.Set("second", 2)
	now = now.Add(time.Second)
	c.Set("third", 3)

	if c.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", c.Size())
	}
	if _, ok := c.Get("first"); ok {
		t.Error("oldest entry should be evicted")
	}

	// overwriting an existing key does not evict
	c.Set("third", 4)
	if _, ok := c.Get("second"); !ok {
		t.Error("second should survive an overwrite")
	}
}

func TestCache_GetOrSet(t *testing.T) {
	c := New[int](DefaultConfig())
	calls := 0
	compute := func() (int, error) {
		calls++
		return 42, nil
	}

	for i, wantHit := range []bool{false, true} {
		val, hit, err := c.GetOrSet("k", compute)
		if err != nil || val != 42 || hit != wantHit {
			t.Errorf("call %d: GetOrSet() = %v, %v, %v", i, val, hit, err)
		}
	}
	if calls != 1 {
		t.Errorf("compute called %d times, want 1", calls)
	}

	boom := errors.New("boom")
	if _, _, err := c.GetOrSet("bad", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Errorf("GetOrSet() error = %v, want boom", err)
	}
	if _, ok := c.Get("bad"); ok {
		t.Error("failed computation should not be cached")
	}
}

func TestContentKey(t *testing.T) {
	tests := []struct {
		name         string
		path1, path2 string
		data1, data2 string
		same         bool
	}{
		{"identical", "a.py", "a.py", "x = 1", "x = 1", true},
		{"content differs", "a.py", "a.py", "x = 1", "x = 2", false},
		{"path differs", "a.py", "b.py", "x = 1", "x = 1", false},
		{"boundary", "a", "a.", ".py", "py", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k1 := ContentKey(tt.path1, []byte(tt.data1))
			k2 := ContentKey(tt.path2, []byte(tt.data2))
			if (k1 == k2) != tt.same {
				t.Errorf("keys equal = %v, want %v", k1 == k2, tt.same)
			}
		})
	}
}
