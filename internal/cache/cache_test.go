package cache

import (
	"fmt"
	"testing"
	"time"
)

func TestGetSet(t *testing.T) {
	c := New(time.Minute, 10)

	if _, ok := c.Get("missing"); ok {
		t.Error("Expected miss for unknown key")
	}

	c.Set("k", "v")
	v, ok := c.Get("k")
	if !ok {
		t.Fatal("Expected hit after Set")
	}
	if v.(string) != "v" {
		t.Errorf("Expected %q, got %v", "v", v)
	}
}

func TestTTLExpiry(t *testing.T) {
	c := New(5*time.Minute, 10)

	base := time.Now()
	c.now = func() time.Time { return base }
	c.Set("k", 1)

	c.now = func() time.Time { return base.Add(4 * time.Minute) }
	if _, ok := c.Get("k"); !ok {
		t.Error("Expected hit before TTL")
	}

	c.now = func() time.Time { return base.Add(5 * time.Minute) }
	if _, ok := c.Get("k"); ok {
		t.Error("Expected miss after TTL")
	}
	if c.Len() != 0 {
		t.Errorf("Expected expired entry removed on read, len=%d", c.Len())
	}
}

func TestEviction(t *testing.T) {
	c := New(time.Hour, 3)

	base := time.Now()
	for i := 0; i < 3; i++ {
		i := i
		c.now = func() time.Time { return base.Add(time.Duration(i) * time.Second) }
		c.Set(fmt.Sprintf("k%d", i), i)
	}

	c.now = func() time.Time { return base.Add(10 * time.Second) }
	c.Set("k3", 3)

	if c.Len() != 3 {
		t.Errorf("Expected len 3 after eviction, got %d", c.Len())
	}
	if _, ok := c.Get("k0"); ok {
		t.Error("Expected oldest entry evicted")
	}
	if _, ok := c.Get("k3"); !ok {
		t.Error("Expected newest entry present")
	}
}

func TestSetExistingDoesNotEvict(t *testing.T) {
	c := New(time.Hour, 2)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 3)

	if _, ok := c.Get("b"); !ok {
		t.Error("Expected overwrite of existing key to leave others alone")
	}
	if v, _ := c.Get("a"); v.(int) != 3 {
		t.Errorf("Expected overwritten value 3, got %v", v)
	}
}
