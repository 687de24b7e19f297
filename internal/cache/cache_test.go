package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	k1 := Key("FNOL document")
	k2 := Key("FNOL document")
	k3 := Key("different document")

	if k1 != k2 {
		t.Error("same content must produce the same key")
	}
	if k1 == k3 {
		t.Error("different content must produce different keys")
	}
	if len(k1) != len("fnolagent:v1:")+64 {
		t.Errorf("unexpected key length: %d", len(k1))
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("expected miss for absent key")
	}

	if err := c.Set("k", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, found := c.Get("k")
	if !found || string(val) != "value" {
		t.Errorf("expected hit with 'value', got %q found=%v", val, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected miss after delete")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if err := c.Set("k", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(30 * time.Millisecond)

	if _, found := c.Get("k"); found {
		t.Error("expected entry to expire")
	}
}

func TestDiskCache(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)

	key := Key("document")
	if err := c.Set(key, []byte("payload"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, found := c.Get(key)
	if !found || string(val) != "payload" {
		t.Errorf("expected hit with 'payload', got %q found=%v", val, found)
	}

	// Entries survive a fresh cache instance over the same dir
	c2 := NewDiskCache(dir, time.Hour)
	if _, found := c2.Get(key); !found {
		t.Error("expected persisted entry to survive restart")
	}

	if err := c.Delete(key); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := c.Get(key); found {
		t.Error("expected miss after delete")
	}

	// Deleting an absent entry is not an error
	if err := c.Delete("absent"); err != nil {
		t.Errorf("Delete of absent key failed: %v", err)
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)

	if err := c.Set("k", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(30 * time.Millisecond)

	if _, found := c.Get("k"); found {
		t.Error("expected entry to expire")
	}
}

func TestDiskCache_CorruptEntry(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)

	if err := c.Set("k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}

	// Clobber the entry file
	matches, _ := filepath.Glob(filepath.Join(dir, "*.cache"))
	if len(matches) != 1 {
		t.Fatalf("expected one cache file, got %v", matches)
	}
	if err := os.WriteFile(matches[0], []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, found := c.Get("k"); found {
		t.Error("expected miss for corrupt entry")
	}
}

func TestLayeredCache_Promotion(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Hour)

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}

	// A fresh layered cache over the same dir has a cold memory layer,
	// so the first hit comes from disk and gets promoted
	c2 := NewLayeredCache(time.Minute, dir, time.Hour)
	if _, found := c2.Get("k"); !found {
		t.Fatal("expected disk hit")
	}
	if _, found := c2.memory.Get("k"); !found {
		t.Error("expected disk hit to be promoted into memory")
	}
}

func TestLayeredCache_Clear(t *testing.T) {
	c := NewLayeredCache(time.Minute, t.TempDir(), time.Hour)

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected miss after clear")
	}
}
