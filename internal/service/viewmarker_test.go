package service

import (
	"context"
	"testing"
	"time"
)

func TestMemoryViewMarker_FirstThenRepeat(t *testing.T) {
	m := NewMemoryViewMarker()
	ctx := context.Background()

	first, err := m.Mark(ctx, "view:v1:ip:abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first {
		t.Error("first mark should report first=true")
	}

	again, err := m.Mark(ctx, "view:v1:ip:abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again {
		t.Error("second mark of same key should report first=false")
	}
}

func TestMemoryViewMarker_KeysAreIndependent(t *testing.T) {
	m := NewMemoryViewMarker()
	ctx := context.Background()

	if first, _ := m.Mark(ctx, "view:v1:ip:abc"); !first {
		t.Error("v1 should be unseen")
	}
	if first, _ := m.Mark(ctx, "view:v2:ip:abc"); !first {
		t.Error("same viewer, different video should be unseen")
	}
	if first, _ := m.Mark(ctx, "view:v1:ip:def"); !first {
		t.Error("same video, different viewer should be unseen")
	}
}

func TestMemoryViewMarker_ExpiryAllowsRecount(t *testing.T) {
	m := NewMemoryViewMarker()
	now := time.Now()
	m.nowFunc = func() time.Time { return now }
	ctx := context.Background()

	if first, _ := m.Mark(ctx, "view:v1:ip:abc"); !first {
		t.Fatal("initial mark should be first")
	}

	// Just before expiry: still seen.
	now = now.Add(AnonViewTTL - time.Second)
	if first, _ := m.Mark(ctx, "view:v1:ip:abc"); first {
		t.Error("mark before expiry should not be first")
	}

	// Past expiry: the same client counts again. Accepted trade-off of
	// session-scoped anonymous tracking.
	now = now.Add(2 * AnonViewTTL)
	if first, _ := m.Mark(ctx, "view:v1:ip:abc"); !first {
		t.Error("mark after expiry should be first again")
	}
}

func TestAnonViewKey(t *testing.T) {
	key1 := AnonViewKey("vid-1", "203.0.113.7", "salt")
	key2 := AnonViewKey("vid-1", "203.0.113.7", "salt")
	if key1 != key2 {
		t.Error("key derivation should be deterministic")
	}

	if AnonViewKey("vid-2", "203.0.113.7", "salt") == key1 {
		t.Error("different videos should have different keys")
	}
	if AnonViewKey("vid-1", "203.0.113.8", "salt") == key1 {
		t.Error("different IPs should have different keys")
	}
	if AnonViewKey("vid-1", "203.0.113.7", "other-salt") == key1 {
		t.Error("different salts should have different keys")
	}
}

func TestAnonViewKey_DoesNotContainRawIP(t *testing.T) {
	ip := "203.0.113.7"
	key := AnonViewKey("vid-1", ip, "salt")
	for i := 0; i+len(ip) <= len(key); i++ {
		if key[i:i+len(ip)] == ip {
			t.Fatal("raw IP must not appear in the marker key")
		}
	}
}
