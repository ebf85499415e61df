package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"portfolio/api/internal/store"
)

func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	redisStore, err := NewRedisStore("redis://" + s.Addr())
	if err != nil {
		t.Fatalf("failed to create redis store: %v", err)
	}
	return redisStore, s
}

func testUser() store.User {
	return store.User{
		ID:          "usr_123",
		Email:       "owner@example.com",
		DisplayName: "Owner",
		Role:        "admin",
	}
}

func TestNewRedisStore(t *testing.T) {
	s := miniredis.RunT(t)
	defer s.Close()

	redisStore, err := NewRedisStore("redis://" + s.Addr())
	if err != nil {
		t.Fatalf("NewRedisStore failed: %v", err)
	}
	defer redisStore.Close()

	if err := redisStore.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}

func TestSaveAndLookupRefreshSession(t *testing.T) {
	redisStore, s := setupTestRedis(t)
	defer redisStore.Close()
	defer s.Close()

	ctx := context.Background()
	tokenHash := "test-token-hash"
	user := testUser()

	if err := redisStore.SaveRefreshSession(ctx, tokenHash, user, time.Now().Add(24*time.Hour)); err != nil {
		t.Fatalf("SaveRefreshSession failed: %v", err)
	}

	got, err := redisStore.LookupRefreshSession(ctx, tokenHash)
	if err != nil {
		t.Fatalf("LookupRefreshSession failed: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("expected user ID %s, got %s", user.ID, got.ID)
	}
	if got.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, got.Email)
	}
	if got.Role != "admin" {
		t.Errorf("expected role admin, got %s", got.Role)
	}
}

func TestLookupUnknownToken(t *testing.T) {
	redisStore, s := setupTestRedis(t)
	defer redisStore.Close()
	defer s.Close()

	if _, err := redisStore.LookupRefreshSession(context.Background(), "no-such-hash"); err == nil {
		t.Error("expected error for unknown token")
	}
}

func TestRevokeRefreshSession(t *testing.T) {
	redisStore, s := setupTestRedis(t)
	defer redisStore.Close()
	defer s.Close()

	ctx := context.Background()
	tokenHash := "revoke-me"
	if err := redisStore.SaveRefreshSession(ctx, tokenHash, testUser(), time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("SaveRefreshSession failed: %v", err)
	}

	if err := redisStore.RevokeRefreshSession(ctx, tokenHash); err != nil {
		t.Fatalf("RevokeRefreshSession failed: %v", err)
	}

	if _, err := redisStore.LookupRefreshSession(ctx, tokenHash); err == nil {
		t.Error("expected lookup to fail after revocation")
	}
}

func TestRefreshSessionExpires(t *testing.T) {
	redisStore, s := setupTestRedis(t)
	defer redisStore.Close()
	defer s.Close()

	ctx := context.Background()
	tokenHash := "short-lived"
	if err := redisStore.SaveRefreshSession(ctx, tokenHash, testUser(), time.Now().Add(time.Minute)); err != nil {
		t.Fatalf("SaveRefreshSession failed: %v", err)
	}

	s.FastForward(2 * time.Minute)

	if _, err := redisStore.LookupRefreshSession(ctx, tokenHash); err == nil {
		t.Error("expected lookup to fail after expiry")
	}
}

func TestSaveAlreadyExpiredToken(t *testing.T) {
	redisStore, s := setupTestRedis(t)
	defer redisStore.Close()
	defer s.Close()

	if err := redisStore.SaveRefreshSession(context.Background(), "expired", testUser(), time.Now().Add(-time.Minute)); err == nil {
		t.Error("expected error saving an already-expired token")
	}
}
