package authpw

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio/api/internal/store"
)

// mockUserStore is a mock implementation of UserStore for testing
type mockUserStore struct {
	users      map[string]store.User
	emailIndex map[string]string // email -> userID
	resets     map[string]struct {
		userID    string
		expiresAt time.Time
		used      bool
	}
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{
		users:      make(map[string]store.User),
		emailIndex: make(map[string]string),
		resets: make(map[string]struct {
			userID    string
			expiresAt time.Time
			used      bool
		}),
	}
}

func (m *mockUserStore) GetUserByEmail(ctx context.Context, email string) (store.User, error) {
	if userID, ok := m.emailIndex[email]; ok {
		return m.users[userID], nil
	}
	return store.User{}, errors.New("user not found")
}

func (m *mockUserStore) GetUserByID(ctx context.Context, id string) (store.User, error) {
	if user, ok := m.users[id]; ok {
		return user, nil
	}
	return store.User{}, errors.New("user not found")
}

func (m *mockUserStore) CreateUser(ctx context.Context, user store.User) error {
	m.users[user.ID] = user
	m.emailIndex[user.Email] = user.ID
	return nil
}

func (m *mockUserStore) CountUsers(ctx context.Context) (int, error) {
	return len(m.users), nil
}

func (m *mockUserStore) UpdateUserPassword(ctx context.Context, userID, passwordHash string) error {
	if user, ok := m.users[userID]; ok {
		user.PasswordHash = passwordHash
		m.users[userID] = user
		return nil
	}
	return errors.New("user not found")
}

func (m *mockUserStore) CreatePasswordReset(ctx context.Context, userID, token string, expiresAt time.Time) error {
	m.resets[token] = struct {
		userID    string
		expiresAt time.Time
		used      bool
	}{userID: userID, expiresAt: expiresAt, used: false}
	return nil
}

func (m *mockUserStore) GetPasswordReset(ctx context.Context, token string) (string, error) {
	if reset, ok := m.resets[token]; ok && !reset.used && time.Now().Before(reset.expiresAt) {
		return reset.userID, nil
	}
	return "", errors.New("invalid or expired token")
}

func (m *mockUserStore) MarkPasswordResetUsed(ctx context.Context, token string) error {
	if reset, ok := m.resets[token]; ok {
		reset.used = true
		m.resets[token] = reset
	}
	return nil
}

func TestEnsureOwner(t *testing.T) {
	ctx := context.Background()

	t.Run("creates admin on empty table", func(t *testing.T) {
		mockStore := newMockUserStore()
		svc := NewService(mockStore)

		err := svc.EnsureOwner(ctx, OwnerSeed{
			Email:       "owner@example.com",
			Password:    "password123",
			DisplayName: "Owner",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		user, err := mockStore.GetUserByEmail(ctx, "owner@example.com")
		if err != nil {
			t.Fatal("expected owner to be created")
		}
		if user.Role != "admin" {
			t.Errorf("expected admin role, got %s", user.Role)
		}
	})

	t.Run("no-op when users exist", func(t *testing.T) {
		mockStore := newMockUserStore()
		mockStore.CreateUser(ctx, store.User{ID: "u1", Email: "existing@example.com"})
		svc := NewService(mockStore)

		err := svc.EnsureOwner(ctx, OwnerSeed{
			Email:    "owner@example.com",
			Password: "password123",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := mockStore.GetUserByEmail(ctx, "owner@example.com"); err == nil {
			t.Error("expected no owner to be created")
		}
	})

	t.Run("no-op without seed credentials", func(t *testing.T) {
		mockStore := newMockUserStore()
		svc := NewService(mockStore)

		if err := svc.EnsureOwner(ctx, OwnerSeed{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(mockStore.users) != 0 {
			t.Error("expected no user to be created")
		}
	})

	t.Run("seeded owner can sign in", func(t *testing.T) {
		mockStore := newMockUserStore()
		svc := NewService(mockStore)

		svc.EnsureOwner(ctx, OwnerSeed{
			Email:    "owner@example.com",
			Password: "password123",
		})

		user, err := svc.SignIn(ctx, SignInRequest{
			Email:    "owner@example.com",
			Password: "password123",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !user.IsAdmin() {
			t.Error("expected seeded owner to be admin")
		}
	})
}

func TestSignIn(t *testing.T) {
	ctx := context.Background()
	mockStore := newMockUserStore()
	svc := NewService(mockStore)

	svc.EnsureOwner(ctx, OwnerSeed{
		Email:       "test@example.com",
		Password:    "password123",
		DisplayName: "Test User",
	})

	t.Run("successful sign in", func(t *testing.T) {
		user, err := svc.SignIn(ctx, SignInRequest{
			Email:    "test@example.com",
			Password: "password123",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Email != "test@example.com" {
			t.Errorf("expected email test@example.com, got %s", user.Email)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.SignIn(ctx, SignInRequest{
			Email:    "test@example.com",
			Password: "wrongpassword",
		})
		if err == nil {
			t.Error("expected error for wrong password")
		}
	})

	t.Run("non-existent user", func(t *testing.T) {
		_, err := svc.SignIn(ctx, SignInRequest{
			Email:    "nonexistent@example.com",
			Password: "password123",
		})
		if err == nil {
			t.Error("expected error for non-existent user")
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.SignIn(ctx, SignInRequest{})
		if err == nil {
			t.Error("expected error for missing fields")
		}
	})
}

func TestPasswordReset(t *testing.T) {
	ctx := context.Background()
	mockStore := newMockUserStore()
	svc := NewService(mockStore)

	svc.EnsureOwner(ctx, OwnerSeed{
		Email:       "test@example.com",
		Password:    "password123",
		DisplayName: "Test User",
	})

	t.Run("request reset for existing user", func(t *testing.T) {
		token, user, err := svc.RequestPasswordReset(ctx, "test@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token == "" {
			t.Error("expected token to be generated")
		}
		if user.Email != "test@example.com" {
			t.Errorf("expected user to be returned, got %q", user.Email)
		}
	})

	t.Run("request reset for non-existent user - no error", func(t *testing.T) {
		token, _, err := svc.RequestPasswordReset(ctx, "nonexistent@example.com")
		if err != nil {
			t.Errorf("expected no error for non-existent user, got: %v", err)
		}
		if token != "" {
			t.Error("expected empty token for non-existent user")
		}
	})

	t.Run("reset password with valid token", func(t *testing.T) {
		token, _, _ := svc.RequestPasswordReset(ctx, "test@example.com")

		err := svc.ResetPassword(ctx, ResetPasswordRequest{
			Token:       token,
			NewPassword: "newpassword123",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Verify old password doesn't work
		_, err = svc.SignIn(ctx, SignInRequest{
			Email:    "test@example.com",
			Password: "password123",
		})
		if err == nil {
			t.Error("expected old password to not work")
		}

		// Verify new password works
		_, err = svc.SignIn(ctx, SignInRequest{
			Email:    "test@example.com",
			Password: "newpassword123",
		})
		if err != nil {
			t.Errorf("expected new password to work: %v", err)
		}
	})

	t.Run("reset token is single use", func(t *testing.T) {
		token, _, _ := svc.RequestPasswordReset(ctx, "test@example.com")

		if err := svc.ResetPassword(ctx, ResetPasswordRequest{Token: token, NewPassword: "another-pass-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.ResetPassword(ctx, ResetPasswordRequest{Token: token, NewPassword: "another-pass-2"}); err == nil {
			t.Error("expected error reusing a consumed token")
		}
	})

	t.Run("reset with invalid token", func(t *testing.T) {
		err := svc.ResetPassword(ctx, ResetPasswordRequest{
			Token:       "invalid-token",
			NewPassword: "newpassword123",
		})
		if err == nil {
			t.Error("expected error for invalid token")
		}
	})

	t.Run("reset with short password", func(t *testing.T) {
		err := svc.ResetPassword(ctx, ResetPasswordRequest{
			Token:       "some-token",
			NewPassword: "short",
		})
		if err == nil {
			t.Error("expected error for short password")
		}
	})
}
