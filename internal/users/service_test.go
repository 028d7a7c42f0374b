package users

import (
	"context"
	"errors"
	"testing"
)

func TestUpsertFromAuthRequiresIdentity(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if err := svc.UpsertFromAuth(context.Background(), User{ID: "google:1"}); err == nil {
		t.Fatalf("expected error for missing email")
	}
	if err := svc.UpsertFromAuth(context.Background(), User{Email: "a@b.com"}); err == nil {
		t.Fatalf("expected error for missing id")
	}
}

func TestUpsertPreservesCreatedAt(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)
	user := User{ID: "google:1", Email: "a@b.com", FullName: "Ana Silva"}

	if err := svc.UpsertFromAuth(context.Background(), user); err != nil {
		t.Fatalf("UpsertFromAuth: %v", err)
	}
	first, err := svc.GetByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	user.FullName = "Ana Souza"
	if err := svc.UpsertFromAuth(context.Background(), user); err != nil {
		t.Fatalf("UpsertFromAuth: %v", err)
	}
	second, err := svc.GetByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	if second.FullName != "Ana Souza" {
		t.Fatalf("expected refreshed name, got %q", second.FullName)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("expected CreatedAt preserved, got %v vs %v", second.CreatedAt, first.CreatedAt)
	}
}

func TestGetByIDUnknownUser(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if _, err := svc.GetByID(context.Background(), "google:missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
