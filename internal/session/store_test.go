package session

import (
	"testing"

	"dzbooking/internal/models"
)

func TestSessionLifecycle(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if store.Authenticated() {
		t.Fatalf("fresh store should be anonymous")
	}
	if got := store.Language(); got != "ar" {
		t.Fatalf("default language = %q, want ar", got)
	}

	user := models.User{ID: "u1", Email: "amine@example.com", FullName: "Amine B"}
	if err := store.SetSession("tok-123", user); err != nil {
		t.Fatalf("SetSession: %v", err)
	}
	if err := store.SetLanguage("fr"); err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}

	// Reopen simulates app restart: state must survive.
	store2, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got := store2.Token(); got != "tok-123" {
		t.Fatalf("token not persisted, got %q", got)
	}
	u, ok := store2.User()
	if !ok || u.Email != "amine@example.com" {
		t.Fatalf("user not persisted, got %+v", u)
	}
	if got := store2.Language(); got != "fr" {
		t.Fatalf("language not persisted, got %q", got)
	}

	if err := store2.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if store2.Authenticated() || store2.Token() != "" {
		t.Fatalf("Clear left credentials behind")
	}
	if got := store2.Language(); got != "fr" {
		t.Fatalf("Clear must keep language, got %q", got)
	}

	store3, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen after clear: %v", err)
	}
	if store3.Authenticated() {
		t.Fatalf("cleared session resurrected after reopen")
	}
}
