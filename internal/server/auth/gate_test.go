package auth

import (
	"testing"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
)

func TestRequireAnyRole_Match(t *testing.T) {
	t.Parallel()

	id := &Identity{Login: "alice", Roles: []string{"editor"}, Active: true}

	got, err := RequireAnyRole(id, "admin", "editor")
	if err != nil {
		t.Fatalf("RequireAnyRole error: %v", err)
	}
	if got != id {
		t.Fatal("expected the same identity back")
	}
}

func TestRequireAnyRole_OrderIrrelevant(t *testing.T) {
	t.Parallel()

	id := &Identity{Login: "alice", Roles: []string{"editor"}, Active: true}

	if _, err := RequireAnyRole(id, "editor", "admin"); err != nil {
		t.Fatalf("RequireAnyRole error: %v", err)
	}
	if _, err := RequireAnyRole(id, "admin", "editor"); err != nil {
		t.Fatalf("RequireAnyRole error: %v", err)
	}
}

func TestRequireAnyRole_NoMatch(t *testing.T) {
	t.Parallel()

	id := &Identity{Login: "alice", Roles: []string{"user"}, Active: true}

	_, err := RequireAnyRole(id, "admin", "editor")
	if err != common.ErrInsufficientRole {
		t.Fatalf("expected common.ErrInsufficientRole, got %v", err)
	}
}

func TestRequireAnyRole_NoRolesOnIdentity(t *testing.T) {
	t.Parallel()

	id := &Identity{Login: "ghost", Active: true}

	_, err := RequireAnyRole(id, "user")
	if err != common.ErrInsufficientRole {
		t.Fatalf("expected common.ErrInsufficientRole, got %v", err)
	}
}

func TestRequireAnyRole_EmptyRequirement(t *testing.T) {
	t.Parallel()

	// An empty requirement admits nobody: the intersection is empty.
	id := &Identity{Login: "alice", Roles: []string{"admin"}, Active: true}

	_, err := RequireAnyRole(id)
	if err != common.ErrInsufficientRole {
		t.Fatalf("expected common.ErrInsufficientRole, got %v", err)
	}
}
