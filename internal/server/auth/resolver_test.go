package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
)

func TestResolver_Success(t *testing.T) {
	t.Parallel()

	codec := NewCodec([]byte("secret"))
	dir := newStubDirectory(t, &models.User{
		Login:  "alice",
		Roles:  []string{"user"},
		Active: true,
	})
	r := NewResolver(codec, dir)

	tok, err := codec.Issue("alice", time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	id, err := r.Resolve(context.Background(), tok)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if id.Login != "alice" || !id.HasAnyRole("user") {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestResolver_BadToken(t *testing.T) {
	t.Parallel()

	codec := NewCodec([]byte("secret"))
	r := NewResolver(codec, newStubDirectory(t))

	for _, tok := range []string{"", "not.a.jwt"} {
		if _, err := r.Resolve(context.Background(), tok); err != common.ErrInvalidToken {
			t.Fatalf("Resolve(%q): expected common.ErrInvalidToken, got %v", tok, err)
		}
	}
}

func TestResolver_ExpiredToken(t *testing.T) {
	t.Parallel()

	codec := NewCodec([]byte("secret"))
	dir := newStubDirectory(t, &models.User{Login: "alice", Active: true})
	r := NewResolver(codec, dir)

	tok, err := codec.Issue("alice", -time.Minute)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := r.Resolve(context.Background(), tok); err != common.ErrInvalidToken {
		t.Fatalf("expected common.ErrInvalidToken for expired token, got %v", err)
	}
}

func TestResolver_VanishedSubject_SameAsBadToken(t *testing.T) {
	t.Parallel()

	codec := NewCodec([]byte("secret"))
	r := NewResolver(codec, newStubDirectory(t))

	tok, err := codec.Issue("ghost", time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := r.Resolve(context.Background(), tok); err != common.ErrInvalidToken {
		t.Fatalf("expected common.ErrInvalidToken for vanished subject, got %v", err)
	}
}

func TestResolver_InactiveAccount(t *testing.T) {
	t.Parallel()

	codec := NewCodec([]byte("secret"))
	dir := newStubDirectory(t, &models.User{Login: "bob", Active: false})
	r := NewResolver(codec, dir)

	tok, err := codec.Issue("bob", time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := r.Resolve(context.Background(), tok); err != common.ErrInactiveAccount {
		t.Fatalf("expected common.ErrInactiveAccount, got %v", err)
	}
}

func TestResolver_DirectoryFailure(t *testing.T) {
	t.Parallel()

	codec := NewCodec([]byte("secret"))
	tok, err := codec.Issue("alice", time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	r := NewResolver(codec, &stubDirectory{err: errors.New("connection refused")})
	if _, err := r.Resolve(context.Background(), tok); err != common.ErrorInternal {
		t.Fatalf("expected common.ErrorInternal, got %v", err)
	}
}
