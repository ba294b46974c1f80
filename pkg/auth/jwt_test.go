package auth

import (
	"testing"
	"time"
)

func TestMakeJWTHandlerRejectsShortSecret(t *testing.T) {
	if _, err := MakeJWTHandler([]byte("short"), time.Hour); err == nil {
		t.Fatalf("expected an error for a short secret")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	handler, err := MakeJWTHandler([]byte("0123456789abcdef0123456789abcdef"), time.Hour)
	if err != nil {
		t.Fatalf("make handler: %v", err)
	}

	token, err := handler.Generate("uuid-1", "wren@example.test", "Wren", RoleAuthor)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := handler.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	if claims.ID != "uuid-1" || claims.Email != "wren@example.test" || claims.Role != RoleAuthor {
		t.Fatalf("claims round-trip mismatch: %+v", claims)
	}
}

func TestJWTValidateRejectsExpiredToken(t *testing.T) {
	handler, err := MakeJWTHandler([]byte("0123456789abcdef0123456789abcdef"), -time.Minute)
	if err != nil {
		t.Fatalf("make handler: %v", err)
	}

	token, err := handler.Generate("uuid-1", "wren@example.test", "Wren", RoleAuthor)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := handler.Validate(token); err == nil {
		t.Fatalf("expired token must be rejected")
	}
}

func TestJWTValidateRejectsForeignSignature(t *testing.T) {
	signer, _ := MakeJWTHandler([]byte("0123456789abcdef0123456789abcdef"), time.Hour)
	verifier, _ := MakeJWTHandler([]byte("fedcba9876543210fedcba9876543210"), time.Hour)

	token, err := signer.Generate("uuid-1", "wren@example.test", "Wren", RoleAuthor)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := verifier.Validate(token); err == nil {
		t.Fatalf("token signed with a different key must be rejected")
	}
}
