package auth

import (
	"testing"
	"time"
)

const secret = "test-secret"

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("testpass123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "testpass123" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword(hash, "testpass123") {
		t.Error("expected password to match")
	}
	if CheckPassword(hash, "wrongpassword") {
		t.Error("expected wrong password to fail")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tok, err := MakeToken("sess-1", 42, secret, time.Hour)
	if err != nil {
		t.Fatalf("make token: %v", err)
	}
	claims, err := ParseToken(tok, secret)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.SessionID != "sess-1" {
		t.Errorf("sid mismatch: %s", claims.SessionID)
	}
	uid, err := claims.UserID()
	if err != nil || uid != 42 {
		t.Errorf("uid: got %d, %v", uid, err)
	}
	diff := time.Until(claims.ExpiresAt.Time)
	if diff < 59*time.Minute || diff > 61*time.Minute {
		t.Errorf("expected ~1h expiry, got %v", diff)
	}
}

func TestTokenExpired(t *testing.T) {
	tok, _ := MakeToken("sess-1", 1, secret, -time.Minute)
	if _, err := ParseToken(tok, secret); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestAlgorithmConfusion(t *testing.T) {
	tok, _ := MakeToken("sid", 1, secret, time.Hour)
	if _, err := ParseToken(tok, secret); err != nil {
		t.Fatalf("valid token failed: %v", err)
	}

	// wrong secret fails
	if _, err := ParseToken(tok, "wrong-secret"); err == nil {
		t.Fatal("expected error for wrong secret")
	}

	// garbage token fails
	if _, err := ParseToken("not.a.token", secret); err == nil {
		t.Fatal("expected error for garbage token")
	}

	// unsigned token fails
	none := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzaWQiOiJ4Iiwic3ViIjoiMSJ9."
	if _, err := ParseToken(none, secret); err == nil {
		t.Fatal("expected error for alg none")
	}
}
