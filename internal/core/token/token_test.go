package token

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	signed, err := codec.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	id, err := codec.Verify(signed)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if id != "user-123" {
		t.Fatalf("expected user-123, got %s", id)
	}
}

func TestCodec_Expired(t *testing.T) {
	codec := NewCodec("secret", time.Minute)

	signed, err := codec.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Move the codec's clock past the TTL.
	codec.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	if _, err := codec.Verify(signed); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	issuer := NewCodec("secret-a", time.Hour)
	verifier := NewCodec("secret-b", time.Hour)

	signed, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify(signed); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
}

func TestCodec_Tampered(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	signed, err := codec.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	parts := strings.Split(signed, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape")
	}
	tampered := parts[0] + "." + parts[1] + "." + "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

	if _, err := codec.Verify(tampered); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
}

func TestCodec_Malformed(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	for _, tkn := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		if _, err := codec.Verify(tkn); !errors.Is(err, ErrMalformed) {
			t.Fatalf("token %q: expected ErrMalformed, got %v", tkn, err)
		}
	}
}
