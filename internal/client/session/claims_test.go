package session

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/contentdesk/internal/common"
)

// mintToken builds a signed token with the service's claim schema. The
// signing key is irrelevant to the client, which decodes without verifying.
func mintToken(t *testing.T, email, role string, ttl time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		User: UserClaim{Email: email, Role: role},
	})
	s, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}
	return s
}

func TestDecodeToken_Success(t *testing.T) {
	t.Parallel()

	tok := mintToken(t, "alice@example.com", "contributor", time.Hour)

	s, err := DecodeToken(tok, time.Now())
	if err != nil {
		t.Fatalf("DecodeToken error: %v", err)
	}
	if s.Email != "alice@example.com" {
		t.Fatalf("email mismatch: got %q", s.Email)
	}
	if s.Role != RoleContributor {
		t.Fatalf("role mismatch: got %q", s.Role)
	}
	if s.Token != tok {
		t.Fatalf("token not carried through")
	}
}

func TestDecodeToken_Expired(t *testing.T) {
	t.Parallel()

	tok := mintToken(t, "bob@example.com", "moderator", -1*time.Minute)

	_, err := DecodeToken(tok, time.Now())
	if err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
	if !errors.Is(err, common.ErrAuthExpired) {
		t.Fatalf("expected common.ErrAuthExpired, got %v", err)
	}
}

func TestDecodeToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := DecodeToken("not.a.jwt", time.Now())
	if !errors.Is(err, common.ErrAuthExpired) {
		t.Fatalf("expected common.ErrAuthExpired, got %v", err)
	}
}

func TestDecodeToken_UnknownRoleFailsClosed(t *testing.T) {
	t.Parallel()

	tok := mintToken(t, "eve@example.com", "superuser", time.Hour)

	_, err := DecodeToken(tok, time.Now())
	if !errors.Is(err, common.ErrAuthExpired) {
		t.Fatalf("expected common.ErrAuthExpired for unknown role, got %v", err)
	}
}

func TestDecodeToken_MissingExpiryFailsClosed(t *testing.T) {
	t.Parallel()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		User: UserClaim{Email: "carol@example.com", Role: "moderator"},
	})
	tok, err := token.SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	_, err = DecodeToken(tok, time.Now())
	if !errors.Is(err, common.ErrAuthExpired) {
		t.Fatalf("expected common.ErrAuthExpired for missing expiry, got %v", err)
	}
}
