package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default token TTL constants. These can be overridden per-service via
// configuration.
const (
	// DefaultAccessTokenTTL is the default lifetime for access tokens.
	DefaultAccessTokenTTL = 30 * time.Minute

	// DefaultRefreshTokenTTL is the default lifetime for refresh tokens.
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour

	// DefaultResetTokenTTL is the default lifetime for password-reset tokens.
	DefaultResetTokenTTL = time.Hour
)

// Kind distinguishes the three token purposes sharing one signing secret.
//
// Access tokens carry no embedded type claim; refresh and password-reset
// tokens do. Verification enforces that asymmetry: an access verification
// accepts only tokens with no type claim, and refresh/reset verifications
// require their exact tag.
type Kind int

const (
	KindAccess Kind = iota
	KindRefresh
	KindReset
)

// tag returns the value of the "type" claim embedded for this kind, or ""
// when no claim is embedded.
func (k Kind) tag() string {
	switch k {
	case KindRefresh:
		return "refresh"
	case KindReset:
		return "password_reset"
	default:
		return ""
	}
}

func (k Kind) String() string {
	switch k {
	case KindAccess:
		return "access"
	case KindRefresh:
		return "refresh"
	case KindReset:
		return "password_reset"
	default:
		return "unknown"
	}
}

var (
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrInvalidSig   = errors.New("jwtx: invalid signature")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrKindMismatch = errors.New("jwtx: token kind mismatch")
	ErrNoSubject    = errors.New("jwtx: missing subject claim")
)

// Claims is the signed payload shared by all three token kinds: a subject,
// an expiry, and an optional type tag.
type Claims struct {
	jwt.RegisteredClaims

	// Type discriminates refresh and password-reset tokens. Access tokens
	// omit it.
	Type string `json:"type,omitempty"`
}

// Codec signs and verifies the three token kinds with a single shared
// secret and a symmetric algorithm. Construct it once at startup from
// configuration and pass it by reference; it is safe for concurrent use.
type Codec struct {
	secret []byte
	method jwt.SigningMethod
}

// NewCodec returns a Codec signing with HMAC-SHA256.
func NewCodec(secret []byte) *Codec {
	return &Codec{secret: secret, method: jwt.SigningMethodHS256}
}

// Issue builds claims {sub, iat, exp, type?} for the given kind and returns
// the serialized signed token.
func (c *Codec) Issue(kind Kind, subject string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Type: kind.tag(),
	}

	return jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
}

// Verify decodes and signature-checks token and returns its subject.
//
// It fails with a sentinel error if the signature is bad, the token is
// expired, the subject is absent, or a present type claim does not match
// the expected kind. It never panics past this boundary; callers translate
// the error into an unauthorized response.
func (c *Codec) Verify(token string, kind Kind) (string, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSig
		}
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrInvalidSig
		default:
			return "", ErrMalformed
		}
	}

	if claims.Subject == "" {
		return "", ErrNoSubject
	}

	// A present type claim must match the expected kind. Absence only
	// passes for access tokens, which are issued untagged.
	if claims.Type != kind.tag() {
		return "", ErrKindMismatch
	}

	return claims.Subject, nil
}
