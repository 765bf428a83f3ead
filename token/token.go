// ABOUTME: Session token codec for the BFF's own signed tokens
// ABOUTME: Issues and verifies HS256 tokens embedding the opaque upstream credential

package token

import (
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tidwall/gjson"
)

// TTL is the lifetime of a session token. Expiry is the only
// invalidation mechanism; there is no revocation list.
const TTL = time.Hour

// ErrInvalidToken is returned by Verify for any verification failure:
// bad signature, malformed structure, expiry, or missing required claims.
// Callers must not distinguish these cases in responses.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the payload of a BFF session token. UpstreamToken is the
// credential issued by the upstream system at login; the BFF stores and
// replays it verbatim, never interpreting it.
type Claims struct {
	Particip      int    `json:"particip"`
	LastName      string `json:"nom"`
	FirstName     string `json:"prenom"`
	UpstreamToken string `json:"upstreamToken"`
	jwt.RegisteredClaims
}

// DisplayName holds advisory name hints decoded from an upstream credential.
type DisplayName struct {
	FirstName string
	LastName  string
}

// Codec signs and verifies session tokens with a single shared secret.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Issue creates a signed session token for the given participant,
// embedding the raw upstream credential and a 1-hour expiry.
func (c *Codec) Issue(particip int, name DisplayName, upstreamToken string) (string, error) {
	now := time.Now()
	claims := Claims{
		Particip:      particip,
		LastName:      name.LastName,
		FirstName:     name.FirstName,
		UpstreamToken: upstreamToken,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify parses and validates a session token. Every failure mode
// collapses to ErrInvalidToken; no issuer or audience checks are
// performed, this is an internal single-tenant trust boundary.
func (c *Codec) Verify(raw string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &Claims{},
		func(t *jwt.Token) (interface{}, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.Particip == 0 || claims.UpstreamToken == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// DecodeDisplayName extracts name hints from an upstream-issued credential
// without verifying its signature. The BFF is not the issuer of that
// credential and treats it as opaque; the decode is best-effort only and
// failure is never an error.
func DecodeDisplayName(upstreamToken string) (DisplayName, bool) {
	parts := strings.Split(upstreamToken, ".")
	if len(parts) != 3 {
		return DisplayName{}, false
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return DisplayName{}, false
	}

	if !gjson.ValidBytes(payload) {
		return DisplayName{}, false
	}

	name := DisplayName{
		LastName:  gjson.GetBytes(payload, "nom").String(),
		FirstName: gjson.GetBytes(payload, "prenom").String(),
	}
	return name, true
}
