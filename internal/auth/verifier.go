package auth

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any bearer token that fails validation.
var ErrInvalidToken = errors.New("invalid token")

// Verifier validates RS256 bearer tokens against a JWKS endpoint and
// extracts the subject claim used as the owner identity.
type Verifier struct {
	jwksURI string
	issuer  string
	client  *http.Client

	mu   sync.RWMutex
	keys map[string]*rsa.PublicKey
}

// NewVerifier creates a Verifier for the given JWKS endpoint and issuer.
// Keys are fetched lazily and refreshed whenever an unknown key id shows up.
func NewVerifier(jwksURI, issuer string) *Verifier {
	return &Verifier{
		jwksURI: jwksURI,
		issuer:  issuer,
		client:  http.DefaultClient,
		keys:    map[string]*rsa.PublicKey{},
	}
}

// Verify checks the token's signature and issuer and returns its subject.
func (v *Verifier) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, v.lookupKey,
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer(v.issuer),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: claim has no subject", ErrInvalidToken)
	}
	return claims.Subject, nil
}

func (v *Verifier) lookupKey(token *jwt.Token) (interface{}, error) {
	kid, _ := token.Header["kid"].(string)
	if kid == "" {
		return nil, errors.New("token has no key id")
	}

	v.mu.RLock()
	key, ok := v.keys[kid]
	v.mu.RUnlock()
	if ok {
		return key, nil
	}

	if err := v.refreshKeys(); err != nil {
		return nil, err
	}

	v.mu.RLock()
	key, ok = v.keys[kid]
	v.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no key for kid %q", kid)
	}
	return key, nil
}

type jwksDocument struct {
	Keys []jsonWebKey `json:"keys"`
}

type jsonWebKey struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	N   string `json:"n"`
	E   string `json:"e"`
}

func (v *Verifier) refreshKeys() error {
	res, err := v.client.Get(v.jwksURI)
	if err != nil {
		return fmt.Errorf("failed to download JWKS document: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("JWKS endpoint returned status %d", res.StatusCode)
	}

	var doc jwksDocument
	if err := json.NewDecoder(res.Body).Decode(&doc); err != nil {
		return fmt.Errorf("failed to decode JWKS document: %w", err)
	}

	keys := map[string]*rsa.PublicKey{}
	for _, k := range doc.Keys {
		if k.Kty != "RSA" || k.Kid == "" {
			continue
		}
		key, err := k.publicKey()
		if err != nil {
			continue
		}
		keys[k.Kid] = key
	}

	v.mu.Lock()
	v.keys = keys
	v.mu.Unlock()
	return nil
}

func (k jsonWebKey) publicKey() (*rsa.PublicKey, error) {
	n, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("bad modulus: %w", err)
	}
	e, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("bad exponent: %w", err)
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(n),
		E: int(new(big.Int).SetBytes(e).Int64()),
	}, nil
}
