// Package session issues and validates the signed, expiring tokens carried by
// the identity cookie. The source kept a bare nickname in the cookie; signing
// keeps the "remember who I am" behavior without letting anyone forge it.
package session

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/ritrovo/ritrovo/internal/errdef"
	"github.com/ritrovo/ritrovo/pkg/model"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// CookieName is the cookie holding the signed session token.
const CookieName = "session"

func NewService(secretKey string, expirationSeconds int) *Service {
	return &Service{
		secretKey:         secretKey,
		expirationSeconds: expirationSeconds,
	}
}

type Service struct {
	secretKey         string
	expirationSeconds int
}

// Sign returns a signed session token for the given identity, valid for the
// configured expiration window.
func (s Service) Sign(identity model.Identity) (string, error) {
	currentTime := time.Now()
	tokenExpiration := currentTime.Add(time.Duration(s.expirationSeconds) * time.Second)

	token := jwt.New()

	err := token.Set(jwt.IssuedAtKey, currentTime.Unix())
	if err != nil {
		return "", err
	}

	err = token.Set(jwt.ExpirationKey, tokenExpiration.Unix())
	if err != nil {
		return "", err
	}

	err = token.Set(jwt.JwtIDKey, uuid.NewString())
	if err != nil {
		return "", err
	}

	err = token.Set("identity", identity)
	if err != nil {
		return "", err
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, []byte(s.secretKey)))
	if err != nil {
		return "", err
	}

	return string(signed), nil
}

// Parse validates the signature and expiry of a session token and returns the
// identity it carries.
func (s Service) Parse(tokenString string) (model.Identity, error) {
	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(jwa.HS256, []byte(s.secretKey)),
	)
	if err != nil {
		return model.Identity{}, errdef.NewUnauthorized("session not valid: %v", err)
	}

	identityData, ok := token.Get("identity")
	if !ok {
		return model.Identity{}, errors.New("identity not found in claims")
	}

	bytes, err := json.Marshal(identityData)
	if err != nil {
		return model.Identity{}, err
	}

	var identity model.Identity
	err = json.Unmarshal(bytes, &identity)
	return identity, err
}

// MaxAge is the cookie lifetime in seconds, matching the token expiry.
func (s Service) MaxAge() int {
	return s.expirationSeconds
}
