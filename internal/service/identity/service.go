// Package identity issues and resolves the opaque bearer tokens the API
// uses to tie requests to a session and, optionally, an authenticated
// user. Orders created without a user handle stay ownerless.
package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Session is what a resolved token grants: the cart session id and the
// authenticated user, if any.
type Session struct {
	SessionID string
	UserID    *int64
}

type Service struct {
	tokens *tokenManager
	ttl    time.Duration
}

func New() *Service {
	return &Service{
		tokens: newTokenManager(),
		ttl:    14 * 24 * time.Hour,
	}
}

// Issue mints a fresh session with a new bearer token. Passing a user id
// binds the session to that identity.
func (s *Service) Issue(ctx context.Context, userID *int64) (token string, sess Session, err error) {
	sess = Session{
		SessionID: uuid.NewString(),
		UserID:    userID,
	}
	token, err = s.tokens.Issue(sess, s.ttl)
	if err != nil {
		return "", Session{}, err
	}
	return token, sess, nil
}

// Resolve maps a bearer token back to its session.
func (s *Service) Resolve(ctx context.Context, token string) (Session, error) {
	sess, ok := s.tokens.Validate(token)
	if !ok {
		return Session{}, ErrInvalidToken
	}
	return sess, nil
}

// TTLSeconds is exposed for the token response payload.
func (s *Service) TTLSeconds() int {
	return int(s.ttl.Seconds())
}
