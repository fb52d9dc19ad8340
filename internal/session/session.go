package session

import (
	"errors"
	"strings"
)

var ErrIncomplete = errors.New("session: username and token must both be set")

// Session is the authentication state of one client installation.
// It is either fully anonymous or carries both a username and a token.
type Session struct {
	username string
	token    string
	isStaff  bool
}

func Anonymous() Session {
	return Session{}
}

// Authenticated builds a signed-in session.
func Authenticated(username, token string, isStaff bool) (Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || token == "" {
		return Session{}, ErrIncomplete
	}
	return Session{username: username, token: token, isStaff: isStaff}, nil
}

func (s Session) Username() string { return s.username }

func (s Session) Token() string { return s.token }

func (s Session) IsAuthenticated() bool { return s.username != "" && s.token != "" }

// IsStaff is always false for anonymous sessions.
func (s Session) IsStaff() bool { return s.IsAuthenticated() && s.isStaff }
