// ABOUTME: Session-level async actions: initial load, login, register, logout
// ABOUTME: Failures become a static user-facing message; detail goes to the debug log

package store

import (
	"context"

	"github.com/Nelson-esilva/Trade-Site/internal/client"
	"github.com/Nelson-esilva/Trade-Site/internal/debuglog"
)

// LoadInitialData primes the store at application start. Items load
// unconditionally so anonymous visitors see the catalog; the current
// user is attempted next (failure just means anonymous); offers load
// only when a token is present, gated on the token and not on the
// user call succeeding, so a stale token cannot blank the catalog.
func (s *Store) LoadInitialData(ctx context.Context) {
	s.Dispatch(setLoading{true})
	defer s.Dispatch(setLoading{false})

	s.LoadItems(ctx)
	s.LoadCurrentUser(ctx)

	if s.api.HasToken() {
		s.LoadOffers(ctx)
	}
}

// LoadCurrentUser fetches the authenticated user's profile. A failure
// is not surfaced as an error: it simply means the session is anonymous.
func (s *Store) LoadCurrentUser(ctx context.Context) {
	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		debuglog.Log("current user unavailable, staying anonymous: %v", err)
		return
	}
	s.Dispatch(setUser{User: user})
}

// Login authenticates and establishes the session. The API client
// persists the token; the store records the user.
func (s *Store) Login(ctx context.Context, username, password string) (*client.User, error) {
	s.Dispatch(setLoading{true})
	defer s.Dispatch(setLoading{false})

	resp, err := s.api.Login(ctx, username, password)
	if err != nil {
		debuglog.Error("login", err)
		s.Dispatch(setError{"Login failed. Check your username and password."})
		return nil, err
	}

	user := resp.User
	s.Dispatch(setUser{User: &user})
	s.AddNotification("Logged in successfully!", NoticeSuccess)
	return &user, nil
}

// Register creates an account. When the backend issues a token the
// session is established immediately; otherwise the user is told to
// log in.
func (s *Store) Register(ctx context.Context, input client.RegisterInput) (*client.User, error) {
	s.Dispatch(setLoading{true})
	defer s.Dispatch(setLoading{false})

	resp, err := s.api.Register(ctx, input)
	if err != nil {
		debuglog.Error("register", err)
		s.Dispatch(setError{"Registration failed."})
		return nil, err
	}

	user := resp.User
	if resp.Token != "" {
		s.Dispatch(setUser{User: &user})
		s.AddNotification("Account created successfully!", NoticeSuccess)
	} else {
		s.AddNotification("Account created. Please log in.", NoticeInfo)
	}
	return &user, nil
}

// Logout clears the persisted token and tears down the session
func (s *Store) Logout() {
	if err := s.api.Logout(); err != nil {
		debuglog.Error("logout", err)
	}
	s.Dispatch(logout{})
	s.AddNotification("Logged out.", NoticeInfo)
}
