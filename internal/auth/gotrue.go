package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"resty.dev/v3"
)

type gotrueUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// GoTrueResolver asks the hosted auth server who owns the token
// (GET /auth/v1/user), the same lookup the edge functions did per request.
type GoTrueResolver struct {
	client *resty.Client
	apiKey string
}

func NewGoTrueResolver(baseURL, apiKey string, timeout time.Duration) *GoTrueResolver {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &GoTrueResolver{client: c, apiKey: apiKey}
}

func (r *GoTrueResolver) Resolve(ctx context.Context, token string) (Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Identity{}, ErrMissingCredential
	}

	var u gotrueUser
	res, err := r.client.R().
		SetContext(ctx).
		SetHeader("apikey", r.apiKey).
		SetAuthToken(token).
		SetResult(&u).
		Get("/auth/v1/user")
	if err != nil {
		return Identity{}, fmt.Errorf("identity lookup: %w", err)
	}

	switch code := res.StatusCode(); {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return Identity{}, fmt.Errorf("%w: auth server answered %d", ErrInvalidCredential, code)
	case res.IsError():
		return Identity{}, fmt.Errorf("identity lookup: unexpected status %d", code)
	}
	if strings.TrimSpace(u.ID) == "" {
		return Identity{}, fmt.Errorf("%w: no user in response", ErrInvalidCredential)
	}
	return Identity{UserID: u.ID, Email: u.Email, Role: u.Role}, nil
}

func (r *GoTrueResolver) Close() error {
	return r.client.Close()
}
