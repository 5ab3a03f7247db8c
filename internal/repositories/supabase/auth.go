package supabase

import (
	"context"
	"encoding/json"
)

// AuthClient wraps the GoTrue endpoints the service forwards to. Session
// handling stays client-side; this service only relays credentials.
type AuthClient struct {
	client *Client
}

func (c *Client) Auth() *AuthClient {
	return &AuthClient{client: c}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInWithPassword performs the password grant and passes the upstream
// session JSON through untouched.
func (a *AuthClient) SignInWithPassword(ctx context.Context, email, password string) (map[string]interface{}, error) {
	return a.post(ctx, "/auth/v1/token?grant_type=password", credentials{Email: email, Password: password})
}

// SignUp registers a new user with the auth provider.
func (a *AuthClient) SignUp(ctx context.Context, email, password string) (map[string]interface{}, error) {
	return a.post(ctx, "/auth/v1/signup", credentials{Email: email, Password: password})
}

func (a *AuthClient) post(ctx context.Context, path string, body interface{}) (map[string]interface{}, error) {
	resp, err := a.client.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return nil, &Error{Message: err.Error()}
	}
	if resp.IsError() {
		return nil, upstreamError(resp)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, &Error{Message: "failed to decode auth response"}
	}
	return result, nil
}
