package auth

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var ErrOAuthNotConfigured = errors.New("oauth server is not configured")

// Identity is what the identity server knows about a signed-in person.
type Identity struct {
	OpenID      string `json:"openId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	LoginMethod string `json:"loginMethod"`
}

type CodeExchanger interface {
	Exchange(ctx context.Context, code, redirectURI string) (*Identity, error)
}

type OAuthClient struct {
	baseURL    string
	clientID   string
	httpClient *http.Client
}

func NewOAuthClient(baseURL, clientID string) *OAuthClient {
	return &OAuthClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		clientID:   clientID,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Exchange trades an authorization code for an access token and resolves it
// to the caller's identity.
func (c *OAuthClient) Exchange(ctx context.Context, code, redirectURI string) (*Identity, error) {
	if c.baseURL == "" {
		return nil, ErrOAuthNotConfigured
	}

	var token struct {
		AccessToken string `json:"accessToken"`
	}
	err := c.post(ctx, "/oauth/token", "", map[string]string{
		"clientId":    c.clientID,
		"grantType":   "authorization_code",
		"code":        code,
		"redirectUri": redirectURI,
	}, &token)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("exchange code: access token missing from response")
	}

	var identity Identity
	if err := c.post(ctx, "/oauth/userinfo", token.AccessToken, map[string]string{}, &identity); err != nil {
		return nil, fmt.Errorf("get user info: %w", err)
	}
	if identity.OpenID == "" {
		return nil, fmt.Errorf("get user info: openId missing from response")
	}
	return &identity, nil
}

func (c *OAuthClient) post(ctx context.Context, path, accessToken string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		responseBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(responseBody)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// RedirectURIFromState decodes the redirect URI the login page packed into
// the state parameter. An undecodable state yields "".
func RedirectURIFromState(state string) string {
	decoded, err := base64.StdEncoding.DecodeString(state)
	if err != nil {
		decoded, err = base64.RawURLEncoding.DecodeString(state)
		if err != nil {
			return ""
		}
	}
	return string(decoded)
}
