// Package api is the HTTP client for the songkeeper server. It uses the
// bearer session strategy: the token from the login response is kept in
// memory and presented on every request via the Authorization header.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUnavailable means the server could not be reached at all, as opposed
// to the server answering with an error.
var ErrUnavailable = errors.New("server unavailable")

const requestTimeout = 10 * time.Second

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type Song struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Words    string `json:"words"`
	Category string `json:"category,omitempty"`
	Typology string `json:"typology,omitempty"`
	Tone     string `json:"tone,omitempty"`
}

type Status struct {
	IsAuthenticated bool  `json:"isAuthenticated"`
	User            *User `json:"user"`
}

// APIError is a structured rejection from the server.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Token returns the current session token, empty when logged out.
func (c *Client) Token() string {
	return c.token
}

func (c *Client) Logout() {
	c.token = ""
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Message == "" {
			return fmt.Errorf("server returned %s", resp.Status)
		}
		return apiErr
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

func (c *Client) Register(ctx context.Context, username string, password []byte) (*User, error) {
	var resp struct {
		User User `json:"user"`
	}
	err := c.do(ctx, http.MethodPost, "/api/auth/register",
		map[string]string{"username": username, "password": string(password)}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Login verifies the credentials and keeps the returned session token for
// subsequent requests.
func (c *Client) Login(ctx context.Context, username string, password []byte) (*User, error) {
	var resp struct {
		User  User   `json:"user"`
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/api/auth/login",
		map[string]string{"username": username, "password": string(password)}, &resp)
	if err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp.User, nil
}

func (c *Client) Status(ctx context.Context) (*Status, error) {
	var status Status
	if err := c.do(ctx, http.MethodGet, "/api/auth/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) ListSongs(ctx context.Context) ([]*Song, error) {
	var list []*Song
	if err := c.do(ctx, http.MethodGet, "/api/songs", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) GetSong(ctx context.Context, id string) (*Song, error) {
	var song Song
	if err := c.do(ctx, http.MethodGet, "/api/songs/"+id, nil, &song); err != nil {
		return nil, err
	}
	return &song, nil
}

func (c *Client) AddSong(ctx context.Context, song *Song) (*Song, error) {
	var created Song
	if err := c.do(ctx, http.MethodPost, "/api/songs", song, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateSong(ctx context.Context, song *Song) (*Song, error) {
	var updated Song
	if err := c.do(ctx, http.MethodPut, "/api/songs/"+song.ID, song, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteSong(ctx context.Context, id string) (*Song, error) {
	var deleted Song
	if err := c.do(ctx, http.MethodDelete, "/api/songs/"+id, nil, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}
