package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginKeepsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "alice", creds["username"])

		json.NewEncoder(w).Encode(map[string]any{
			"user":  map[string]string{"id": "u1", "username": "alice"},
			"token": "issued-token",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	user, err := client.Login(context.Background(), "alice", []byte("secret123"))
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "issued-token", client.Token())

	client.Logout()
	assert.Empty(t, client.Token())
}

func TestAuthorizationHeaderSent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	client.token = "abc"

	_, err := client.ListSongs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", gotAuth)
}

func TestServerErrorSurfacesAsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"code": "invalid_credentials", "message": "invalid username or password",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Login(context.Background(), "alice", []byte("wrong"))
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "invalid_credentials", apiErr.Code)
	assert.Equal(t, "invalid username or password", err.Error())
}

func TestUnreachableServer(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")
	_, err := client.Status(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestSongRoundtrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/songs":
			var song Song
			json.NewDecoder(r.Body).Decode(&song)
			song.ID = "s1"
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(song)
		case r.Method == http.MethodGet && r.URL.Path == "/api/songs/s1":
			json.NewEncoder(w).Encode(Song{ID: "s1", Title: "Amazing Grace"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	created, err := client.AddSong(context.Background(), &Song{Title: "Amazing Grace", Author: "John Newton", Words: "..."})
	require.NoError(t, err)
	assert.Equal(t, "s1", created.ID)

	got, err := client.GetSong(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "Amazing Grace", got.Title)
}
