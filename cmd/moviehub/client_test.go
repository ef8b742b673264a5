package main

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientStatus_Success(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/status").
		ExpectGET().
		RespondJSON(StatusResponse{Status: "ok"}).
		Build()
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	status, err := client.Status()
	require.NoError(t, err)
	assert.Equal(t, "ok", status.Status)
}

func TestClientStatus_ServerError(t *testing.T) {
	srv := newMockServer(t).
		RespondError(http.StatusInternalServerError, "something broke").
		Build()
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.Status()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "something broke")
}

func TestClientStatus_ConnectionError(t *testing.T) {
	// Create a server and immediately close it to simulate connection error
	srv := newMockServer(t).Build()
	srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.Status()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}

func TestClientLogin(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/auth/login").
		ExpectPOST().
		RespondJSON(SessionResponse{
			Token: "tok123",
			User:  UserResponse{ID: 1, Username: "alice", Email: "alice@example.com"},
		}).
		Build()
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	session, err := client.Login("alice", "sup3rsecret")
	require.NoError(t, err)
	assert.Equal(t, "tok123", session.Token)
	assert.Equal(t, "alice", session.User.Username)
}

func TestClientLogin_Unauthorized(t *testing.T) {
	srv := newMockServer(t).
		RespondError(http.StatusUnauthorized, "Invalid username or password").
		Build()
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.Login("alice", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid username or password")
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := newMockServer(t).
		Handler(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			respondJSON(t, w, ListMoviesResponse{})
		}).
		Build()
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	client.token = "tok123"
	_, err := client.Movies("", "", "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
}

func TestClientMovies_QueryParams(t *testing.T) {
	var gotQuery string
	srv := newMockServer(t).
		ExpectPath("/api/movies").
		Handler(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			respondJSON(t, w, ListMoviesResponse{Total: 0})
		}).
		Build()
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.Movies("watched", "sci-fi", "incep", 10, 5)
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "status=watched")
	assert.Contains(t, gotQuery, "genre=sci-fi")
	assert.Contains(t, gotQuery, "search=incep")
	assert.Contains(t, gotQuery, "limit=10")
	assert.Contains(t, gotQuery, "offset=5")
}

func TestClientSearch(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/search-movie").
		ExpectGET().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "the matrix", r.URL.Query().Get("title"))
			respondJSON(t, w, SearchResponse{Results: []SearchResultResponse{
				{IMDBID: "tt0133093", Title: "The Matrix", ReleaseYear: "1999", Status: "unwatched", IsSaved: true},
			}})
		}).
		Build()
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	resp, err := client.Search("the matrix")
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.True(t, resp.Results[0].IsSaved)
}

func TestClientDetails(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/movie-details/tt0133093").
		ExpectGET().
		RespondJSON(MovieDetailResponse{
			IMDBID:      "tt0133093",
			Title:       "The Matrix",
			ReleaseYear: "1999",
			Genre:       "action",
			Rating:      "8.7",
		}).
		Build()
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	detail, err := client.Details("tt0133093")
	require.NoError(t, err)
	assert.Equal(t, "The Matrix", detail.Title)
	assert.Equal(t, "action", detail.Genre)
}

func TestClientDeleteMovie(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/movies/7").
		ExpectDELETE().
		Handler(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}).
		Build()
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	require.NoError(t, client.DeleteMovie(7))
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, saveToken("tok123"))
	assert.Equal(t, "tok123", loadToken())

	path := tokenPath()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	assert.Equal(t, "token", filepath.Base(path))

	require.NoError(t, clearToken())
	assert.Empty(t, loadToken())

	// clearing twice is fine
	require.NoError(t, clearToken())
}
