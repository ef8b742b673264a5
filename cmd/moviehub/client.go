package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Client wraps HTTP calls to the moviehub server.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new moviehub API client, loading the saved
// session token if one exists.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		token:   loadToken(),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// tokenPath is where the session token is stored between invocations.
func tokenPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "moviehub", "token")
}

func loadToken() string {
	path := tokenPath()
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func saveToken(token string) error {
	path := tokenPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token), 0600)
}

func clearToken() error {
	path := tokenPath()
	if path == "" {
		return nil
	}
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (c *Client) do(method, path string, body any, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal error: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(resp.Body)
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			if resp.StatusCode == http.StatusUnauthorized {
				return fmt.Errorf("%s (try 'moviehub login')", apiErr.Error)
			}
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(data))
	}

	if result != nil && resp.StatusCode != http.StatusNoContent {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

func (c *Client) get(path string, result any) error {
	return c.do(http.MethodGet, path, nil, result)
}

func (c *Client) post(path string, body, result any) error {
	return c.do(http.MethodPost, path, body, result)
}

func (c *Client) put(path string, body, result any) error {
	return c.do(http.MethodPut, path, body, result)
}

func (c *Client) delete(path string) error {
	return c.do(http.MethodDelete, path, nil, nil)
}

// API response types (mirror server types)

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type MovieResponse struct {
	ID          int64    `json:"id"`
	IMDBID      *string  `json:"imdb_id"`
	Title       string   `json:"title"`
	Genre       string   `json:"genre"`
	ReleaseYear int      `json:"release_year"`
	Status      string   `json:"status"`
	Plot        *string  `json:"plot"`
	Poster      *string  `json:"poster"`
	Rating      *float64 `json:"rating"`
	WatchedDate *string  `json:"watched_date"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

type ListMoviesResponse struct {
	Movies []MovieResponse `json:"movies"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

type StatsResponse struct {
	TotalMovies      int             `json:"total_movies"`
	WatchedMovies    int             `json:"watched_movies"`
	UnwatchedMovies  int             `json:"unwatched_movies"`
	WatchedThisMonth int             `json:"watched_this_month"`
	ByGenre          map[string]int  `json:"by_genre"`
	RecentWatched    []MovieResponse `json:"recent_watched"`
}

type SearchResultResponse struct {
	IMDBID      string  `json:"imdb_id"`
	Title       string  `json:"title"`
	ReleaseYear string  `json:"release_year"`
	Poster      *string `json:"poster"`
	Rating      string  `json:"rating,omitempty"`
	Status      string  `json:"status"`
	IsSaved     bool    `json:"is_saved"`
}

type SearchResponse struct {
	Results []SearchResultResponse `json:"results"`
}

type MovieDetailResponse struct {
	IMDBID      string  `json:"imdb_id"`
	Title       string  `json:"title"`
	ReleaseYear string  `json:"release_year"`
	Genre       string  `json:"genre"`
	Plot        string  `json:"plot"`
	Poster      *string `json:"poster"`
	Rating      string  `json:"rating"`
	Status      string  `json:"status"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

// API methods

func (c *Client) Register(username, email, password, password2 string) (*SessionResponse, error) {
	req := map[string]string{
		"username":  username,
		"email":     email,
		"password":  password,
		"password2": password2,
	}
	var resp SessionResponse
	if err := c.post("/api/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Login(username, password string) (*SessionResponse, error) {
	req := map[string]string{
		"username": username,
		"password": password,
	}
	var resp SessionResponse
	if err := c.post("/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Profile() (*UserResponse, error) {
	var resp UserResponse
	if err := c.get("/api/auth/me", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Movies(status, genre, search string, limit, offset int) (*ListMoviesResponse, error) {
	params := url.Values{}
	if status != "" {
		params.Set("status", status)
	}
	if genre != "" {
		params.Set("genre", genre)
	}
	if search != "" {
		params.Set("search", search)
	}
	if limit > 0 {
		params.Set("limit", fmt.Sprint(limit))
	}
	if offset > 0 {
		params.Set("offset", fmt.Sprint(offset))
	}

	path := "/api/movies"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}
	var resp ListMoviesResponse
	if err := c.get(path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) AddMovie(req map[string]any) (*MovieResponse, error) {
	var resp MovieResponse
	if err := c.post("/api/movies", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteMovie(id int64) error {
	return c.delete(fmt.Sprintf("/api/movies/%d", id))
}

func (c *Client) SetWatched(id int64, watched bool) (*MovieResponse, error) {
	action := "watched"
	if !watched {
		action = "unwatched"
	}
	var resp MovieResponse
	if err := c.post(fmt.Sprintf("/api/movies/%d/%s", id, action), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Stats() (*StatsResponse, error) {
	var resp StatsResponse
	if err := c.get("/api/movies/stats", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Search(term string) (*SearchResponse, error) {
	var resp SearchResponse
	if err := c.get("/api/search-movie?title="+url.QueryEscape(term), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Details(imdbID string) (*MovieDetailResponse, error) {
	var resp MovieDetailResponse
	if err := c.get("/api/movie-details/"+url.PathEscape(imdbID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get("/api/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
