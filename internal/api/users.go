package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/nouran-alaa/moviehub/internal/auth"
	"github.com/nouran-alaa/moviehub/internal/watchlist"
)

const minPasswordLength = 8

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" {
		writeError(w, http.StatusBadRequest, "Username is required")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		writeError(w, http.StatusBadRequest, "A valid email address is required")
		return
	}
	if len(req.Password) < minPasswordLength {
		writeError(w, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}
	if req.Password != req.Password2 {
		writeError(w, http.StatusBadRequest, "Passwords do not match")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.log.Error("hash password", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	user := &watchlist.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.store.CreateUser(user); err != nil {
		if errors.Is(err, watchlist.ErrDuplicate) {
			writeError(w, http.StatusConflict, "Username already taken")
			return
		}
		s.log.Error("create user", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		s.log.Error("issue token", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	writeJSON(w, http.StatusCreated, loginResponse{Token: token, User: toUserResponse(user)})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.store.GetUserByUsername(strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, watchlist.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		s.log.Error("lookup user", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		s.log.Error("issue token", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: toUserResponse(user)})
}

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	claims := requestClaims(r)
	user, err := s.store.GetUser(claims.UserID)
	if err != nil {
		if errors.Is(err, watchlist.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "Account no longer exists")
			return
		}
		s.log.Error("lookup user", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	claims := requestClaims(r)
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.store.GetUser(claims.UserID)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Account no longer exists")
		return
	}

	if req.Email != nil {
		if _, err := mail.ParseAddress(*req.Email); err != nil {
			writeError(w, http.StatusBadRequest, "A valid email address is required")
			return
		}
		user.Email = strings.TrimSpace(*req.Email)
	}
	if req.Password != nil {
		if len(*req.Password) < minPasswordLength {
			writeError(w, http.StatusBadRequest, "Password must be at least 8 characters")
			return
		}
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			s.log.Error("hash password", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to update profile")
			return
		}
		user.PasswordHash = hash
	}

	if err := s.store.UpdateUser(user); err != nil {
		s.log.Error("update user", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}
