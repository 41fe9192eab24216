package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"habitquest/internal/metrics"
	"habitquest/internal/models"
	"habitquest/internal/progression"
	"habitquest/internal/repositories"
	"habitquest/internal/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the work factor the accounts were originally hashed with.
const bcryptCost = 12

// AuthHandler manages authentication endpoints.
type AuthHandler struct {
	Repo      UserRepository
	JWTSecret string
	Secure    bool
	Logger    *zap.Logger
}

func NewAuthHandler(repo UserRepository, secret string, secure bool, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Repo: repo, JWTSecret: secret, Secure: secure, Logger: logger}
}

type signupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request payload")
		return
	}
	if req.Email == "" || req.Name == "" || req.Password == "" {
		utils.JSONError(w, http.StatusBadRequest, "missing_fields", "Email, name and password are required")
		return
	}
	if !utils.IsEmailValid(req.Email) {
		utils.JSONError(w, http.StatusBadRequest, "invalid_email", "Email address is not valid")
		return
	}
	if !utils.IsPasswordValid(req.Password) {
		utils.JSONError(w, http.StatusBadRequest, "weak_password", "Password must be at least 6 characters")
		return
	}

	if _, err := h.Repo.FindByEmail(r.Context(), req.Email); err == nil {
		utils.JSONError(w, http.StatusConflict, "email_taken", "An account with this email already exists")
		return
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		h.Logger.Error("signup: email lookup failed", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		h.Logger.Error("signup: failed to hash password", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}

	now := time.Now().UTC()
	user := &models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		XP:           0,
		Level:        progression.LevelForXP(0),
		Streak:       0,
		LastAction:   now.Format(time.RFC3339),
		JoinDate:     now.Format(time.RFC3339),
		Achievements: []string{},
		TotalPoints:  0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := h.Repo.Insert(r.Context(), user)
	if err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			utils.JSONError(w, http.StatusConflict, "email_taken", "An account with this email already exists")
			return
		}
		h.Logger.Error("signup: failed to create user", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}

	token, err := utils.GenerateToken(h.JWTSecret, created.ID.Hex())
	if err != nil {
		h.Logger.Error("signup: failed to sign token", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}
	utils.SetAuthCookie(w, token, h.Secure)
	metrics.Signups.Inc()

	utils.JSON(w, http.StatusCreated, models.UserResponse{User: created})
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request payload")
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.JSONError(w, http.StatusBadRequest, "missing_fields", "Email and password are required")
		return
	}

	user, err := h.Repo.FindByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			utils.JSONError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
			return
		}
		h.Logger.Error("login: email lookup failed", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		utils.JSONError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
		return
	}

	user.LastAction = time.Now().UTC().Format(time.RFC3339)
	updated, err := h.Repo.UpdateProgress(r.Context(), user.ID.Hex(), user)
	if err != nil {
		h.Logger.Error("login: failed to refresh last action", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}

	token, err := utils.GenerateToken(h.JWTSecret, updated.ID.Hex())
	if err != nil {
		h.Logger.Error("login: failed to sign token", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}
	utils.SetAuthCookie(w, token, h.Secure)
	metrics.Logins.Inc()

	utils.JSON(w, http.StatusOK, models.UserResponse{User: updated})
}

// MeHandler returns the account bound to the presented token.
func (h *AuthHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	claims, err := utils.VerifyToken(r, h.JWTSecret)
	if err != nil {
		utils.JSONError(w, http.StatusUnauthorized, "invalid_token", "Missing or invalid authentication token")
		return
	}
	userID, err := utils.GetUserIDFromClaims(claims)
	if err != nil {
		utils.JSONError(w, http.StatusUnauthorized, "invalid_token", "Missing or invalid authentication token")
		return
	}

	user, err := h.Repo.FindByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			utils.JSONError(w, http.StatusNotFound, "user_not_found", "User not found")
			return
		}
		h.Logger.Error("me: failed to load user", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}

	utils.JSON(w, http.StatusOK, models.UserResponse{User: user})
}

// LogoutHandler clears the auth cookie. Tokens are not revocable, so the
// cookie removal is all there is to do.
func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	utils.ClearAuthCookie(w)
	w.WriteHeader(http.StatusNoContent)
}
