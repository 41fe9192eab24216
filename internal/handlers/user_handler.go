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
)

// UserHandler manages the authenticated progress-update endpoint.
type UserHandler struct {
	Repo      UserRepository
	JWTSecret string
	Logger    *zap.Logger
}

func NewUserHandler(repo UserRepository, secret string, logger *zap.Logger) *UserHandler {
	return &UserHandler{Repo: repo, JWTSecret: secret, Logger: logger}
}

// UpdateProgressHandler merges the supplied progression fields into the
// stored account. The merge is shallow field replacement: callers send the
// new absolute xp/totalPoints, not deltas. Level is recomputed from the
// merged xp so it can never diverge from the level formula, and newly
// unlocked achievements are appended to the stored set before persisting.
func (h *UserHandler) UpdateProgressHandler(w http.ResponseWriter, r *http.Request) {
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

	var update models.ProgressUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request payload")
		return
	}
	if (update.XP != nil && *update.XP < 0) ||
		(update.Streak != nil && *update.Streak < 0) ||
		(update.TotalPoints != nil && *update.TotalPoints < 0) {
		utils.JSONError(w, http.StatusBadRequest, "invalid_value", "xp, streak and totalPoints must be non-negative")
		return
	}

	user, err := h.Repo.FindByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			utils.JSONError(w, http.StatusNotFound, "user_not_found", "User not found")
			return
		}
		h.Logger.Error("update: failed to load user", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}

	if update.XP != nil {
		user.XP = *update.XP
	}
	if update.Streak != nil {
		user.Streak = *update.Streak
	}
	if update.TotalPoints != nil {
		user.TotalPoints = *update.TotalPoints
	}
	if update.Achievements != nil {
		user.Achievements = *update.Achievements
	}
	if update.LastAction != nil {
		user.LastAction = *update.LastAction
	} else {
		user.LastAction = time.Now().UTC().Format(time.RFC3339)
	}

	user.Level = progression.LevelForXP(user.XP)

	stats := progression.Stats{XP: user.XP, Streak: user.Streak}
	if fresh := progression.NewlyUnlocked(stats, user.Achievements); len(fresh) > 0 {
		user.Achievements = append(user.Achievements, fresh...)
		metrics.AchievementsUnlocked.Add(float64(len(fresh)))
	}

	updated, err := h.Repo.UpdateProgress(r.Context(), userID, user)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			utils.JSONError(w, http.StatusNotFound, "user_not_found", "User not found")
			return
		}
		h.Logger.Error("update: failed to persist progress", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}
	metrics.ProgressUpdates.Inc()

	utils.JSON(w, http.StatusOK, models.UserResponse{User: updated})
}
