package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"habitquest/internal/models"
	"habitquest/internal/repositories"
	"habitquest/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ActivityHandler exposes the per-user key-value store the presentation
// layer keeps its journal, mood and task data in.
type ActivityHandler struct {
	Store     ActivityStore
	JWTSecret string
	Logger    *zap.Logger
}

func NewActivityHandler(store ActivityStore, secret string, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{Store: store, JWTSecret: secret, Logger: logger}
}

func (h *ActivityHandler) userID(r *http.Request) (string, error) {
	claims, err := utils.VerifyToken(r, h.JWTSecret)
	if err != nil {
		return "", err
	}
	return utils.GetUserIDFromClaims(claims)
}

type setValueRequest struct {
	Value string `json:"value"`
}

type appendFeedRequest struct {
	Action string `json:"action"`
	XP     int    `json:"xp"`
}

func (h *ActivityHandler) GetValueHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		utils.JSONError(w, http.StatusUnauthorized, "invalid_token", "Missing or invalid authentication token")
		return
	}
	key := chi.URLParam(r, "key")

	value, err := h.Store.Get(r.Context(), userID, key)
	if err != nil {
		if errors.Is(err, repositories.ErrKeyNotFound) {
			utils.JSONError(w, http.StatusNotFound, "key_not_found", "No value stored under this key")
			return
		}
		h.Logger.Error("activity: get failed", zap.String("key", key), zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}

	utils.JSON(w, http.StatusOK, models.ActivityValue{Key: key, Value: value})
}

func (h *ActivityHandler) SetValueHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		utils.JSONError(w, http.StatusUnauthorized, "invalid_token", "Missing or invalid authentication token")
		return
	}
	key := chi.URLParam(r, "key")

	var req setValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request payload")
		return
	}

	if err := h.Store.Set(r.Context(), userID, key, req.Value); err != nil {
		h.Logger.Error("activity: set failed", zap.String("key", key), zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}

	utils.JSON(w, http.StatusOK, models.ActivityValue{Key: key, Value: req.Value})
}

func (h *ActivityHandler) FeedHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		utils.JSONError(w, http.StatusUnauthorized, "invalid_token", "Missing or invalid authentication token")
		return
	}

	limit := int64(0)
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.ParseInt(limitStr, 10, 64)
		if err != nil || l <= 0 {
			utils.JSONError(w, http.StatusBadRequest, "invalid_limit", "limit must be a positive integer")
			return
		}
		limit = l
	}

	entries, err := h.Store.Feed(r.Context(), userID, limit)
	if err != nil {
		h.Logger.Error("activity: feed read failed", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}

	utils.JSON(w, http.StatusOK, models.FeedResponse{Total: len(entries), Items: entries})
}

func (h *ActivityHandler) AppendFeedHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		utils.JSONError(w, http.StatusUnauthorized, "invalid_token", "Missing or invalid authentication token")
		return
	}

	var req appendFeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request payload")
		return
	}
	if req.Action == "" {
		utils.JSONError(w, http.StatusBadRequest, "missing_fields", "Action is required")
		return
	}

	entry := models.FeedEntry{
		ID:        uuid.New().String(),
		Action:    req.Action,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		XP:        req.XP,
	}
	if err := h.Store.AppendFeed(r.Context(), userID, entry); err != nil {
		h.Logger.Error("activity: feed append failed", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}

	utils.JSON(w, http.StatusCreated, entry)
}
