package handler

import (
	"errors"
	"net/http"

	"github.com/EasWay/bina-mobile/internal/models"
	"github.com/EasWay/bina-mobile/internal/store"
	"github.com/EasWay/bina-mobile/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	users  *store.UserStore
	logger *zap.Logger
}

func NewAuthHandler(users *store.UserStore, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, logger: logger}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, kindValidation, err.Error())
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		h.logger.Error("failed to hash password", zap.Error(err))
		respondError(c, http.StatusInternalServerError, kindInternal, "Failed to register user")
		return
	}

	user, err := h.users.Create(req.Email, req.FullName, hashedPassword)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			respondError(c, http.StatusBadRequest, kindConflict, "Email already registered")
			return
		}
		h.logger.Error("failed to create user", zap.Error(err))
		respondError(c, http.StatusInternalServerError, kindInternal, "Failed to register user")
		return
	}

	token, err := utils.GenerateToken(user.Email)
	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		respondError(c, http.StatusInternalServerError, kindInternal, "Failed to generate token")
		return
	}

	h.logger.Info("user registered", zap.String("user_id", user.ID))
	c.JSON(http.StatusOK, models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, kindValidation, err.Error())
		return
	}

	// Uniform response whether the email or the password is wrong.
	user, err := h.users.FindByEmail(req.Email)
	if err != nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		respondError(c, http.StatusUnauthorized, kindUnauthorized, "Incorrect email or password")
		return
	}

	token, err := utils.GenerateToken(user.Email)
	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		respondError(c, http.StatusInternalServerError, kindInternal, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user := c.MustGet("user").(*models.User)
	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"full_name":  user.FullName,
		"created_at": user.CreatedAt,
	})
}
