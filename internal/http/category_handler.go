package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shop-interests/internal/service"
)

// CategoryHandler mantiene dependencias para la página de intereses.
type CategoryHandler struct {
	logger       *zap.Logger
	authServ     *service.AuthService
	categoryServ *service.CategoryService
}

func NewCategoryHandler(logger *zap.Logger, authServ *service.AuthService, categoryServ *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		logger:       logger,
		authServ:     authServ,
		categoryServ: categoryServ,
	}
}

// GetProfile maneja GET /api/profile.
func (h *CategoryHandler) GetProfile(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	user, err := h.authServ.GetProfile(c.Request.Context(), identity.ID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.logger.Error("get profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GetCategories maneja GET /api/categories.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "6"))

	result, err := h.categoryServ.Page(c.Request.Context(), identity.ID, page, pageSize)
	if err != nil {
		h.logger.Error("list categories failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list categories"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateInterests maneja PUT /api/interests.
func (h *CategoryHandler) UpdateInterests(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req struct {
		CategoryID string `json:"category_id" binding:"required"`
		Interested *bool  `json:"interested" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update interests request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.categoryServ.SetInterest(c.Request.Context(), identity.ID, req.CategoryID, *req.Interested); err != nil {
		h.logger.Error("update interests failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update interests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Landing maneja GET /: la página de intereses para la sesión válida.
func (h *CategoryHandler) Landing(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	result, err := h.categoryServ.Page(c.Request.Context(), identity.ID, 1, 0)
	if err != nil {
		h.logger.Error("landing page failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load landing"})
		return
	}

	c.JSON(http.StatusOK, result)
}
