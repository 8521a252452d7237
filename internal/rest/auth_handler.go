package rest

import (
	"net/http"

	"shopease-be/internal/admin"
	"shopease-be/internal/auth"
	"shopease-be/internal/user"

	"github.com/gin-gonic/gin"
)

type registerUserRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerAdminRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// setTokenCookie mirrors the token into a cookie so browser clients need no
// header plumbing. The JSON body still carries it for everyone else.
func (h *Handler) setTokenCookie(c *gin.Context, token string) {
	c.SetCookie(auth.CookieName, token, int(auth.TokenTTL.Seconds()), "/", "", h.Cfg.AppEnv == "production", true)
}

func (h *Handler) RegisterUser(c *gin.Context) {
	var req registerUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	token, u, err := h.UserSvc.Register(c.Request.Context(), user.RegisterParams{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.setTokenCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{
		"message": "registration successful",
		"token":   token,
		"user":    u.Public(),
	})
}

func (h *Handler) LoginUser(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	token, u, err := h.UserSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setTokenCookie(c, token)
	c.JSON(http.StatusOK, gin.H{
		"message": "login successful",
		"token":   token,
		"user":    u.Public(),
	})
}

func (h *Handler) RegisterAdmin(c *gin.Context) {
	var req registerAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	token, a, err := h.AdminSvc.Register(c.Request.Context(), admin.RegisterParams{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.setTokenCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{
		"message": "admin registration successful",
		"token":   token,
		"user":    a.Public(),
	})
}

func (h *Handler) LoginAdmin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	token, a, err := h.AdminSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setTokenCookie(c, token)
	c.JSON(http.StatusOK, gin.H{
		"message": "admin login successful",
		"token":   token,
		"user":    a.Public(),
	})
}

// CheckAdmin tells the client whether the one admin slot is taken.
func (h *Handler) CheckAdmin(c *gin.Context) {
	exists, err := h.AdminSvc.Exists(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	message := "admin slot is open"
	if exists {
		message = "admin already registered"
	}

	c.JSON(http.StatusOK, gin.H{
		"exists":  exists,
		"message": message,
	})
}
