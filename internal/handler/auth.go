package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/ravindraogg/DUHACKS/internal/config"
	"github.com/ravindraogg/DUHACKS/internal/models"
	"github.com/ravindraogg/DUHACKS/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler owns registration, login and the active-token lifecycle.
type AuthHandler struct {
	DB        *gorm.DB
	JWTSecret string
	Issuer    string
	TokenTTL  time.Duration
}

func NewAuthHandler(db *gorm.DB, jwtCfg config.JWTConfig) *AuthHandler {
	ttlHours := jwtCfg.ExpireHours
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthHandler{
		DB:        db,
		JWTSecret: jwtCfg.Secret,
		Issuer:    jwtCfg.Issuer,
		TokenTTL:  time.Duration(ttlHours) * time.Hour,
	}
}

// currentUser pulls the user placed into the context by AuthMiddleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("currentUser")
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

// issueToken signs a fresh token for the user and makes it the account's one
// active token. The overwrite is a single-row UPDATE, so concurrent logins
// race safely: last write wins and every earlier token stops authorizing.
func (h *AuthHandler) issueToken(user *models.User) (string, error) {
	token, err := util.GenerateToken(h.JWTSecret, h.Issuer, user.ID, user.Email, user.Name, h.TokenTTL)
	if err != nil {
		return "", err
	}

	now := time.Now()
	if err := h.DB.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"active_token":    token,
		"token_issued_at": now,
	}).Error; err != nil {
		return "", err
	}
	return token, nil
}

// ---------- register ----------

type registerReq struct {
	Name        string `json:"name" binding:"required,max=64"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	CompanyName string `json:"companyName" binding:"max=128"`
	Industry    string `json:"industry" binding:"max=64"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = strings.TrimSpace(req.Email)

	var count int64
	if err := h.DB.Model(&models.User{}).
		Where("email = ?", req.Email).
		Count(&count).Error; err != nil {
		util.Fail(c, http.StatusInternalServerError, "Server error")
		return
	}
	if count > 0 {
		util.Fail(c, http.StatusBadRequest, "User already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "Server error")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		CompanyName:  req.CompanyName,
		Industry:     req.Industry,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		util.Fail(c, http.StatusInternalServerError, "Server error")
		return
	}

	// registration logs the account straight in
	token, err := h.issueToken(&user)
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "Server error")
		return
	}

	util.Created(c, util.Response{
		"message": "Registration successful",
		"token":   token,
		"user": gin.H{
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// ---------- login ----------

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = strings.TrimSpace(req.Email)

	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Fail(c, http.StatusBadRequest, "User not found")
		} else {
			util.Fail(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		util.Fail(c, http.StatusBadRequest, "Invalid credentials")
		return
	}

	// new token unconditionally replaces the previous one, which stops
	// authorizing immediately (single active session per account)
	token, err := h.issueToken(&user)
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "Server error")
		return
	}

	util.OK(c, util.Response{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// ---------- logout ----------

// Logout clears the account's active token. Calling it twice is safe: the
// second request fails authorization in the middleware because the token is
// already gone.
func (h *AuthHandler) Logout(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Fail(c, http.StatusUnauthorized, "No token provided")
		return
	}

	if err := h.DB.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"active_token":    "",
		"token_issued_at": nil,
	}).Error; err != nil {
		util.Fail(c, http.StatusInternalServerError, "Server error")
		return
	}

	util.OK(c, util.Response{"message": "Logged out successfully"})
}

// ---------- auth status ----------

func (h *AuthHandler) AuthStatus(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Fail(c, http.StatusUnauthorized, "No token provided")
		return
	}

	util.OK(c, util.Response{
		"user": gin.H{
			"name":  user.Name,
			"email": user.Email,
		},
	})
}
