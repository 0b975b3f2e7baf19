package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"dzbooking/internal/http/middleware"
	"dzbooking/internal/models"
	"dzbooking/internal/utils"
)

const tokenTTL = 24 * time.Hour

// POST /api/auth/login
//
// Login takes an OAuth2 password form: username holds the email.
func (h *Handler) Login(c *gin.Context) {
	email := c.PostForm("username")
	password := c.PostForm("password")
	if email == "" || password == "" {
		RespondError(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.Store.Authenticate(email, password)
	if err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "rejected for "+email)
		RespondError(c, http.StatusUnauthorized, "Incorrect email or password")
		return
	}

	h.respondToken(c, http.StatusOK, user)
}

// POST /api/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, err := h.Store.CreateAccount(req.Email, req.FullName, req.PhoneNumber, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "register", "registered "+user.Email)
	h.respondToken(c, http.StatusCreated, user)
}

func (h *Handler) respondToken(c *gin.Context, status int, user models.User) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(tokenTTL).Unix(),
	})
	signed, err := token.SignedString(h.JWTSecret)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "Could not create token")
		return
	}

	c.JSON(status, models.Token{
		AccessToken: signed,
		TokenType:   "bearer",
		User:        user,
	})
}
