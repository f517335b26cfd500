package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetbook/internal/middleware"
	"budgetbook/internal/services"
)

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	userService services.UserServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userService services.UserServicer) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// registerRequest represents the request payload for registering a user.
type registerRequest struct {
	Username string `json:"username" binding:"required,username,max=80"`
	Password string `json:"password" binding:"required,max=128"`
}

// loginRequest represents the request payload for logging in.
type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles user registration.
// @Summary     Register
// @Description Register a new user account
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body registerRequest true "Credentials"
// @Success     200 {object} map[string]string "Registered"
// @Failure     422 {object} map[string]string "Validation error"
// @Failure     503 {object} map[string]string "Server error"
// @Router      /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Username and/or password must be provided."})
		return
	}

	if _, err := h.userService.Register(req.Username, req.Password); err != nil {
		respondWithError(c, err, "Unable to register user.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User successfully registered."})
}

// Login handles user authentication and issues a JWT.
// @Summary     Log in
// @Description Authenticate with username and password, receiving a JWT
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body loginRequest true "Credentials"
// @Success     200 {object} map[string]string "Token"
// @Failure     401 {object} map[string]string "Invalid credentials"
// @Failure     422 {object} map[string]string "Validation error"
// @Failure     503 {object} map[string]string "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Username and/or password must be provided."})
		return
	}

	user, err := h.userService.Authenticate(req.Username, req.Password)
	if err != nil {
		respondWithError(c, err, "Unable to authenticate user.")
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		respondWithError(c, err, "Unable to authenticate user.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully authenticated.", "token": token})
}

// Authenticated reports whether the presented token is valid. The auth
// middleware rejects the request before this point otherwise.
// @Summary     Check authentication
// @Description Verify that the presented token is valid
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]string "Authenticated"
// @Failure     401 {object} map[string]string "Unauthorized"
// @Router      /auth/authenticated [get]
func (h *AuthHandler) Authenticated(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		respondWithError(c, err, "Unable to authenticate user.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Authenticated."})
}
