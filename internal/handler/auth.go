package handler

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/config"
	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/model"
	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/service"
)

const denylistKeyPrefix = "auth:denylist:"

// AuthHandler handles the session lifecycle: signup, login, logout.
// Logged-out tokens are denylisted in Redis until they expire.
type AuthHandler struct {
	authService *service.AuthService
	redis       *redis.Client
	config      *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, redisClient *redis.Client, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		redis:       redisClient,
		config:      cfg,
	}
}

// Login authenticates a user and issues a JWT
// @Summary Login
// @Description Authenticate with username and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body model.LoginRequest true "Credentials"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} map[string]string
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, model.LoginResponse{Token: token, User: *user})
}

// Signup registers a new account and signs it in
// @Summary Sign up
// @Description Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param account body model.SignupRequest true "Account"
// @Success 201 {object} model.LoginResponse
// @Failure 409 {object} map[string]string
// @Router /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusCreated, model.LoginResponse{Token: token, User: *user})
}

// Logout denylists the current token until it expires
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
		return
	}

	jti, _ := claims["jti"].(string)
	exp, _ := claims["exp"].(float64)
	if jti != "" {
		ttl := time.Until(time.Unix(int64(exp), 0))
		if ttl > 0 {
			h.redis.Set(c.Request.Context(), denylistKeyPrefix+jti, "1", ttl)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// GetMe returns the signed-in user
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID := UserIDFromContext(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// AuthMiddleware validates the bearer token and rejects denylisted ones
func (h *AuthHandler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(h.config.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		if jti, _ := claims["jti"].(string); jti != "" && h.redis != nil {
			if n, err := h.redis.Exists(c.Request.Context(), denylistKeyPrefix+jti).Result(); err == nil && n > 0 {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token revoked"})
				return
			}
		}

		c.Set("claims", claims)
		c.Next()
	}
}

// OptionalAuthMiddleware sets claims when a valid bearer token is
// present but never rejects the request. Used on the landing route.
func (h *AuthHandler) OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString := strings.TrimPrefix(header, "Bearer ")
			token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(h.config.JWTSecret), nil
			})
			if err == nil && token.Valid {
				if claims, ok := token.Claims.(jwt.MapClaims); ok {
					c.Set("claims", claims)
				}
			}
		}
		c.Next()
	}
}

// UserIDFromBearer resolves the user ID straight from the bearer token.
// Used by user-keyed rate limiting, which runs before AuthMiddleware has
// stored any claims in the context.
func (h *AuthHandler) UserIDFromBearer(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(h.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return "", false
	}
	return strconv.FormatUint(uint64(userID), 10), true
}

func (h *AuthHandler) issueToken(user *model.User) (string, error) {
	jti := make([]byte, 16)
	if _, err := rand.Read(jti); err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"is_admin": user.IsAdmin,
		"jti":      hex.EncodeToString(jti),
		"iat":      now.Unix(),
		"exp":      now.Add(h.config.TokenExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func claimsFromContext(c *gin.Context) jwt.MapClaims {
	if claims, exists := c.Get("claims"); exists {
		if jwtClaims, ok := claims.(jwt.MapClaims); ok {
			return jwtClaims
		}
	}
	return nil
}

// UserIDFromContext extracts the signed-in user's ID from the JWT claims
func UserIDFromContext(c *gin.Context) uint {
	if claims := claimsFromContext(c); claims != nil {
		if userID, ok := claims["user_id"].(float64); ok {
			return uint(userID)
		}
	}
	return 0
}

// IsAuthenticated reports whether the request carries valid claims
func IsAuthenticated(c *gin.Context) bool {
	return claimsFromContext(c) != nil
}
