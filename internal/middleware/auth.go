package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	apperrors "carteira/internal/errors"
	"carteira/internal/uuid"
)

// UserIDKey is the gin context key holding the authenticated user's id.
const UserIDKey = "userID"

// Claims are the access token claims issued by the auth provider. The
// subject is the user's UUID.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func abortWith(c *gin.Context, appErr *apperrors.AppError, message string) {
	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
		"error": gin.H{"code": appErr.Code, "message": message},
	})
}

// AuthMiddleware verifies the HS256 bearer token against secret and
// audience and puts the subject in the context under UserIDKey.
func AuthMiddleware(secret, audience string) gin.HandlerFunc {
	key := []byte(secret)
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}
	parser := jwt.NewParser(opts...)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWith(c, apperrors.ErrUnauthorized, "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			abortWith(c, apperrors.ErrUnauthorized, "Invalid authorization header format")
			return
		}

		claims := &Claims{}
		token, err := parser.ParseWithClaims(parts[1], claims, func(*jwt.Token) (interface{}, error) {
			return key, nil
		})
		if err != nil || !token.Valid {
			abortWith(c, apperrors.ErrInvalidToken, apperrors.ErrInvalidToken.Message)
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			abortWith(c, apperrors.ErrInvalidToken, "Token subject is not a user id")
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
