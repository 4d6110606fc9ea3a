package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/vtuhub/vtugateway/internal/constants"
	"go.uber.org/zap"
)

const UserIDKey = "userID"

type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// RequireAuth validates the Bearer token and stores the subject user ID in
// the request locals. Requests without a valid token never reach the handler.
func RequireAuth(secret string, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return unauthenticated(c)
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")

		claims, err := parseToken(tokenStr, secret)
		if err != nil {
			logger.Warn("Rejected invalid token", zap.Error(err))
			return unauthenticated(c)
		}

		if claims.UserID == "" {
			return unauthenticated(c)
		}

		c.Locals(UserIDKey, claims.UserID)

		return c.Next()
	}
}

func parseToken(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}

	return claims, nil
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"code":    constants.ErrCodeUnauthenticated,
		"message": constants.GetErrorMessage(constants.ErrCodeUnauthenticated),
	})
}

// UserID reads the authenticated user set by RequireAuth.
func UserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(UserIDKey).(string)
	return userID
}
