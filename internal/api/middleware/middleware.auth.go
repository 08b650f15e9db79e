package middleware

import (
	"errors"
	"strings"

	"github.com/anurag2169/RiseStream-backend/internal/common"
	"github.com/anurag2169/RiseStream-backend/internal/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccessTokenCookie is the cookie carrying the access token.
const AccessTokenCookie = "accessToken"

// TokenVerifier resolves an access token to the actor's user id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// JWTVerifier verifies HS256 access tokens whose _id claim is the user id.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", common.ErrTokenInvalid
	}
	id, _ := claims["_id"].(string)
	if !primitive.IsValidObjectID(id) {
		return "", common.ErrTokenInvalid
	}
	return id, nil
}

// extractToken reads the access token from the cookie or the Authorization header.
func extractToken(c fiber.Ctx) string {
	if token := c.Cookies(AccessTokenCookie); token != "" {
		return token
	}
	header := c.Get("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

// AuthMiddleware rejects requests without a valid token and stores the actor id in Locals.
func AuthMiddleware(verifier TokenVerifier) fiber.Handler {
	return func(c fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return HandleErrorResponse(c, common.ErrTokenMissing)
		}

		userID, err := verifier.Verify(token)
		if err != nil {
			logger.WithRequest(c).WithError(err).Debug("access token rejected")
			return HandleErrorResponse(c, err)
		}

		c.Locals(logger.UserIDLocal, userID)
		return c.Next()
	}
}
