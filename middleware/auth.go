package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"trendreel/functions/utils"
)

// UserIDKey is the fiber local holding the authenticated user's id.
const UserIDKey = "userid"

// TokenVerifier resolves a bearer token to a user id.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// RequireUser rejects requests without a valid bearer token with 401 and
// stores the caller's id under UserIDKey.
func RequireUser(verifier TokenVerifier, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := utils.BearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			log.Debug("RequireUser: missing or malformed Authorization header")
			return utils.RespondWithError(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		userID, err := verifier.VerifyToken(token)
		if err != nil {
			log.WithError(err).Debug("RequireUser: token rejected")
			return utils.RespondWithError(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// UserID returns the id stored by RequireUser, or "".
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDKey).(string)
	return id
}
