package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken signs a session ID into a bearer token. The token is
// the only handle to the in-memory ledger; when it expires the ledger rows
// it points at are unreachable.
func GenerateSessionToken(sessionID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sessionID,
		"exp": time.Now().Add(time.Hour * 24).Unix(),
	})

	return token.SignedString([]byte(os.Getenv("SESSION_SECRET")))
}
