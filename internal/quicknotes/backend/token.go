package backend

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Jai71/quicknotes/internal/quicknotes/models"
)

// accessClaims is the subset of the record-access token claims the client
// cares about. SurrealDB puts the authenticated record id in the "ID" claim.
type accessClaims struct {
	jwt.RegisteredClaims
	RecordID string `json:"ID"`
}

// sessionFromToken derives the session identity from the token the backend
// returned at sign-in. The token is decoded without signature verification:
// verifying it is the server's job, the client only reads the public claims.
func sessionFromToken(token, email string) (*models.Session, error) {
	var claims accessClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("decode access token: %w", err)
	}
	if claims.RecordID == "" {
		return nil, fmt.Errorf("access token carries no record id")
	}

	s := &models.Session{UserID: claims.RecordID, Email: email}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}
