package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerateToken produces an opaque bearer token. The token carries no
// structure; validity comes entirely from its row in user_tokens. The
// server secret seeds the digest so tokens are not reproducible from
// public inputs alone.
func GenerateToken(userID uint, secret string) string {
	seed := fmt.Sprintf("%d%s%d%s", userID, uuid.NewString(), time.Now().UnixNano(), secret)
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])
}
