package pkg

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateGameID returns a short random identifier for a game session.
func GenerateGameID() string {
	return randomHex(4)
}

// GeneratePlayerID returns a random identifier for a player session.
func GeneratePlayerID() string {
	return randomHex(16)
}

func randomHex(bytes int) string {
	buf := make([]byte, bytes)
	if _, err := rand.Read(buf); err != nil {
		panic(err) // the platform CSPRNG never fails in practice
	}
	return hex.EncodeToString(buf)
}
