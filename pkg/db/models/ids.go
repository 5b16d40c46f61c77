package models

import (
	"crypto/rand"
	"fmt"
	"time"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewArtworkID generates a time-prefixed artwork identifier, e.g.
// ART-1700000000000-x4k9q2m1p. The format matches ids produced by earlier
// imports, so generated and imported records sort together.
func NewArtworkID() string {
	return fmt.Sprintf("ART-%d-%s", time.Now().UnixMilli(), randomToken(9))
}

// NewMovementID generates a time-prefixed movement identifier.
func NewMovementID() string {
	return fmt.Sprintf("MOV-%d-%s", time.Now().UnixMilli(), randomToken(6))
}

func randomToken(length int) string {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is unrecoverable for id generation
		panic(fmt.Sprintf("reading random bytes: %v", err))
	}
	for i := range buf {
		buf[i] = idAlphabet[int(buf[i])%len(idAlphabet)]
	}
	return string(buf)
}
