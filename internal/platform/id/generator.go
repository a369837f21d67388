package id

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// Generator creates user identifiers and fresh RNG seeds.
type Generator interface {
	NewUserID() (string, error)
	NewSeed() (int64, error)
}

const (
	userIDPrefix = "user_"
	userIDLength = 9
	seedSpan     = 1_000_000
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewUserID() (string, error) {
	buf := make([]byte, userIDLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	out := make([]byte, userIDLength)
	for i, b := range buf {
		out[i] = base36[int(b)%len(base36)]
	}
	return userIDPrefix + string(out), nil
}

// NewSeed draws a fresh seed in [0, 1000000).
func (g *RandomGenerator) NewSeed() (int64, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return 0, fmt.Errorf("read random bytes: %w", err)
	}

	n := binary.BigEndian.Uint64(buf)
	return int64(n % seedSpan), nil
}
