// Package security holds the credential helper: one-way salted password
// hashing and verification. It carries no state besides the hashing worker
// pool; the stored hash is opaque to every other package.
package security

import (
	"context"
	"runtime"

	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell-app/inkwell/internal/pkg/env"
)

const (
	envHashCost    = "HASH_COST"
	envHashWorkers = "HASH_WORKERS"
)

// HashCost returns the bcrypt work factor, read from HASH_COST and clamped
// to the range bcrypt accepts.
func HashCost() int {
	cost := env.GetEnvInt(envHashCost, bcrypt.DefaultCost)
	if cost < bcrypt.MinCost {
		return bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		return bcrypt.MaxCost
	}
	return cost
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), HashCost())

	return string(bytes), err
}

// CheckPasswordHash compares the given password with the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// Hasher bounds the number of concurrent bcrypt computations so CPU-bound
// hashing cannot starve request-handling goroutines.
type Hasher struct {
	sem chan struct{}
}

// NewHasher creates a pool allowing up to workers concurrent hashes.
// workers <= 0 falls back to HASH_WORKERS, then to GOMAXPROCS.
func NewHasher(workers int) *Hasher {
	if workers <= 0 {
		workers = env.GetEnvInt(envHashWorkers, runtime.GOMAXPROCS(0))
	}
	if workers <= 0 {
		workers = 1
	}
	return &Hasher{sem: make(chan struct{}, workers)}
}

// Hash computes the bcrypt hash of password, waiting for a free worker slot.
// Cancellation is only honored while queued; a hash already running is never
// abandoned.
func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	select {
	case h.sem <- struct{}{}:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	defer func() { <-h.sem }()

	return HashPassword(password)
}
