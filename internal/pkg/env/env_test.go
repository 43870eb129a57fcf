package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvPrecedence(t *testing.T) {
	Env = map[string]string{"DB_HOST": "from-file"}
	t.Cleanup(func() { Env = nil })
	t.Setenv("DB_HOST", "from-os")

	assert.Equal(t, "from-file", GetEnv("DB_HOST", "fallback"))

	Env = nil
	assert.Equal(t, "from-os", GetEnv("DB_HOST", "fallback"))
	assert.Equal(t, "fallback", GetEnv("DB_MISSING", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("HASH_COST", "12")
	assert.Equal(t, 12, GetEnvInt("HASH_COST", 10))

	t.Setenv("HASH_COST", "twelve")
	assert.Equal(t, 10, GetEnvInt("HASH_COST", 10))

	assert.Equal(t, 10, GetEnvInt("HASH_COST_MISSING", 10))
}
