package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetConfigEnvFallback(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	assert.Equal(t, "env-secret", GetConfig("JWT_SECRET"))
}

func TestGetConfigIsProdEnvFallback(t *testing.T) {
	// Without a config.yaml the production flag must still be settable
	// through the environment, same as every other key.
	t.Setenv("IS_PROD", "true")
	assert.Equal(t, "true", GetConfig("IS_PROD"))

	t.Setenv("IS_PROD", "")
	assert.Equal(t, "", GetConfig("IS_PROD"))
}

func TestGetConfigUnknownKeyReadsEnvironment(t *testing.T) {
	t.Setenv("SOME_EXTRA_KEY", "extra")
	assert.Equal(t, "extra", GetConfig("SOME_EXTRA_KEY"))
}
