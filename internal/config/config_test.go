package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func configWith(env, secret string) *Config {
	cfg := &Config{}
	cfg.Server.Env = env
	cfg.JWT.Secret = secret
	return cfg
}

func TestValidate_ProductionRejectsMissingJWTSecret(t *testing.T) {
	err := validate(configWith("production", ""))
	assert.ErrorContains(t, err, "jwt.secret")
}

func TestValidate_ProductionRejectsPlaceholderJWTSecret(t *testing.T) {
	err := validate(configWith("production", "change-me"))
	assert.ErrorContains(t, err, "placeholder")
}

func TestValidate_ProductionAcceptsRealSecret(t *testing.T) {
	assert.NoError(t, validate(configWith("production", "b2c1e6f0a9d84d1f")))
}

func TestValidate_DevelopmentToleratesPlaceholder(t *testing.T) {
	// Local development may run off the sample config unchanged.
	assert.NoError(t, validate(configWith("development", "change-me")))
	assert.NoError(t, validate(configWith("", "")))
}
