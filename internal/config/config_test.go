package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreBackendFile, cfg.StoreBackend)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, int64(500), cfg.DeliveryFee)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("DELIVERY_FEE", "750")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, StoreBackendRedis, cfg.StoreBackend)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, int64(750), cfg.DeliveryFee)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("STORE_BACKEND", "s3")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsNegativeFee(t *testing.T) {
	t.Setenv("DELIVERY_FEE", "-1")
	_, err := Load()
	assert.Error(t, err)
}
