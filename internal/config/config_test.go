package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("DB_NAME", "school")
	t.Setenv("DB_STATEMENT_TIMEOUT", "2500")
	t.Setenv("MAX_UPLOAD_BYTES", "not-a-number")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://school.example , ,http://localhost:")

	LoadConfig()

	assert.Equal(t, "school", DbName)
	assert.Equal(t, 2500, DbStatementTimeout)
	assert.Equal(t, int64(20<<20), MaxUploadBytes)
	assert.True(t, MinioUseSSL)
	assert.Equal(t, []string{"https://school.example", "http://localhost:"}, CorsAllowedOrigins)
	assert.Equal(t, "projecthub", Issuer)
}
