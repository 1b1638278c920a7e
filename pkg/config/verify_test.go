package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	cfg := &Config{}
	cfg.setDefaults()
	cfg.Oracle.Model = "gpt-4o-mini"

	err := VerifyAgainstEmbeddedSchema(cfg)
	assert.NoError(t, err)
}

func TestVerifyAgainstEmbeddedSchema_MissingRequired(t *testing.T) {
	cfg := &Config{}
	cfg.Oracle.Model = "gpt-4o-mini"
	// no listen address, no timeout

	err := VerifyAgainstEmbeddedSchema(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.listen is required")
}

func TestVerifyAgainstEmbeddedSchema_EnrichmentEnabled(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Listen = ":8080"
	cfg.Server.Timeout = 30 * time.Second
	cfg.Enrichment.Enabled = true

	err := VerifyAgainstEmbeddedSchema(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enrichment.timeout is required")
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)
	assert.NotNil(t, schema.Definitions)
}
