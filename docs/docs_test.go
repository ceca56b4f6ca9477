package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestRegisteredDocIsValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	assert.Equal(t, "2.0", parsed["swagger"])

	paths := parsed["paths"].(map[string]any)
	assert.Contains(t, paths, "/api/v1/ideas/generate")
	assert.Contains(t, paths, "/api/v1/usage/check")
	assert.Contains(t, paths, "/api/v1/scripts/generate")
}
