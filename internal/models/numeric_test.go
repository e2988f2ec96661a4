package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericUnmarshal(t *testing.T) {
	var payload struct {
		ID Numeric `json:"id"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"id":"101"}`), &payload))
	assert.Equal(t, "101", payload.ID.String())

	require.NoError(t, json.Unmarshal([]byte(`{"id":101}`), &payload))
	assert.Equal(t, "101", payload.ID.String())

	require.NoError(t, json.Unmarshal([]byte(`{"id":null}`), &payload))
	assert.Equal(t, "", payload.ID.String())

	assert.Error(t, json.Unmarshal([]byte(`{"id":["101"]}`), &payload))
}

func TestValidDifficulty(t *testing.T) {
	assert.True(t, ValidDifficulty("easy"))
	assert.True(t, ValidDifficulty("MEDIUM"))
	assert.True(t, ValidDifficulty("Hard"))
	assert.False(t, ValidDifficulty("impossible"))
	assert.False(t, ValidDifficulty(""))

	assert.Equal(t, "medium", NormalizeDifficulty("MEDIUM"))
}
