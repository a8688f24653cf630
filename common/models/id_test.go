package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, ID(42), id)

	for _, bad := range []string{"", "abc", "12ab", "-1", "1.5", "1e3"} {
		_, err := ParseID(bad)
		assert.Error(t, err, bad)
	}
}

func TestIDJSONRoundTrip(t *testing.T) {
	// Above 2^53: a float64 round trip would corrupt this
	id := ID(9007199254740993)

	data, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, `"9007199254740993"`, string(data))

	var back ID
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, id, back)

	// Clients may still send plain numbers
	require.NoError(t, json.Unmarshal([]byte(`17`), &back))
	assert.Equal(t, ID(17), back)
}
