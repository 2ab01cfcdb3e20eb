package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagUnmarshalAcceptsBothRepresentations(t *testing.T) {
	tests := []struct {
		payload string
		want    bool
	}{
		{`{"deleted": true}`, true},
		{`{"deleted": false}`, false},
		{`{"deleted": 1}`, true},
		{`{"deleted": 0}`, false},
		{`{"deleted": "1"}`, true},
		{`{"deleted": "0"}`, false},
		{`{"deleted": null}`, false},
		{`{}`, false},
	}

	for _, tt := range tests {
		var rec struct {
			Deleted Flag `json:"deleted"`
		}
		require.NoError(t, json.Unmarshal([]byte(tt.payload), &rec), "payload %s", tt.payload)
		assert.Equal(t, tt.want, rec.Deleted.Bool(), "payload %s", tt.payload)
	}
}

func TestFlagUnmarshalRejectsGarbage(t *testing.T) {
	var f Flag
	assert.Error(t, json.Unmarshal([]byte(`"maybe"`), &f))
	assert.Error(t, json.Unmarshal([]byte(`2`), &f))
}

func TestFlagScan(t *testing.T) {
	var f Flag

	require.NoError(t, f.Scan(int64(1)))
	assert.True(t, f.Bool())

	require.NoError(t, f.Scan(int64(0)))
	assert.False(t, f.Bool())

	require.NoError(t, f.Scan(true))
	assert.True(t, f.Bool())

	require.NoError(t, f.Scan(nil))
	assert.False(t, f.Bool())

	assert.Error(t, f.Scan(3.14))
}
