package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	var s struct {
		D Duration `json:"d"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"d":"15m"}`), &s))
	assert.Equal(t, 15*time.Minute, s.D.Duration)

	require.NoError(t, json.Unmarshal([]byte(`{"d":1000000000}`), &s))
	assert.Equal(t, time.Second, s.D.Duration)

	assert.Error(t, json.Unmarshal([]byte(`{"d":"nonsense"}`), &s))
	assert.Error(t, json.Unmarshal([]byte(`{"d":true}`), &s))
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration{90 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
