package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUnmarshalString(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"10s"`), &d))
	require.Equal(t, 10*time.Second, d.Duration)
}

func TestUnmarshalNanoseconds(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`3000000000`), &d))
	require.Equal(t, 3*time.Second, d.Duration)
}

func TestUnmarshalInvalid(t *testing.T) {
	var d Duration
	require.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
	require.Error(t, json.Unmarshal([]byte(`true`), &d))
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := json.Marshal(Duration{5 * time.Minute})
	require.NoError(t, err)
	require.JSONEq(t, `"5m0s"`, string(data))
}
