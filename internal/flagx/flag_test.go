package flagx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-e", "ws://localhost:8000/rpc", "-x", "ignored"},
			allowed: []string{"-e"},
			want:    []string{"-e", "ws://localhost:8000/rpc"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=conf.json", "-v"},
			allowed: []string{"--config"},
			want:    []string{"--config=conf.json"},
		},
		{
			name:    "flag without value",
			args:    []string{"-q", "-e", "addr"},
			allowed: []string{"-q"},
			want:    []string{"-q"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "1", "-b"},
			allowed: nil,
			want:    []string{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, FilterArgs(tc.args, tc.allowed))
		})
	}
}
