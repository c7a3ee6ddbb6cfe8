package flagx

import (
	"os"
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
			args:    []string{"-e", "ws://localhost:8000/rpc", "-x", "junk"},
			allowed: []string{"-e"},
			want:    []string{"-e", "ws://localhost:8000/rpc"},
		},
		{
			name:    "combined value",
			args:    []string{"--endpoint=ws://localhost:8000/rpc", "--other=1"},
			allowed: []string{"--endpoint"},
			want:    []string{"--endpoint=ws://localhost:8000/rpc"},
		},
		{
			name:    "flag without value followed by another flag",
			args:    []string{"-v", "-e", "addr"},
			allowed: []string{"-v", "-e"},
			want:    []string{"-v", "-e", "addr"},
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

func TestJsonConfigFlags(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"quicknotes", "-c", "conf.json", "-e", "addr"}
	require.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"quicknotes", "--config=other.json"}
	require.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"quicknotes"}
	require.Equal(t, "", JsonConfigFlags())
}
