package cli

import (
	"testing"

	"github.com/avoskres/parlor/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlavorLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    models.Flavor
		wantErr bool
	}{
		{
			name: "name price season",
			line: "Mango; 2.5; Summer",
			want: models.Flavor{Name: "Mango", Price: 2.5, Season: "Summer"},
		},
		{
			name: "name price only",
			line: "Vanilla;2.0",
			want: models.Flavor{Name: "Vanilla", Price: 2.0},
		},
		{name: "missing price", line: "Vanilla", wantErr: true},
		{name: "too many fields", line: "a;1;b;c", wantErr: true},
		{name: "empty name", line: " ;2.0", wantErr: true},
		{name: "bad price", line: "Vanilla;two", wantErr: true},
		{name: "negative price", line: "Vanilla;-2.0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlavorLine(tt.line)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
