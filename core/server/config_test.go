package server_test

import (
	"testing"

	"stock-check/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Location(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		want     string
		wantErr  bool
	}{
		{"Sao Paulo", "America/Sao_Paulo", "America/Sao_Paulo", false},
		{"UTC", "UTC", "UTC", false},
		{"Empty", "", "UTC", false},
		{"Invalid", "Mars/Olympus_Mons", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := server.Config{Timezone: tt.timezone}.Location()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, loc.String())
		})
	}
}
