package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckOwnership(t *testing.T) {
	tests := []struct {
		name    string
		caller  string
		owner   string
		allowed bool
	}{
		{"same id", "64b7f0c2a1b2c3d4e5f60718", "64b7f0c2a1b2c3d4e5f60718", true},
		{"different id", "64b7f0c2a1b2c3d4e5f60718", "64b7f0c2a1b2c3d4e5f60719", false},
		{"empty caller", "", "", false},
		{"empty owner", "64b7f0c2a1b2c3d4e5f60718", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckOwnership(tt.caller, tt.owner)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrForbidden)
			}
			assert.Equal(t, tt.allowed, IsOwner(tt.caller, tt.owner))
		})
	}
}
