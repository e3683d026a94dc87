package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanSetBookingStatus(t *testing.T) {
	const ownerID = int64(42)

	tests := []struct {
		name     string
		identity Identity
		status   BookingStatus
		allowed  bool
	}{
		{
			name:     "admin sets any status",
			identity: Identity{UserID: 1, Role: RoleAdmin},
			status:   StatusPending,
			allowed:  true,
		},
		{
			name:     "admin cancels booking of someone else's court",
			identity: Identity{UserID: 1, Role: RoleAdmin},
			status:   StatusCancelled,
			allowed:  true,
		},
		{
			name:     "owner confirms booking of own court",
			identity: Identity{UserID: ownerID, Role: RoleOwner},
			status:   StatusConfirmed,
			allowed:  true,
		},
		{
			name:     "owner cancels booking of own court",
			identity: Identity{UserID: ownerID, Role: RoleOwner},
			status:   StatusCancelled,
			allowed:  true,
		},
		{
			name:     "owner cannot reset booking to pending",
			identity: Identity{UserID: ownerID, Role: RoleOwner},
			status:   StatusPending,
			allowed:  false,
		},
		{
			name:     "owner of another complex denied",
			identity: Identity{UserID: 99, Role: RoleOwner},
			status:   StatusConfirmed,
			allowed:  false,
		},
		{
			name:     "client cannot change status",
			identity: Identity{UserID: 7, Role: RoleClient},
			status:   StatusCancelled,
			allowed:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanSetBookingStatus(tt.identity, ownerID, tt.status))
		})
	}
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("owner")
	assert.True(t, ok)
	assert.Equal(t, RoleOwner, role)

	_, ok = ParseRole("superadmin")
	assert.False(t, ok)
}
