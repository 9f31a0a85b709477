package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stayvia/stayvia-server/internal/domain/entity"
)

func TestStatusForUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		requests  []entity.RentalRequest
		userID    string
		available bool
		want      RequestButton
	}{
		{
			name:      "no requests on available post",
			requests:  nil,
			userID:    "viewer",
			available: true,
			want:      RequestButton{State: RequestStateOpen, Label: "Request Rental", Disabled: false},
		},
		{
			name:      "own request not yet acknowledged",
			requests:  []entity.RentalRequest{{UserID: "viewer"}},
			userID:    "viewer",
			available: true,
			want:      RequestButton{State: RequestStatePending, Label: "Pending Request", Disabled: true},
		},
		{
			name:      "own request acknowledged",
			requests:  []entity.RentalRequest{{UserID: "viewer", Requested: true}},
			userID:    "viewer",
			available: true,
			want:      RequestButton{State: RequestStateAcknowledged, Label: "Acknowledged", Disabled: true},
		},
		{
			name:      "own request approved",
			requests:  []entity.RentalRequest{{UserID: "viewer", Requested: true, Confirmed: true}},
			userID:    "viewer",
			available: true,
			want:      RequestButton{State: RequestStateApproved, Label: "Approved / Stays", Disabled: true},
		},
		{
			name:      "someone else requested",
			requests:  []entity.RentalRequest{{UserID: "other"}},
			userID:    "viewer",
			available: true,
			want:      RequestButton{State: RequestStateUnavailable, Label: "Unavailable", Disabled: true},
		},
		{
			name:      "unavailable post wins over own approved request",
			requests:  []entity.RentalRequest{{UserID: "viewer", Requested: true, Confirmed: true}},
			userID:    "viewer",
			available: false,
			want:      RequestButton{State: RequestStateUnavailable, Label: "Unavailable", Disabled: true},
		},
		{
			name: "another request wins over own approved request",
			requests: []entity.RentalRequest{
				{UserID: "viewer", Requested: true, Confirmed: true},
				{UserID: "other"},
			},
			userID:    "viewer",
			available: true,
			want:      RequestButton{State: RequestStateUnavailable, Label: "Unavailable", Disabled: true},
		},
		{
			name:      "unavailable post without requests",
			requests:  nil,
			userID:    "viewer",
			available: false,
			want:      RequestButton{State: RequestStateUnavailable, Label: "Unavailable", Disabled: true},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StatusForUser(tt.requests, tt.userID, tt.available))
		})
	}
}
