package service

import "github.com/stayvia/stayvia-server/internal/domain/entity"

type RequestState string

const (
	RequestStateUnavailable  RequestState = "unavailable"
	RequestStateOpen         RequestState = "open"
	RequestStatePending      RequestState = "pending"
	RequestStateAcknowledged RequestState = "acknowledged"
	RequestStateApproved     RequestState = "approved"
)

// RequestButton is what the requesting user sees on a post.
type RequestButton struct {
	State    RequestState `json:"state"`
	Label    string       `json:"label"`
	Disabled bool         `json:"disabled"`
}

// StatusForUser derives the request-button state for a viewer of a post from
// every request on it.
//
// An unavailable post, or any other user's outstanding request, wins over the
// viewer's own request state.
func StatusForUser(requests []entity.RentalRequest, userID string, available bool) RequestButton {
	var mine *entity.RentalRequest
	otherHasRequested := false
	for i := range requests {
		if requests[i].UserID == userID {
			mine = &requests[i]
		} else {
			otherHasRequested = true
		}
	}

	if !available || otherHasRequested {
		return RequestButton{State: RequestStateUnavailable, Label: "Unavailable", Disabled: true}
	}

	if mine != nil {
		switch {
		case mine.Confirmed:
			return RequestButton{State: RequestStateApproved, Label: "Approved / Stays", Disabled: true}
		case mine.Requested:
			return RequestButton{State: RequestStateAcknowledged, Label: "Acknowledged", Disabled: true}
		default:
			return RequestButton{State: RequestStatePending, Label: "Pending Request", Disabled: true}
		}
	}

	return RequestButton{State: RequestStateOpen, Label: "Request Rental", Disabled: false}
}
