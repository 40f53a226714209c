package service

import (
	"github.com/google/uuid"

	"artisanhub/internal/model"
)

// Authorization policy for the marketplace, kept as plain functions so each
// rule can be tested on its own.

// CanPlaceBid reports whether a user is allowed to bid on jobs.
// Only artisans may bid; owners post jobs.
func CanPlaceBid(user *model.User) bool {
	return user != nil && user.Role == model.RoleArtisan
}

// CanViewBid reports whether a user may see a bid: the job's owner sees all
// bids on their job, an artisan sees the bids they placed. The bid's Job
// relation must be loaded.
func CanViewBid(userID uuid.UUID, bid *model.Bid) bool {
	if bid == nil {
		return false
	}
	return bid.ArtisanID == userID || bid.Job.OwnerID == userID
}
