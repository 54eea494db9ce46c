package models

import "time"

// Partnership links two users who study shared decks together. Each user's
// study progress stays private to them; only deck content is shared.
type Partnership struct {
	ID        int       `json:"id"`
	UserAID   int       `json:"userAId"`
	UserBID   int       `json:"userBId"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// HasMember reports whether the user belongs to the partnership
func (p Partnership) HasMember(userID int) bool {
	return p.UserAID == userID || p.UserBID == userID
}

// PartnerOf returns the other member's user ID
func (p Partnership) PartnerOf(userID int) int {
	if p.UserAID == userID {
		return p.UserBID
	}
	return p.UserAID
}

// PartnershipInvitation is a single-use invitation code. It expires if not
// accepted before ExpiresAt.
type PartnershipInvitation struct {
	ID         int       `json:"id"`
	InviterID  int       `json:"inviterId"`
	Code       string    `json:"code"`
	AcceptedBy *int      `json:"acceptedBy"`
	ExpiresAt  time.Time `json:"expiresAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

// IsValid reports whether the invitation can still be accepted
func (i PartnershipInvitation) IsValid(now time.Time) bool {
	return i.AcceptedBy == nil && now.Before(i.ExpiresAt)
}

// PartnershipView is the partnership as reported to one of its members
type PartnershipView struct {
	ID            int    `json:"id"`
	PartnerUserID int    `json:"partnerUserId"`
	SharedDecks   []Deck `json:"sharedDecks"`
}
