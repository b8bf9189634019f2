package domain

import "time"

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "PENDING"
	InvitationAccepted InvitationStatus = "ACCEPTED"
)

// Invitation asks the holder of Email to join a workspace. OwnerID is copied
// from the workspace when the invitation is created.
type Invitation struct {
	ID          string
	OwnerID     string
	WorkspaceID string
	Email       string
	Status      InvitationStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
