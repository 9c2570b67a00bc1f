package domain

import "time"

// Recommendation is a single piece of fiction a user recommends, with their
// opinion and a set of free-text tags. Owned by exactly one user; deleting the
// owner deletes their recommendations.
type Recommendation struct {
	ID               string     `json:"id"`
	TypeOfFiction    string     `json:"type_of_fiction"`
	Title            string     `json:"title"`
	ShortDescription string     `json:"short_description"`
	Opinion          string     `json:"opinion"`
	Published        time.Time  `json:"published"`
	Updated          *time.Time `json:"updated,omitempty"`
	UserID           string     `json:"user_id"`
	Tags             []*Tag     `json:"tags"`
}

// Touch records a modification time. Published never changes after creation.
func (r *Recommendation) Touch() {
	now := time.Now()
	r.Updated = &now
}

// IsOwnedBy reports whether the given user owns this recommendation.
// Ownership determines delete permission.
func (r *Recommendation) IsOwnedBy(userID string) bool {
	return r.UserID == userID
}
