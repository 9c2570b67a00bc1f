package domain

// Tag is a shared label attached to recommendations.
// Name is the canonical form (trimmed, internal spaces hyphenated, case
// preserved) and is unique across the system — tags have no owner.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ResolvedTag is the two-phase result of tag resolution: either a reference to
// an existing tag row, or a new name to be inserted by the transaction that
// creates the owning recommendation.
type ResolvedTag struct {
	// TagID is set when Existing is true.
	TagID string
	// Name is the canonical tag name.
	Name string
	// Existing reports whether a tag row with this name already exists.
	Existing bool
}

// RecommendationTag is the join row linking a recommendation to a tag.
// It has no lifecycle of its own: created and destroyed with the association.
type RecommendationTag struct {
	RecommendationID string `json:"recommendation_id"`
	TagID            string `json:"tag_id"`
}
