package services

// Interaction names used by the self-interaction policy
const (
	interactionRate     = "rate"
	interactionLike     = "like"
	interactionBookmark = "bookmark"
	interactionFollow   = "follow"
)

// selfInteractionAllowed records, per interaction, whether a user may target
// themselves or their own prompt. The asymmetry (likes allowed, everything
// else not) is intentional and kept in one place so it stays auditable.
var selfInteractionAllowed = map[string]bool{
	interactionRate:     false,
	interactionLike:     true,
	interactionBookmark: false,
	interactionFollow:   false,
}

// selfInteractionError maps a forbidden self-interaction to its sentinel
var selfInteractionError = map[string]error{
	interactionRate:     ErrSelfRating,
	interactionBookmark: ErrSelfBookmark,
	interactionFollow:   ErrSelfFollow,
}

// checkSelfInteraction returns the matching sentinel when actor and target are
// the same identity and the interaction does not permit that
func checkSelfInteraction(interaction string, actorID, targetID uint) error {
	if actorID != targetID {
		return nil
	}
	if selfInteractionAllowed[interaction] {
		return nil
	}
	return selfInteractionError[interaction]
}

// normalizePage clamps page/limit and derives the offset
func normalizePage(page, limit, defaultLimit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = defaultLimit
	}
	return page, limit, (page - 1) * limit
}
