package access

// OwnedBy reports whether the authenticated actor identified by actorID may
// mutate a resource owned by ownerID. An absent actor (empty id) never owns
// anything.
//
// This single predicate backs both the server-side authorization check and
// the can_modify affordance in responses, so the two cannot drift.
func OwnedBy(actorID, ownerID string) bool {
	return actorID != "" && actorID == ownerID
}
