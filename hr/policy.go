package hr

// Review authorization lives OUTSIDE the store: mutations never check
// permissions, callers do. This keeps role branching out of the write path
// and in one capability check.

// CanReviewLeave reports whether a caller with the given role (and team, for
// team leads) may approve or reject a leave belonging to target. Owners may
// review anything; team leads only their own team; employees nothing.
// Unknown target employees (dangling leave references) are reviewable by the
// owner only.
func CanReviewLeave(role Role, reviewerTeam string, target Employee, targetKnown bool) bool {
	switch role {
	case RoleOwner:
		return true
	case RoleTeamLead:
		return targetKnown && target.TeamID == reviewerTeam
	default:
		return false
	}
}
