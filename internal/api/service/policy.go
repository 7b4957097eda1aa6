package service

import "reviewhub/internal/api/models"

// CanModifyAuthored is the object-level policy for reviews and comments: the
// resource author, any moderator and any admin may mutate; everyone else is
// read-only. Callers apply it independently of the verb-level middleware
// checks, neither assumes the other ran first.
func CanModifyAuthored(caller *models.User, authorID string) bool {
	if caller == nil {
		return false
	}
	return caller.ID == authorID || caller.IsAdmin() || caller.IsModerator()
}
