package auth

import (
	"strings"

	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
)

// AdminPolicy decides which identities are promoted to admin at login.
type AdminPolicy struct {
	adminOpenIDs map[string]struct{}
}

func NewAdminPolicy(openIDs []string) AdminPolicy {
	ids := make(map[string]struct{}, len(openIDs))
	for _, id := range openIDs {
		id = strings.TrimSpace(id)
		if id != "" {
			ids[id] = struct{}{}
		}
	}
	return AdminPolicy{adminOpenIDs: ids}
}

// RoleFor returns the role to force for openID, or nil to leave the stored role alone.
func (p AdminPolicy) RoleFor(openID string) *string {
	if _, ok := p.adminOpenIDs[openID]; !ok {
		return nil
	}
	role := models.RoleAdmin
	return &role
}
