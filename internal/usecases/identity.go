package usecases

import "github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"

// requireIdentity rejects anonymous callers.
func requireIdentity(identity domain.Identity) error {
	if !identity.IsAuthenticated() {
		return domain.NewUnauthorizedErr("authentication required")
	}
	return nil
}
