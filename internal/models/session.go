package models

import "time"

// Tier is the subscription level gating invoice-related features.
type Tier string

const (
	TierFree Tier = "free"
	TierPaid Tier = "paid"
)

// newUserWindow is how close account creation and last sign-in must be
// for a sign-in to count as the account's first. The identity provider
// exposes no explicit first-login signal, so this heuristic stands in
// for one; see Session.IsNewUser.
const newUserWindow = 5 * time.Second

// Session is the authenticated user's view as reported by the identity
// provider. It is never stored locally; every protected request resolves
// it fresh from the provider.
type Session struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	Tier         Tier      `json:"tier"`
	AccessToken  string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	LastSignInAt time.Time `json:"last_sign_in_at"`
}

// IsPaid reports whether invoice features are available to this session.
func (s *Session) IsPaid() bool {
	return s.Tier == TierPaid
}

// IsNewUser reports whether this session belongs to an account signing
// in for the first time. Heuristic: creation and last sign-in within
// five seconds of each other. It can miss or double-fire around the
// boundary; callers must treat the resulting signal as best-effort.
func (s *Session) IsNewUser() bool {
	if s.CreatedAt.IsZero() || s.LastSignInAt.IsZero() {
		return false
	}
	diff := s.LastSignInAt.Sub(s.CreatedAt)
	if diff < 0 {
		diff = -diff
	}
	return diff < newUserWindow
}

// NormalizeTier maps a free-form tier value from provider metadata to a
// known Tier, defaulting to free.
func NormalizeTier(raw string) Tier {
	if Tier(raw) == TierPaid {
		return TierPaid
	}
	return TierFree
}
