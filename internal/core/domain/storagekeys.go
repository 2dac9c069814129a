package domain

// Well-known keys in the persistent key/value store. The session manager
// is the sole writer of the credential keys; the cache and preference
// keys are written by the presentation layer and removed on a
// clear-all logout.
const (
	// KeyOwnerCredentials is the composite credential record
	// (tokens plus profile) owned by the session manager.
	KeyOwnerCredentials = "owner_credentials"
	// KeySessionToken mirrors the access token for legacy readers.
	KeySessionToken = "session_token"
	// KeyRefreshToken mirrors the refresh token for legacy readers.
	KeyRefreshToken = "refresh_token"
	// KeyUserData mirrors the profile blob for legacy readers.
	KeyUserData = "user_data"

	// KeyThemePreference is the UI theme choice.
	KeyThemePreference = "theme_preference"
	// KeyRoomsCache is the per-entity rooms cache blob.
	KeyRoomsCache = "rooms_cache"
	// KeyTenantsCache is the per-entity tenants cache blob.
	KeyTenantsCache = "tenants_cache"
	// KeyTicketsCache is the per-entity tickets cache blob.
	KeyTicketsCache = "tickets_cache"
	// KeyOnboardingDone marks onboarding as completed.
	KeyOnboardingDone = "onboarding_completed"
	// KeyTutorialDone marks the in-app tutorial as completed.
	KeyTutorialDone = "tutorial_completed"
)

// SessionKeys are the keys always removed on logout.
func SessionKeys() []string {
	return []string{KeyOwnerCredentials, KeySessionToken, KeyRefreshToken, KeyUserData}
}

// CacheKeys are the additional keys removed on a clear-all logout.
func CacheKeys() []string {
	return []string{
		KeyThemePreference,
		KeyRoomsCache,
		KeyTenantsCache,
		KeyTicketsCache,
		KeyOnboardingDone,
		KeyTutorialDone,
	}
}
