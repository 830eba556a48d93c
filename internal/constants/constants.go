package constants

// Page size for cursor-paginated collection listings.
const PageSize = 5

// Length of the OAuth correlation state token.
const StateLength = 14

const (
	ContextKeyOwner = "owner"

	SessionCookieName = "marina_session"
	SessionKeyState   = "oauth_state"
	SessionKeyToken   = "oauth_token"
	SessionKeyIDToken = "oauth_id_token"
)
