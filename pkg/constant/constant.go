package constant

const (
	// BearerTokenType is the token_type value returned by POST /token.
	BearerTokenType = "bearer"

	// DiaryDateLayout is the wire format for diary entry dates.
	DiaryDateLayout = "02-01-2006"

	// DefaultAccessExpiryMin is the access token TTL when none is configured.
	DefaultAccessExpiryMin = 30
)
