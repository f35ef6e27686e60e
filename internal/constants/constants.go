package constants

const EnvelopeStatusSent = "sent"

const (
	DocumentID           = "1"
	DocumentName         = "Sample document"
	DefaultFileExtension = "pdf"
	RoutingOrder         = "1"
	AuthenticationMethod = "None"
)

const (
	EmailSubject = "Please sign this document sent from the Go example"
	EmailBlurb   = "Please sign this document sent from the Go example."
)

const (
	SignHereTabLabel = "SignHereTab"
	SignHerePage     = "1"
	SignHereX        = "195"
	SignHereY        = "147"
)

// Query parameters that override the configured credentials and signer.
const (
	QueryAccessToken = "ACCESS_TOKEN"
	QueryAccountID   = "ACCOUNT_ID"
	QuerySignerName  = "USER_FULLNAME"
	QuerySignerEmail = "USER_EMAIL"
)
