package esign

type EnvelopeDefinition struct {
	EmailSubject string      `json:"emailSubject,omitempty"`
	EmailBlurb   string      `json:"emailBlurb,omitempty"`
	Documents    []Document  `json:"documents,omitempty"`
	Recipients   *Recipients `json:"recipients,omitempty"`
	Status       string      `json:"status,omitempty"`
}

type Document struct {
	DocumentBase64 string `json:"documentBase64"`
	FileExtension  string `json:"fileExtension,omitempty"`
	Name           string `json:"name"`
	DocumentID     string `json:"documentId"`
}

type Recipients struct {
	Signers []Signer `json:"signers,omitempty"`
}

type Signer struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	RoutingOrder string `json:"routingOrder,omitempty"`
	RecipientID  string `json:"recipientId"`
	ClientUserID string `json:"clientUserId,omitempty"`
	Tabs         *Tabs  `json:"tabs,omitempty"`
}

type Tabs struct {
	SignHereTabs []SignHere `json:"signHereTabs,omitempty"`
}

type SignHere struct {
	DocumentID  string `json:"documentId"`
	PageNumber  string `json:"pageNumber"`
	RecipientID string `json:"recipientId"`
	TabLabel    string `json:"tabLabel,omitempty"`
	XPosition   string `json:"xPosition"`
	YPosition   string `json:"yPosition"`
}

type EnvelopeSummary struct {
	EnvelopeID     string `json:"envelopeId"`
	Status         string `json:"status"`
	StatusDateTime string `json:"statusDateTime"`
	URI            string `json:"uri"`
}

type RecipientViewRequest struct {
	AuthenticationMethod string `json:"authenticationMethod"`
	ClientUserID         string `json:"clientUserId"`
	RecipientID          string `json:"recipientId,omitempty"`
	ReturnURL            string `json:"returnUrl"`
	UserName             string `json:"userName"`
	Email                string `json:"email"`
}

type ViewURL struct {
	URL string `json:"url"`
}

// Auth selects the account and bearer token a call is made with.
type Auth struct {
	AccessToken string
	AccountID   string
}
