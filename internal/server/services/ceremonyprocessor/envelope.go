package ceremonyprocessor

import (
	"encoding/base64"
	"path/filepath"
	"strings"

	"github.com/sodiqit/signceremony.git/internal/constants"
	"github.com/sodiqit/signceremony.git/pkg/esign"
)

type SignerInfo struct {
	Name         string
	Email        string
	RecipientID  string
	ClientUserID string
}

// BuildEnvelope returns a definition with a single document that the signer signs
// at one fixed position on its first page. The envelope is sent on creation.
func BuildEnvelope(doc []byte, fileName string, signer SignerInfo) esign.EnvelopeDefinition {
	signHere := esign.SignHere{
		DocumentID:  constants.DocumentID,
		PageNumber:  constants.SignHerePage,
		RecipientID: signer.RecipientID,
		TabLabel:    constants.SignHereTabLabel,
		XPosition:   constants.SignHereX,
		YPosition:   constants.SignHereY,
	}

	return esign.EnvelopeDefinition{
		EmailSubject: constants.EmailSubject,
		EmailBlurb:   constants.EmailBlurb,
		Documents: []esign.Document{{
			DocumentBase64: base64.StdEncoding.EncodeToString(doc),
			FileExtension:  fileExtension(fileName),
			Name:           constants.DocumentName,
			DocumentID:     constants.DocumentID,
		}},
		Recipients: &esign.Recipients{
			Signers: []esign.Signer{{
				Name:         signer.Name,
				Email:        signer.Email,
				RoutingOrder: constants.RoutingOrder,
				RecipientID:  signer.RecipientID,
				ClientUserID: signer.ClientUserID,
				Tabs:         &esign.Tabs{SignHereTabs: []esign.SignHere{signHere}},
			}},
		},
		Status: constants.EnvelopeStatusSent,
	}
}

func fileExtension(fileName string) string {
	ext := strings.TrimPrefix(filepath.Ext(fileName), ".")
	if ext == "" {
		return constants.DefaultFileExtension
	}
	return strings.ToLower(ext)
}
