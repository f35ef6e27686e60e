package ceremonyprocessor

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sodiqit/signceremony.git/internal/constants"
	"github.com/sodiqit/signceremony.git/internal/logger"
	"github.com/sodiqit/signceremony.git/internal/server/config"
	"github.com/sodiqit/signceremony.git/pkg/esign"
)

var ErrMissingCredentials = errors.New("access token and account id are required")

type CeremonyService interface {
	OpenSigningCeremony(ctx context.Context, params Params) (string, error)
}

// Params carries per-request overrides. Empty fields fall back to config.
type Params struct {
	AccessToken string
	AccountID   string
	SignerName  string
	SignerEmail string
}

type Service struct {
	api    esign.EnvelopesAPI
	cfg    *config.Config
	logger logger.ILogger
}

// OpenSigningCeremony creates and sends an envelope for the embedded signer and
// returns the url of its recipient view.
func (s *Service) OpenSigningCeremony(ctx context.Context, params Params) (string, error) {
	params = s.withDefaults(params)

	if params.AccessToken == "" || params.AccountID == "" {
		return "", ErrMissingCredentials
	}

	doc, err := os.ReadFile(s.cfg.DocumentPath)
	if err != nil {
		return "", fmt.Errorf("read document %s: %w", s.cfg.DocumentPath, err)
	}

	signer := SignerInfo{
		Name:         params.SignerName,
		Email:        params.SignerEmail,
		RecipientID:  s.cfg.RecipientID,
		ClientUserID: s.cfg.ClientUserID,
	}

	auth := esign.Auth{AccessToken: params.AccessToken, AccountID: params.AccountID}

	summary, err := s.api.CreateEnvelope(ctx, auth, BuildEnvelope(doc, s.cfg.DocumentPath, signer))
	if err != nil {
		return "", fmt.Errorf("create envelope: %w", err)
	}

	if summary.EnvelopeID == "" {
		return "", errors.New("create envelope: empty envelope id in response")
	}

	s.logger.Infow("envelope sent", "envelopeId", summary.EnvelopeID, "status", summary.Status, "accountId", auth.AccountID)

	view, err := s.api.CreateRecipientView(ctx, auth, summary.EnvelopeID, esign.RecipientViewRequest{
		AuthenticationMethod: constants.AuthenticationMethod,
		ClientUserID:         signer.ClientUserID,
		RecipientID:          signer.RecipientID,
		ReturnURL:            s.cfg.ReturnURL,
		UserName:             signer.Name,
		Email:                signer.Email,
	})
	if err != nil {
		return "", fmt.Errorf("create recipient view: %w", err)
	}

	if view.URL == "" {
		return "", errors.New("create recipient view: empty url in response")
	}

	return view.URL, nil
}

func (s *Service) withDefaults(params Params) Params {
	if params.AccessToken == "" {
		params.AccessToken = s.cfg.AccessToken
	}
	if params.AccountID == "" {
		params.AccountID = s.cfg.AccountID
	}
	if params.SignerName == "" {
		params.SignerName = s.cfg.SignerName
	}
	if params.SignerEmail == "" {
		params.SignerEmail = s.cfg.SignerEmail
	}
	return params
}

func New(api esign.EnvelopesAPI, cfg *config.Config, logger logger.ILogger) *Service {
	return &Service{api, cfg, logger}
}
