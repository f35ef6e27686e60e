// Package esign is a small client of the eSignature REST API v2.1 covering envelope
// creation and embedded recipient views.
package esign

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sodiqit/signceremony.git/internal/logger"
	"go.uber.org/zap"
)

const DefaultBasePath = "https://demo.docusign.net/restapi"

const (
	envelopesPath     = "/v2.1/accounts/{accountId}/envelopes"
	recipientViewPath = "/v2.1/accounts/{accountId}/envelopes/{envelopeId}/views/recipient"
)

//go:generate mockgen -source=client.go -destination=mock_esign.go -package=esign

type EnvelopesAPI interface {
	CreateEnvelope(ctx context.Context, auth Auth, def EnvelopeDefinition) (EnvelopeSummary, error)
	CreateRecipientView(ctx context.Context, auth Auth, envelopeID string, req RecipientViewRequest) (ViewURL, error)
}

// Options configures a Client. Client is used as the underlying resty client when
// set; its base url and timeout are overwritten.
type Options struct {
	BasePath string
	Timeout  time.Duration
	Logger   logger.ILogger
	Client   *resty.Client
}

type Client struct {
	client *resty.Client
	logger logger.ILogger
}

func (c *Client) CreateEnvelope(ctx context.Context, auth Auth, def EnvelopeDefinition) (EnvelopeSummary, error) {
	var summary EnvelopeSummary

	if auth.AccountID == "" {
		return summary, fmt.Errorf("%w: empty account id", ErrInvalidArgument)
	}

	resp, err := c.request(ctx, auth).
		SetPathParam("accountId", auth.AccountID).
		SetBody(def).
		SetResult(&summary).
		Post(envelopesPath)

	if err != nil {
		return summary, fmt.Errorf("esign: create envelope: %w", err)
	}

	if resp.IsError() {
		c.logger.Warnw("create envelope rejected", "status", resp.StatusCode(), "body", resp.String())
		return summary, newAPIError(resp.StatusCode(), resp.Body())
	}

	c.logger.Debugw("envelope created", "envelopeId", summary.EnvelopeID, "status", summary.Status)

	return summary, nil
}

func (c *Client) CreateRecipientView(ctx context.Context, auth Auth, envelopeID string, req RecipientViewRequest) (ViewURL, error) {
	var view ViewURL

	if auth.AccountID == "" {
		return view, fmt.Errorf("%w: empty account id", ErrInvalidArgument)
	}

	if envelopeID == "" {
		return view, fmt.Errorf("%w: empty envelope id", ErrInvalidArgument)
	}

	resp, err := c.request(ctx, auth).
		SetPathParams(map[string]string{
			"accountId":  auth.AccountID,
			"envelopeId": envelopeID,
		}).
		SetBody(req).
		SetResult(&view).
		Post(recipientViewPath)

	if err != nil {
		return view, fmt.Errorf("esign: create recipient view: %w", err)
	}

	if resp.IsError() {
		c.logger.Warnw("create recipient view rejected", "envelopeId", envelopeID, "status", resp.StatusCode(), "body", resp.String())
		return view, newAPIError(resp.StatusCode(), resp.Body())
	}

	c.logger.Debugw("recipient view created", "envelopeId", envelopeID)

	return view, nil
}

func (c *Client) request(ctx context.Context, auth Auth) *resty.Request {
	return c.client.R().
		SetContext(ctx).
		SetAuthToken(auth.AccessToken).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
}

func NewClient(options Options) *Client {
	basePath := options.BasePath
	if basePath == "" {
		basePath = DefaultBasePath
	}

	client := options.Client
	if client == nil {
		client = resty.New()
	}

	client.SetBaseURL(basePath)

	if options.Timeout > 0 {
		client.SetTimeout(options.Timeout)
	}

	var l logger.ILogger = zap.NewNop().Sugar()
	if options.Logger != nil {
		l = options.Logger
	}

	return &Client{
		client: client,
		logger: l,
	}
}
