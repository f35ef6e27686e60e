package ceremony_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-resty/resty/v2"
	"github.com/sodiqit/signceremony.git/internal/server/adapters/http/ceremony"
	"github.com/sodiqit/signceremony.git/internal/server/services/ceremonyprocessor"
	"github.com/sodiqit/signceremony.git/pkg/esign"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type CeremonyServiceMock struct {
	mock.Mock
}

func (m *CeremonyServiceMock) OpenSigningCeremony(ctx context.Context, params ceremonyprocessor.Params) (string, error) {
	args := m.Called(ctx, params)
	return args.String(0), args.Error(1)
}

func setupSuite(t *testing.T) (*CeremonyServiceMock, *resty.Client) {
	r := chi.NewRouter()

	ceremonyServiceMock := new(CeremonyServiceMock)
	c := ceremony.New(ceremonyServiceMock, zap.NewNop().Sugar())

	r.Mount("/", c.Route())

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	client := resty.New().
		SetBaseURL(ts.URL).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))

	return ceremonyServiceMock, client
}

func TestOpenSigningCeremonyHandler(t *testing.T) {
	apiErr := &esign.APIError{
		StatusCode: http.StatusUnauthorized,
		Body:       []byte(`{"errorCode":"AUTHORIZATION_INVALID_TOKEN","message":"The access token provided is expired, revoked or malformed."}`),
	}

	tests := []struct {
		name             string
		method           string
		url              string
		params           ceremonyprocessor.Params
		returnURL        string
		returnErr        error
		expectCall       bool
		expectedStatus   int
		expectedLocation string
		expectedBody     []string
	}{
		{
			name:             "should redirect to signing url",
			method:           http.MethodGet,
			url:              "/",
			returnURL:        "https://demo.docusign.net/Signing/StartInSession.aspx?t=abc",
			expectCall:       true,
			expectedStatus:   http.StatusFound,
			expectedLocation: "https://demo.docusign.net/Signing/StartInSession.aspx?t=abc",
		},
		{
			name:   "should pass query overrides",
			method: http.MethodGet,
			url:    "/?ACCESS_TOKEN=tok&ACCOUNT_ID=42&USER_FULLNAME=Jane%20Doe&USER_EMAIL=jane%40example.com",
			params: ceremonyprocessor.Params{
				AccessToken: "tok",
				AccountID:   "42",
				SignerName:  "Jane Doe",
				SignerEmail: "jane@example.com",
			},
			returnURL:        "https://sign.example.com/s/1",
			expectCall:       true,
			expectedStatus:   http.StatusFound,
			expectedLocation: "https://sign.example.com/s/1",
		},
		{
			name:           "should render api problem page",
			method:         http.MethodGet,
			url:            "/",
			returnErr:      apiErr,
			expectCall:     true,
			expectedStatus: http.StatusOK,
			expectedBody: []string{
				"<h3>API problem</h3>",
				"<p>Status code 401</p>",
				"<p>Error message:</p>",
				"{\n    &#34;errorCode&#34;: &#34;AUTHORIZATION_INVALID_TOKEN&#34;,",
			},
		},
		{
			name:           "should render raw body of non json api problem",
			method:         http.MethodGet,
			url:            "/",
			returnErr:      &esign.APIError{StatusCode: http.StatusBadGateway, Body: []byte("<b>bad gateway</b>")},
			expectCall:     true,
			expectedStatus: http.StatusOK,
			expectedBody: []string{
				"<p>Status code 502</p>",
				"<pre><code>&lt;b&gt;bad gateway&lt;/b&gt;</code></pre>",
			},
		},
		{
			name:           "should ask for credentials",
			method:         http.MethodGet,
			url:            "/",
			returnErr:      ceremonyprocessor.ErrMissingCredentials,
			expectCall:     true,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   []string{"ACCESS_TOKEN", "ACCOUNT_ID"},
		},
		{
			name:           "should fail on unexpected error",
			method:         http.MethodGet,
			url:            "/",
			returnErr:      errors.New("read document: no such file or directory"),
			expectCall:     true,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:             "should redirect on head request",
			method:           http.MethodHead,
			url:              "/",
			returnURL:        "https://sign.example.com/s/1",
			expectCall:       true,
			expectedStatus:   http.StatusFound,
			expectedLocation: "https://sign.example.com/s/1",
		},
		{
			name:           "Invalid method",
			method:         http.MethodPost,
			url:            "/",
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ceremonyServiceMock, client := setupSuite(t)

			if tc.expectCall {
				ceremonyServiceMock.On("OpenSigningCeremony", mock.Anything, tc.params).Once().Return(tc.returnURL, tc.returnErr)
			}

			req := client.R()

			req.Method = tc.method
			req.URL = tc.url

			resp, err := req.Send()

			require.NoError(t, err)
			require.Equal(t, tc.expectedStatus, resp.StatusCode())
			ceremonyServiceMock.AssertExpectations(t)

			if tc.expectedLocation != "" {
				assert.Equal(t, tc.expectedLocation, resp.Header().Get("Location"))
			}

			for _, part := range tc.expectedBody {
				assert.Contains(t, resp.String(), part)
			}

			if !tc.expectCall {
				ceremonyServiceMock.AssertNotCalled(t, "OpenSigningCeremony", mock.Anything, mock.Anything)
			}
		})
	}
}
