package provider

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mirrorops/cloudiam/pkg/provider/query"
	"github.com/mirrorops/cloudiam/pkg/provider/sigv4"
)

// APIVersion is the identity service's Query API version, sent on every
// call.
const APIVersion = "2010-05-08"

const defaultEndpoint = "https://iam.amazonaws.com/"

// Config describes how to reach and sign for the provider.
type Config struct {
	// Endpoint overrides the provider endpoint, for test doubles and
	// region-specific deployments.
	Endpoint string
	// Region is the signing region.
	Region string
	// Credentials is the signing key pair.
	Credentials sigv4.Credentials
	// HTTPClient overrides the HTTP client; http.DefaultClient otherwise.
	HTTPClient *http.Client
}

// Client executes Query API calls over HTTP. It is the production Caller.
type Client struct {
	endpoint   string
	signer     *sigv4.Signer
	httpClient *http.Client
}

// NewClient creates a transport client from config.
func NewClient(cfg Config) *Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		endpoint:   endpoint,
		signer:     sigv4.NewSigner(cfg.Credentials, cfg.Region, "iam"),
		httpClient: httpClient,
	}
}

// Invoke issues one signed form-encoded POST for the named action and
// parses the XML response into a tree. Provider-reported failures are
// returned as *Error; everything else is a transport failure.
func (c *Client) Invoke(ctx context.Context, action string, params map[string]string) (*query.Node, error) {
	form := url.Values{}
	form.Set("Action", action)
	form.Set("Version", APIVersion)
	for key, value := range params {
		form.Set(key, value)
	}
	body := []byte(form.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", action, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")
	if err := c.signer.Sign(req, body, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to sign %s request: %w", action, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s call failed: %w", action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp)
	}

	root, err := query.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s response: %w", action, err)
	}
	return root, nil
}

// decodeError converts an ErrorResponse body into *Error, falling back to
// the HTTP status when the body is not the documented shape.
func decodeError(resp *http.Response) error {
	perr := &Error{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		perr.Message = resp.Status
		return perr
	}
	root, err := query.Parse(bytes.NewReader(data))
	if err != nil {
		perr.Message = resp.Status
		return perr
	}

	if detail := root.Child("Error"); detail != nil {
		perr.Code = detail.ChildText("Code")
		perr.Message = detail.ChildText("Message")
	}
	if perr.Message == "" {
		perr.Message = resp.Status
	}
	return perr
}
