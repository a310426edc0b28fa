package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/billfold/billfold/internal/config"
	ierr "github.com/billfold/billfold/internal/errors"
	"github.com/billfold/billfold/internal/httpclient"
	"github.com/billfold/billfold/internal/logger"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// client is the shared plumbing for the API-backed repositories: it knows the
// base URL, signs requests with the session token and decodes JSON bodies.
type client struct {
	httpClient httpclient.Client
	baseURL    string
	token      string
	logger     *logger.Logger
}

func newClient(httpClient httpclient.Client, cfg *config.Configuration, logger *logger.Logger) *client {
	return &client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.API.BaseURL, "/"),
		token:      cfg.API.Token,
		logger:     logger,
	}
}

func (c *client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return ierr.WithError(err).
				WithHint("Failed to encode request body").
				Mark(ierr.ErrInternal)
		}
		payload = data
	}

	resp, err := c.httpClient.Send(ctx, &httpclient.Request{
		Method: method,
		URL:    endpoint,
		Headers: map[string]string{
			"X-SESSION": c.token,
		},
		Body: payload,
	})
	if err != nil {
		return c.mapError(method, path, err)
	}

	if out != nil && len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, out); err != nil {
			return ierr.WithError(err).
				WithHint("Failed to decode API response").
				Mark(ierr.ErrHTTPClient)
		}
	}
	return nil
}

// mapError translates transport failures into the application error
// taxonomy. A 404 from the API becomes a not found error; everything else
// stays an http client error.
func (c *client) mapError(method, path string, err error) error {
	if httpErr, ok := httpclient.IsHTTPError(err); ok {
		c.logger.Errorw("api request failed",
			"method", method,
			"path", path,
			"status_code", httpErr.StatusCode)

		if httpErr.StatusCode == http.StatusNotFound {
			return ierr.WithError(err).
				WithHintf("Resource not found at %s", path).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).
			WithHint(fmt.Sprintf("API returned status %d", httpErr.StatusCode)).
			Mark(ierr.ErrHTTPClient)
	}
	return err
}
