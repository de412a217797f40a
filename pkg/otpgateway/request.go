package otpgateway

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
)

// Call posts a form to an arbitrary gateway endpoint and returns the raw
// body. An empty endpoint falls back to the configured default override;
// ErrMissingEndpoint when neither is set. The core operations do not go
// through the override, they always name their endpoint.
func (c *Client) Call(ctx context.Context, endpoint string, form url.Values) (string, error) {
	return c.post(ctx, endpoint, form)
}

// post resolves the target URL, attaches authentication and sends the
// form-encoded request, returning the raw response body. Authentication is a
// bearer header when a token is configured; an empty token degenerates to an
// unauthenticated request carrying an empty access_token query parameter.
func (c *Client) post(ctx context.Context, endpoint string, form url.Values) (string, error) {
	if endpoint == "" {
		endpoint = c.cfg.Endpoint
	}
	if endpoint == "" {
		return "", ErrMissingEndpoint
	}

	target := strings.TrimRight(c.cfg.BaseURL, "/") + "/" + endpoint

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	var headers map[string]string
	if c.cfg.Token != "" {
		headers = map[string]string{"Authorization": "Bearer " + c.cfg.Token}
	} else {
		target += "?access_token=" + url.QueryEscape(c.cfg.Token)
	}

	resp, err := c.client.PostForm(ctx, target, form, headers)
	if err != nil {
		return "", err
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// formatParam renders a parameter value for the form body. Values are
// forwarded verbatim; no type coercion beyond stringification.
func formatParam(value any) string {
	switch v := value.(type) {
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
