package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().SetBody(payload).Post(webhookURL)
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
// Redirects are not followed so a webhook cannot bounce signed bodies to
// another host.
func NewHTTPClient() *HTTPClient {
	client := resty.New().SetRedirectPolicy(resty.NoRedirectPolicy())
	return &HTTPClient{Client: client}
}
