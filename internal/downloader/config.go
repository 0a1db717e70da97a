package downloader

import (
	"net/http"

	"go.uber.org/zap"
)

// DefaultMaxRedirects is used when Config.MaxRedirects is zero
const DefaultMaxRedirects = 10

// Config contains the configuration for a download
type Config struct {
	// HTTPClient performs the requests. Its CheckRedirect policy is replaced
	// for the duration of the download; nil uses http.DefaultClient's transport.
	HTTPClient *http.Client
	// MaxRedirects is the maximum number of redirect hops followed; zero uses DefaultMaxRedirects.
	MaxRedirects int
	// UserAgent is sent with every request when not empty.
	UserAgent string
	// Logger receives one line per hop; nil discards.
	Logger *zap.Logger
	// OnContentLength is called once with the total size when the server announces it.
	OnContentLength func(total int64)
	// OnProgress is called after every chunk with the number of bytes written so far.
	OnProgress func(completed int64)
}

func (c Config) maxRedirects() int {
	if c.MaxRedirects <= 0 {
		return DefaultMaxRedirects
	}
	return c.MaxRedirects
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// client returns a copy of the configured client that hands redirect
// responses back to the caller instead of following them
func (c Config) client() *http.Client {
	var client http.Client
	if c.HTTPClient != nil {
		client = *c.HTTPClient
	}
	client.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return &client
}
