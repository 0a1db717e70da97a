package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"go.uber.org/zap"

	"mdl/internal/models"
)

// Download fetches reqURL into the file named dest and returns the number of bytes written
func Download(dest string, reqURL string, config Config) (int64, error) {
	return DownloadWithContext(context.Background(), dest, reqURL, config)
}

// DownloadWithContext fetches reqURL into the file named dest and returns the number of
// bytes written. Redirects are followed up to config.MaxRedirects hops; a redirect without
// a usable Location header, too many hops or a non-success status fail with
// models.ErrDownload, transport failures with models.ErrNetwork.
// dest is only created once a successful response arrives and is removed again if
// streaming the body fails.
func DownloadWithContext(ctx context.Context, dest string, reqURL string, config Config) (int64, error) {
	log := config.logger()

	resp, finalURL, err := follow(ctx, reqURL, config)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.ContentLength >= 0 && config.OnContentLength != nil {
		config.OnContentLength(resp.ContentLength)
	}

	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, fmt.Errorf("opening %s for writing: %w", dest, err)
	}

	completed, err := copyWithProgress(f, resp.Body, config.OnProgress)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("closing %s: %w", dest, closeErr)
	}
	if err != nil {
		_ = os.Remove(dest)
		return completed, err
	}

	log.Info("download completed",
		zap.String("url", finalURL),
		zap.String("file", dest),
		zap.Int64("bytes", completed))
	return completed, nil
}

// follow requests reqURL and walks the redirect chain until a non-redirect response.
// On success the caller owns the returned response body.
func follow(ctx context.Context, reqURL string, config Config) (*http.Response, string, error) {
	client := config.client()
	log := config.logger()
	limit := config.maxRedirects()

	current := reqURL
	for hops := 0; ; hops++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, current, nil)
		if err != nil {
			return nil, "", fmt.Errorf("%w: setting up request for %s: %v", models.ErrDownload, current, err)
		}
		if config.UserAgent != "" {
			req.Header.Set("User-Agent", config.UserAgent)
		}

		log.Debug("requesting", zap.String("url", current), zap.Int("hop", hops))
		resp, err := client.Do(req)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", models.ErrNetwork, err)
		}

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode <= 299:
			return resp, current, nil

		case isRedirect(resp.StatusCode):
			next, err := resp.Location()
			discard(resp)
			if err != nil {
				if errors.Is(err, http.ErrNoLocation) {
					return nil, "", fmt.Errorf("%w: %s from %s without Location header", models.ErrDownload, resp.Status, current)
				}
				return nil, "", fmt.Errorf("%w: invalid Location header from %s: %v", models.ErrDownload, current, err)
			}
			if hops >= limit {
				return nil, "", fmt.Errorf("%w: stopped after %d redirects at %s", models.ErrDownload, limit, current)
			}
			log.Debug("following redirect", zap.String("from", current), zap.String("to", next.String()), zap.Int("status", resp.StatusCode))
			current = next.String()

		default:
			discard(resp)
			return nil, "", fmt.Errorf("%w: GET %s: %s", models.ErrDownload, current, resp.Status)
		}
	}
}

// isRedirect reports 3xx statuses; 304 carries no Location and is treated as a failure
func isRedirect(status int) bool {
	return status >= 300 && status <= 399 && status != http.StatusNotModified
}

func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// copyWithProgress copies in to out, reporting the running total after every chunk
func copyWithProgress(out io.Writer, in io.Reader, progress func(completed int64)) (int64, error) {
	var completed int64
	buff := make([]byte, 32*1024)
	for {
		n, err := in.Read(buff)
		if n > 0 {
			if _, werr := out.Write(buff[:n]); werr != nil {
				return completed, fmt.Errorf("writing output: %w", werr)
			}
			completed += int64(n)
			if progress != nil {
				progress(completed)
			}
		}
		if err == io.EOF {
			return completed, nil
		}
		if err != nil {
			return completed, fmt.Errorf("%w: reading response body: %v", models.ErrNetwork, err)
		}
	}
}
