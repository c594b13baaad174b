// Package fetcher retrieves gauge-detail pages from the Harris County
// FWS site. It is deliberately thin: URL construction plus a single GET
// per call, with transport failures surfaced as *FetchError so callers
// can tell them apart from extraction failures.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

// FetchError is a transport-level failure: connection error, timeout, or
// a non-2xx status from the FWS site.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Config controls page fetching.
type Config struct {
	BaseURL   string
	UserAgent string
	Span      string
	Timeout   time.Duration
}

// Client fetches gauge-detail pages via a Colly collector.
type Client struct {
	cfg           Config
	baseCollector *colly.Collector
	logger        *zap.Logger
}

// New constructs a configured Client.
func New(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("fetcher: base URL required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("fetcher: parse base URL: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	base := colly.NewCollector(
		colly.UserAgent(cfg.UserAgent),
		colly.Async(true),
	)
	base.AllowURLRevisit = true
	base.WithTransport(&http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          8,
		MaxIdleConnsPerHost:   4,
		IdleConnTimeout:       30 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: cfg.Timeout,
		ForceAttemptHTTP2:     true,
	})
	if cfg.Timeout > 0 {
		base.SetRequestTimeout(cfg.Timeout)
	}

	return &Client{
		cfg:           cfg,
		baseCollector: base,
		logger:        logger,
	}, nil
}

// PageURL builds the gauge-detail URL for a location and as-of date:
// base + /GageDetail/Index/<id> with the as-of date and the fixed
// one-month span as query parameters.
func (c *Client) PageURL(locationID string, asOf time.Time) (string, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parse base URL: %w", err)
	}
	u = u.JoinPath("GageDetail", "Index", locationID)

	q := u.Query()
	q.Set("From", asOf.Format("01/02/2006"))
	q.Set("span", c.cfg.Span)
	q.Set("selIdx", "1")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// FetchPage performs a single GET for the gauge-detail page. No retries;
// retry policy belongs to callers who want one.
func (c *Client) FetchPage(ctx context.Context, locationID string, asOf time.Time) ([]byte, error) {
	pageURL, err := c.PageURL(locationID, asOf)
	if err != nil {
		return nil, err
	}

	collector := c.baseCollector.Clone()
	resultCh := make(chan fetchResult, 1)
	var once sync.Once
	send := func(res fetchResult) {
		once.Do(func() { resultCh <- res })
	}

	collector.OnResponse(func(r *colly.Response) {
		if r.StatusCode != http.StatusOK {
			send(fetchResult{err: &FetchError{
				URL:        pageURL,
				StatusCode: r.StatusCode,
				Err:        errors.New("unexpected status"),
			}})
			return
		}
		send(fetchResult{body: append([]byte(nil), r.Body...)})
	})

	collector.OnError(func(r *colly.Response, err error) {
		if err == nil {
			err = errors.New("unknown colly error")
		}
		fe := &FetchError{URL: pageURL, Err: err}
		if r != nil {
			fe.StatusCode = r.StatusCode
		}
		send(fetchResult{err: fe})
	})

	start := time.Now()
	if err := collector.Visit(pageURL); err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	collector.Wait()

	select {
	case res := <-resultCh:
		if cerr := ctx.Err(); cerr != nil {
			return nil, &FetchError{URL: pageURL, Err: cerr}
		}
		if res.err != nil {
			return nil, res.err
		}
		c.logger.Debug("fetched gauge page",
			zap.String("location", locationID),
			zap.Int("bytes", len(res.body)),
			zap.Duration("duration", time.Since(start)),
		)
		return res.body, nil
	default:
		return nil, &FetchError{URL: pageURL, Err: errors.New("fetch produced no result")}
	}
}

type fetchResult struct {
	body []byte
	err  error
}
