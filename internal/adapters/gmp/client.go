// Package gmp is a client for the management protocol HTTP endpoint (gsad)
package gmp

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gsa/internal/platform/config"
	perr "gsa/internal/platform/errors"
	"gsa/internal/platform/logger"
	"gsa/internal/platform/metrics"
	pnet "gsa/internal/platform/net"

	"golang.org/x/time/rate"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultMaxRetry  = 3
	defaultRetryBase = 250 * time.Millisecond
	defaultBurst     = 10
	maxBody          = 32 << 20
)

// Options configures the Client
type Options struct {
	// URL is the gsad endpoint, e.g. https://gsad.local/gmp
	URL string

	// Token is used when the request context carries no session token
	Token string

	Timeout    time.Duration
	MaxRetries int
	RetryBase  time.Duration

	// RPS caps attempts per second across the client, zero means unlimited
	RPS   float64
	Burst int
}

// OptionsFrom reads the GSA_GMP_* keys from cfg (already prefixed with "GSA_")
func OptionsFrom(cfg config.Conf) Options {
	g := cfg.Prefix("GMP_")
	return Options{
		URL:        g.MayString("URL", ""),
		Token:      g.MayString("TOKEN", ""),
		Timeout:    g.MayDuration("TIMEOUT", defaultTimeout),
		MaxRetries: g.MayInt("MAX_RETRIES", defaultMaxRetry),
		RPS:        float64(g.MayInt("RPS", 0)),
		Burst:      g.MayInt("BURST", defaultBurst),
	}
}

// Meta describes how a command was answered
type Meta struct {
	Command    string        `json:"command"`
	Status     int           `json:"status"`
	StatusText string        `json:"status_text"`
	Attempts   int           `json:"attempts"`
	Elapsed    time.Duration `json:"elapsed"`
}

// Response is the raw XML answer to a command plus its metadata
type Response struct {
	Data []byte
	Meta Meta
}

// Client issues management protocol commands over HTTP with retries
type Client struct {
	http     *http.Client
	opts     Options
	endpoint *url.URL
	limiter  *rate.Limiter
	log      logger.Logger
	sleep    func(context.Context, time.Duration) error
	now      func() time.Time
}

// NewClient validates o and builds a Client
func NewClient(o Options) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(o.URL))
	if err != nil || !u.IsAbs() {
		return nil, perr.InvalidArgf("gmp url %q must be absolute", o.URL)
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	c := &Client{
		http:     &http.Client{Timeout: o.Timeout},
		opts:     o,
		endpoint: u,
		log:      *logger.Named("gmp"),
		sleep:    sleepCtx,
		now:      time.Now,
	}
	if o.RPS > 0 {
		if o.Burst <= 0 {
			o.Burst = defaultBurst
		}
		c.limiter = rate.NewLimiter(rate.Limit(o.RPS), o.Burst)
	}
	return c, nil
}

// Request sends one command; args must carry "cmd". GET sends args as the
// query string, any other method as a form body
func (c *Client) Request(ctx context.Context, method string, args url.Values) (Response, error) {
	cmd := args.Get("cmd")
	if cmd == "" {
		return Response{}, perr.InvalidArgf("gmp request without cmd")
	}
	args = cloneValues(args)
	if tok := c.token(ctx); tok != "" {
		args.Set("token", tok)
	}
	ctx = logger.WithCommand(ctx, cmd)
	log := logger.C(ctx)

	start := c.now()
	resp, err := c.do(ctx, method, args)
	elapsed := c.now().Sub(start)
	metrics.GMPRequestDuration.WithLabelValues(cmd).Observe(elapsed.Seconds())

	resp.Meta.Command = cmd
	resp.Meta.Elapsed = elapsed
	if err != nil {
		metrics.GMPRequestsTotal.WithLabelValues(cmd, "error").Inc()
		log.Warn().Err(err).Int("attempts", resp.Meta.Attempts).Dur("elapsed", elapsed).Msg("gmp command failed")
		return resp, err
	}
	metrics.GMPRequestsTotal.WithLabelValues(cmd, "ok").Inc()
	log.Debug().Int("status", resp.Meta.Status).Int("attempts", resp.Meta.Attempts).Dur("elapsed", elapsed).Msg("gmp command done")
	return resp, nil
}

func (c *Client) token(ctx context.Context) string {
	if tok := pnet.Token(ctx); tok != "" {
		return tok
	}
	return c.opts.Token
}

// do is the retry loop; transport errors and 502/503/504 are retried
func (c *Client) do(ctx context.Context, method string, args url.Values) (Response, error) {
	cmd := args.Get("cmd")
	var out Response
	for attempt := 0; ; attempt++ {
		out.Meta.Attempts = attempt + 1

		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return out, perr.Wrapf(err, perr.ErrorCodeTooManyRequests, "gmp %s: rate limited", cmd)
			}
		}
		req, err := c.newRequest(ctx, method, args)
		if err != nil {
			return out, err
		}
		resp, err := c.http.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return out, perr.Wrap(ctx.Err(), perr.ErrorCodeUnavailable, "gmp request cancelled")
			}
			if !c.retry(ctx, cmd, attempt, "transport error") {
				return out, perr.Wrapf(err, perr.ErrorCodeUnavailable, "gmp %s failed", cmd)
			}
			continue
		}

		body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBody))
		_ = resp.Body.Close()
		out.Meta.Status = resp.StatusCode
		out.Meta.StatusText = http.StatusText(resp.StatusCode)

		switch {
		case resp.StatusCode == http.StatusBadGateway,
			resp.StatusCode == http.StatusServiceUnavailable,
			resp.StatusCode == http.StatusGatewayTimeout:
			if !c.retry(ctx, cmd, attempt, "status "+strconv.Itoa(resp.StatusCode)) {
				return out, perr.Upstreamf("gmp %s: backend answered %d", cmd, resp.StatusCode)
			}
			continue
		case resp.StatusCode >= 400:
			return out, statusError(cmd, resp.StatusCode, "")
		}
		if readErr != nil {
			return out, perr.Wrapf(readErr, perr.ErrorCodeUpstream, "gmp %s: read body", cmd)
		}
		out.Data = body
		return out, nil
	}
}

func (c *Client) newRequest(ctx context.Context, method string, args url.Values) (*http.Request, error) {
	u := *c.endpoint
	var body io.Reader
	if method == http.MethodGet {
		u.RawQuery = args.Encode()
	} else {
		body = strings.NewReader(args.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "gmp new request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("Accept", "application/xml")
	if id := pnet.RequestID(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	return req, nil
}

// retry sleeps before the next attempt and reports whether one is allowed
func (c *Client) retry(ctx context.Context, cmd string, attempt int, reason string) bool {
	if attempt >= c.opts.MaxRetries {
		return false
	}
	back := c.backoff(attempt)
	metrics.GMPRetriesTotal.WithLabelValues(cmd).Inc()
	c.log.Warn().Str("gmp_cmd", cmd).Str("reason", reason).Int("attempt", attempt).Dur("retry_in", back).Msg("gmp retrying")
	return c.sleep(ctx, back) == nil
}

func (c *Client) backoff(attempt int) time.Duration {
	return min(c.opts.RetryBase<<uint(attempt), 10*time.Second)
}

// statusError maps a management protocol or HTTP status to a project error
func statusError(cmd string, status int, text string) error {
	if text == "" {
		text = http.StatusText(status)
	}
	switch {
	case status == http.StatusUnauthorized:
		return perr.Unauthorizedf("gmp %s: %s", cmd, text)
	case status == http.StatusForbidden:
		return perr.Forbiddenf("gmp %s: %s", cmd, text)
	case status == http.StatusNotFound:
		return perr.NotFoundf("gmp %s: %s", cmd, text)
	case status >= 400 && status < 500:
		return perr.InvalidArgf("gmp %s: %s", cmd, text)
	default:
		return perr.Upstreamf("gmp %s: %s", cmd, text)
	}
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v)+1)
	for k, vv := range v {
		out[k] = append([]string(nil), vv...)
	}
	return out
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Ping sends get_version, which the backend answers without a session
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.Request(ctx, http.MethodGet, url.Values{"cmd": {"get_version"}})
	if err != nil {
		return err
	}
	_, err = decodeResponse("get_version", resp.Data)
	return err
}
