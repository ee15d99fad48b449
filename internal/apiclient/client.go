// Package apiclient is the CineFluent REST client. It attaches the session
// token, classifies HTTP statuses, retries transport failures and falls back
// to the offline catalog when the backend cannot serve a read.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/heartmarshall/cinefluent/internal/adapter/mockdata"
	"github.com/heartmarshall/cinefluent/internal/domain"
	"github.com/heartmarshall/cinefluent/internal/transport/roundtrip"
)

// APIPrefix is prepended to every endpoint path.
const APIPrefix = "/api/v1"

const maxErrorBody = 64 << 10

type sessionState interface {
	Token() string
	Begin(ctx context.Context, res domain.AuthResult) error
	SetUser(u domain.User)
	Clear(ctx context.Context) error
}

type fallback interface {
	Resolve(ctx context.Context, req mockdata.Request) (any, error)
}

// Options configures a Client.
type Options struct {
	// BaseURL is the server root, e.g. http://localhost:8000.
	BaseURL string
	Timeout time.Duration
	// MockMode skips the network and serves every call from the fallback.
	MockMode bool
	Retry    RetryPolicy
	// Transport is the innermost RoundTripper; nil means http.DefaultTransport.
	Transport http.RoundTripper
}

// Client is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	mockMode   bool
	retry      RetryPolicy

	session sessionState
	mock    fallback
	log     *slog.Logger
}

// New creates a Client.
func New(logger *slog.Logger, session sessionState, mock fallback, opts Options) *Client {
	log := logger.With("component", "apiclient")

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	transport := roundtrip.Chain(opts.Transport,
		roundtrip.RequestID,
		roundtrip.Logger(log),
		roundtrip.Bearer(session),
	)

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/") + APIPrefix,
		httpClient: &http.Client{Timeout: timeout, Transport: transport},
		mockMode:   opts.MockMode || strings.TrimSpace(opts.BaseURL) == "",
		retry:      opts.Retry,
		session:    session,
		mock:       mock,
		log:        log,
	}
}

// MockMode reports whether the client is serving everything offline.
func (c *Client) MockMode() bool { return c.mockMode }

type call struct {
	method string
	path   string
	query  url.Values
	body   any
}

func (c call) String() string { return c.method + " " + c.path }

// do executes a call and decodes the response into out (which may be nil).
// Transport failures are retried per the retry policy. Only read falls back
// to offline data afterwards; auth calls and writes return the error.
func (c *Client) do(ctx context.Context, cl call, out any) error {
	var body []byte
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("apiclient: encode %s: %w", cl, err)
		}
		body = b
	}

	if c.mockMode {
		return c.resolve(ctx, cl, body, out)
	}

	return c.retry.Do(ctx, func(ctx context.Context) error {
		return c.send(ctx, cl, body, out)
	}, func(attempt int, wait time.Duration, err error) {
		c.log.WarnContext(ctx, "request failed, retrying",
			slog.String("call", cl.String()),
			slog.Int("attempt", attempt),
			slog.Duration("wait", wait),
			slog.String("error", err.Error()))
	})
}

// send performs a single HTTP round trip. Transport failures come back
// marked retryable and wrapped in domain.ErrTransport.
func (c *Client) send(ctx context.Context, cl call, body []byte, out any) error {
	u := c.baseURL + cl.path
	if len(cl.query) > 0 {
		u += "?" + cl.query.Encode()
	}

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, cl.method, u, rd)
	if err != nil {
		return fmt.Errorf("apiclient: create request %s: %w", cl, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return retry.RetryableError(fmt.Errorf("%w: %s: %v", domain.ErrTransport, cl, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		statusErr := domain.StatusError(resp.StatusCode, errorDetail(raw))

		if resp.StatusCode == http.StatusUnauthorized {
			c.log.WarnContext(ctx, "session rejected by server, signing out", slog.String("call", cl.String()))
			_ = c.session.Clear(ctx)
		}
		return fmt.Errorf("apiclient: %s: %w", cl, statusErr)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("apiclient: decode %s: %w", cl, err)
	}
	return nil
}

// resolve serves a call from the fallback, round-tripping the value through
// JSON so out is filled exactly as a network response would fill it.
func (c *Client) resolve(ctx context.Context, cl call, body []byte, out any) error {
	v, err := c.mock.Resolve(ctx, mockdata.Request{
		Method: cl.method,
		Path:   cl.path,
		Query:  cl.query,
		Body:   body,
		Token:  c.session.Token(),
	})
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("apiclient: encode offline %s: %w", cl, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("apiclient: decode offline %s: %w", cl, err)
	}
	return nil
}

// once executes a call with a single attempt and no fallback.
func (c *Client) once(ctx context.Context, cl call) error {
	var body []byte
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("apiclient: encode %s: %w", cl, err)
		}
		body = b
	}
	if c.mockMode {
		return c.resolve(ctx, cl, body, nil)
	}
	return c.send(ctx, cl, body, nil)
}

// read runs a GET and, on any failure other than cancellation or an
// authentication failure, serves the same call from the fallback. The
// original error is returned only when the fallback cannot serve it either.
func read[T any](ctx context.Context, c *Client, cl call) (T, error) {
	var out T
	err := c.do(ctx, cl, &out)
	if err == nil || c.mockMode || ctx.Err() != nil || surfaced(err) {
		return out, err
	}

	msg := "request failed, serving offline data"
	if errors.Is(err, domain.ErrTransport) {
		msg = "backend unreachable, serving offline data"
	}
	c.log.WarnContext(ctx, msg,
		slog.String("call", cl.String()),
		slog.String("error", err.Error()))

	var fb T
	if ferr := c.resolve(ctx, cl, nil, &fb); ferr != nil {
		return out, err
	}
	return fb, nil
}

// errorDetail extracts the server message from an error body. It understands
// {"detail": ...}, {"error": ...} and {"message": ...}.
func errorDetail(body []byte) string {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	for _, key := range []string{"detail", "error", "message"} {
		raw, ok := payload[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err == nil {
			return buf.String()
		}
	}
	return ""
}
