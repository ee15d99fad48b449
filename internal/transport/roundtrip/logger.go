package roundtrip

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/cinefluent/pkg/ctxutil"
)

// Logger logs each round trip with method, path, status, duration and
// request_id. 5xx responses and transport errors log at error level,
// everything else at debug.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return Func(func(r *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}

			level := slog.LevelDebug
			switch {
			case err != nil:
				level = slog.LevelError
				attrs = append(attrs, slog.String("error", err.Error()))
			default:
				attrs = append(attrs, slog.Int("status", resp.StatusCode))
				if resp.StatusCode >= 500 {
					level = slog.LevelError
				}
			}
			logger.LogAttrs(r.Context(), level, "http.roundtrip", attrs...)

			return resp, err
		})
	}
}
