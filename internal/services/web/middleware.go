package web

import (
	"log"
	"net/http"
	"time"

	"github.com/rs/xid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Middleware wraps an HTTP handler.
type Middleware func(http.Handler) http.Handler

// chain applies middlewares to next in declaration order: the first
// middleware is the outermost.
func chain(next http.Handler, middlewares ...Middleware) http.Handler {
	if next == nil {
		next = http.NotFoundHandler()
	}
	for i := len(middlewares) - 1; i >= 0; i-- {
		if middlewares[i] == nil {
			continue
		}
		next = middlewares[i](next)
	}
	return next
}

// requestIDHeader carries the per-request identifier to logs and clients.
const requestIDHeader = "X-Request-Id"

// withRequestID assigns each request a short unique identifier.
func withRequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = xid.New().String()
			}
			w.Header().Set(requestIDHeader, id)
			next.ServeHTTP(w, r)
		})
	}
}

// recoverPanic converts handler panics into 500 responses so one bad page
// render never takes the process down.
func recoverPanic() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if recovered := recover(); recovered != nil {
					log.Printf("panic serving %s %s: %v", r.Method, r.URL.Path, recovered)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
	w.ResponseWriter.WriteHeader(status)
}

// requestLogger logs one line per request with status and duration.
func requestLogger() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(recorder, r)
			status := recorder.status
			if status == 0 {
				status = http.StatusOK
			}
			log.Printf("%s %s %d %s %s", r.Method, r.URL.Path, status, time.Since(start).Round(time.Millisecond), w.Header().Get(requestIDHeader))
		})
	}
}

// withTracing opens one server span per request. When no tracer provider
// is registered the spans are no-ops.
func withTracing() Middleware {
	tracer := otel.Tracer("opsdash/web")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracer.Start(r.Context(), r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.target", r.URL.Path),
				),
			)
			defer span.End()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
