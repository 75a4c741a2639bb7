package middleware

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/shard-launcher-service/internal/adapters/http/dto"
)

// Timeout gives each request a deadline of d. The handler writes into a
// buffer; if it has not returned by the deadline the client gets a 504
// problem response and whatever the handler writes later is discarded.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			r = r.WithContext(ctx)

			buf := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			go func() {
				defer close(done)
				next.ServeHTTP(buf, r)
			}()

			select {
			case <-done:
				buf.copyTo(w)
			case <-ctx.Done():
				buf.abandon()
				dto.WriteErrorResponse(w, r, fmt.Errorf("request exceeded %s: %w", d, ctx.Err()))
			}
		})
	}
}

// bufferedWriter holds a handler's response until Timeout decides whether
// to send it. Writes after abandon are dropped.
type bufferedWriter struct {
	mu        sync.Mutex
	header    http.Header
	body      bytes.Buffer
	status    int
	abandoned bool
}

// Header may be mutated by the handler goroutine after abandon; the real
// response never sees this map.
func (b *bufferedWriter) Header() http.Header {
	return b.header
}

func (b *bufferedWriter) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status == 0 {
		b.status = code
	}
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

func (b *bufferedWriter) abandon() {
	b.mu.Lock()
	b.abandoned = true
	b.mu.Unlock()
}

// copyTo runs after the handler returned, so the header map is no longer
// shared.
func (b *bufferedWriter) copyTo(w http.ResponseWriter) {
	b.mu.Lock()
	defer b.mu.Unlock()

	maps.Copy(w.Header(), b.header)
	if b.status != 0 {
		w.WriteHeader(b.status)
	}
	_, _ = w.Write(b.body.Bytes())
}
