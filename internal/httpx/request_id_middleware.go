package httpx

import (
	"net/http"

	"github.com/google/uuid"
)

// HeaderRequestID is echoed on every response so clients can correlate
// their failed calls with server logs.
const HeaderRequestID = "X-Request-Id"

// RequestIDMiddleware tags each request with an id. An id supplied by the
// caller is trusted and propagated unchanged.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(ContextWithRequestID(r.Context(), id)))
	})
}
