package apperror

import (
	"errors"
	"net/http"
)

type handler func(w http.ResponseWriter, r *http.Request) error

// Middleware adapts an error-returning handler to http.HandlerFunc and
// translates known error kinds to statuses: not found -> 404,
// unauthorized -> 401, forbidden -> 403, any other AppError -> 400,
// upstream platform failures and everything unexpected -> 500 with a
// generic body so internals never leak to the caller.
func Middleware(h handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		err := h(w, r)
		if err == nil {
			return
		}

		var upstreamErr *UpstreamError
		if errors.As(err, &upstreamErr) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write(upstreamErr.Marshal())

			return
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			w.WriteHeader(appErr.Status())
			w.Write(appErr.Marshal())

			return
		}

		w.WriteHeader(http.StatusInternalServerError)
		w.Write(internalError().Marshal())
	}
}
