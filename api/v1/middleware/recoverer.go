package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
)

// Recoverer turns a panic in a downstream handler into a 500 response whose
// detail is the panic value.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			id, _ := GetRequestIDFromContext(r.Context())
			log.Printf("panic serving %s %s (request %s): %v\n%s", r.Method, r.URL.Path, id, rec, debug.Stack())

			sendError(w, fmt.Sprint(rec), http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
