package middleware

import "net/http"

// MethodOverride rewrites POST requests carrying a _method form field into
// the verb the field names. HTML forms can only submit GET and POST, so
// edit and delete forms post with a hidden _method field instead.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			switch r.PostFormValue("_method") {
			case http.MethodPut:
				r.Method = http.MethodPut
			case http.MethodPatch:
				r.Method = http.MethodPatch
			case http.MethodDelete:
				r.Method = http.MethodDelete
			}
		}
		next.ServeHTTP(w, r)
	})
}
