package handler

import "net/http"

// Subscriptions handles GET /subscriptions. No subscription protocol is
// implemented; the route answers 200 with an empty body.
func Subscriptions(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
