package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ProblemTypeTooLarge marks request bodies over the endpoint's limit.
const ProblemTypeTooLarge = "https://salesdesk.dev/problems/request-too-large"

// DecodeJSON decodes a JSON body of at most limit bytes into dst. On
// failure it writes a 400 or 413 problem and returns false.
func DecodeJSON(w http.ResponseWriter, r *http.Request, limit int64, dst any) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, limit)).Decode(dst)
	if err == nil {
		return true
	}

	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		WriteProblem(w, Problem{
			Type:     ProblemTypeTooLarge,
			Title:    http.StatusText(http.StatusRequestEntityTooLarge),
			Status:   http.StatusRequestEntityTooLarge,
			Detail:   fmt.Sprintf("request body exceeds %d bytes", limit),
			Instance: r.URL.Path,
		})
		return false
	}
	BadRequest(w, "invalid request body", r.URL.Path)
	return false
}
