package services

import (
	"log"
	"net/http"

	"github.com/petcare-hub/api-go/apierr"
)

// internalError logs the underlying data-layer failure with enough
// context to reconstruct it, then returns the opaque 500 the caller
// surfaces.
func internalError(op string, err error) *apierr.ApiError {
	log.Printf("%s: %v", op, err)
	return apierr.New(http.StatusInternalServerError, "Internal server error")
}
