package http

import (
	"errors"
	"net/http"

	"github.com/boardhive/jobboard/internal/mailer"
	"github.com/boardhive/jobboard/internal/objectstore"
	"github.com/boardhive/jobboard/internal/service"
	"github.com/boardhive/jobboard/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrPasswordPolicy:      http.StatusBadRequest,
	store.ErrEmailAlreadyTaken:     http.StatusBadRequest,
	store.ErrInvalidFilter:         http.StatusBadRequest,

	ErrNoSession:                       http.StatusUnauthorized,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrEmailUnverified:         http.StatusUnauthorized,
	service.ErrCertificateProcessing:   http.StatusUnauthorized,

	store.ErrAccountNotFound:      http.StatusNotFound,
	store.ErrListingNotFound:      http.StatusNotFound,
	service.ErrNoAccountsFound:    http.StatusNotFound,
	service.ErrNoListingsFound:    http.StatusNotFound,
	objectstore.ErrObjectNotFound: http.StatusNotFound,

	service.ErrTokenCreationFailed:  http.StatusInternalServerError,
	objectstore.ErrObjectStoreFault: http.StatusInternalServerError,
	mailer.ErrMailDelivery:          http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:       http.StatusInternalServerError,
	store.ErrExecutingQuery:         http.StatusInternalServerError,
	store.ErrScanningRow:            http.StatusInternalServerError,
	store.ErrScanningRows:           http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError derives the envelope message for a failed operation.
// Client-class errors (400/401/404) surface their sentinel message; the
// password policy error keeps its full multi-line explanation. Server faults
// always collapse to a generic message so that infrastructure details are
// logged but never leaked.
func messageFromError(err error, status int) string {
	if status == http.StatusInternalServerError {
		return http.StatusText(http.StatusInternalServerError)
	}

	switch {
	case errors.Is(err, service.ErrPasswordPolicy):
		return err.Error()
	case errors.Is(err, ErrNoSession):
		return "No session"
	case errors.Is(err, service.ErrEmailUnverified):
		return "Email unverified"
	case errors.Is(err, service.ErrCertificateProcessing):
		return "Certificate still processing"
	}

	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}

	return http.StatusText(status)
}
