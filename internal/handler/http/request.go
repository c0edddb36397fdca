package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/boardhive/jobboard/internal/service"
	"github.com/boardhive/jobboard/models"
	"github.com/go-chi/chi/v5"
)

// maxMultipartMemory bounds the in-memory part of multipart parsing; larger
// file parts spill to disk.
const maxMultipartMemory = 32 << 20

// readFileUpload extracts one uploaded file from a parsed multipart form.
// A missing field returns (nil, nil); only a malformed part is an error.
func readFileUpload(r *http.Request, field string) (*models.FileUpload, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: malformed file field %q", service.ErrInvalidDataProvided, field)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: reading file field %q", service.ErrInvalidDataProvided, field)
	}

	return &models.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// formValuePtr returns a pointer to the form value when the field was
// submitted, and nil when it was absent. The distinction drives partial
// updates: absent means "leave unchanged", present-but-empty means "set to
// empty".
func formValuePtr(r *http.Request, field string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	values, ok := r.MultipartForm.Value[field]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

// formBoolPtr parses an optional boolean form value. An absent field returns
// (nil, nil); a present field must hold something [strconv.ParseBool] accepts.
func formBoolPtr(r *http.Request, field string) (*bool, error) {
	raw := formValuePtr(r, field)
	if raw == nil {
		return nil, nil
	}
	parsed, err := strconv.ParseBool(*raw)
	if err != nil {
		return nil, fmt.Errorf("%w: field %q wants a boolean", service.ErrInvalidDataProvided, field)
	}
	return &parsed, nil
}

// idURLParam parses the named chi URL parameter as a positive int64 id.
func idURLParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: invalid id %q", service.ErrInvalidDataProvided, raw)
	}
	return id, nil
}

// parseListQuery splits the request query into an exact-match field filter
// and the pagination window. The page and limit keys are reserved; every
// other key becomes a filter field. Unknown filter fields are rejected by the
// store layer.
func parseListQuery(r *http.Request) (filter map[string]string, page, limit uint64, err error) {
	query := r.URL.Query()

	filter = make(map[string]string)
	for key, values := range query {
		if key == "page" || key == "limit" {
			continue
		}
		if len(values) > 0 {
			filter[key] = values[0]
		}
	}

	// Pages are 1-based; zero and negative values select the first page.
	if raw := query.Get("page"); raw != "" {
		parsed, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			return nil, 0, 0, fmt.Errorf("%w: invalid page %q", service.ErrInvalidDataProvided, raw)
		}
		if parsed < 1 {
			parsed = 1
		}
		page = uint64(parsed)
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("%w: invalid limit %q", service.ErrInvalidDataProvided, raw)
		}
	}

	return filter, page, limit, nil
}
