package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-cyr-records/models"
)

// ErrEmptyAddress is returned by [NewHTTPRecordStore] when no base URL is configured.
var ErrEmptyAddress = errors.New("empty address")

// ErrorResponse is the JSON error body returned by the record store, e.g.
//
//	{"code": 400, "message": "Failed to create record.", "data": {"email": {"code": "validation_invalid_email", "message": "Must be a valid email address."}}}
type ErrorResponse struct {
	Code    int                        `json:"code"`
	Message string                     `json:"message"`
	Data    map[string]json.RawMessage `json:"data"`
}

// ResponseError is the single failure shape produced by the adapter.
//
// Status is the HTTP status of a rejected request, or 0 when the request
// never got a response (DNS, connect, timeout). OriginalErr holds the
// transport error in the latter case.
type ResponseError struct {
	Status      int
	URL         string
	Response    ErrorResponse
	OriginalErr error
}

func (e *ResponseError) Error() string {
	switch {
	case e == nil:
		return ""
	case e.Response.Message != "":
		return e.Response.Message
	case e.OriginalErr != nil:
		return e.OriginalErr.Error()
	case e.Status != 0:
		return fmt.Sprintf("http %d: %s", e.Status, http.StatusText(e.Status))
	default:
		return ""
	}
}

func (e *ResponseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.OriginalErr
}

// FieldErrors decodes the per-field entries of the response data bag.
// Entries that are not {code, message} objects are skipped. It returns nil
// when no entry could be decoded.
func (e *ResponseError) FieldErrors() models.FieldErrorMap {
	if e == nil || len(e.Response.Data) == 0 {
		return nil
	}

	fields := make(models.FieldErrorMap, len(e.Response.Data))
	for name, raw := range e.Response.Data {
		var fe models.FieldError
		if err := json.Unmarshal(raw, &fe); err != nil {
			continue
		}
		if fe.Code == "" && fe.Message == "" {
			continue
		}
		fields[name] = fe
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}
