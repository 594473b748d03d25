package client

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/MKhiriev/go-cyr-records/internal/apperror"
)

// RenderError writes err for a person: field errors one per line when the
// store reported any, the message otherwise.
func RenderError(w io.Writer, err error) {
	if err == nil {
		return
	}

	var normalized *apperror.NormalizedError
	if !errors.As(err, &normalized) {
		fmt.Fprintf(w, "error: %s\n", err)
		return
	}

	if len(normalized.FieldErrors) == 0 {
		fmt.Fprintf(w, "error: %s\n", normalized.Message)
		return
	}

	fields := make([]string, 0, len(normalized.FieldErrors))
	for name := range normalized.FieldErrors {
		fields = append(fields, name)
	}
	slices.Sort(fields)

	for _, name := range fields {
		fmt.Fprintf(w, "%s: %s\n", name, normalized.FieldErrors[name].Message)
	}
}
