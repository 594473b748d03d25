package adapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError turns a non-2xx response into a [*ResponseError]. The body is
// decoded as an [ErrorResponse] when possible; an undecodable body leaves
// Response empty and Status is still reported.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	respErr := &ResponseError{
		Status: resp.StatusCode(),
		URL:    requestURL(resp.Request),
	}

	if body := resp.Body(); len(body) > 0 {
		var er ErrorResponse
		if err := json.Unmarshal(body, &er); err == nil {
			respErr.Response = er
		}
	}

	return respErr
}

// mapTransportError wraps a failure to obtain any response.
func mapTransportError(req *resty.Request, err error) error {
	return &ResponseError{
		URL:         requestURL(req),
		OriginalErr: err,
	}
}

func requestURL(req *resty.Request) string {
	if req == nil {
		return ""
	}
	return req.URL
}
