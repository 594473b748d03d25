package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-cyr-records/internal/config"
	"github.com/MKhiriev/go-cyr-records/internal/logger"
	"github.com/MKhiriev/go-cyr-records/internal/utils"
	"github.com/MKhiriev/go-cyr-records/models"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	traceIDHeader = "X-Trace-ID"

	recordsPath = "/api/collections/{collection}/records"
	recordPath  = "/api/collections/{collection}/records/{id}"
	authPath    = "/api/collections/{collection}/auth-with-password"
)

const tracerName = "github.com/MKhiriev/go-cyr-records/internal/adapter"

type httpRecordStore struct {
	client *utils.HTTPClient
	tokens TokenSource
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPRecordStore constructs the HTTP/REST implementation of [RecordStore].
// It normalises the base URL from adapterCfg.HTTPAddress (adding "http://"
// when no scheme is given and trimming trailing slashes) and applies the
// request timeout. Retries are left disabled: a failed request surfaces
// immediately.
//
// tokens may be nil, in which case every request is anonymous.
func NewHTTPRecordStore(adapterCfg config.ClientAdapter, tokens TokenSource, log *logger.Logger) (RecordStore, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpRecordStore{
		client: client,
		tokens: tokens,
		ids:    utils.NewUUIDGenerator(),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// AuthWithPassword implements [RecordStore]. It POSTs {identity, password}
// to /api/collections/{collection}/auth-with-password.
func (h *httpRecordStore) AuthWithPassword(ctx context.Context, collection, identity, password string) (models.AuthResult, error) {
	req := h.request(ctx).
		SetPathParam("collection", collection).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"identity": identity, "password": password})

	var result models.AuthResult
	if err := h.do(req, http.MethodPost, authPath, &result); err != nil {
		return models.AuthResult{}, err
	}
	return result, nil
}

// GetList implements [RecordStore]. It GETs /api/collections/{collection}/records.
func (h *httpRecordStore) GetList(ctx context.Context, collection string, opts models.ListOptions) (models.ListResult, error) {
	req := h.request(ctx).
		SetPathParam("collection", collection).
		SetQueryParam("page", strconv.Itoa(opts.Page)).
		SetQueryParam("perPage", strconv.Itoa(opts.PerPage))

	setQueryIfNotEmpty(req, "filter", opts.Filter)
	setQueryIfNotEmpty(req, "sort", opts.Sort)
	setQueryIfNotEmpty(req, "expand", opts.Expand)
	setQueryIfNotEmpty(req, "fields", opts.Fields)

	var result models.ListResult
	if err := h.do(req, http.MethodGet, recordsPath, &result); err != nil {
		return models.ListResult{}, err
	}
	return result, nil
}

// GetOne implements [RecordStore]. It GETs /api/collections/{collection}/records/{id}.
func (h *httpRecordStore) GetOne(ctx context.Context, collection, id string, query models.RecordQuery) (models.Record, error) {
	req := h.request(ctx).
		SetPathParam("collection", collection).
		SetPathParam("id", id)

	setQueryIfNotEmpty(req, "expand", query.Expand)
	setQueryIfNotEmpty(req, "fields", query.Fields)

	var record models.Record
	if err := h.do(req, http.MethodGet, recordPath, &record); err != nil {
		return nil, err
	}
	return record, nil
}

// Create implements [RecordStore]. It POSTs data to /api/collections/{collection}/records.
func (h *httpRecordStore) Create(ctx context.Context, collection string, data map[string]any) (models.Record, error) {
	req := h.request(ctx).
		SetPathParam("collection", collection).
		SetHeader("Content-Type", "application/json").
		SetBody(data)

	var record models.Record
	if err := h.do(req, http.MethodPost, recordsPath, &record); err != nil {
		return nil, err
	}
	return record, nil
}

// Update implements [RecordStore]. It PATCHes data to /api/collections/{collection}/records/{id}.
func (h *httpRecordStore) Update(ctx context.Context, collection, id string, data map[string]any) (models.Record, error) {
	req := h.request(ctx).
		SetPathParam("collection", collection).
		SetPathParam("id", id).
		SetHeader("Content-Type", "application/json").
		SetBody(data)

	var record models.Record
	if err := h.do(req, http.MethodPatch, recordPath, &record); err != nil {
		return nil, err
	}
	return record, nil
}

// Delete implements [RecordStore]. It sends DELETE /api/collections/{collection}/records/{id}.
func (h *httpRecordStore) Delete(ctx context.Context, collection, id string) error {
	req := h.request(ctx).
		SetPathParam("collection", collection).
		SetPathParam("id", id)

	return h.do(req, http.MethodDelete, recordPath, nil)
}

// request builds a request carrying the context, a fresh trace id and the
// current auth token. The store expects the raw token without a scheme.
func (h *httpRecordStore) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, h.ids.Generate())

	if h.tokens != nil {
		if token := h.tokens.Token(); token != "" {
			req.SetHeader("Authorization", token)
		}
	}
	return req
}

// do executes req and decodes a successful JSON body into out (if non-nil).
// Each call is wrapped in a client span whose context is propagated in the
// request headers.
func (h *httpRecordStore) do(req *resty.Request, method, path string, out any) error {
	traceID := req.Header.Get(traceIDHeader)
	log := h.logger.With().Str("trace_id", traceID).Str("method", method).Str("path", path).Logger()

	ctx, span := otel.Tracer(tracerName).Start(req.Context(), method+" "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.template", path),
			attribute.String("records.trace_id", traceID),
		),
	)
	defer span.End()

	req.SetContext(ctx)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := req.Execute(method, path)
	if err != nil {
		log.Err(err).Str("url", req.URL).Msg("request failed before a response was received")
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		return mapTransportError(req, err)
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode()))
	log.Debug().
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("record store responded")

	if err = mapHTTPError(resp); err != nil {
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode()))
		logRejection(&log, err)
		return err
	}

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		log.Err(err).Msg("failed to decode record store response")
		return &ResponseError{
			URL:         req.URL,
			OriginalErr: fmt.Errorf("decode response: %w", err),
		}
	}

	return nil
}

func logRejection(log *zerolog.Logger, err error) {
	respErr, ok := err.(*ResponseError)
	if !ok {
		return
	}
	log.Warn().
		Int("status", respErr.Status).
		Str("message", respErr.Response.Message).
		Int("field_errors", len(respErr.Response.Data)).
		Msg("record store rejected request")
}

func setQueryIfNotEmpty(req *resty.Request, key, value string) {
	if value != "" {
		req.SetQueryParam(key, value)
	}
}
