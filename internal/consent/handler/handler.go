// Package handler exposes the consent adapter over HTTP for demos and
// integration testing.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"cmpref/internal/audit"
	"cmpref/internal/consent/adapter"
	"cmpref/internal/consent/models"
	"cmpref/internal/platform/middleware"
	dErrors "cmpref/pkg/domain-errors"
	"cmpref/pkg/platform/httputil"
)

const (
	defaultChangesLimit = 50
	maxChangesLimit     = 500
)

// Service is the consent adapter surface served over HTTP.
type Service interface {
	Identity() (id, version string)
	ShouldCollectConsent() bool
	Consents(ctx context.Context) models.Snapshot
	GrantConsent(ctx context.Context, source models.Source, completion adapter.Completion) error
	DenyConsent(ctx context.Context, source models.Source, completion adapter.Completion) error
	ResetConsent(ctx context.Context, completion adapter.Completion) error
	ShowConsentDialog(ctx context.Context, dialogType models.DialogType, anchor any, completion adapter.Completion) error
}

// ChangeLog lists recorded consent events, oldest first.
type ChangeLog interface {
	List(ctx context.Context, limit int) ([]audit.Event, error)
}

// Handler handles consent endpoints.
type Handler struct {
	logger  *slog.Logger
	consent Service
	changes ChangeLog
}

// New creates a new consent Handler. changes may be nil, in which case the
// change feed reports unsupported.
func New(consent Service, changes ChangeLog, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		consent: consent,
		changes: changes,
	}
}

// Register registers the consent routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/v1/consent", func(r chi.Router) {
		r.Get("/", h.handleGetConsents)
		r.Get("/module", h.handleGetModule)
		r.Get("/should-collect", h.handleShouldCollect)
		r.Get("/changes", h.handleListChanges)
		r.Post("/grant", h.handleGrant)
		r.Post("/deny", h.handleDeny)
		r.Post("/reset", h.handleReset)
		r.Post("/dialog", h.handleShowDialog)
	})
}

func (h *Handler) handleGetModule(w http.ResponseWriter, _ *http.Request) {
	id, version := h.consent.Identity()
	httputil.WriteJSON(w, http.StatusOK, ModuleResponse{ModuleID: id, ModuleVersion: version})
}

func (h *Handler) handleGetConsents(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.consentsResponse(r.Context()))
}

func (h *Handler) handleShouldCollect(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, ShouldCollectResponse{
		ShouldCollectConsent: h.consent.ShouldCollectConsent(),
	})
}

func (h *Handler) handleGrant(w http.ResponseWriter, r *http.Request) {
	h.handleMutation(w, r, "grant", h.consent.GrantConsent)
}

func (h *Handler) handleDeny(w http.ResponseWriter, r *http.Request) {
	h.handleMutation(w, r, "deny", h.consent.DenyConsent)
}

func (h *Handler) handleMutation(w http.ResponseWriter, r *http.Request, op string,
	call func(context.Context, models.Source, adapter.Completion) error) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[MutationRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	var succeeded bool
	if err := call(ctx, models.Source(req.Source), func(ok bool) { succeeded = ok }); err != nil {
		h.logger.WarnContext(ctx, "consent operation failed",
			"operation", op,
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.writeOperation(ctx, w, succeeded)
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var succeeded bool
	if err := h.consent.ResetConsent(ctx, func(ok bool) { succeeded = ok }); err != nil {
		h.logger.WarnContext(ctx, "consent reset failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.writeOperation(ctx, w, succeeded)
}

func (h *Handler) handleShowDialog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[DialogRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	var anchor any
	if req.Anchor != "" {
		anchor = req.Anchor
	}
	var presented bool
	err := h.consent.ShowConsentDialog(ctx, models.DialogType(req.DialogType), anchor, func(ok bool) { presented = ok })
	if err != nil {
		h.logger.WarnContext(ctx, "consent dialog failed",
			"request_id", requestID,
			"dialog_type", req.DialogType,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusAccepted, DialogResponse{Presented: presented})
}

func (h *Handler) handleListChanges(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.changes == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnsupported, "change feed is not enabled"))
		return
	}

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	events, err := h.changes.List(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list consent changes",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list consent changes"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toChangesResponse(events))
}

func (h *Handler) writeOperation(ctx context.Context, w http.ResponseWriter, succeeded bool) {
	resp := h.consentsResponse(ctx)
	httputil.WriteJSON(w, http.StatusOK, OperationResponse{
		Succeeded:            succeeded,
		Consents:             resp.Consents,
		ShouldCollectConsent: resp.ShouldCollectConsent,
	})
}

func (h *Handler) consentsResponse(ctx context.Context) ConsentsResponse {
	snapshot := h.consent.Consents(ctx)
	consents := make(map[string]string, len(snapshot))
	for k, v := range snapshot {
		consents[string(k)] = string(v)
	}
	return ConsentsResponse{
		Consents:             consents,
		ShouldCollectConsent: h.consent.ShouldCollectConsent(),
	}
}

func parseLimit(raw string) (int, error) {
	if raw == "" {
		return defaultChangesLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > maxChangesLimit {
		return 0, dErrors.New(dErrors.CodeBadRequest, "limit must be between 1 and "+strconv.Itoa(maxChangesLimit))
	}
	return limit, nil
}

var _ Service = (*adapter.Adapter)(nil)
