package audit

import (
	"encoding/json"
	"net/http"

	"github.com/de-tools/conn-audit/pkg/models/api"
	"github.com/de-tools/conn-audit/pkg/models/domain"
	auditsvc "github.com/de-tools/conn-audit/pkg/services/audit"
	"github.com/de-tools/conn-audit/pkg/services/envref"
	"github.com/de-tools/conn-audit/pkg/services/integrity"
	"github.com/de-tools/conn-audit/pkg/services/remediation"
	"github.com/de-tools/conn-audit/pkg/services/template"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	orchestrator *auditsvc.Orchestrator
	settings     auditsvc.Settings
	lookup       envref.LookupFunc
}

// NewHandler builds the audit API handler. lookup may be nil to consult the
// process environment.
func NewHandler(settings auditsvc.Settings, lookup envref.LookupFunc) *Handler {
	return &Handler{
		orchestrator: auditsvc.NewOrchestrator(settings),
		settings:     settings,
		lookup:       lookup,
	}
}

func (h *Handler) Audit(w http.ResponseWriter, r *http.Request) {
	set, ok := h.decodeSet(w, r)
	if !ok {
		return
	}
	h.respond(w, r, http.StatusOK, api.FromDomainReport(h.orchestrator.Audit(set)))
}

func (h *Handler) Secure(w http.ResponseWriter, r *http.Request) {
	set, ok := h.decodeSet(w, r)
	if !ok {
		return
	}
	result, err := remediation.Secure(set, h.settings)
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, err)
		return
	}
	h.respond(w, r, http.StatusOK, api.FromDomainRemediation(result))
}

func (h *Handler) ValidateEnv(w http.ResponseWriter, r *http.Request) {
	set, ok := h.decodeSet(w, r)
	if !ok {
		return
	}
	h.respond(w, r, http.StatusOK, api.FromDomainEnvReport(envref.Validate(set, h.lookup)))
}

func (h *Handler) Digest(w http.ResponseWriter, r *http.Request) {
	set, ok := h.decodeSet(w, r)
	if !ok {
		return
	}
	h.respond(w, r, http.StatusOK, api.DigestResponse{
		Digest: string(integrity.Digest(set)),
	})
}

func (h *Handler) VerifyDigest(w http.ResponseWriter, r *http.Request) {
	var req api.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, http.StatusBadRequest, err)
		return
	}
	valid := integrity.Verify(req.Config.ToDomain(), domain.IntegrityDigest(req.Digest))
	h.respond(w, r, http.StatusOK, api.VerifyResponse{Valid: valid})
}

func (h *Handler) Template(w http.ResponseWriter, r *http.Request) {
	archetype := chi.URLParam(r, "archetype")
	id := r.URL.Query().Get("id")

	cfg, err := template.Generate(id, domain.Archetype(archetype))
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, err)
		return
	}
	h.respond(w, r, http.StatusOK, api.FromDomainConnector(cfg))
}

func (h *Handler) decodeSet(w http.ResponseWriter, r *http.Request) (domain.ConfigSet, bool) {
	var set api.ConfigSet
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		h.respondError(w, r, http.StatusBadRequest, err)
		return nil, false
	}
	return set.ToDomain(), true
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, status int, body any) {
	logger := zerolog.Ctx(r.Context())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, status int, err error) {
	logger := zerolog.Ctx(r.Context())
	logger.Warn().Err(err).Msg("request rejected")
	h.respond(w, r, status, map[string]string{"error": err.Error()})
}
