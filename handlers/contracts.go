// ABOUTME: Contract handlers: aggregated detail, operations history, versement
// ABOUTME: The detail endpoint fans out four upstream calls into one response

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/fmartineau/retraite-mobile-bff/middleware"
	"github.com/fmartineau/retraite-mobile-bff/models"
	"github.com/fmartineau/retraite-mobile-bff/upstream"
)

// ContractDetail aggregates contract infos, savings, management mode and
// eligibility into one mobile call. The contract call is required; the
// other three degrade to defaults when they fail.
func (h *Handler) ContractDetail(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	scont := r.PathValue("scont")
	codeCb := r.URL.Query().Get("codeCb")
	if codeCb == "" {
		codeCb = "98"
	}

	results, err := upstream.FanOut(r.Context(), h.relay, []upstream.Call{
		{Request: upstream.Request{Path: "/api/Contrat/" + scont + "/" + codeCb, Token: claims.UpstreamToken}, Required: true},
		{Request: upstream.Request{Path: "/api/Retraite/getEpargneUc/" + scont, Token: claims.UpstreamToken}, Default: []byte("null")},
		{Request: upstream.Request{Path: "/api/Retraite/getModeGestion/" + scont, Token: claims.UpstreamToken}, Default: []byte("[]")},
		{Request: upstream.Request{Path: "/api/Retraite/check_eligible/" + scont, Token: claims.UpstreamToken}, Default: []byte("null")},
	})
	if err != nil {
		var required *upstream.RequiredCallError
		if errors.As(err, &required) {
			forward(w, required.Result)
			return
		}
		slog.Error("contract detail aggregation failed", "scont", scont, "error", err)
		writeError(w, "upstream_error", "Impossible de charger le contrat.", http.StatusBadGateway)
		return
	}

	var contrat models.ContratDetail
	if err := results[0].Decode(&contrat); err != nil {
		slog.Error("contract upstream response unreadable", "scont", scont, "error", err)
		writeError(w, "upstream_error", "Impossible de charger le contrat.", http.StatusBadGateway)
		return
	}

	var epargne *models.EpargneUc
	if err := results[1].Decode(&epargne); err != nil {
		epargne = nil
	}
	var modes []models.ModeGestion
	if err := results[2].Decode(&modes); err != nil {
		modes = nil
	}
	var elig *models.Eligibilite
	if err := results[3].Decode(&elig); err != nil {
		elig = nil
	}

	writeJSON(w, http.StatusOK, models.BuildContractDetail(contrat, epargne, modes, elig))
}

// ContractOperations returns the reshaped operations history for a contract.
func (h *Handler) ContractOperations(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	scont := r.PathValue("scont")

	res, err := h.relay.Do(r.Context(), upstream.Request{
		Path:  "/api/Retraite/getEvenementCollectif/" + scont,
		Token: claims.UpstreamToken,
	})
	if err != nil {
		slog.Error("operations upstream call failed", "scont", scont, "error", err)
		writeError(w, "upstream_error", "Impossible de charger les operations.", http.StatusBadGateway)
		return
	}
	if !res.OK() {
		forward(w, res)
		return
	}

	var events []models.EvenementCollectif
	if err := res.Decode(&events); err != nil {
		slog.Error("operations upstream response unreadable", "scont", scont, "error", err)
		writeError(w, "upstream_error", "Impossible de charger les operations.", http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, models.MapOperations(events))
}

// ContractOperationDetail forwards the detail of one operation verbatim.
func (h *Handler) ContractOperationDetail(w http.ResponseWriter, r *http.Request) {
	h.relayForward(w, r, upstream.Request{
		Path: "/api/Retraite/getDetailsEvenement/" + r.PathValue("idMouvement"),
	})
}

// ContractVersement returns the scheduled payment info for a contract.
func (h *Handler) ContractVersement(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	scont := r.PathValue("scont")

	res, err := h.relay.Do(r.Context(), upstream.Request{
		Path:  "/api/Retraite/getVersement/" + scont,
		Token: claims.UpstreamToken,
	})
	if err != nil {
		slog.Error("versement upstream call failed", "scont", scont, "error", err)
		writeError(w, "upstream_error", "Impossible de charger le versement.", http.StatusBadGateway)
		return
	}
	if !res.OK() {
		forward(w, res)
		return
	}

	var info models.VersementInfo
	if err := res.Decode(&info); err != nil {
		slog.Error("versement upstream response unreadable", "scont", scont, "error", err)
		writeError(w, "upstream_error", "Impossible de charger le versement.", http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, models.MapPaymentInfo(info))
}

// ContractFinancialOptions forwards the financial options verbatim.
func (h *Handler) ContractFinancialOptions(w http.ResponseWriter, r *http.Request) {
	h.relayForward(w, r, upstream.Request{
		Path: "/api/Retraite/getOptionsFinancieres/" + r.PathValue("scont"),
	})
}

func queryValue(r *http.Request, key string) url.Values {
	if v := r.URL.Query().Get(key); v != "" {
		return url.Values{key: {v}}
	}
	return nil
}
