// ABOUTME: Mutative action handlers: payments, arbitrages, contract changes
// ABOUTME: Pure relays; the upstream validates and the response is forwarded

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/fmartineau/retraite-mobile-bff/upstream"
)

// rawBody reads the request body without reshaping it. Action payloads
// are upstream contracts the BFF does not interpret.
func rawBody(r *http.Request) (json.RawMessage, error) {
	var body json.RawMessage
	if err := decodeJSON(r, &body); err != nil {
		return nil, err
	}
	return body, nil
}

// MakePayment relays a one-off or scheduled payment order.
func (h *Handler) MakePayment(w http.ResponseWriter, r *http.Request) {
	body, err := rawBody(r)
	if err != nil {
		writeError(w, "invalid_request", "Corps de requete invalide.", http.StatusBadRequest)
		return
	}
	h.relayForward(w, r, upstream.Request{
		Method: http.MethodPost,
		Path:   "/api/Retraite/setVersement",
		Body:   body,
	})
}

// MakeArbitrage relays a fund switch order.
func (h *Handler) MakeArbitrage(w http.ResponseWriter, r *http.Request) {
	body, err := rawBody(r)
	if err != nil {
		writeError(w, "invalid_request", "Corps de requete invalide.", http.StatusBadRequest)
		return
	}
	h.relayForward(w, r, upstream.Request{
		Method: http.MethodPost,
		Path:   "/api/Retraite/set_arbitrage",
		Body:   body,
	})
}

// GetArbitrage forwards the arbitrage state for a contract, optionally
// scoped to one request via ?idDemande=.
func (h *Handler) GetArbitrage(w http.ResponseWriter, r *http.Request) {
	h.relayForward(w, r, upstream.Request{
		Path:  "/api/Retraite/get_arbitrage/" + r.PathValue("contrat"),
		Query: queryValue(r, "idDemande"),
	})
}

// UpdateScheduledPayment relays a change to the existing scheduled payment.
func (h *Handler) UpdateScheduledPayment(w http.ResponseWriter, r *http.Request) {
	body, err := rawBody(r)
	if err != nil {
		writeError(w, "invalid_request", "Corps de requete invalide.", http.StatusBadRequest)
		return
	}
	h.relayForward(w, r, upstream.Request{
		Method: http.MethodPost,
		Path:   "/api/Retraite/modification_versement_programme",
		Body:   body,
	})
}

// DeleteScheduledPayment relays the removal of the monthly payment.
func (h *Handler) DeleteScheduledPayment(w http.ResponseWriter, r *http.Request) {
	h.relayForward(w, r, upstream.Request{
		Method: http.MethodPost,
		Path:   "/api/Retraite/delete-versement-mensuel/" + r.PathValue("scont"),
	})
}

// UpdateFinancialOption relays a financial option change for a contract.
func (h *Handler) UpdateFinancialOption(w http.ResponseWriter, r *http.Request) {
	body, err := rawBody(r)
	if err != nil {
		writeError(w, "invalid_request", "Corps de requete invalide.", http.StatusBadRequest)
		return
	}
	h.relayForward(w, r, upstream.Request{
		Method: http.MethodPost,
		Path:   "/api/Retraite/modificationOptionFinanciere/" + r.PathValue("scont"),
		Body:   body,
	})
}

// UpdateRetirementAge relays a retirement age change.
func (h *Handler) UpdateRetirementAge(w http.ResponseWriter, r *http.Request) {
	body, err := rawBody(r)
	if err != nil {
		writeError(w, "invalid_request", "Corps de requete invalide.", http.StatusBadRequest)
		return
	}
	h.relayForward(w, r, upstream.Request{
		Method: http.MethodPost,
		Path:   "/api/Retraite/ModificationAgeRetraite",
		Body:   body,
	})
}

// RepresentPayment relays the re-presentation of a failed direct debit.
func (h *Handler) RepresentPayment(w http.ResponseWriter, r *http.Request) {
	body, err := rawBody(r)
	if err != nil {
		writeError(w, "invalid_request", "Corps de requete invalide.", http.StatusBadRequest)
		return
	}
	h.relayForward(w, r, upstream.Request{
		Method: http.MethodPost,
		Path:   "/api/Retraite/representation_prelevement",
		Body:   body,
	})
}
