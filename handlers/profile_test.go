// ABOUTME: Tests for the profile read and contact update handlers
// ABOUTME: Verifies upstream reshaping and the renamed update bodies

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/fmartineau/retraite-mobile-bff/models"
)

const infosSalarieFixture = `{
	"salarieInfos": {
		"idClient": "CLT-001",
		"civilite": "M",
		"nom": "MARTIN",
		"prenom": "Jean",
		"email": "jean.martin@example.fr",
		"dateNaissance": "1975-03-22",
		"numeroSS": "175032275001123",
		"telephonePortable": {"numeroTelephone": "0612345678", "indicatifPays": "+33"},
		"adressePostale": {"adresse": "12 rue de la Paix", "complementAdresse": "Bat A", "codePostal": "75002", "ville": "Paris"}
	},
	"adhesionsInfos": [
		{
			"contrat": {"scont": 9948133000, "type": "PERIN", "typeContratLibelle": "PER Individuel", "libelleProduit": "Mon PERIN GAN", "referenceContrat": "PERIN-2024-78542", "dateEffet": "2024-01-01"},
			"adhesionCbs": [{"codeCb": 98}],
			"isAffiliationResilie": false,
			"isLiquide": false
		},
		{
			"contrat": {"scont": 9948134000, "type": "PERO", "typeContratLibelle": "PER Obligatoire", "libelleProduit": "PERO Entreprise", "referenceContrat": "PERO-2020-11203", "dateEffet": "2020-06-01"},
			"adhesionCbs": [],
			"isAffiliationResilie": true,
			"isLiquide": false
		}
	],
	"canModifInfos": true
}`

func TestProfileMapsUpstreamRecord(t *testing.T) {
	upstreamMux := http.NewServeMux()
	upstreamMux.HandleFunc("GET /api/Salarie/infosSalarie", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(infosSalarieFixture))
	})

	mux, codec := newTestMux(t, upstreamMux)

	req := httptest.NewRequest(http.MethodGet, "/profil", nil)
	req.Header.Set("Authorization", "Bearer "+sessionToken(t, codec))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}

	var profile models.Profile
	decodeBody(t, rec, &profile)
	if profile.ID != "CLT-001" || profile.FirstName != "Jean" || profile.LastName != "MARTIN" {
		t.Errorf("identity = %q %q %q", profile.ID, profile.FirstName, profile.LastName)
	}
	if profile.Phone == nil || *profile.Phone != "0612345678" {
		t.Errorf("Phone = %v, want 0612345678", profile.Phone)
	}
	if profile.Address.Complement == nil || *profile.Address.Complement != "Bat A" {
		t.Errorf("Complement = %v, want Bat A", profile.Address.Complement)
	}
	if !profile.CanModify {
		t.Error("CanModify = false, want true")
	}
	if len(profile.Contracts) != 2 {
		t.Fatalf("Contracts = %d, want 2", len(profile.Contracts))
	}
	if !profile.Contracts[0].IsActive || profile.Contracts[0].CodeCb != 98 {
		t.Errorf("first contract = %+v", profile.Contracts[0])
	}
	if profile.Contracts[1].IsActive || profile.Contracts[1].CodeCb != 0 {
		t.Errorf("second contract = %+v", profile.Contracts[1])
	}
}

func TestProfileForwardsUpstreamError(t *testing.T) {
	upstreamMux := http.NewServeMux()
	upstreamMux.HandleFunc("GET /api/Salarie/infosSalarie", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"type":"https://tools.ietf.org/html/rfc7235#section-3.1","title":"Unauthorized","status":401}`))
	})

	mux, codec := newTestMux(t, upstreamMux)

	req := httptest.NewRequest(http.MethodGet, "/profil", nil)
	req.Header.Set("Authorization", "Bearer "+sessionToken(t, codec))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want forwarded 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"title":"Unauthorized"`) {
		t.Errorf("body = %s, want verbatim upstream payload", rec.Body.String())
	}
}

func TestUpdateAddressRenamesBodyFields(t *testing.T) {
	var gotBody atomic.Value
	upstreamMux := http.NewServeMux()
	upstreamMux.HandleFunc("POST /api/Salarie/modifAdresse", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding relayed body: %v", err)
		}
		gotBody.Store(body)
		w.Write([]byte(`{"success":true}`))
	})

	mux, codec := newTestMux(t, upstreamMux)

	req := httptest.NewRequest(http.MethodPut, "/profil/address",
		strings.NewReader(`{"street":"3 avenue Foch","complement":"Etage 2","postalCode":"69006","city":"Lyon"}`))
	req.Header.Set("Authorization", "Bearer "+sessionToken(t, codec))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}
	body, _ := gotBody.Load().(map[string]any)
	if body["newAdresse"] != "3 avenue Foch" || body["newCodePostal"] != "69006" || body["newVille"] != "Lyon" {
		t.Errorf("relayed body = %v", body)
	}
	if body["newCompAdresse"] != "Etage 2" {
		t.Errorf("newCompAdresse = %v, want Etage 2", body["newCompAdresse"])
	}
	if v, present := body["newLieuDit"]; !present || v != nil {
		t.Errorf("newLieuDit = %v (present=%v), want explicit null", v, present)
	}
}

func TestUpdateEmailAndPhone(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		body         string
		upstreamPath string
		wantField    string
		wantValue    string
	}{
		{"email", "/profil/email", `{"email":"new@example.fr"}`, "POST /api/Salarie/modifEmail", "newMail", "new@example.fr"},
		{"phone", "/profil/phone", `{"phone":"0698765432"}`, "POST /api/Salarie/modifPhone", "newTelephone", "0698765432"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotBody atomic.Value
			upstreamMux := http.NewServeMux()
			upstreamMux.HandleFunc(tt.upstreamPath, func(w http.ResponseWriter, r *http.Request) {
				var body map[string]any
				if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
					t.Errorf("decoding relayed body: %v", err)
				}
				gotBody.Store(body)
				w.Write([]byte(`{"success":true}`))
			})

			mux, codec := newTestMux(t, upstreamMux)

			req := httptest.NewRequest(http.MethodPut, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Authorization", "Bearer "+sessionToken(t, codec))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
			}
			body, _ := gotBody.Load().(map[string]any)
			if body[tt.wantField] != tt.wantValue {
				t.Errorf("relayed body = %v, want %s=%s", body, tt.wantField, tt.wantValue)
			}
		})
	}
}

func TestUpdateAddressRejectsMalformedBody(t *testing.T) {
	mux, codec := newDeadUpstreamMux(t)

	req := httptest.NewRequest(http.MethodPut, "/profil/address", strings.NewReader(`{`))
	req.Header.Set("Authorization", "Bearer "+sessionToken(t, codec))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var errResp models.ErrorResponse
	decodeBody(t, rec, &errResp)
	if errResp.Error != "invalid_request" {
		t.Errorf("kind = %q, want invalid_request", errResp.Error)
	}
}
