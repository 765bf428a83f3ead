// ABOUTME: Standalone mock of the upstream retirement API for local development
// ABOUTME: Serves one test client (1611830/dev) with two contracts under the real base path

package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const basePath = "/API_RETRAITE_V2"

func secret() []byte {
	if s := os.Getenv("MOCK_JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("dev-secret-do-not-use-in-production")
}

func main() {
	port := os.Getenv("MOCK_PORT")
	if port == "" {
		port = "3001"
	}

	mux := http.NewServeMux()

	mux.HandleFunc("POST "+basePath+"/api/Auth/connexion", login)

	mux.HandleFunc("GET "+basePath+"/api/Salarie/infosSalarie", authed(infosSalarie))
	mux.HandleFunc("POST "+basePath+"/api/Salarie/modifAdresse", authed(ack("Adresse modifiee avec succes")))
	mux.HandleFunc("POST "+basePath+"/api/Salarie/modifEmail", authed(ack("Email modifie avec succes")))
	mux.HandleFunc("POST "+basePath+"/api/Salarie/modifPhone", authed(ack("Telephone modifie avec succes")))

	mux.HandleFunc("GET "+basePath+"/api/Contrat/{scont}/{codeCb}", authed(byScont(contratDetails)))
	mux.HandleFunc("GET "+basePath+"/api/Retraite/getEpargneUc/{scont}", authed(byScont(epargneUc)))
	mux.HandleFunc("GET "+basePath+"/api/Retraite/getModeGestion/{scont}", authed(byScont(modesGestion)))
	mux.HandleFunc("GET "+basePath+"/api/Retraite/check_eligible/{scont}", authed(byScont(eligibilites)))
	mux.HandleFunc("GET "+basePath+"/api/Retraite/getEvenementCollectif/{scont}", authed(byScont(evenements)))
	mux.HandleFunc("GET "+basePath+"/api/Retraite/getVersement/{scont}", authed(byScont(versements)))
	mux.HandleFunc("GET "+basePath+"/api/Retraite/getOptionsFinancieres/{scont}", authed(byScont(optionsFinancieres)))
	mux.HandleFunc("GET "+basePath+"/api/Retraite/getDetailsEvenement/{id}", authed(detailsEvenement))
	mux.HandleFunc("GET "+basePath+"/api/Retraite/getSynthese", authed(serveRaw(synthese)))
	mux.HandleFunc("GET "+basePath+"/api/Retraite/get_arbitrage/{contrat}", authed(serveRaw(`{"demandes":[]}`)))

	mux.HandleFunc("POST "+basePath+"/api/Retraite/setVersement", authed(ack("Versement enregistre")))
	mux.HandleFunc("POST "+basePath+"/api/Retraite/set_arbitrage", authed(ack("Arbitrage enregistre")))
	mux.HandleFunc("POST "+basePath+"/api/Retraite/modification_versement_programme", authed(ack("Versement programme modifie")))
	mux.HandleFunc("POST "+basePath+"/api/Retraite/delete-versement-mensuel/{scont}", authed(ack("Versement mensuel supprime")))
	mux.HandleFunc("POST "+basePath+"/api/Retraite/modificationOptionFinanciere/{scont}", authed(ack("Option financiere modifiee")))
	mux.HandleFunc("POST "+basePath+"/api/Retraite/ModificationAgeRetraite", authed(ack("Age de retraite modifie")))
	mux.HandleFunc("POST "+basePath+"/api/Retraite/representation_prelevement", authed(ack("Representation demandee")))

	mux.HandleFunc("GET "+basePath+"/api/Documents/list", authed(serveRaw(documents)))
	mux.HandleFunc("POST "+basePath+"/api/Documents/{id}/mark-read", authed(ack("Document marque comme lu")))
	mux.HandleFunc("POST "+basePath+"/api/Documents/{id}/sign", authed(ack("Document signe")))

	mux.HandleFunc("GET "+basePath+"/api/Notifications/list", authed(serveRaw(notifications)))
	mux.HandleFunc("POST "+basePath+"/api/Notifications/{id}/mark-read", authed(ack("Notification marquee comme lue")))
	mux.HandleFunc("POST "+basePath+"/api/Notifications/mark-all-read", authed(ack("Notifications marquees comme lues")))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "mockupstream"})
	})

	slog.Info("Mock upstream listening", "addr", ":"+port, "base", basePath)
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Identifiant string `json:"identifiant"`
		MotDePasse  string `json:"motDePasse"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Identifiant == "" || req.MotDePasse == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Identifiant et mot de passe requis"})
		return
	}

	if req.Identifiant != clientID {
		writeJSON(w, http.StatusOK, map[string]int{"statutConnexion": 2})
		return
	}
	if req.MotDePasse != clientPassword {
		writeJSON(w, http.StatusOK, map[string]any{"statutConnexion": 6, "details": "2"})
		return
	}

	particip, _ := strconv.Atoi(req.Identifiant)
	claims := jwt.MapClaims{
		"particip": particip,
		"nom":      "Martin",
		"prenom":   "Jeremy",
		"exp":      time.Now().Add(time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Erreur interne"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"statutConnexion": 1,
		"access_token":    token,
		"token_type":      "Bearer",
		"expires_in":      3600,
	})
}

// authed rejects requests without a valid Bearer token signed with the
// shared secret.
func authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"type": "Unauthorized", "title": "Token manquant", "status": 401})
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")
		_, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) { return secret(), nil },
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"type": "Unauthorized", "title": "Token invalide ou expire", "status": 401})
			return
		}
		next(w, r)
	}
}

// byScont serves the fixture keyed by the {scont} path segment.
func byScont(fixtures map[string]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scont := r.PathValue("scont")
		body, ok := fixtures[scont]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Contrat " + scont + " non trouve"})
			return
		}
		writeRaw(w, body)
	}
}

func detailsEvenement(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	writeRaw(w, `{"identifiantMouvement":`+id+`,"libelleEvenement":"Versement programme","detailSupports":[{"codeSupport":"FE001","libelle":"Fonds Euro","montant":84.0},{"codeSupport":"AE001","libelle":"Actions Europe","montant":56.0},{"codeSupport":"OB001","libelle":"Obligations","montant":36.0},{"codeSupport":"IM001","libelle":"Immobilier","montant":24.0}]}`)
}

func serveRaw(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeRaw(w, body)
	}
}

func ack(message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": message})
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeRaw(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}
