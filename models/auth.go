// ABOUTME: Auth request/response models and the upstream login status taxonomy
// ABOUTME: Maps upstream connection status codes to stable mobile error kinds

package models

import "fmt"

// LoginRequest carries the mobile client's credentials. The secret is
// forwarded to upstream once and never stored.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Secret     string `json:"secret"`
}

// LoginResponse is the success shape of POST /auth/login and /auth/refresh.
type LoginResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}

// LoginRejection is the failure shape of POST /auth/login: the original
// upstream status code plus a stable error kind and user message.
type LoginRejection struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statutConnexion"`
	Error      string `json:"error"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
}

// UpstreamLogin is the body returned by the upstream login endpoint. The
// outcome is signaled in-body via StatutConnexion even on HTTP 200; the
// access token is opaque to the BFF.
type UpstreamLogin struct {
	StatutConnexion int    `json:"statutConnexion"`
	AccessToken     string `json:"access_token"`
	TokenType       string `json:"token_type"`
	ExpiresIn       int    `json:"expires_in"`
	Details         string `json:"details"`
}

// LoginStatus is the closed enum of upstream login status codes. The set
// is an external contract; new upstream codes fall through Classify's
// default arm until added here.
type LoginStatus int

const (
	StatusSuccess            LoginStatus = 1
	StatusUnknownAccount     LoginStatus = 2
	StatusInactiveAccount    LoginStatus = 3
	StatusClosedAccount      LoginStatus = 4
	StatusPasswordUnset      LoginStatus = 5
	StatusInvalidPassword    LoginStatus = 6
	StatusAccountLocked      LoginStatus = 8
	StatusAccountUnavailable LoginStatus = 9
	StatusPasswordExpired    LoginStatus = 10
	StatusNoAffiliation      LoginStatus = 11
)

// Classify maps a rejection status to its stable {error kind, user message}
// pair. details carries supplementary info from upstream (remaining
// attempts before lockout for StatusInvalidPassword). StatusSuccess is
// never classified; callers branch on it before calling Classify.
func (s LoginStatus) Classify(details string) (kind, message string) {
	switch s {
	case StatusUnknownAccount:
		return "unknown_account", "Identifiant incorrect. Verifiez votre identifiant ou numero client."
	case StatusInactiveAccount:
		return "inactive_account", "Votre compte a ete desactive. Veuillez contacter votre gestionnaire."
	case StatusClosedAccount:
		return "closed_account", "Votre compte est ferme. Veuillez contacter votre gestionnaire."
	case StatusPasswordUnset:
		return "password_unset", "Pour des raisons de securite, veuillez redefinir votre mot de passe."
	case StatusInvalidPassword:
		if details == "" {
			details = "?"
		}
		return "invalid_password", fmt.Sprintf("Code d'acces incorrect. Il vous reste %s essai(s) avant verrouillage.", details)
	case StatusAccountLocked:
		return "account_locked", "Votre espace est bloque suite a 3 mots de passe errones. Contactez votre gestionnaire."
	case StatusAccountUnavailable:
		return "account_unavailable", "Votre compte est momentanement indisponible."
	case StatusPasswordExpired:
		return "password_expired", "Mot de passe expire. Veuillez en definir un nouveau."
	case StatusNoAffiliation:
		return "no_affiliation", "Aucune affiliation valide pour votre espace personnel."
	default:
		return "unknown_error", "Une erreur inattendue est survenue."
	}
}
