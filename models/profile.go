// ABOUTME: Participant profile DTOs and upstream-to-mobile mapping
// ABOUTME: Reshapes the upstream employee record into the mobile profile contract

package models

// Upstream DTOs for /api/Salarie/infosSalarie.

type InfosSalarie struct {
	SalarieInfos   SalarieInfos `json:"salarieInfos"`
	AdhesionsInfos []Adhesion   `json:"adhesionsInfos"`
	CanModifInfos  bool         `json:"canModifInfos"`
}

type SalarieInfos struct {
	IDClient          string          `json:"idClient"`
	Civilite          string          `json:"civilite"`
	Nom               string          `json:"nom"`
	Prenom            string          `json:"prenom"`
	Email             string          `json:"email"`
	DateNaissance     string          `json:"dateNaissance"`
	NumeroSS          string          `json:"numeroSS"`
	TelephonePortable *Telephone      `json:"telephonePortable"`
	AdressePostale    *AdressePostale `json:"adressePostale"`
}

type Telephone struct {
	NumeroTelephone string `json:"numeroTelephone"`
	IndicatifPays   string `json:"indicatifPays"`
}

type AdressePostale struct {
	Adresse           string `json:"adresse"`
	ComplementAdresse string `json:"complementAdresse"`
	LieuDit           string `json:"lieuDit"`
	CodePostal        string `json:"codePostal"`
	Ville             string `json:"ville"`
}

type Adhesion struct {
	Contrat              ContratSummary `json:"contrat"`
	AdhesionCbs          []AdhesionCb   `json:"adhesionCbs"`
	IsAffiliationResilie bool           `json:"isAffiliationResilie"`
	IsLiquide            bool           `json:"isLiquide"`
}

type ContratSummary struct {
	Scont              int64  `json:"scont"`
	Type               string `json:"type"`
	TypeContratLibelle string `json:"typeContratLibelle"`
	LibelleProduit     string `json:"libelleProduit"`
	ReferenceContrat   string `json:"referenceContrat"`
	DateEffet          string `json:"dateEffet"`
}

type AdhesionCb struct {
	CodeCb int `json:"codeCb"`
}

// Mobile contract.

type Profile struct {
	ID          string            `json:"id"`
	FirstName   string            `json:"firstName"`
	LastName    string            `json:"lastName"`
	Email       string            `json:"email"`
	Phone       *string           `json:"phone"`
	PhonePrefix string            `json:"phonePrefix"`
	BirthDate   string            `json:"birthDate"`
	Civilite    string            `json:"civilite"`
	NumeroSS    string            `json:"numeroSS"`
	Address     ProfileAddress    `json:"address"`
	CanModify   bool              `json:"canModify"`
	Contracts   []ContractSummary `json:"contracts"`
}

type ProfileAddress struct {
	Street     string  `json:"street"`
	Complement *string `json:"complement"`
	PostalCode string  `json:"postalCode"`
	City       string  `json:"city"`
}

type ContractSummary struct {
	Scont     int64  `json:"scont"`
	CodeCb    int    `json:"codeCb"`
	Type      string `json:"type"`
	TypeLabel string `json:"typeLabel"`
	Name      string `json:"name"`
	Reference string `json:"reference"`
	StartDate string `json:"startDate"`
	IsActive  bool   `json:"isActive"`
}

// MapProfile reshapes the upstream employee record into the mobile
// profile. A contract is active unless its affiliation is terminated or
// already liquidated.
func MapProfile(in InfosSalarie) Profile {
	p := in.SalarieInfos

	out := Profile{
		ID:          p.IDClient,
		FirstName:   p.Prenom,
		LastName:    p.Nom,
		Email:       p.Email,
		PhonePrefix: "+33",
		BirthDate:   p.DateNaissance,
		Civilite:    p.Civilite,
		NumeroSS:    p.NumeroSS,
		CanModify:   in.CanModifInfos,
		Contracts:   make([]ContractSummary, 0, len(in.AdhesionsInfos)),
	}

	if p.TelephonePortable != nil {
		if p.TelephonePortable.NumeroTelephone != "" {
			num := p.TelephonePortable.NumeroTelephone
			out.Phone = &num
		}
		if p.TelephonePortable.IndicatifPays != "" {
			out.PhonePrefix = p.TelephonePortable.IndicatifPays
		}
	}

	if p.AdressePostale != nil {
		out.Address = ProfileAddress{
			Street:     p.AdressePostale.Adresse,
			PostalCode: p.AdressePostale.CodePostal,
			City:       p.AdressePostale.Ville,
		}
		if p.AdressePostale.ComplementAdresse != "" {
			comp := p.AdressePostale.ComplementAdresse
			out.Address.Complement = &comp
		}
	}

	for _, adh := range in.AdhesionsInfos {
		summary := ContractSummary{
			Scont:     adh.Contrat.Scont,
			Type:      adh.Contrat.Type,
			TypeLabel: adh.Contrat.TypeContratLibelle,
			Name:      adh.Contrat.LibelleProduit,
			Reference: adh.Contrat.ReferenceContrat,
			StartDate: adh.Contrat.DateEffet,
			IsActive:  !adh.IsAffiliationResilie && !adh.IsLiquide,
		}
		if len(adh.AdhesionCbs) > 0 {
			summary.CodeCb = adh.AdhesionCbs[0].CodeCb
		}
		out.Contracts = append(out.Contracts, summary)
	}

	return out
}
