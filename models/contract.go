// ABOUTME: Contract detail DTOs and the aggregate mapping for the detail endpoint
// ABOUTME: Derives allocation categories from support-code prefixes and risk buckets from the numeric scale

package models

import "fmt"

// Upstream DTOs.

type ContratDetail struct {
	Scont                 int64  `json:"scont"`
	NumeroContrat         string `json:"numeroContrat"`
	Produit               string `json:"produit"`
	Employeur             string `json:"employeur"`
	DateEffet             string `json:"dateEffet"`
	DateFin               string `json:"dateFin"`
	Statut                string `json:"statut"`
	CodeCb                int    `json:"codeCb"`
	CategorieBeneficiaire string `json:"categorieBeneficiaire"`
}

type EpargneUc struct {
	MontantEpargne float64 `json:"montantEpargne"`
	Socles         []Socle `json:"socles"`
}

type Socle struct {
	Supports []Support `json:"supports"`
}

type Support struct {
	IDSupport       int     `json:"idSupport"`
	LibelleSupport  string  `json:"libelleSupportFR"`
	CodeSupport     string  `json:"codeSupport"`
	CodeISIN        string  `json:"codeISIN"`
	Repartition     float64 `json:"repartition"`
	MontantEpargne  float64 `json:"montantEpargne"`
	Perf1AnGlissant float64 `json:"perf_1AnGlissant"`
	Risque          int     `json:"risque"`
	Deductible      bool    `json:"deductible"`
}

type ModeGestion struct {
	Mode         string `json:"mode"`
	Type         string `json:"type"`
	Profil       string `json:"profil"`
	AgeRetraite  int    `json:"ageRetraite"`
	DateRetraite string `json:"dateRetraite"`
}

type Eligibilite struct {
	VersementEligible bool `json:"versementEligible"`
	ArbitrageEligible bool `json:"arbitrageEligible"`
	RenteEligible     bool `json:"renteEligible"`
}

// Mobile contract.

type ContractDetail struct {
	Scont                 int64          `json:"scont"`
	ContractNumber        string         `json:"contractNumber"`
	ProductType           string         `json:"productType"`
	Name                  string         `json:"name"`
	Employer              string         `json:"employer"`
	StartDate             string         `json:"startDate"`
	EndDate               string         `json:"endDate"`
	Status                string         `json:"status"`
	CodeCb                int            `json:"codeCb"`
	CategorieBeneficiaire string         `json:"categorieBeneficiaire"`
	CurrentBalance        float64        `json:"currentBalance"`
	Allocations           []Allocation   `json:"allocations"`
	ManagementMode        ManagementMode `json:"managementMode"`
	Eligibility           Eligibility    `json:"eligibility"`
}

type Allocation struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Percentage  float64 `json:"percentage"`
	Amount      float64 `json:"amount"`
	Performance float64 `json:"performance"`
	RiskLevel   string  `json:"riskLevel"`
	CodeISIN    string  `json:"codeISIN"`
	CodeSupport string  `json:"codeSupport"`
	Deductible  bool    `json:"deductible"`
}

type ManagementMode struct {
	Mode           string `json:"mode"`
	Type           string `json:"type"`
	Profile        string `json:"profile"`
	RetirementAge  int    `json:"retirementAge"`
	RetirementDate string `json:"retirementDate"`
}

type Eligibility struct {
	Versement bool `json:"versement"`
	Arbitrage bool `json:"arbitrage"`
	Rente     bool `json:"rente"`
}

// SupportCategory derives the allocation category label from the support
// code prefix. The prefixes are an upstream naming convention.
func SupportCategory(codeSupport string) string {
	switch {
	case hasPrefix(codeSupport, "FE"):
		return "Fonds en euros"
	case hasPrefix(codeSupport, "AE"):
		return "Actions"
	case hasPrefix(codeSupport, "OB"):
		return "Obligations"
	case hasPrefix(codeSupport, "IM"):
		return "SCPI"
	default:
		return "Autre"
	}
}

// RiskBucket maps the upstream numeric risk scale (1-7) to a coarse level.
func RiskBucket(risque int) string {
	switch {
	case risque <= 2:
		return "low"
	case risque <= 4:
		return "medium"
	default:
		return "high"
	}
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

func productName(produit string) string {
	switch produit {
	case "PERIN":
		return "Mon PERIN GAN"
	case "PERO":
		return "PERO Entreprise"
	default:
		return produit
	}
}

// BuildContractDetail merges the four upstream facts of the detail
// endpoint into one mobile object. epargne and elig are nil and modes
// empty when their optional calls were defaulted.
func BuildContractDetail(contrat ContratDetail, epargne *EpargneUc, modes []ModeGestion, elig *Eligibilite) ContractDetail {
	out := ContractDetail{
		Scont:                 contrat.Scont,
		ContractNumber:        contrat.NumeroContrat,
		ProductType:           contrat.Produit,
		Name:                  productName(contrat.Produit),
		Employer:              contrat.Employeur,
		StartDate:             contrat.DateEffet,
		EndDate:               contrat.DateFin,
		Status:                contrat.Statut,
		CodeCb:                contrat.CodeCb,
		CategorieBeneficiaire: contrat.CategorieBeneficiaire,
		Allocations:           []Allocation{},
		ManagementMode: ManagementMode{
			Mode:          "Libre",
			Type:          "Gestion Libre",
			RetirementAge: 64,
		},
	}

	if epargne != nil {
		out.CurrentBalance = epargne.MontantEpargne
		for _, socle := range epargne.Socles {
			for _, support := range socle.Supports {
				out.Allocations = append(out.Allocations, Allocation{
					ID:          fmt.Sprintf("alloc_%d", support.IDSupport),
					Name:        support.LibelleSupport,
					Category:    SupportCategory(support.CodeSupport),
					Percentage:  support.Repartition,
					Amount:      support.MontantEpargne,
					Performance: support.Perf1AnGlissant,
					RiskLevel:   RiskBucket(support.Risque),
					CodeISIN:    support.CodeISIN,
					CodeSupport: support.CodeSupport,
					Deductible:  support.Deductible,
				})
			}
		}
	}

	if len(modes) > 0 {
		current := modes[0]
		if current.Mode != "" {
			out.ManagementMode.Mode = current.Mode
		}
		if current.Type != "" {
			out.ManagementMode.Type = current.Type
		}
		out.ManagementMode.Profile = current.Profil
		if current.AgeRetraite != 0 {
			out.ManagementMode.RetirementAge = current.AgeRetraite
		}
		out.ManagementMode.RetirementDate = current.DateRetraite
	}

	if elig != nil {
		out.Eligibility = Eligibility{
			Versement: elig.VersementEligible,
			Arbitrage: elig.ArbitrageEligible,
			Rente:     elig.RenteEligible,
		}
	}

	return out
}
