// ABOUTME: Dashboard synthese DTOs and upstream-to-mobile mapping
// ABOUTME: Aggregated allocation across contracts plus personalized alerts

package models

// SyntheseUpstream is the upstream aggregate view of all contracts.
type SyntheseUpstream struct {
	TotalEpargne      float64             `json:"totalEpargne"`
	NombreContrats    int                 `json:"nombreContrats"`
	AllocationGlobale []AllocationGlobale `json:"allocationGlobale"`
	Alertes           []AlerteUpstream    `json:"alertes"`
	DateSynthese      string              `json:"dateSynthese"`
}

type AllocationGlobale struct {
	CodeSupport string  `json:"codeSupport"`
	Libelle     string  `json:"libelle"`
	Montant     float64 `json:"montant"`
	Pourcentage float64 `json:"pourcentage"`
}

type AlerteUpstream struct {
	Type     string `json:"type"`
	Titre    string `json:"titre"`
	Message  string `json:"message"`
	Priorite int    `json:"priorite"`
}

// Synthese is the mobile dashboard shape.
type Synthese struct {
	TotalSavings     float64            `json:"totalSavings"`
	ContractCount    int                `json:"contractCount"`
	GlobalAllocation []GlobalAllocation `json:"globalAllocation"`
	Alerts           []Alert            `json:"alerts"`
	LastUpdated      string             `json:"lastUpdated"`
}

type GlobalAllocation struct {
	Code       string  `json:"code"`
	Label      string  `json:"label"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
	Category   string  `json:"category"`
}

type Alert struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Priority int    `json:"priority"`
}

// MapSynthese reshapes the upstream aggregate view. Allocation
// categories reuse the support code prefix classification.
func MapSynthese(in SyntheseUpstream) Synthese {
	allocations := make([]GlobalAllocation, 0, len(in.AllocationGlobale))
	for _, a := range in.AllocationGlobale {
		allocations = append(allocations, GlobalAllocation{
			Code:       a.CodeSupport,
			Label:      a.Libelle,
			Amount:     a.Montant,
			Percentage: a.Pourcentage,
			Category:   SupportCategory(a.CodeSupport),
		})
	}
	alerts := make([]Alert, 0, len(in.Alertes))
	for _, a := range in.Alertes {
		alerts = append(alerts, Alert{
			Type:     a.Type,
			Title:    a.Titre,
			Message:  a.Message,
			Priority: a.Priorite,
		})
	}
	return Synthese{
		TotalSavings:     in.TotalEpargne,
		ContractCount:    in.NombreContrats,
		GlobalAllocation: allocations,
		Alerts:           alerts,
		LastUpdated:      in.DateSynthese,
	}
}
