// ABOUTME: Scheduled payment (versement) DTOs and mapping
// ABOUTME: Covers the programmed payment status, bank details and limits

package models

import "encoding/json"

// VersementInfo is the upstream payment information for one contract.
type VersementInfo struct {
	VersementProgrammeActif bool                 `json:"versementProgrammeActif"`
	MontantVP               float64              `json:"montantVP"`
	PeriodiciteVP           *int                 `json:"periodiciteVP"`
	DateProchainPrelevement *string              `json:"dateProchainPrelevement"`
	DateDernierPrelevement  *string              `json:"dateDernierPrelevement"`
	Indexation              bool                 `json:"indexation"`
	Iban                    string               `json:"iban"`
	Bic                     string               `json:"bic"`
	MontantMin              float64              `json:"montantMin"`
	MontantMax              float64              `json:"montantMax"`
	EcheancesImpayees       json.RawMessage      `json:"echeancesImpayees"`
	IsEligibleVIF           bool                 `json:"isEligibleVIF"`
	IsEligibleVP            bool                 `json:"isEligibleVP"`
	SupportsRepartition     []SupportRepartition `json:"supportsRepartition"`
}

// SupportRepartition is one slice of the programmed payment split.
type SupportRepartition struct {
	CodeSupport string  `json:"codeSupport"`
	Libelle     string  `json:"libelle"`
	Repartition float64 `json:"repartition"`
}

// PaymentInfo is the mobile shape of the versement endpoint.
type PaymentInfo struct {
	ScheduledPayment   ScheduledPayment    `json:"scheduledPayment"`
	IBAN               string              `json:"iban"`
	BIC                string              `json:"bic"`
	Limits             PaymentLimits       `json:"limits"`
	EligibleVIF        bool                `json:"eligibleVIF"`
	EligibleVP         bool                `json:"eligibleVP"`
	Allocations        []PaymentAllocation `json:"allocations"`
	UnpaidInstallments json.RawMessage     `json:"unpaidInstallments"`
}

type ScheduledPayment struct {
	Active    bool    `json:"active"`
	Amount    float64 `json:"amount"`
	Frequency *int    `json:"frequency"`
	NextDate  *string `json:"nextDate"`
	LastDate  *string `json:"lastDate"`
	Indexed   bool    `json:"indexed"`
}

type PaymentLimits struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type PaymentAllocation struct {
	Code       string  `json:"code"`
	Label      string  `json:"label"`
	Percentage float64 `json:"percentage"`
}

// MapPaymentInfo reshapes the upstream versement payload.
func MapPaymentInfo(v VersementInfo) PaymentInfo {
	allocations := make([]PaymentAllocation, 0, len(v.SupportsRepartition))
	for _, s := range v.SupportsRepartition {
		allocations = append(allocations, PaymentAllocation{
			Code:       s.CodeSupport,
			Label:      s.Libelle,
			Percentage: s.Repartition,
		})
	}
	unpaid := v.EcheancesImpayees
	if len(unpaid) == 0 || string(unpaid) == "null" {
		unpaid = json.RawMessage("[]")
	}
	return PaymentInfo{
		ScheduledPayment: ScheduledPayment{
			Active:    v.VersementProgrammeActif,
			Amount:    v.MontantVP,
			Frequency: v.PeriodiciteVP,
			NextDate:  v.DateProchainPrelevement,
			LastDate:  v.DateDernierPrelevement,
			Indexed:   v.Indexation,
		},
		IBAN:               v.Iban,
		BIC:                v.Bic,
		Limits:             PaymentLimits{Min: v.MontantMin, Max: v.MontantMax},
		EligibleVIF:        v.IsEligibleVIF,
		EligibleVP:         v.IsEligibleVP,
		Allocations:        allocations,
		UnpaidInstallments: unpaid,
	}
}
