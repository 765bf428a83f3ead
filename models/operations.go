// ABOUTME: Operation history DTOs and upstream-to-mobile mapping
// ABOUTME: Reshapes upstream collective events into the mobile operations list

package models

// EvenementCollectif is one entry of the upstream operations history.
type EvenementCollectif struct {
	IdentifiantMouvement int     `json:"identifiantMouvement"`
	LibelleEvenement     string  `json:"libelleEvenement"`
	TypeEvenement        string  `json:"typeEvenement"`
	SousTypeEvenement    string  `json:"sousTypeEvenement"`
	ModeReglement        string  `json:"modeReglement"`
	DateEffet            string  `json:"dateEffet"`
	DateEncaissement     string  `json:"dateEncaissement"`
	MontantBrut          float64 `json:"montantBrut"`
	MontantNet           float64 `json:"montantNet"`
	Status               string  `json:"status"`
	IsAnnulation         bool    `json:"isAnnulation"`
}

// Operation is the mobile shape of one history entry.
type Operation struct {
	ID             int     `json:"id"`
	Label          string  `json:"label"`
	Type           string  `json:"type"`
	SubType        string  `json:"subType"`
	PaymentMethod  string  `json:"paymentMethod"`
	Date           string  `json:"date"`
	CashDate       string  `json:"cashDate"`
	AmountGross    float64 `json:"amountGross"`
	AmountNet      float64 `json:"amountNet"`
	Status         string  `json:"status"`
	IsCancellation bool    `json:"isCancellation"`
}

// MapOperations reshapes the upstream history. A nil input maps to an
// empty list, never null.
func MapOperations(events []EvenementCollectif) []Operation {
	operations := make([]Operation, 0, len(events))
	for _, evt := range events {
		operations = append(operations, Operation{
			ID:             evt.IdentifiantMouvement,
			Label:          evt.LibelleEvenement,
			Type:           evt.TypeEvenement,
			SubType:        evt.SousTypeEvenement,
			PaymentMethod:  evt.ModeReglement,
			Date:           evt.DateEffet,
			CashDate:       evt.DateEncaissement,
			AmountGross:    evt.MontantBrut,
			AmountNet:      evt.MontantNet,
			Status:         evt.Status,
			IsCancellation: evt.IsAnnulation,
		})
	}
	return operations
}
