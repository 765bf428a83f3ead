// ABOUTME: Document list DTOs and upstream-to-mobile mapping
// ABOUTME: Covers statements, tax documents and contract notices

package models

// DocumentUpstream is one entry of the upstream documents list.
type DocumentUpstream struct {
	ID               string `json:"id"`
	Titre            string `json:"titre"`
	Type             string `json:"type"`
	TypeLibelle      string `json:"typeLibelle"`
	ReferenceContrat string `json:"referenceContrat"`
	Produit          string `json:"produit"`
	DateCreation     string `json:"dateCreation"`
	FichierUrl       string `json:"fichierUrl"`
	FichierType      string `json:"fichierType"`
	TailleFichier    int64  `json:"tailleFichier"`
	Lu               bool   `json:"lu"`
	Annee            int    `json:"annee"`
	Description      string `json:"description"`
	SignatureRequise bool   `json:"signatureRequise"`
	Signe            bool   `json:"signe"`
}

// DocumentsUpstream is the upstream documents list envelope.
type DocumentsUpstream struct {
	Documents []DocumentUpstream `json:"documents"`
	Total     int                `json:"total"`
}

// Document is the mobile shape of one document.
type Document struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Type              string `json:"type"`
	TypeLabel         string `json:"typeLabel"`
	ContractRef       string `json:"contractRef"`
	ProductType       string `json:"productType"`
	Date              string `json:"date"`
	FileURL           string `json:"fileUrl"`
	FileType          string `json:"fileType"`
	FileSize          int64  `json:"fileSize"`
	IsRead            bool   `json:"isRead"`
	Year              int    `json:"year"`
	Description       string `json:"description"`
	RequiresSignature bool   `json:"requiresSignature"`
	IsSigned          bool   `json:"isSigned"`
}

// DocumentList is the mobile documents envelope.
type DocumentList struct {
	Documents []Document `json:"documents"`
	Total     int        `json:"total"`
}

// MapDocuments reshapes the upstream documents list. Missing file types
// default to pdf and the total falls back to the list length.
func MapDocuments(in DocumentsUpstream) DocumentList {
	documents := make([]Document, 0, len(in.Documents))
	for _, d := range in.Documents {
		fileType := d.FichierType
		if fileType == "" {
			fileType = "pdf"
		}
		documents = append(documents, Document{
			ID:                d.ID,
			Title:             d.Titre,
			Type:              d.Type,
			TypeLabel:         d.TypeLibelle,
			ContractRef:       d.ReferenceContrat,
			ProductType:       d.Produit,
			Date:              d.DateCreation,
			FileURL:           d.FichierUrl,
			FileType:          fileType,
			FileSize:          d.TailleFichier,
			IsRead:            d.Lu,
			Year:              d.Annee,
			Description:       d.Description,
			RequiresSignature: d.SignatureRequise,
			IsSigned:          d.Signe,
		})
	}
	total := in.Total
	if total == 0 {
		total = len(documents)
	}
	return DocumentList{Documents: documents, Total: total}
}
