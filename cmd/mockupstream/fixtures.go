// ABOUTME: Fixture data for the mock upstream: one client, two contracts
// ABOUTME: Shapes mirror the real upstream payloads field for field

package main

const (
	clientID       = "1611830"
	clientPassword = "dev"
)

var contratDetails = map[string]string{
	"9948133000": `{"produit":"PERIN","scont":9948133000,"numeroContrat":"PERIN-2024-78542","dateEffet":"2020-03-15T00:00:00","codeCb":98,"employeur":"Groupama SA","dateFin":null,"statut":"Actif","categorieBeneficiaire":"Salaries cadres et non cadres"}`,
	"9948134000": `{"produit":"PERO","scont":9948134000,"numeroContrat":"PERO-2024-65231","dateEffet":"2021-09-01T00:00:00","codeCb":99,"employeur":"Groupama SA","dateFin":null,"statut":"Actif","categorieBeneficiaire":"Cadres"}`,
}

var epargneUc = map[string]string{
	"9948133000": `{"tauxPMValue":2.5,"montantPMValue":52826.0,"montantEpargne":75450.0,"socles":[{"type":1,"epargne":55000.0,"supports":[
		{"idSupport":1,"codeSupport":"FE001","libelleSupportFR":"Fonds Euro","codeISIN":"FR0000000001","risque":1,"perf_1AnGlissant":2.5,"montantEpargne":31689.0,"repartition":42.0,"deductible":true},
		{"idSupport":2,"codeSupport":"AE001","libelleSupportFR":"Actions Europe","codeISIN":"FR0000000002","risque":5,"perf_1AnGlissant":12.3,"montantEpargne":21131.0,"repartition":28.0,"deductible":true},
		{"idSupport":3,"codeSupport":"OB001","libelleSupportFR":"Obligations","codeISIN":"FR0000000003","risque":3,"perf_1AnGlissant":4.8,"montantEpargne":13581.0,"repartition":18.0,"deductible":true},
		{"idSupport":4,"codeSupport":"IM001","libelleSupportFR":"Immobilier","codeISIN":"FR0000000004","risque":3,"perf_1AnGlissant":6.2,"montantEpargne":9054.0,"repartition":12.0,"deductible":true}]}]}`,
	"9948134000": `{"tauxPMValue":2.3,"montantPMValue":11460.0,"montantEpargne":38200.0,"socles":[{"type":1,"epargne":38200.0,"supports":[
		{"idSupport":5,"codeSupport":"FE001","libelleSupportFR":"Fonds Euro","codeISIN":"FR0000000001","risque":1,"perf_1AnGlissant":2.5,"montantEpargne":11460.0,"repartition":30.0,"deductible":true},
		{"idSupport":6,"codeSupport":"AE001","libelleSupportFR":"Actions Europe","codeISIN":"FR0000000002","risque":5,"perf_1AnGlissant":10.2,"montantEpargne":17190.0,"repartition":45.0,"deductible":true},
		{"idSupport":7,"codeSupport":"OB001","libelleSupportFR":"Obligations","codeISIN":"FR0000000003","risque":3,"perf_1AnGlissant":4.1,"montantEpargne":9550.0,"repartition":25.0,"deductible":true}]}]}`,
}

var modesGestion = map[string]string{
	"9948133000": `[{"mode":"Libre","type":"Gestion Libre","profil":null,"ageRetraite":64,"dateRetraite":"2050-01-08T00:00:00"}]`,
	"9948134000": `[{"mode":"Pilotee","type":"Gestion Pilotee","profil":"Equilibre","ageRetraite":64,"dateRetraite":"2050-01-08T00:00:00"}]`,
}

var eligibilites = map[string]string{
	"9948133000": `{"contratCb":"9948133000-98","versementEligible":true,"arbitrageEligible":true,"renteEligible":false}`,
	"9948134000": `{"contratCb":"9948134000-99","versementEligible":true,"arbitrageEligible":true,"renteEligible":false}`,
}

var evenements = map[string]string{
	"9948133000": `[
		{"identifiantMouvement":1001,"libelleEvenement":"Versement programme","typeEvenement":"Versement","sousTypeEvenement":"Programme","modeReglement":"Prelevement","dateEncaissement":"2026-01-15T00:00:00","isAnnulation":false,"dateEffet":"2026-01-15T00:00:00","montantBrut":200.0,"montantNet":196.0,"status":"Traite"},
		{"identifiantMouvement":1002,"libelleEvenement":"Versement exceptionnel","typeEvenement":"Versement","sousTypeEvenement":"Libre","modeReglement":"Virement","dateEncaissement":"2026-01-01T00:00:00","isAnnulation":false,"dateEffet":"2026-01-01T00:00:00","montantBrut":5000.0,"montantNet":4900.0,"status":"Traite"},
		{"identifiantMouvement":1003,"libelleEvenement":"Versement programme","typeEvenement":"Versement","sousTypeEvenement":"Programme","modeReglement":"Prelevement","dateEncaissement":"2025-12-15T00:00:00","isAnnulation":false,"dateEffet":"2025-12-15T00:00:00","montantBrut":200.0,"montantNet":196.0,"status":"Traite"}]`,
	"9948134000": `[
		{"identifiantMouvement":2001,"libelleEvenement":"Abondement employeur","typeEvenement":"Versement","sousTypeEvenement":"Employeur","modeReglement":"Virement","dateEncaissement":"2025-11-20T00:00:00","isAnnulation":false,"dateEffet":"2025-11-20T00:00:00","montantBrut":1500.0,"montantNet":1500.0,"status":"Traite"}]`,
}

var versements = map[string]string{
	"9948133000": `{"versementProgrammeActif":true,"montantVP":200.0,"periodiciteVP":77,"dateProchainPrelevement":"2026-03-15T00:00:00","dateDernierPrelevement":"2026-01-15T00:00:00","indexation":false,"iban":"FR76 1234 5678 9012 3456 7890 123","bic":"BNPAFRPP","montantMin":50.0,"montantMax":50000.0,"echeancesImpayees":[],"isEligibleVIF":true,"isEligibleVP":true,"supportsRepartition":[
		{"codeSupport":"FE001","libelle":"Fonds Euro","repartition":42.0},
		{"codeSupport":"AE001","libelle":"Actions Europe","repartition":28.0},
		{"codeSupport":"OB001","libelle":"Obligations","repartition":18.0},
		{"codeSupport":"IM001","libelle":"Immobilier","repartition":12.0}]}`,
	"9948134000": `{"versementProgrammeActif":false,"montantVP":0,"periodiciteVP":null,"dateProchainPrelevement":null,"dateDernierPrelevement":null,"indexation":false,"iban":"FR76 1234 5678 9012 3456 7890 123","bic":"BNPAFRPP","montantMin":50.0,"montantMax":50000.0,"echeancesImpayees":[],"isEligibleVIF":true,"isEligibleVP":false,"supportsRepartition":[]}`,
}

var optionsFinancieres = map[string]string{
	"9948133000": `[{"code":"SECU_PLUS","libelle":"Securisation des plus-values","actif":false,"seuil":null},{"code":"DYN_EPARGNE","libelle":"Dynamisation de l'epargne","actif":false,"seuil":null}]`,
	"9948134000": `[{"code":"SECU_PLUS","libelle":"Securisation des plus-values","actif":true,"seuil":10.0}]`,
}

var synthese = `{"totalEpargne":113650.0,"nombreContrats":2,"dateSynthese":"2026-02-14T00:00:00","allocationGlobale":[
	{"codeSupport":"FE001","libelle":"Fonds Euro","montant":43149.0,"pourcentage":38.0},
	{"codeSupport":"AE001","libelle":"Actions Europe","montant":38321.0,"pourcentage":33.7},
	{"codeSupport":"OB001","libelle":"Obligations","montant":23131.0,"pourcentage":20.4},
	{"codeSupport":"IM001","libelle":"Immobilier","montant":9054.0,"pourcentage":7.9}],
	"alertes":[{"type":"versement","titre":"Versement programme","message":"Activez un versement programme sur votre contrat PERO Entreprise pour epargner regulierement.","priorite":2}]}`

var documents = `{"total":3,"documents":[
	{"id":"DOC-001","titre":"Releve annuel 2025","type":"releve","typeLibelle":"Releve de situation","referenceContrat":"PERIN-2024-78542","produit":"PERIN","dateCreation":"2026-01-31T00:00:00","fichierUrl":"/documents/DOC-001.pdf","fichierType":"pdf","tailleFichier":245120,"lu":false,"annee":2025,"description":"Releve de situation annuel de votre PERIN","signatureRequise":false,"signe":false},
	{"id":"DOC-002","titre":"IFU 2025","type":"fiscal","typeLibelle":"Document fiscal","referenceContrat":"PERIN-2024-78542","produit":"PERIN","dateCreation":"2026-02-10T00:00:00","fichierUrl":"/documents/DOC-002.pdf","fichierType":"pdf","tailleFichier":102400,"lu":false,"annee":2025,"description":"Imprime fiscal unique","signatureRequise":false,"signe":false},
	{"id":"DOC-003","titre":"Avenant contrat PERO","type":"contrat","typeLibelle":"Document contractuel","referenceContrat":"PERO-2024-65231","produit":"PERO","dateCreation":"2025-12-05T00:00:00","fichierUrl":"/documents/DOC-003.pdf","fichierType":"pdf","tailleFichier":512000,"lu":true,"annee":2025,"description":"Avenant a signer","signatureRequise":true,"signe":false}]}`

var notifications = `{"total":2,"nonLues":1,"notifications":[
	{"id":"NOTIF-001","titre":"Versement programme execute","message":"Votre versement mensuel de 200€ a ete effectue avec succes.","type":"versement","typeLibelle":"Versement","dateCreation":"2026-01-15T00:00:00","lu":false,"priorite":2,"actionUrl":"/contrats/9948133000/operations"},
	{"id":"NOTIF-002","titre":"Nouveau document disponible","message":"Votre releve annuel 2025 est disponible.","type":"document","typeLibelle":"Document","dateCreation":"2026-01-31T00:00:00","lu":true,"priorite":3,"actionUrl":"/documents"}]}`
