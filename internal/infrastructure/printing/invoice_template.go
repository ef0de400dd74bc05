package printing

// invoiceTemplateHTML is the default French invoice layout, printed on A4.
// Labels follow Moroccan invoicing conventions.
const invoiceTemplateHTML = `<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="UTF-8">
<title>Facture {{.Number}}</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; font-size: 10pt; color: #1f2937; margin: 0; }
  .header { display: flex; align-items: flex-start; gap: 16px; margin-bottom: 24px; }
  .header img { width: 72px; height: 72px; object-fit: contain; }
  .company-name { font-size: 14pt; font-weight: bold; color: #1f2937; }
  h1 { font-size: 20pt; color: #2563eb; text-align: center; margin: 24px 0; }
  h2 { font-size: 12pt; color: #1f2937; margin: 16px 0 8px; }
  table { width: 100%; border-collapse: collapse; }
  .details td { border: 1px solid #d1d5db; padding: 6px 8px; vertical-align: top; }
  .details .head { background: #f3f4f6; font-weight: bold; }
  .items th { background: #2563eb; color: #f5f5f4; padding: 8px; border: 1px solid #111827; }
  .items td { padding: 6px 8px; border: 1px solid #111827; background: #f5f5dc; }
  .items td.desc { text-align: left; }
  .items td.num { text-align: right; }
  .items tr.total td { background: #fbbf24; font-weight: bold; }
  .words { margin: 24px 0; }
  .footer { margin-top: 24px; font-size: 9pt; }
</style>
</head>
<body>
  <div class="header">
    {{if .Team.LogoDataURI}}<img src="{{safeURL .Team.LogoDataURI}}" alt="logo">{{end}}
    <div>
      <div class="company-name">{{default "Your Company" .Team.Name}}</div>
      <div>ICE: {{default "N/A" .Team.ICE}}</div>
      <div>IF: {{default "N/A" .Team.IFNumber}}</div>
    </div>
  </div>

  <h1>FACTURE N° {{.Number}}</h1>

  <table class="details">
    <tr>
      <td class="head">DÉTAILS DE LA FACTURE</td>
      <td class="head">FACTURER À</td>
    </tr>
    <tr>
      <td>Date: {{formatDate .Date}}</td>
      <td><strong>{{.Client.Name}}</strong></td>
    </tr>
    <tr>
      <td>Date d'échéance: {{formatDate .DueDate}}</td>
      <td>ICE: {{default "N/A" .Client.ICE}}</td>
    </tr>
    <tr>
      <td>Statut: {{upper .Status}}</td>
      <td>IF: {{default "N/A" .Client.IFNumber}}</td>
    </tr>
  </table>

  <h2>ARTICLES</h2>
  <table class="items">
    <tr>
      <th>Description</th>
      <th>Quantité</th>
      <th>Prix unitaire</th>
      <th>Total</th>
    </tr>
    {{range .Items}}
    <tr>
      <td class="desc">{{.Description}}</td>
      <td class="num">{{.Quantity}}</td>
      <td class="num">{{formatMoney .UnitPrice $.Currency}}</td>
      <td class="num">{{formatMoney .Total $.Currency}}</td>
    </tr>
    {{end}}
    <tr class="total">
      <td colspan="2"></td>
      <td class="num">TOTAL:</td>
      <td class="num">{{formatMoney .Amount .Currency}}</td>
    </tr>
  </table>

  <p class="words"><strong>Montant en lettres:</strong> {{moneyToFrench .Amount}}</p>

  {{if or .Team.Address .Team.Phone .Team.Email}}
  <div class="footer">
    <h2>COORDONNÉES</h2>
    {{if .Team.Address}}<div>Adresse: {{.Team.Address}}</div>{{end}}
    {{if .Team.Phone}}<div>Téléphone: {{.Team.Phone}}</div>{{end}}
    {{if .Team.Email}}<div>Email: {{.Team.Email}}</div>{{end}}
  </div>
  {{end}}

  {{if or .Team.CNIE .Team.ProfessionalTaxNumber}}
  <div class="footer">
    {{if .Team.CNIE}}<div>CNIE: {{.Team.CNIE}}</div>{{end}}
    {{if .Team.ProfessionalTaxNumber}}<div>Taxe Professionnelle N°: {{.Team.ProfessionalTaxNumber}}</div>{{end}}
  </div>
  {{end}}
</body>
</html>`
