package dashboard

import "warda-panel/internal/models"

type JobStatusRow struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Customer      string  `json:"customer"`
	Company       string  `json:"company"`
	InvoiceStatus string  `json:"invoiceStatus"`
	Amount        float64 `json:"amount"`
	AmountWithVAT float64 `json:"amountWithVAT"`
	Collected     float64 `json:"collected"`
	Remaining     float64 `json:"remaining"`
	Completed     bool    `json:"completed"`
}

type JobSummaryResponse struct {
	Ongoing        []JobStatusRow `json:"ongoing"`
	Completed      []JobStatusRow `json:"completed"`
	TotalRemaining float64        `json:"totalRemaining"`
	TotalCollected float64        `json:"totalCollected"`
}

func JobStatuses(l *models.Ledger) []JobStatusRow {
	rows := make([]JobStatusRow, 0, len(l.Jobs))
	for _, j := range l.Jobs {
		rows = append(rows, JobStatusRow{
			ID:            j.ID,
			Name:          j.Name,
			Customer:      j.Customer,
			Company:       j.Company,
			InvoiceStatus: j.InvoiceStatus,
			Amount:        j.Amount,
			AmountWithVAT: j.AmountWithVAT(),
			Collected:     j.Collected,
			Remaining:     j.Remaining(),
			Completed:     j.Completed(),
		})
	}
	return rows
}

// JobSummary işleri devam eden / tamamlanan diye ikiye ayırır.
func JobSummary(l *models.Ledger) JobSummaryResponse {
	resp := JobSummaryResponse{
		Ongoing:   []JobStatusRow{},
		Completed: []JobStatusRow{},
	}
	for _, row := range JobStatuses(l) {
		if row.Completed {
			resp.Completed = append(resp.Completed, row)
		} else {
			resp.Ongoing = append(resp.Ongoing, row)
		}
		resp.TotalRemaining += row.Remaining
		resp.TotalCollected += row.Collected
	}
	return resp
}
