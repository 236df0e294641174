package models

import "fmt"

// NoteSlots: not listesi her zaman bu kadar satır gösterir
const NoteSlots = 10

type Note struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// PadNotes listeyi NoteSlots satıra tamamlar ve fazlasını kırpar.
func PadNotes(notes []Note, createdAt string) []Note {
	out := make([]Note, 0, NoteSlots)
	for i := 0; i < len(notes) && i < NoteSlots; i++ {
		out = append(out, notes[i])
	}
	for len(out) < NoteSlots {
		out = append(out, Note{
			ID:        fmt.Sprintf("note-%d", len(out)),
			CreatedAt: createdAt,
		})
	}
	return out
}

// FixedExpenses: her ayın gider toplamına eklenen sabit kalemler
type FixedExpenses struct {
	Salary    float64 `json:"salary"`
	Insurance float64 `json:"insurance"`
	Loan      float64 `json:"loan"`
	Card      float64 `json:"card"`
}

func (f FixedExpenses) Total() float64 {
	return f.Salary + f.Insurance + f.Loan + f.Card
}
