package models

// BilancoItem: elle girilen bilanço satırı (varlık, alacak veya borç)
type BilancoItem struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

func (b *BilancoItem) RecordID() string      { return b.ID }
func (b *BilancoItem) SetRecordID(id string) { b.ID = id }
func (b *BilancoItem) Normalize()            {}

func (b *BilancoItem) Validate() []string {
	var errs []string
	if blank(b.Name) {
		errs = append(errs, "Ad boş olamaz")
	}
	return errs
}
