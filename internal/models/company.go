package models

import "strings"

// Company: tedarikçi (cari hesap tutulan firma)
type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (c *Company) RecordID() string      { return c.ID }
func (c *Company) SetRecordID(id string) { c.ID = id }

// İsimler gösterimde gruplama için büyük harfle saklanır.
func (c *Company) Normalize() {
	c.Name = strings.ToUpper(strings.TrimSpace(c.Name))
}

func (c *Company) Validate() []string {
	var errs []string
	if blank(c.Name) {
		errs = append(errs, "Tedarikçi adı boş olamaz")
	}
	return errs
}
