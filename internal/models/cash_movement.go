package models

import (
	"bytes"
	"encoding/json"
)

// PaymentMethod: gelir/giderin ödeme şekli
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "nakit" // kasayı etkileyen tek yöntem
	PaymentMethodBank       PaymentMethod = "banka"
	PaymentMethodCreditCard PaymentMethod = "kredi-karti"
	PaymentMethodCheck      PaymentMethod = "cek"
	PaymentMethodTransfer   PaymentMethod = "havale-eft"
)

// MarshalJSON: boş yöntem null yazılır; cari borç kayıtları ödeme şekli
// taşımaz ve kalıcı veride "paymentMethod": null olarak durur.
func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	if m == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(m))
}

func (m *PaymentMethod) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*m = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*m = PaymentMethod(s)
	return nil
}

// Kasa varsayılanı: tamamen boş bir Ledger ilk açılışta bu bakiye ile başlar.
const DefaultTotalCash = 125450.00

// cashEffect: nakit hareketin kasaya etkisi, yön +1 (giriş) / -1 (çıkış)
func cashEffect(method PaymentMethod, amount float64, direction float64) float64 {
	if method != PaymentMethodCash {
		return 0
	}
	return direction * amount
}
