package models

// Profile is the ledger's view of an account holder. It is fetched per
// operation and never persisted here; the ledger stays the system of
// record for balances.
type Profile struct {
	Login       string             `json:"login"`
	Email       string             `json:"email"`
	DisplayName string             `json:"display_name"`
	Roles       []string           `json:"roles"`
	Balances    map[string]float64 `json:"balances"`
}

// HasAccount reports whether the holder owns an account in the currency.
func (p *Profile) HasAccount(currency string) bool {
	_, ok := p.Balances[currency]
	return ok
}
