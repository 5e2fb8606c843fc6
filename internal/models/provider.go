package models

import "github.com/shopspring/decimal"

// BankBalances describes the balance block of a linked account. Limit is nil
// for depository accounts.
type BankBalances struct {
	Available decimal.Decimal  `json:"available"`
	Current   decimal.Decimal  `json:"current"`
	Limit     *decimal.Decimal `json:"limit"`
}

// BankAccount is a demo account as reported by the bank-data provider.
type BankAccount struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Type     string        `json:"type"`
	Subtype  string        `json:"subtype"`
	Mask     string        `json:"mask"`
	Balances *BankBalances `json:"balances,omitempty"`
}

// ProviderUser is the demo user profile attached to a provider status check.
type ProviderUser struct {
	Name     string        `json:"name"`
	Accounts []BankAccount `json:"accounts"`
}

// ProviderStatus reports whether a bank connection is established.
type ProviderStatus struct {
	Connected bool         `json:"connected"`
	UserData  ProviderUser `json:"userData"`
}

// ProviderConnection is the result of a successful sandbox link.
type ProviderConnection struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	AccessToken string `json:"accessToken"`
}
