package dto

import (
	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/models"
)

// BankBalances is the wire shape of an account balance block. Limit stays
// null for depository accounts.
type BankBalances struct {
	Available float64  `json:"available"`
	Current   float64  `json:"current"`
	Limit     *float64 `json:"limit"`
}

// BankAccount is the wire shape of a linked demo account.
type BankAccount struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Type     string        `json:"type"`
	Subtype  string        `json:"subtype"`
	Mask     string        `json:"mask"`
	Balances *BankBalances `json:"balances,omitempty"`
}

// BankUser is the demo user profile in a status response.
type BankUser struct {
	Name     string        `json:"name"`
	Accounts []BankAccount `json:"accounts"`
}

// BankStatusResponse is returned by the provider status endpoint.
type BankStatusResponse struct {
	Connected bool     `json:"connected"`
	UserData  BankUser `json:"userData"`
}

// BankConnectResponse is returned after a successful sandbox link.
type BankConnectResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	AccessToken string `json:"accessToken"`
}

// FromProviderStatus converts a provider status to its wire shape.
func FromProviderStatus(status models.ProviderStatus) BankStatusResponse {
	return BankStatusResponse{
		Connected: status.Connected,
		UserData: BankUser{
			Name:     status.UserData.Name,
			Accounts: FromBankAccounts(status.UserData.Accounts),
		},
	}
}

// FromProviderConnection converts a connection result to its wire shape.
func FromProviderConnection(conn models.ProviderConnection) BankConnectResponse {
	return BankConnectResponse{
		Success:     conn.Success,
		Message:     conn.Message,
		AccessToken: conn.AccessToken,
	}
}

// BankAccountsResponse is returned by the provider accounts endpoint.
type BankAccountsResponse struct {
	Accounts []BankAccount `json:"accounts"`
}

// BankTransactionsResponse is returned by the provider transactions endpoint.
type BankTransactionsResponse struct {
	Transactions      []Transaction `json:"transactions"`
	TotalTransactions int           `json:"total_transactions"`
	RequestID         string        `json:"request_id"`
}

// ConnectRequest is the body of a provider connect call.
type ConnectRequest struct {
	UseSandbox bool `json:"useSandbox"`
}

// FromBankAccount converts a provider account to its wire shape.
func FromBankAccount(account models.BankAccount) BankAccount {
	out := BankAccount{
		ID:      account.ID,
		Name:    account.Name,
		Type:    account.Type,
		Subtype: account.Subtype,
		Mask:    account.Mask,
	}

	if account.Balances != nil {
		balances := &BankBalances{
			Available: account.Balances.Available.InexactFloat64(),
			Current:   account.Balances.Current.InexactFloat64(),
		}
		if account.Balances.Limit != nil {
			limit := account.Balances.Limit.InexactFloat64()
			balances.Limit = &limit
		}
		out.Balances = balances
	}

	return out
}

// FromBankAccounts converts an account slice, preserving order.
func FromBankAccounts(accounts []models.BankAccount) []BankAccount {
	out := make([]BankAccount, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, FromBankAccount(account))
	}
	return out
}
