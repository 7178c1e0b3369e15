package domain

import "strings"

// AccountCategory is the fundamental accounting classification of an account.
type AccountCategory string

const (
	Asset     AccountCategory = "ASSET"
	Liability AccountCategory = "LIABILITY"
	Equity    AccountCategory = "EQUITY"
	Revenue   AccountCategory = "REVENUE"
	Expense   AccountCategory = "EXPENSE"
)

// AllAccountCategories lists the categories in balance sheet then P&L order.
var AllAccountCategories = []AccountCategory{Asset, Liability, Equity, Revenue, Expense}

// ParseAccountCategory normalises s and reports whether it names a known category.
func ParseAccountCategory(s string) (AccountCategory, bool) {
	c := AccountCategory(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range AllAccountCategories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

// Account represents a financial account within a tenant's chart of accounts.
type Account struct {
	AccountID       string          `json:"accountID"`
	TenantID        string          `json:"tenantID"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Category        AccountCategory `json:"category"`
	ParentAccountID *string         `json:"parentAccountID,omitempty"`
	Description     string          `json:"description"`
	IsActive        bool            `json:"isActive"`
	AuditFields
}

// AccountRef is the short form of an account used for parent summaries and report labels.
type AccountRef struct {
	AccountID string `json:"accountID"`
	Code      string `json:"code"`
	Name      string `json:"name"`
}

// Ref returns the short form of a.
func (a Account) Ref() AccountRef {
	return AccountRef{AccountID: a.AccountID, Code: a.Code, Name: a.Name}
}

// AccountSummary is an account annotated with its parent and number of active children.
type AccountSummary struct {
	Account
	Parent     *AccountRef `json:"parent,omitempty"`
	ChildCount int         `json:"childCount"`
}
