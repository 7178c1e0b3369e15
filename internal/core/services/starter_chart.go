package services

import "github.com/SscSPs/ledger_core/internal/core/domain"

type starterAccount struct {
	code     string
	name     string
	category domain.AccountCategory
}

// starterChart is the small-business chart created by SeedStarterChart.
var starterChart = []starterAccount{
	{"1000", "Cash", domain.Asset},
	{"1100", "Bank", domain.Asset},
	{"1200", "Accounts Receivable", domain.Asset},
	{"1300", "Inventory", domain.Asset},
	{"2000", "Accounts Payable", domain.Liability},
	{"2100", "Taxes Payable", domain.Liability},
	{"3000", "Owner's Equity", domain.Equity},
	{"3100", "Retained Earnings", domain.Equity},
	{"4000", "Sales Revenue", domain.Revenue},
	{"4100", "Service Revenue", domain.Revenue},
	{"5000", "Cost of Goods Sold", domain.Expense},
	{"5100", "Rent Expense", domain.Expense},
	{"5200", "Salaries Expense", domain.Expense},
	{"5300", "Utilities Expense", domain.Expense},
}
