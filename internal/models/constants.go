package models

// Categories assigned by the rule cascade
const (
	CategoryIncome        = "Income"
	CategoryEMI           = "EMI"
	CategoryGroceries     = "Groceries"
	CategoryEntertainment = "Entertainment"
	CategoryBills         = "Bills"
	CategoryATMWithdrawal = "ATM Withdrawal"
	CategoryMiscellaneous = "Miscellaneous"
)

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
)
