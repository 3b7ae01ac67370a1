package core

import "github.com/shopspring/decimal"

// CategoryTotal is a summed amount for one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// DailyTotal is a summed amount for one calendar day.
type DailyTotal struct {
	Day   Date
	Total decimal.Decimal
}
