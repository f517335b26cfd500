package models

import "time"

// ItemCategory classifies a budget item.
type ItemCategory string

const (
	ItemCategoryDeductions ItemCategory = "deductions"
	ItemCategoryBills      ItemCategory = "bills"
	ItemCategorySavings    ItemCategory = "savings"
)

// ItemCategories returns the fixed list of valid item categories in
// display order.
func ItemCategories() []ItemCategory {
	return []ItemCategory{ItemCategoryDeductions, ItemCategoryBills, ItemCategorySavings}
}

// ValidItemCategory reports whether raw is one of the fixed category values.
func ValidItemCategory(raw string) bool {
	switch ItemCategory(raw) {
	case ItemCategoryDeductions, ItemCategoryBills, ItemCategorySavings:
		return true
	}
	return false
}

// BudgetItem is a categorized allocation line belonging to exactly one budget.
type BudgetItem struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	BudgetID  uint         `gorm:"not null;index" json:"budget_id"`
	Name      string       `gorm:"size:50;not null" json:"name"`
	Category  ItemCategory `gorm:"size:30;not null" json:"category"`
	Total     float64      `gorm:"not null" json:"total"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
