package models

import "time"

// Budget is a named gross income over a duration of 1 or 12 months,
// owned by exactly one user. Budget names are unique per owner; the
// composite index is mirrored by a constraint in the SQL migrations so
// concurrent check-then-insert races cannot produce duplicates.
type Budget struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;uniqueIndex:idx_budget_owner_name" json:"user_id"`
	Name          string    `gorm:"size:100;not null;uniqueIndex:idx_budget_owner_name" json:"name"`
	MonthDuration int       `gorm:"not null" json:"month_duration"`
	GrossIncome   float64   `gorm:"not null" json:"gross_income"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Items []BudgetItem `gorm:"foreignKey:BudgetID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}
