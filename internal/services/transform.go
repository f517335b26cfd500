package services

import (
	"budgetbook/internal/models"
	"budgetbook/internal/money"
)

// BudgetItemResponse is the response shape of a budget item. Total carries
// the display-formatted amount, not the raw number.
type BudgetItemResponse struct {
	ID       uint                `json:"id"`
	Name     string              `json:"name"`
	Category models.ItemCategory `json:"category"`
	Total    string              `json:"total"`
}

// BudgetResponse is the response shape of a budget with its items.
type BudgetResponse struct {
	ID            uint                 `json:"id"`
	Name          string               `json:"name"`
	MonthDuration int                  `json:"month_duration"`
	GrossIncome   string               `json:"gross_income"`
	Items         []BudgetItemResponse `json:"items"`
}

// toBudgetResponse maps a persisted budget and its items into the response
// shape, formatting monetary fields for display. Item order follows the
// order of the items slice.
func toBudgetResponse(budget models.Budget, items []models.BudgetItem) BudgetResponse {
	resp := BudgetResponse{
		ID:            budget.ID,
		Name:          budget.Name,
		MonthDuration: budget.MonthDuration,
		GrossIncome:   money.FormatUSD(budget.GrossIncome),
		Items:         make([]BudgetItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, BudgetItemResponse{
			ID:       item.ID,
			Name:     item.Name,
			Category: item.Category,
			Total:    money.FormatUSD(item.Total),
		})
	}
	return resp
}
