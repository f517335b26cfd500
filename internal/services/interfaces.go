package services

import "budgetbook/internal/models"

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Register(username, password string) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
}

// BudgetServicer defines the contract for budget-related business logic.
// Numeric inputs arrive as raw strings so the service owns all parsing and
// validation; ids are already resolved by the caller.
type BudgetServicer interface {
	CreateBudget(userID uint, name, durationRaw, incomeRaw string) (uint, error)
	CreateBudgetItem(name, category, totalRaw string, budgetID, userID uint) (uint, error)
	GetBudget(budgetID, userID uint) (*BudgetResponse, error)
	GetUserBudgets(userID uint) ([]BudgetResponse, error)
	EditBudget(budgetID, userID uint, changes map[string]string) (uint, error)
	EditBudgetItem(itemID, budgetID uint, changes map[string]string) (uint, error)
	DeleteBudget(budgetID, userID uint) (string, error)
	DeleteBudgetItem(itemID, budgetID uint) (string, error)
}
