package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/models"
)

// Attribute names accepted by the partial-update operations.
var (
	BudgetAttributes     = []string{"name", "gross_income", "month_duration"}
	BudgetItemAttributes = []string{"name", "category", "total"}
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// findOwnedBudget loads the budget only if it belongs to the user.
func (s *budgetService) findOwnedBudget(budgetID, userID uint) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrNotFound, "Invalid budget.")
		}
		return nil, apperrors.Wrap(apperrors.ErrServiceUnavailable, err)
	}
	return &budget, nil
}

// budgetNameTaken reports whether the user already owns a budget with the name.
func (s *budgetService) budgetNameTaken(userID uint, name string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Budget{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count).Error; err != nil {
		return false, apperrors.Wrap(apperrors.ErrServiceUnavailable, err)
	}
	return count > 0, nil
}

// CreateBudget validates and persists a new budget, returning its id.
// Checks run in a fixed order and only the first violation is reported:
// empty name, duplicate name, month duration, gross income.
func (s *budgetService) CreateBudget(userID uint, name, durationRaw, incomeRaw string) (uint, error) {
	if name == "" {
		return 0, apperrors.WithMessage(apperrors.ErrEmptyField, "Budget name must not be empty.")
	}

	taken, err := s.budgetNameTaken(userID, name)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, apperrors.WithMessage(apperrors.ErrDuplicateName, "You already have a budget with that name.")
	}

	if err := ValidateMonthDuration(durationRaw); err != nil {
		return 0, err
	}
	if err := ValidateNonNegativeAmount("Gross income", incomeRaw); err != nil {
		return 0, err
	}

	// Safe to convert; both raw values were just validated.
	duration, _ := strconv.Atoi(strings.TrimSpace(durationRaw))
	income, _ := strconv.ParseFloat(strings.TrimSpace(incomeRaw), 64)

	budget := &models.Budget{
		UserID:        userID,
		Name:          name,
		MonthDuration: duration,
		GrossIncome:   income,
	}
	if err := s.db.Create(budget).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrServiceUnavailable, err)
	}

	return budget.ID, nil
}

// CreateBudgetItem validates and persists a new item against a budget the
// user owns, returning the item id.
func (s *budgetService) CreateBudgetItem(name, category, totalRaw string, budgetID, userID uint) (uint, error) {
	if _, err := s.findOwnedBudget(budgetID, userID); err != nil {
		return 0, err
	}

	if name == "" {
		return 0, apperrors.WithMessage(apperrors.ErrEmptyField, "Budget item name must not be empty.")
	}
	if !models.ValidItemCategory(category) {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidEnumValue, fmt.Sprintf("Category: '%s' is not valid", category))
	}
	if err := ValidateNonNegativeAmount("Total", totalRaw); err != nil {
		return 0, err
	}

	total, _ := strconv.ParseFloat(strings.TrimSpace(totalRaw), 64)

	item := &models.BudgetItem{
		BudgetID: budgetID,
		Name:     name,
		Category: models.ItemCategory(category),
		Total:    total,
	}
	if err := s.db.Create(item).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrServiceUnavailable, err)
	}

	return item.ID, nil
}

// GetBudget returns the response-shaped budget, or nil when no matching
// budget is owned by the user. A read miss is not an error.
func (s *budgetService) GetBudget(budgetID, userID uint) (*BudgetResponse, error) {
	var budget models.Budget
	if err := s.db.Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrServiceUnavailable, err)
	}

	items, err := s.budgetItems(budget.ID)
	if err != nil {
		return nil, err
	}

	resp := toBudgetResponse(budget, items)
	return &resp, nil
}

// GetUserBudgets returns all budgets owned by the user in creation order.
func (s *budgetService) GetUserBudgets(userID uint) ([]BudgetResponse, error) {
	var budgets []models.Budget
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServiceUnavailable, err)
	}

	responses := make([]BudgetResponse, 0, len(budgets))
	for _, budget := range budgets {
		items, err := s.budgetItems(budget.ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, toBudgetResponse(budget, items))
	}
	return responses, nil
}

func (s *budgetService) budgetItems(budgetID uint) ([]models.BudgetItem, error) {
	var items []models.BudgetItem
	if err := s.db.Where("budget_id = ?", budgetID).Order("id").Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServiceUnavailable, err)
	}
	return items, nil
}

// EditBudget applies a partial update over {name, gross_income,
// month_duration}. Attributes absent from changes are left untouched; all
// validated changes are applied in a single update. The name uniqueness
// check ignores the budget's own current name.
func (s *budgetService) EditBudget(budgetID, userID uint, changes map[string]string) (uint, error) {
	budget, err := s.findOwnedBudget(budgetID, userID)
	if err != nil {
		return 0, err
	}

	updates := make(map[string]interface{})

	if name, ok := changes["name"]; ok {
		if name == "" {
			return 0, apperrors.WithMessage(apperrors.ErrEmptyField, "New name must not be empty.")
		}
		if name != budget.Name {
			taken, err := s.budgetNameTaken(userID, name)
			if err != nil {
				return 0, err
			}
			if taken {
				return 0, apperrors.WithMessage(apperrors.ErrDuplicateName, "You already have a budget with that name.")
			}
		}
		updates["name"] = name
	}

	if raw, ok := changes["gross_income"]; ok {
		if err := ValidateNonNegativeAmount("gross_income", raw); err != nil {
			return 0, err
		}
		income, _ := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		updates["gross_income"] = income
	}

	if raw, ok := changes["month_duration"]; ok {
		if err := ValidateMonthDuration(raw); err != nil {
			return 0, err
		}
		duration, _ := strconv.Atoi(strings.TrimSpace(raw))
		updates["month_duration"] = duration
	}

	if len(updates) > 0 {
		if err := s.db.Model(budget).Updates(updates).Error; err != nil {
			return 0, apperrors.Wrap(apperrors.ErrServiceUnavailable, err)
		}
	}

	return budgetID, nil
}

// EditBudgetItem applies a partial update over {name, category, total} to an
// item scoped to its parent budget.
func (s *budgetService) EditBudgetItem(itemID, budgetID uint, changes map[string]string) (uint, error) {
	item, err := s.findItem(itemID, budgetID)
	if err != nil {
		return 0, err
	}

	updates := make(map[string]interface{})

	if name, ok := changes["name"]; ok {
		if name == "" {
			return 0, apperrors.WithMessage(apperrors.ErrEmptyField, "New name must not be empty.")
		}
		updates["name"] = name
	}

	if category, ok := changes["category"]; ok {
		if !models.ValidItemCategory(category) {
			return 0, apperrors.WithMessage(apperrors.ErrInvalidEnumValue, fmt.Sprintf("Category: '%s' is not valid", category))
		}
		updates["category"] = category
	}

	if raw, ok := changes["total"]; ok {
		if err := ValidateNonNegativeAmount("Total", raw); err != nil {
			return 0, err
		}
		total, _ := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		updates["total"] = total
	}

	if len(updates) > 0 {
		if err := s.db.Model(item).Updates(updates).Error; err != nil {
			return 0, apperrors.Wrap(apperrors.ErrServiceUnavailable, err)
		}
	}

	return itemID, nil
}

func (s *budgetService) findItem(itemID, budgetID uint) (*models.BudgetItem, error) {
	var item models.BudgetItem
	if err := s.db.Where("id = ? AND budget_id = ?", itemID, budgetID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrNotFound, "Invalid budget item.")
		}
		return nil, apperrors.Wrap(apperrors.ErrServiceUnavailable, err)
	}
	return &item, nil
}

// DeleteBudget removes the budget and all of its items, returning the
// deleted budget's name for confirmation messaging.
func (s *budgetService) DeleteBudget(budgetID, userID uint) (string, error) {
	budget, err := s.findOwnedBudget(budgetID, userID)
	if err != nil {
		return "", err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("budget_id = ?", budget.ID).Delete(&models.BudgetItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(budget).Error
	})
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrServiceUnavailable, err)
	}

	return budget.Name, nil
}

// DeleteBudgetItem removes an item scoped to its parent budget, returning a
// human-readable descriptor for confirmation messaging.
func (s *budgetService) DeleteBudgetItem(itemID, budgetID uint) (string, error) {
	item, err := s.findItem(itemID, budgetID)
	if err != nil {
		return "", err
	}

	if err := s.db.Delete(item).Error; err != nil {
		return "", apperrors.Wrap(apperrors.ErrServiceUnavailable, err)
	}

	return fmt.Sprintf("Category: '%s' and with Name: '%s'", item.Category, item.Name), nil
}
