package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"budgetbook/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithName(t, db, fmt.Sprintf("user%d", nextID()))
}

// CreateTestUserWithName creates a user with the given username.
func CreateTestUserWithName(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestBudget creates a monthly budget with a unique name.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID uint) *models.Budget {
	t.Helper()
	return CreateTestBudgetWithName(t, db, userID, fmt.Sprintf("Test Budget %d", nextID()))
}

// CreateTestBudgetWithName creates a monthly budget with the given name and a
// gross income of 3500.
func CreateTestBudgetWithName(t *testing.T, db *gorm.DB, userID uint, name string) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:        userID,
		Name:          name,
		MonthDuration: 1,
		GrossIncome:   3500,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestBudgetItem creates an item under the given budget.
func CreateTestBudgetItem(t *testing.T, db *gorm.DB, budgetID uint, name string, category models.ItemCategory, total float64) *models.BudgetItem {
	t.Helper()

	item := &models.BudgetItem{
		BudgetID: budgetID,
		Name:     name,
		Category: category,
		Total:    total,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test budget item: %v", err)
	}
	return item
}
