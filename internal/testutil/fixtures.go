package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"budgety/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:     fmt.Sprintf("Test User %d", nextID()),
		Email:    email,
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestRefreshToken creates an unrevoked refresh token for the user.
func CreateTestRefreshToken(t *testing.T, db *gorm.DB, userID, email string) *models.RefreshToken {
	t.Helper()

	token := &models.RefreshToken{
		Token:  fmt.Sprintf("test-refresh-token-%d", nextID()),
		UserID: userID,
		Email:  email,
	}
	if err := db.Create(token).Error; err != nil {
		t.Fatalf("failed to create test refresh token: %v", err)
	}
	return token
}

// CreateTestBudgetPeriod creates a PENDING period for a unique month.
func CreateTestBudgetPeriod(t *testing.T, db *gorm.DB, userID string) *models.BudgetPeriod {
	t.Helper()

	// Each fixture gets its own month so the (user, date) uniqueness rule
	// never trips between fixtures.
	date := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, int(nextID()), 0)
	return CreateTestBudgetPeriodAt(t, db, userID, date.Unix())
}

// CreateTestBudgetPeriodAt creates a PENDING period anchored at the given
// Unix time.
func CreateTestBudgetPeriodAt(t *testing.T, db *gorm.DB, userID string, date int64) *models.BudgetPeriod {
	t.Helper()

	period := &models.BudgetPeriod{
		UserID: userID,
		Date:   date,
		Status: models.PeriodStatusPending,
	}
	if err := db.Create(period).Error; err != nil {
		t.Fatalf("failed to create test budget period: %v", err)
	}
	return period
}

// CreateTestCategory creates a catalog category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()

	category := &models.Category{
		Name: fmt.Sprintf("Test Category %d", nextID()),
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestBudgetedCategory creates an allocation of 100 for the named
// category within the given period.
func CreateTestBudgetedCategory(t *testing.T, db *gorm.DB, userID, periodID, categoryName string) *models.BudgetedCategory {
	t.Helper()

	bc := &models.BudgetedCategory{
		UserID:         userID,
		BudgetPeriodID: periodID,
		CategoryName:   categoryName,
		Amount:         decimal.NewFromInt(100),
	}
	if err := db.Create(bc).Error; err != nil {
		t.Fatalf("failed to create test budgeted category: %v", err)
	}
	return bc
}

// CreateTestExpense creates an expense of the given amount.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID, periodID, budgetedCategoryID string, amount int64) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:             userID,
		BudgetPeriodID:     periodID,
		BudgetedCategoryID: budgetedCategoryID,
		Name:               fmt.Sprintf("Test Expense %d", nextID()),
		Amount:             decimal.NewFromInt(amount),
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestEarning creates an earning of the given amount.
func CreateTestEarning(t *testing.T, db *gorm.DB, userID, periodID, budgetedCategoryID string, amount int64) *models.Earning {
	t.Helper()

	earning := &models.Earning{
		UserID:             userID,
		BudgetPeriodID:     periodID,
		BudgetedCategoryID: budgetedCategoryID,
		Name:               fmt.Sprintf("Test Earning %d", nextID()),
		Amount:             decimal.NewFromInt(amount),
	}
	if err := db.Create(earning).Error; err != nil {
		t.Fatalf("failed to create test earning: %v", err)
	}
	return earning
}
