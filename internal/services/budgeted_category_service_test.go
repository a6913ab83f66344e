package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"budgety/internal/events"
	"budgety/internal/models"
	"budgety/internal/testutil"
)

func TestCreateBudgetedCategory(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetedCategoryService(db, events.NewBus())
		user := testutil.CreateTestUser(t, db)
		period := testutil.CreateTestBudgetPeriod(t, db, user.ID)

		bc, err := svc.CreateBudgetedCategory(user.ID, period.ID, "Groceries", decimal.NewFromInt(250))
		testutil.AssertNoError(t, err)

		if bc.ID == "" {
			t.Fatal("expected non-empty ID")
		}
		if !bc.Amount.Equal(decimal.NewFromInt(250)) {
			t.Errorf("expected amount 250, got %s", bc.Amount)
		}
	})

	t.Run("accepts_dangling_period", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetedCategoryService(db, events.NewBus())
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateBudgetedCategory(user.ID, "00000000-0000-0000-0000-000000000000", "Groceries", decimal.NewFromInt(250))
		testutil.AssertNoError(t, err)
	})
}

func TestGetBudgetedCategories(t *testing.T) {
	t.Run("scoped_to_period_and_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetedCategoryService(db, events.NewBus())
		alice := testutil.CreateTestUser(t, db)
		bob := testutil.CreateTestUser(t, db)
		alicePeriod := testutil.CreateTestBudgetPeriod(t, db, alice.ID)
		bobPeriod := testutil.CreateTestBudgetPeriod(t, db, bob.ID)
		testutil.CreateTestBudgetedCategory(t, db, alice.ID, alicePeriod.ID, "Groceries")
		testutil.CreateTestBudgetedCategory(t, db, alice.ID, alicePeriod.ID, "Rent")
		testutil.CreateTestBudgetedCategory(t, db, bob.ID, bobPeriod.ID, "Groceries")

		categories, err := svc.GetBudgetedCategories(alice.ID, alicePeriod.ID)
		testutil.AssertNoError(t, err)
		if len(categories) != 2 {
			t.Errorf("expected 2 allocations, got %d", len(categories))
		}
	})
}

func TestChangeAmount(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetedCategoryService(db, events.NewBus())
		user := testutil.CreateTestUser(t, db)
		period := testutil.CreateTestBudgetPeriod(t, db, user.ID)
		bc := testutil.CreateTestBudgetedCategory(t, db, user.ID, period.ID, "Groceries")

		updated, err := svc.ChangeAmount(bc.ID, user.ID, decimal.NewFromInt(425))
		testutil.AssertNoError(t, err)
		if !updated.Amount.Equal(decimal.NewFromInt(425)) {
			t.Errorf("expected amount 425, got %s", updated.Amount)
		}
	})

	t.Run("foreign_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetedCategoryService(db, events.NewBus())
		owner := testutil.CreateTestUser(t, db)
		intruder := testutil.CreateTestUser(t, db)
		period := testutil.CreateTestBudgetPeriod(t, db, owner.ID)
		bc := testutil.CreateTestBudgetedCategory(t, db, owner.ID, period.ID, "Groceries")

		_, err := svc.ChangeAmount(bc.ID, intruder.ID, decimal.NewFromInt(425))
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})

	t.Run("missing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetedCategoryService(db, events.NewBus())
		user := testutil.CreateTestUser(t, db)

		_, err := svc.ChangeAmount("00000000-0000-0000-0000-000000000000", user.ID, decimal.NewFromInt(425))
		testutil.AssertAppError(t, err, "BUDGETED_CATEGORY_NOT_FOUND")
	})
}

func TestDeleteBudgetedCategory(t *testing.T) {
	t.Run("entries_survive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetedCategoryService(db, events.NewBus())
		user := testutil.CreateTestUser(t, db)
		period := testutil.CreateTestBudgetPeriod(t, db, user.ID)
		bc := testutil.CreateTestBudgetedCategory(t, db, user.ID, period.ID, "Groceries")
		testutil.CreateTestExpense(t, db, user.ID, period.ID, bc.ID, 25)
		testutil.CreateTestEarning(t, db, user.ID, period.ID, bc.ID, 10)

		testutil.AssertNoError(t, svc.DeleteBudgetedCategory(bc.ID, user.ID))

		var expenses, earnings int64
		db.Model(&models.Expense{}).Where("budgeted_category_id = ?", bc.ID).Count(&expenses)
		db.Model(&models.Earning{}).Where("budgeted_category_id = ?", bc.ID).Count(&earnings)
		if expenses != 1 || earnings != 1 {
			t.Errorf("expected entries to survive, got %d expenses and %d earnings", expenses, earnings)
		}
	})
}

func TestCategoryRenameFanout(t *testing.T) {
	t.Run("updates_all_matching_allocations", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		bus := events.NewBus()
		svc := NewBudgetedCategoryService(db, bus)
		alice := testutil.CreateTestUser(t, db)
		bob := testutil.CreateTestUser(t, db)
		alicePeriod := testutil.CreateTestBudgetPeriod(t, db, alice.ID)
		bobPeriod := testutil.CreateTestBudgetPeriod(t, db, bob.ID)
		a := testutil.CreateTestBudgetedCategory(t, db, alice.ID, alicePeriod.ID, "Groceries")
		b := testutil.CreateTestBudgetedCategory(t, db, bob.ID, bobPeriod.ID, "Groceries")
		other := testutil.CreateTestBudgetedCategory(t, db, alice.ID, alicePeriod.ID, "Rent")

		bus.PublishCategoryRenamed(events.CategoryRenamed{OldName: "Groceries", NewName: "Food"})

		got, err := svc.GetBudgetedCategoryByID(alice.ID, a.ID)
		testutil.AssertNoError(t, err)
		if got.CategoryName != "Food" {
			t.Errorf("expected Food, got %s", got.CategoryName)
		}
		got, err = svc.GetBudgetedCategoryByID(bob.ID, b.ID)
		testutil.AssertNoError(t, err)
		if got.CategoryName != "Food" {
			t.Errorf("expected rename across users, got %s", got.CategoryName)
		}
		got, err = svc.GetBudgetedCategoryByID(alice.ID, other.ID)
		testutil.AssertNoError(t, err)
		if got.CategoryName != "Rent" {
			t.Errorf("expected Rent untouched, got %s", got.CategoryName)
		}
	})

	t.Run("redelivery_is_noop", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		bus := events.NewBus()
		NewBudgetedCategoryService(db, bus)
		user := testutil.CreateTestUser(t, db)
		period := testutil.CreateTestBudgetPeriod(t, db, user.ID)
		testutil.CreateTestBudgetedCategory(t, db, user.ID, period.ID, "Groceries")

		ev := events.CategoryRenamed{OldName: "Groceries", NewName: "Food"}
		bus.PublishCategoryRenamed(ev)
		bus.PublishCategoryRenamed(ev)

		var food, groceries int64
		db.Model(&models.BudgetedCategory{}).Where("category_name = ?", "Food").Count(&food)
		db.Model(&models.BudgetedCategory{}).Where("category_name = ?", "Groceries").Count(&groceries)
		if food != 1 || groceries != 0 {
			t.Errorf("expected one Food row and no Groceries rows, got %d and %d", food, groceries)
		}
	})
}
