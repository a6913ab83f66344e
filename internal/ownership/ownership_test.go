package ownership

import (
	"testing"

	apperrors "budgety/internal/errors"
	"budgety/internal/models"
	"budgety/internal/testutil"
)

func TestFetchOwned(t *testing.T) {
	t.Run("returns_owned_entity", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		period := testutil.CreateTestBudgetPeriod(t, db, user.ID)

		found, err := FetchOwned[models.BudgetPeriod](db, period.ID, user.ID, apperrors.ErrBudgetPeriodNotFound)
		testutil.AssertNoError(t, err)

		if found.ID != period.ID {
			t.Errorf("expected period %s, got %s", period.ID, found.ID)
		}
	})

	t.Run("missing_entity_fails_with_callers_sentinel", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)

		_, err := FetchOwned[models.BudgetPeriod](db, "00000000-0000-0000-0000-000000000000", user.ID, apperrors.ErrBudgetPeriodNotFound)
		testutil.AssertAppError(t, err, "BUDGET_PERIOD_NOT_FOUND")
	})

	t.Run("foreign_entity_is_forbidden", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		period := testutil.CreateTestBudgetPeriod(t, db, owner.ID)

		_, err := FetchOwned[models.BudgetPeriod](db, period.ID, other.ID, apperrors.ErrBudgetPeriodNotFound)
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})

	t.Run("works_across_entity_types", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		period := testutil.CreateTestBudgetPeriod(t, db, user.ID)
		bc := testutil.CreateTestBudgetedCategory(t, db, user.ID, period.ID, "Food")

		found, err := FetchOwned[models.BudgetedCategory](db, bc.ID, user.ID, apperrors.ErrBudgetedCategoryNotFound)
		testutil.AssertNoError(t, err)

		if found.CategoryName != "Food" {
			t.Errorf("expected Food, got %s", found.CategoryName)
		}
	})
}
