package events

import "testing"

func TestBus(t *testing.T) {
	t.Run("delivers_to_all_subscribers_in_order", func(t *testing.T) {
		bus := NewBus()
		var got []string
		bus.SubscribeCategoryRenamed(func(ev CategoryRenamed) {
			got = append(got, "first:"+ev.NewName)
		})
		bus.SubscribeCategoryRenamed(func(ev CategoryRenamed) {
			got = append(got, "second:"+ev.NewName)
		})

		bus.PublishCategoryRenamed(CategoryRenamed{OldName: "Food", NewName: "Food and Drink"})

		if len(got) != 2 {
			t.Fatalf("expected 2 deliveries, got %d", len(got))
		}
		if got[0] != "first:Food and Drink" || got[1] != "second:Food and Drink" {
			t.Errorf("unexpected delivery order: %v", got)
		}
	})

	t.Run("publish_without_subscribers_is_a_no_op", func(t *testing.T) {
		bus := NewBus()
		bus.PublishCategoryRenamed(CategoryRenamed{OldName: "a", NewName: "b"})
	})

	t.Run("dispatch_is_synchronous", func(t *testing.T) {
		bus := NewBus()
		applied := false
		bus.SubscribeCategoryRenamed(func(CategoryRenamed) {
			applied = true
		})

		bus.PublishCategoryRenamed(CategoryRenamed{OldName: "x", NewName: "y"})

		if !applied {
			t.Error("expected handler to run before publish returned")
		}
	})
}
