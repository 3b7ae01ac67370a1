package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func tx(id int64, category, date string) Transaction {
	return Transaction{
		ID:       id,
		Category: category,
		Amount:   decimal.NewFromInt(1),
		Date:     ParseDate(date),
	}
}

func TestDataset_Categories(t *testing.T) {
	ds := Dataset{Transactions: []Transaction{
		tx(1, "transport", "2024-01-02"),
		tx(2, "food", "2024-01-01"),
		tx(3, "food", "2024-01-03"),
		tx(4, "", "2024-01-04"),
	}}

	got := ds.Categories()
	want := []string{"food", "transport"}
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDataset_DateBounds(t *testing.T) {
	t.Run("mixed dates", func(t *testing.T) {
		ds := Dataset{Transactions: []Transaction{
			tx(1, "food", "2024-01-15"),
			tx(2, "food", "bogus"),
			tx(3, "food", "2024-01-02"),
			tx(4, "food", "2024-02-01"),
		}}
		min, max, ok := ds.DateBounds()
		if !ok {
			t.Fatal("DateBounds() ok = false, want true")
		}
		if min.String() != "2024-01-02" || max.String() != "2024-02-01" {
			t.Errorf("DateBounds() = [%s, %s], want [2024-01-02, 2024-02-01]", min, max)
		}
	})

	t.Run("no parseable dates", func(t *testing.T) {
		ds := Dataset{Transactions: []Transaction{tx(1, "food", "???")}}
		if _, _, ok := ds.DateBounds(); ok {
			t.Error("DateBounds() ok = true for dataset without parseable dates")
		}
	})

	t.Run("empty dataset", func(t *testing.T) {
		var ds Dataset
		if _, _, ok := ds.DateBounds(); ok {
			t.Error("DateBounds() ok = true for empty dataset")
		}
	})
}

func TestDataset_Head(t *testing.T) {
	ds := Dataset{Transactions: []Transaction{
		tx(3, "a", "2024-01-03"),
		tx(2, "b", "2024-01-02"),
		tx(1, "c", "2024-01-01"),
	}}
	if got := ds.Head(2); len(got) != 2 || got[0].ID != 3 {
		t.Errorf("Head(2) = %v, want first two rows in source order", got)
	}
	if got := ds.Head(10); len(got) != 3 {
		t.Errorf("Head(10) returned %d rows, want 3", len(got))
	}
}

func TestTransaction_Validate(t *testing.T) {
	if err := tx(1, "food", "2024-01-01").Validate(); err != nil {
		t.Errorf("valid transaction: unexpected error %v", err)
	}
	if err := tx(1, "  ", "2024-01-01").Validate(); err != ErrEmptyCategory {
		t.Errorf("blank category: got %v, want ErrEmptyCategory", err)
	}
}
