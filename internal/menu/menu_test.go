package menu

import "testing"

func testMenu() *Menu {
	return New(map[string]float64{
		"Latte":         4.50,
		"Green Tea":     3.00,
		"Club Sandwich": 9.80,
	})
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	m := testMenu()

	for _, name := range []string{"Latte", "latte", "LATTE", "lAtTe"} {
		price, ok := m.Lookup(name)
		if !ok {
			t.Fatalf("expected %q to be on the menu", name)
		}
		if price != 4.50 {
			t.Fatalf("expected 4.50 for %q, got %v", name, price)
		}
	}

	if _, ok := m.Lookup("Espresso"); ok {
		t.Fatalf("Espresso should not be on the menu")
	}
}

func TestValidateWithinTolerance(t *testing.T) {
	m := testMenu()

	v := m.Validate("Latte", 4.505)
	if !v.Valid {
		t.Fatalf("4.505 should be within tolerance of 4.50")
	}
	if v.ExpectedPrice == nil || *v.ExpectedPrice != 4.50 {
		t.Fatalf("expected price 4.50, got %v", v.ExpectedPrice)
	}
}

func TestValidateOutsideTolerance(t *testing.T) {
	m := testMenu()

	v := m.Validate("Latte", 4.52)
	if v.Valid {
		t.Fatalf("4.52 should not be within tolerance of 4.50")
	}
	if v.ExpectedPrice == nil {
		t.Fatalf("expected price should still be reported for a known name")
	}
}

func TestValidateUnknownName(t *testing.T) {
	m := testMenu()

	v := m.Validate("Mystery Dish", 1.00)
	if v.Valid {
		t.Fatalf("unknown names must never validate")
	}
	if v.ExpectedPrice != nil {
		t.Fatalf("unknown names have no expected price")
	}
}

func TestValidateExactMatch(t *testing.T) {
	m := testMenu()

	if v := m.Validate("green tea", 3.00); !v.Valid {
		t.Fatalf("exact price should validate")
	}
}
