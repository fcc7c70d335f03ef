package warroom

import "testing"

func TestMoneyEqual_WeakCurrency(t *testing.T) {
	if !M(5, "").Equal(TWD(5)) {
		t.Error("5 with no currency != 5 TWD, want equal under the weak \"\" currency")
	}
	if !TWD(0).Equal(M(0, "")) {
		t.Error("0 TWD != 0 with no currency, want equal")
	}
	if TWD(5).Equal(USD(5)) {
		t.Error("5 TWD == 5 USD, want different currencies unequal")
	}
	if TWD(5).Equal(TWD(6)) {
		t.Error("5 TWD == 6 TWD, want different values unequal")
	}
}

func TestMoneyArithmetic_WeakCurrency(t *testing.T) {
	sum := M(5, "").Add(TWD(10))
	if sum.Currency() != "TWD" {
		t.Errorf("Currency() = %q, want the strong TWD to win", sum.Currency())
	}
	if !sum.Equal(TWD(15)) {
		t.Errorf("sum = %s, want 15 TWD", sum)
	}
}
