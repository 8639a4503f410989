package game

import "testing"

func TestWalletSubtractRejectsOverdraft(t *testing.T) {
	w := NewWallet(50)

	if !w.Subtract(30) {
		t.Fatal("affordable debit rejected")
	}
	if w.Subtract(30) {
		t.Fatal("overdraft must be rejected")
	}
	if got := w.Balance(); got != 20 {
		t.Fatalf("balance = %v, want 20 (rejected debit must not mutate)", got)
	}

	w.Add(80)
	if got := w.Balance(); got != 100 {
		t.Fatalf("balance after credit = %v, want 100", got)
	}
}

func TestWalletSetBalanceFloorsAtZero(t *testing.T) {
	w := NewWallet(50)
	w.setBalance(-10)
	if got := w.Balance(); got != 0 {
		t.Fatalf("restored balance = %v, want 0", got)
	}
}
