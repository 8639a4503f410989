package game

// Wallet is the lab's currency balance. Never negative: a debit that exceeds
// the balance is rejected without mutation.
type Wallet struct {
	balance float64
}

func NewWallet(starting float64) *Wallet {
	return &Wallet{balance: starting}
}

func (w *Wallet) Balance() float64 { return w.balance }

func (w *Wallet) Add(amount float64) {
	w.balance += amount
}

func (w *Wallet) Subtract(amount float64) bool {
	if amount > w.balance {
		return false
	}
	w.balance -= amount
	return true
}

func (w *Wallet) setBalance(v float64) {
	if v < 0 {
		v = 0
	}
	w.balance = v
}
