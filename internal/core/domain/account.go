package domain

import "fmt"

// Account type discriminators, used for display and id prefixes.
const (
	TypeSavings = "SavingsAccount"
	TypeCurrent = "CurrentAccount"
)

// Account is the capability shared by every account variant.
// Deposit is uniform across variants; Withdraw enforces the
// variant's own balance-floor policy.
type Account interface {
	ID() string
	Owner() *Customer
	Balance() float64
	Type() string
	Deposit(amount float64) error
	Withdraw(amount float64) error
}

// InterestBearing is the optional capability of accounts that accrue
// interest. Only SavingsAccount implements it; the ledger discovers it
// with a type assertion during the monthly update run.
type InterestBearing interface {
	AnnualRate() float64
	MonthlyInterest(balance float64) float64
}

// baseAccount holds the state and behavior common to all variants.
type baseAccount struct {
	id      string
	owner   *Customer
	balance float64
}

func newBaseAccount(id string, owner *Customer, initial float64) (baseAccount, error) {
	if initial < 0 {
		return baseAccount{}, fmt.Errorf("%w: initial balance %.2f", ErrIllegalAmount, initial)
	}
	return baseAccount{id: id, owner: owner, balance: initial}, nil
}

func (a *baseAccount) ID() string       { return a.id }
func (a *baseAccount) Owner() *Customer { return a.owner }
func (a *baseAccount) Balance() float64 { return a.balance }

// Deposit increases the balance. There is no upper bound.
func (a *baseAccount) Deposit(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %.2f", ErrIllegalAmount, amount)
	}
	a.balance += amount
	return nil
}

// SavingsAccount is an interest-bearing account whose balance must
// never go below zero.
type SavingsAccount struct {
	baseAccount
	annualRate float64
}

var _ Account = (*SavingsAccount)(nil)
var _ InterestBearing = (*SavingsAccount)(nil)

// NewSavingsAccount creates a savings account. The initial balance must be
// >= 0 and the annual rate must be >= 0.
func NewSavingsAccount(id string, owner *Customer, initial, annualRate float64) (*SavingsAccount, error) {
	base, err := newBaseAccount(id, owner, initial)
	if err != nil {
		return nil, err
	}
	if annualRate < 0 {
		return nil, fmt.Errorf("%w: annual rate must be >= 0, got %v", ErrIllegalArgument, annualRate)
	}
	return &SavingsAccount{baseAccount: base, annualRate: annualRate}, nil
}

func (a *SavingsAccount) Type() string { return TypeSavings }

func (a *SavingsAccount) AnnualRate() float64 { return a.annualRate }

// MonthlyInterest returns one month's interest on the given balance.
func (a *SavingsAccount) MonthlyInterest(balance float64) float64 {
	return balance * (a.annualRate / 12.0)
}

// Withdraw decreases the balance; a savings balance can never go negative.
func (a *SavingsAccount) Withdraw(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %.2f", ErrIllegalAmount, amount)
	}
	if amount > a.balance {
		return fmt.Errorf("%w: savings cannot go negative", ErrInsufficientFunds)
	}
	a.balance -= amount
	return nil
}

// ApplyMonthlyInterest credits one month's interest on the current balance.
// The credited amount is always >= 0 because the rate is validated at
// construction, so no further validation is needed here.
func (a *SavingsAccount) ApplyMonthlyInterest() {
	a.balance += a.MonthlyInterest(a.balance)
}

func (a *SavingsAccount) String() string {
	return formatAccount(a)
}

// CurrentAccount is a checking-style account that may go negative down to
// its overdraft limit.
type CurrentAccount struct {
	baseAccount
	overdraftLimit float64
}

var _ Account = (*CurrentAccount)(nil)

// NewCurrentAccount creates a current account. The initial balance must be
// >= 0 and the overdraft limit must be >= 0.
func NewCurrentAccount(id string, owner *Customer, initial, overdraftLimit float64) (*CurrentAccount, error) {
	base, err := newBaseAccount(id, owner, initial)
	if err != nil {
		return nil, err
	}
	if overdraftLimit < 0 {
		return nil, fmt.Errorf("%w: overdraft limit must be >= 0, got %v", ErrIllegalArgument, overdraftLimit)
	}
	return &CurrentAccount{baseAccount: base, overdraftLimit: overdraftLimit}, nil
}

func (a *CurrentAccount) Type() string { return TypeCurrent }

// OverdraftLimit returns the maximum amount the balance may go below zero.
func (a *CurrentAccount) OverdraftLimit() float64 { return a.overdraftLimit }

// Withdraw decreases the balance; the result must stay at or above
// -overdraftLimit.
func (a *CurrentAccount) Withdraw(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %.2f", ErrIllegalAmount, amount)
	}
	next := a.balance - amount
	if next < -a.overdraftLimit {
		return fmt.Errorf("%w: overdraft exceeded, limit=%.2f, attempted=%.2f",
			ErrInsufficientFunds, a.overdraftLimit, amount)
	}
	a.balance = next
	return nil
}

func (a *CurrentAccount) String() string {
	return formatAccount(a)
}

func formatAccount(a Account) string {
	return fmt.Sprintf("%s{id='%s', owner='%s', balance=%.2f}",
		a.Type(), a.ID(), a.Owner().Name, a.Balance())
}
