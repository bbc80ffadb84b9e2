package ledger

import (
	"BankLedger/internal/core/domain"
	"BankLedger/internal/core/ports"
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Account id prefixes, one per variant. Ids are "<PREFIX>-<counter>".
const (
	prefixSavings = "SAV"
	prefixCurrent = "CUR"
)

// Ledger is the bank aggregate. It owns every account and customer, mints
// identifiers, and is the only place balances are mutated. A single mutex
// serializes all operations, which makes Transfer atomic with respect to
// anything touching either of its two accounts.
type Ledger struct {
	name string
	log  zerolog.Logger
	bus  ports.EventBus

	// seq mints account ids; incremented on every open call regardless of
	// variant, never reused.
	seq atomic.Int64

	mu        sync.Mutex
	accounts  map[string]domain.Account
	customers map[string]*domain.Customer // keyed by lowercased name
}

var _ ports.Ledger = (*Ledger)(nil) // Ensure compliance

// New creates an empty ledger. idSeed is the counter seed; the first
// minted id uses idSeed+1.
func New(name string, idSeed int64, bus ports.EventBus, baseLogger *zerolog.Logger) *Ledger {
	l := &Ledger{
		name:      name,
		log:       baseLogger.With().Str("component", "ledger").Logger(),
		bus:       bus,
		accounts:  make(map[string]domain.Account),
		customers: make(map[string]*domain.Customer),
	}
	l.seq.Store(idSeed)
	return l
}

// Name returns the bank's display name.
func (l *Ledger) Name() string { return l.name }

func (l *Ledger) nextID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, l.seq.Add(1))
}

// getOrCreateCustomer returns the registry entry for the name, creating it
// on first sight. Names differing only by case collapse to one customer;
// the first-seen casing is kept for display. Must be called with l.mu held.
func (l *Ledger) getOrCreateCustomer(name string) *domain.Customer {
	key := strings.ToLower(name)
	if c, ok := l.customers[key]; ok {
		return c
	}
	c := domain.NewCustomer(name)
	l.customers[key] = c
	l.log.Info().
		Str("customer_id", c.ID.String()).
		Str("name", c.Name).
		Msg("Registered new customer")
	return c
}

// require resolves an account id. Must be called with l.mu held.
func (l *Ledger) require(id string) (domain.Account, error) {
	a, ok := l.accounts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
	}
	return a, nil
}

// publish sends a ledger event. Delivery failures are logged, never
// propagated: events are notifications, not part of the operation.
func (l *Ledger) publish(ctx context.Context, topic string, data interface{}) {
	if err := l.bus.Publish(ctx, topic, data); err != nil {
		l.log.Warn().Err(err).Str("topic", topic).Msg("Failed to publish ledger event")
	}
}

// OpenSavingsAccount opens a savings account for the named customer and
// returns the minted account id.
func (l *Ledger) OpenSavingsAccount(ctx context.Context, customerName string, initial, annualRate float64) (string, error) {
	l.mu.Lock()
	c := l.getOrCreateCustomer(customerName)
	id := l.nextID(prefixSavings)
	acc, err := domain.NewSavingsAccount(id, c, initial, annualRate)
	if err != nil {
		l.mu.Unlock()
		return "", err
	}
	l.accounts[id] = acc
	l.mu.Unlock()

	l.log.Info().
		Str("account_id", id).
		Str("customer_id", c.ID.String()).
		Float64("initial", initial).
		Float64("annual_rate", annualRate).
		Msg("Opened savings account")

	l.publish(ctx, ports.TopicAccountOpened, ports.AccountOpenedEvent{
		AccountID:    id,
		AccountType:  domain.TypeSavings,
		CustomerID:   c.ID,
		CustomerName: c.Name,
		Initial:      initial,
	})
	return id, nil
}

// OpenCurrentAccount opens a current account for the named customer and
// returns the minted account id.
func (l *Ledger) OpenCurrentAccount(ctx context.Context, customerName string, initial, overdraftLimit float64) (string, error) {
	l.mu.Lock()
	c := l.getOrCreateCustomer(customerName)
	id := l.nextID(prefixCurrent)
	acc, err := domain.NewCurrentAccount(id, c, initial, overdraftLimit)
	if err != nil {
		l.mu.Unlock()
		return "", err
	}
	l.accounts[id] = acc
	l.mu.Unlock()

	l.log.Info().
		Str("account_id", id).
		Str("customer_id", c.ID.String()).
		Float64("initial", initial).
		Float64("overdraft_limit", overdraftLimit).
		Msg("Opened current account")

	l.publish(ctx, ports.TopicAccountOpened, ports.AccountOpenedEvent{
		AccountID:    id,
		AccountType:  domain.TypeCurrent,
		CustomerID:   c.ID,
		CustomerName: c.Name,
		Initial:      initial,
	})
	return id, nil
}

// Deposit credits the account by amount.
func (l *Ledger) Deposit(ctx context.Context, accountID string, amount float64) error {
	l.mu.Lock()
	acc, err := l.require(accountID)
	if err == nil {
		err = acc.Deposit(amount)
	}
	if err != nil {
		l.mu.Unlock()
		return err
	}
	balance := acc.Balance()
	l.mu.Unlock()

	l.log.Info().
		Str("account_id", accountID).
		Float64("amount", amount).
		Float64("balance", balance).
		Msg("Deposit committed")

	l.publish(ctx, ports.TopicFundsDeposited, ports.FundsMovedEvent{
		AccountID: accountID,
		Amount:    amount,
		Balance:   balance,
	})
	return nil
}

// Withdraw debits the account by amount, subject to the variant's
// balance-floor policy.
func (l *Ledger) Withdraw(ctx context.Context, accountID string, amount float64) error {
	l.mu.Lock()
	acc, err := l.require(accountID)
	if err == nil {
		err = acc.Withdraw(amount)
	}
	if err != nil {
		l.mu.Unlock()
		return err
	}
	balance := acc.Balance()
	l.mu.Unlock()

	l.log.Info().
		Str("account_id", accountID).
		Float64("amount", amount).
		Float64("balance", balance).
		Msg("Withdrawal committed")

	l.publish(ctx, ports.TopicFundsWithdrawn, ports.FundsMovedEvent{
		AccountID: accountID,
		Amount:    amount,
		Balance:   balance,
	})
	return nil
}

// Transfer moves amount from one account to another inside a single
// critical section. Both accounts are resolved before anything mutates.
// The withdraw leg enforces the source's balance floor; once it succeeds
// the deposit leg cannot fail (the amount is already known positive and
// deposits have no upper bound), so no rollback path exists. If deposit
// ever grows a way to fail, this needs a compensating withdrawal.
func (l *Ledger) Transfer(ctx context.Context, fromID, toID string, amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %.2f", domain.ErrIllegalAmount, amount)
	}

	l.mu.Lock()
	from, err := l.require(fromID)
	if err != nil {
		l.mu.Unlock()
		return err
	}
	to, err := l.require(toID)
	if err != nil {
		l.mu.Unlock()
		return err
	}
	if err := from.Withdraw(amount); err != nil {
		l.mu.Unlock()
		return err
	}
	if err := to.Deposit(amount); err != nil {
		// Unreachable today, see above.
		l.mu.Unlock()
		return err
	}
	l.mu.Unlock()

	l.log.Info().
		Str("from_id", fromID).
		Str("to_id", toID).
		Float64("amount", amount).
		Msg("Transfer committed")

	l.publish(ctx, ports.TopicFundsTransferred, ports.FundsTransferredEvent{
		FromID: fromID,
		ToID:   toID,
		Amount: amount,
	})
	return nil
}

// GetBalance returns the current balance of the account.
func (l *Ledger) GetBalance(ctx context.Context, accountID string) (float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	acc, err := l.require(accountID)
	if err != nil {
		return 0, err
	}
	return acc.Balance(), nil
}

// ApplyMonthlyUpdates credits one month's interest to every savings
// account. Accounts are independent, so map iteration order does not
// affect the result.
func (l *Ledger) ApplyMonthlyUpdates(ctx context.Context) {
	type credit struct {
		accountID string
		interest  float64
		balance   float64
	}

	l.mu.Lock()
	var credits []credit
	for id, acc := range l.accounts {
		sav, ok := acc.(*domain.SavingsAccount)
		if !ok {
			continue
		}
		interest := sav.MonthlyInterest(sav.Balance())
		sav.ApplyMonthlyInterest()
		credits = append(credits, credit{accountID: id, interest: interest, balance: sav.Balance()})
	}
	l.mu.Unlock()

	l.log.Info().Int("accounts_credited", len(credits)).Msg("Monthly updates applied")

	for _, c := range credits {
		l.publish(ctx, ports.TopicInterestApplied, ports.InterestAppliedEvent{
			AccountID: c.accountID,
			Interest:  c.interest,
			Balance:   c.balance,
		})
	}
}

// ListAccounts returns snapshots of every account sorted ascending by id.
func (l *Ledger) ListAccounts(ctx context.Context) []ports.AccountSummary {
	l.mu.Lock()
	out := make([]ports.AccountSummary, 0, len(l.accounts))
	for _, acc := range l.accounts {
		out = append(out, ports.AccountSummary{
			ID:        acc.ID(),
			Type:      acc.Type(),
			OwnerName: acc.Owner().Name,
			Balance:   acc.Balance(),
		})
	}
	l.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
