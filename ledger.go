package balance

import (
	"fmt"
	"iter"
	"slices"
	"time"
)

// Reserved document keys. Account names must never collide with these.
const (
	KeyGrandTotal     = "balance-all"
	KeyHistory        = "history"
	KeyDefaultExpense = "Default_consumption"
	KeyDefaultIncome  = "Default_income"
	KeyDefaultSalary  = "Default_salary"
)

var reservedKeys = map[string]struct{}{
	KeyGrandTotal:     {},
	KeyHistory:        {},
	KeyDefaultExpense: {},
	KeyDefaultIncome:  {},
	KeyDefaultSalary:  {},
}

// IsReservedKey reports whether name collides with a document system key.
func IsReservedKey(name string) bool {
	_, ok := reservedKeys[name]
	return ok
}

// Ledger is the in-memory form of the persisted document: named accounts with
// their balances, the running grand total, the append-only history and the
// per-kind default-account hints.
//
// After every committed mutation the grand total equals the sum of all
// account balances. Accounts keep their insertion order so the document
// round-trips unchanged.
type Ledger struct {
	names    []string
	accounts map[string]Amount
	total    Amount
	history  []HistoryEntry
	defaults map[Kind]string
	rec      Recorder
}

// timeNow stamps history entries; replaced in tests.
var timeNow = time.Now

// NewLedger builds a fresh ledger from account names and their opening
// balances. Names must be non-empty, pairwise distinct, and disjoint from the
// reserved key set. The grand total starts as the sum of all openings, the
// history empty, and every default-account hint unset.
func NewLedger(names []string, openings []Amount) (*Ledger, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("at least one account is required")
	}
	if len(names) != len(openings) {
		return nil, fmt.Errorf("got %d accounts but %d opening balances", len(names), len(openings))
	}
	l := newEmptyLedger()
	for i, name := range names {
		if err := l.CreateAccount(name, openings[i]); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func newEmptyLedger() *Ledger {
	return &Ledger{
		accounts: make(map[string]Amount),
		defaults: make(map[Kind]string),
		rec:      NopRecorder(),
	}
}

// SetRecorder installs the best-effort event recorder used around mutations.
// The ledger never depends on recording succeeding; nil restores the nop
// recorder.
func (l *Ledger) SetRecorder(r Recorder) {
	if r == nil {
		r = NopRecorder()
	}
	l.rec = r
}

// GrandTotal returns the running total over all account balances.
func (l *Ledger) GrandTotal() Amount { return l.total }

// Has reports whether the account exists.
func (l *Ledger) Has(name string) bool {
	_, ok := l.accounts[name]
	return ok
}

// Balance returns the balance of the named account.
func (l *Ledger) Balance(name string) (Amount, bool) {
	a, ok := l.accounts[name]
	return a, ok
}

// Accounts iterates over accounts and balances in insertion order.
func (l *Ledger) Accounts() iter.Seq2[string, Amount] {
	return func(yield func(string, Amount) bool) {
		for _, name := range l.names {
			if !yield(name, l.accounts[name]) {
				return
			}
		}
	}
}

// History returns a copy of the history, oldest entry first.
func (l *Ledger) History() []HistoryEntry {
	return slices.Clone(l.history)
}

// DefaultAccount returns the last-used account for this kind. A hint that is
// unset or points to a deleted account is reported as absent.
func (l *Ledger) DefaultAccount(k Kind) (string, bool) {
	name := l.defaults[k]
	if name == "" {
		return "", false
	}
	if _, ok := l.accounts[name]; !ok {
		return "", false
	}
	return name, true
}

// SetDefaultAccount records the per-kind lookup hint. The account must exist.
func (l *Ledger) SetDefaultAccount(k Kind, name string) error {
	if _, ok := l.accounts[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAccount, name)
	}
	l.defaults[k] = name
	return nil
}

// ApplyExpense sums every '-'-signed amount found in text, rounds the sum to
// two decimals, and subtracts it from the named account and the grand total.
// The appended history entry is returned.
func (l *Ledger) ApplyExpense(account, text string) (HistoryEntry, error) {
	return l.applyParsed(Expense, account, text)
}

// ApplyIncome is symmetric to ApplyExpense with addition: it collects signed
// and unsigned amounts from text and adds their rounded sum.
func (l *Ledger) ApplyIncome(account, text string) (HistoryEntry, error) {
	return l.applyParsed(Income, account, text)
}

func (l *Ledger) applyParsed(k Kind, account, text string) (HistoryEntry, error) {
	balance, ok := l.accounts[account]
	if !ok {
		return HistoryEntry{}, fmt.Errorf("%w: %q", ErrUnknownAccount, account)
	}
	var amounts []Amount
	if k == Expense {
		amounts = ExpenseAmounts(text)
	} else {
		amounts = IncomeAmounts(text)
	}
	if len(amounts) == 0 {
		return HistoryEntry{}, fmt.Errorf("%w in %q", ErrNoAmount, text)
	}
	var sum Amount
	for _, a := range amounts {
		sum = sum.Add(a)
	}
	// One rounding over the whole sum, never per term.
	sum = sum.Round()

	delta := sum
	if k == Expense {
		delta = sum.Neg()
	}
	entry := HistoryEntry{
		Time:    timeNow().Truncate(time.Second),
		Kind:    k,
		Record:  text,
		Amount:  sum,
		Account: account,
		Balance: balance.Add(delta),
		Total:   l.total.Add(delta),
	}
	l.commit(entry)
	return entry, nil
}

// ApplySalary parses text as a single signed decimal literal, rounds it to
// two decimals, and adds it to the named account and the grand total.
func (l *Ledger) ApplySalary(account, text string) (HistoryEntry, error) {
	balance, ok := l.accounts[account]
	if !ok {
		return HistoryEntry{}, fmt.Errorf("%w: %q", ErrUnknownAccount, account)
	}
	amount, err := ParseAmount(text)
	if err != nil {
		return HistoryEntry{}, err
	}
	amount = amount.Round()
	entry := HistoryEntry{
		Time:    timeNow().Truncate(time.Second),
		Kind:    Salary,
		Record:  amount.String(),
		Amount:  amount,
		Account: account,
		Balance: balance.Add(amount),
		Total:   l.total.Add(amount),
	}
	l.commit(entry)
	return entry, nil
}

// commit writes the staged mutation. Nothing before this point touches the
// ledger, so a failed operation leaves it unchanged.
func (l *Ledger) commit(e HistoryEntry) {
	l.accounts[e.Account] = e.Balance
	l.total = e.Total
	l.history = append(l.history, e)
	l.rec.Record(fmt.Sprintf("%s %s on %q: balance %s, total %s", e.Kind, e.Amount, e.Account, e.Balance, e.Total))
}

// CreateAccount inserts a new account and adds its opening balance to the
// grand total. No history entry is recorded for account creation.
func (l *Ledger) CreateAccount(name string, opening Amount) error {
	if name == "" {
		return fmt.Errorf("account name must not be empty")
	}
	if IsReservedKey(name) {
		return fmt.Errorf("%w: %q is a reserved key", ErrDuplicateAccount, name)
	}
	if _, ok := l.accounts[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateAccount, name)
	}
	l.names = append(l.names, name)
	l.accounts[name] = opening
	l.total = l.total.Add(opening)
	l.rec.Record(fmt.Sprintf("created account %q with opening balance %s, total %s", name, opening, l.total))
	return nil
}

// DeleteAccount removes the account, subtracting its balance from the grand
// total, and returns the removed balance. Hints pointing at the deleted
// account are left in place; DefaultAccount reports them as absent.
func (l *Ledger) DeleteAccount(name string) (Amount, error) {
	if IsReservedKey(name) {
		return Amount{}, fmt.Errorf("%w: %q", ErrUnknownAccount, name)
	}
	balance, ok := l.accounts[name]
	if !ok {
		return Amount{}, fmt.Errorf("%w: %q", ErrUnknownAccount, name)
	}
	delete(l.accounts, name)
	l.names = slices.DeleteFunc(l.names, func(s string) bool { return s == name })
	l.total = l.total.Sub(balance)
	l.rec.Record(fmt.Sprintf("deleted account %q holding %s, total %s", name, balance, l.total))
	return balance, nil
}

// Equal reports whether two ledgers hold the same document state, including
// account order, history and raw default-account hints.
func (l *Ledger) Equal(o *Ledger) bool {
	if !slices.Equal(l.names, o.names) {
		return false
	}
	for name, a := range l.accounts {
		if b, ok := o.accounts[name]; !ok || !a.Equal(b) {
			return false
		}
	}
	if !l.total.Equal(o.total) {
		return false
	}
	if !slices.EqualFunc(l.history, o.history, HistoryEntry.Equal) {
		return false
	}
	for _, k := range []Kind{Expense, Income, Salary} {
		if l.defaults[k] != o.defaults[k] {
			return false
		}
	}
	return true
}
