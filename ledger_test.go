package balance

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// stubClock pins timeNow for deterministic history entries.
func stubClock(t *testing.T) time.Time {
	t.Helper()
	fixed := time.Date(2025, 3, 14, 12, 30, 0, 0, time.Local)
	prev := timeNow
	timeNow = func() time.Time { return fixed }
	t.Cleanup(func() { timeNow = prev })
	return fixed
}

// checkTotal verifies the grand total equals the sum of all balances.
func checkTotal(t *testing.T, l *Ledger) {
	t.Helper()
	var sum Amount
	for _, balance := range l.Accounts() {
		sum = sum.Add(balance)
	}
	if !sum.Equal(l.GrandTotal()) {
		t.Fatalf("grand total %s does not match account sum %s", l.GrandTotal(), sum)
	}
}

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := NewLedger(
		[]string{"cash", "bank"},
		[]Amount{MustAmount("100"), MustAmount("50")},
	)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestLedgerScenario(t *testing.T) {
	now := stubClock(t)
	l := newTestLedger(t)

	if got := l.GrandTotal().String(); got != "150.00" {
		t.Fatalf("opening grand total = %s, want 150.00", got)
	}
	if len(l.History()) != 0 {
		t.Fatalf("fresh ledger has %d history entries, want 0", len(l.History()))
	}
	checkTotal(t, l)

	entry, err := l.ApplyExpense("cash", "lunch-10")
	if err != nil {
		t.Fatal(err)
	}
	want := HistoryEntry{
		Time:    now,
		Kind:    Expense,
		Record:  "lunch-10",
		Amount:  MustAmount("10.00"),
		Account: "cash",
		Balance: MustAmount("90.00"),
		Total:   MustAmount("140.00"),
	}
	if diff := cmp.Diff(want, entry); diff != "" {
		t.Errorf("expense entry mismatch (-want +got):\n%s", diff)
	}
	checkTotal(t, l)

	if _, err := l.ApplySalary("bank", "5000"); err != nil {
		t.Fatal(err)
	}
	if got, _ := l.Balance("bank"); got.String() != "5050.00" {
		t.Errorf("bank balance = %s, want 5050.00", got)
	}
	if got := l.GrandTotal().String(); got != "5190.00" {
		t.Errorf("grand total = %s, want 5190.00", got)
	}
	checkTotal(t, l)

	removed, err := l.DeleteAccount("cash")
	if err != nil {
		t.Fatal(err)
	}
	if removed.String() != "90.00" {
		t.Errorf("removed balance = %s, want 90.00", removed)
	}
	if got := l.GrandTotal().String(); got != "5100.00" {
		t.Errorf("grand total after delete = %s, want 5100.00", got)
	}
	if l.Has("cash") {
		t.Error("cash still present after delete")
	}
	checkTotal(t, l)

	// Two movements, two entries: account management never writes history.
	if got := len(l.History()); got != 2 {
		t.Errorf("history has %d entries, want 2", got)
	}
}

func TestApplyExpense_RoundsSumOnce(t *testing.T) {
	stubClock(t)
	l := newTestLedger(t)

	// Per-term rounding would yield 20.00; the sum rounds to 20.01.
	entry, err := l.ApplyExpense("cash", "a-10.005 b-10.005")
	if err != nil {
		t.Fatal(err)
	}
	if entry.Amount.String() != "20.01" {
		t.Errorf("expense amount = %s, want 20.01", entry.Amount)
	}
	if got, _ := l.Balance("cash"); got.String() != "79.99" {
		t.Errorf("cash balance = %s, want 79.99", got)
	}
	checkTotal(t, l)
}

func TestApplyIncome(t *testing.T) {
	stubClock(t)
	l := newTestLedger(t)

	entry, err := l.ApplyIncome("bank", "refund+20.5 sold bike 100")
	if err != nil {
		t.Fatal(err)
	}
	if entry.Amount.String() != "120.50" {
		t.Errorf("income amount = %s, want 120.50", entry.Amount)
	}
	if got, _ := l.Balance("bank"); got.String() != "170.50" {
		t.Errorf("bank balance = %s, want 170.50", got)
	}
	checkTotal(t, l)
}

func TestApplySalary_CanonicalRecord(t *testing.T) {
	stubClock(t)
	l := newTestLedger(t)

	entry, err := l.ApplySalary("bank", "4999.995")
	if err != nil {
		t.Fatal(err)
	}
	if entry.Record != "5000.00" {
		t.Errorf("salary record = %q, want canonical %q", entry.Record, "5000.00")
	}
	if entry.Amount.String() != "5000.00" {
		t.Errorf("salary amount = %s, want 5000.00", entry.Amount)
	}
}

func TestApply_Errors(t *testing.T) {
	stubClock(t)
	l := newTestLedger(t)

	testCases := []struct {
		name string
		op   func() error
		want error
	}{
		{
			name: "expense without amount",
			op:   func() error { _, err := l.ApplyExpense("cash", "just a note"); return err },
			want: ErrNoAmount,
		},
		{
			name: "expense on unknown account",
			op:   func() error { _, err := l.ApplyExpense("savings", "x-10"); return err },
			want: ErrUnknownAccount,
		},
		{
			name: "expense on reserved key",
			op:   func() error { _, err := l.ApplyExpense(KeyGrandTotal, "x-10"); return err },
			want: ErrUnknownAccount,
		},
		{
			name: "income without amount",
			op:   func() error { _, err := l.ApplyIncome("cash", "nothing"); return err },
			want: ErrNoAmount,
		},
		{
			name: "salary not a literal",
			op:   func() error { _, err := l.ApplySalary("bank", "march pay 5000"); return err },
			want: ErrInvalidAmount,
		},
		{
			name: "salary on unknown account",
			op:   func() error { _, err := l.ApplySalary("savings", "5000"); return err },
			want: ErrUnknownAccount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.op(); !errors.Is(err, tc.want) {
				t.Fatalf("error = %v, want %v", err, tc.want)
			}
			// A failed operation leaves the ledger untouched.
			if got, _ := l.Balance("cash"); got.String() != "100.00" {
				t.Errorf("cash balance changed to %s", got)
			}
			if got := l.GrandTotal().String(); got != "150.00" {
				t.Errorf("grand total changed to %s", got)
			}
			if len(l.History()) != 0 {
				t.Errorf("failed operation appended history")
			}
		})
	}
}

func TestCreateAccount(t *testing.T) {
	l := newTestLedger(t)

	if err := l.CreateAccount("savings", MustAmount("1000")); err != nil {
		t.Fatal(err)
	}
	if got := l.GrandTotal().String(); got != "1150.00" {
		t.Errorf("grand total = %s, want 1150.00", got)
	}
	if len(l.History()) != 0 {
		t.Error("account creation wrote a history entry")
	}
	checkTotal(t, l)

	if err := l.CreateAccount("cash", MustAmount("0")); !errors.Is(err, ErrDuplicateAccount) {
		t.Errorf("duplicate name error = %v, want ErrDuplicateAccount", err)
	}
	if err := l.CreateAccount(KeyGrandTotal, MustAmount("0")); !errors.Is(err, ErrDuplicateAccount) {
		t.Errorf("reserved name error = %v, want ErrDuplicateAccount", err)
	}
	if err := l.CreateAccount(KeyHistory, MustAmount("0")); !errors.Is(err, ErrDuplicateAccount) {
		t.Errorf("reserved name error = %v, want ErrDuplicateAccount", err)
	}
	if err := l.CreateAccount("", MustAmount("0")); err == nil {
		t.Error("empty name was accepted")
	}
}

func TestDeleteAccount_Errors(t *testing.T) {
	l := newTestLedger(t)

	if _, err := l.DeleteAccount("savings"); !errors.Is(err, ErrUnknownAccount) {
		t.Errorf("unknown account error = %v, want ErrUnknownAccount", err)
	}
	if _, err := l.DeleteAccount(KeyGrandTotal); !errors.Is(err, ErrUnknownAccount) {
		t.Errorf("reserved key error = %v, want ErrUnknownAccount", err)
	}
}

func TestDefaultAccount(t *testing.T) {
	l := newTestLedger(t)

	if _, ok := l.DefaultAccount(Expense); ok {
		t.Error("fresh ledger reports an expense default")
	}
	if err := l.SetDefaultAccount(Expense, "cash"); err != nil {
		t.Fatal(err)
	}
	if name, ok := l.DefaultAccount(Expense); !ok || name != "cash" {
		t.Errorf("expense default = %q, %v, want cash, true", name, ok)
	}
	if err := l.SetDefaultAccount(Salary, "savings"); !errors.Is(err, ErrUnknownAccount) {
		t.Errorf("unknown hint error = %v, want ErrUnknownAccount", err)
	}

	// A hint surviving its account is reported as absent.
	if _, err := l.DeleteAccount("cash"); err != nil {
		t.Fatal(err)
	}
	if _, ok := l.DefaultAccount(Expense); ok {
		t.Error("stale hint reported as present")
	}
}

func TestAccounts_Order(t *testing.T) {
	l, err := NewLedger(
		[]string{"zebra", "alpha", "middle"},
		[]Amount{MustAmount("1"), MustAmount("2"), MustAmount("3")},
	)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for name := range l.Accounts() {
		got = append(got, name)
	}
	want := []string{"zebra", "alpha", "middle"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("account order mismatch (-want +got):\n%s", diff)
	}
}

func TestNewLedger_Validation(t *testing.T) {
	if _, err := NewLedger(nil, nil); err == nil {
		t.Error("empty ledger was accepted")
	}
	if _, err := NewLedger([]string{"cash"}, nil); err == nil {
		t.Error("length mismatch was accepted")
	}
	if _, err := NewLedger([]string{"cash", "cash"}, []Amount{{}, {}}); !errors.Is(err, ErrDuplicateAccount) {
		t.Error("duplicate opening names were accepted")
	}
}
