package balance

import "fmt"

// Kind identifies the kind of mutation a history entry records.
type Kind int

const (
	// Expense reduces an account balance by amounts parsed from annotated text.
	Expense Kind = iota
	// Income increases an account balance by amounts parsed from annotated text.
	Income
	// Salary increases an account balance by a single signed amount.
	Salary
)

func (k Kind) String() string {
	switch k {
	case Expense:
		return "expense"
	case Income:
		return "income"
	case Salary:
		return "salary"
	default:
		return "unknown"
	}
}

// Label returns the label persisted in the document's "type" field.
func (k Kind) Label() string {
	switch k {
	case Expense:
		return "消费"
	case Income:
		return "收入"
	case Salary:
		return "工资"
	default:
		return "unknown"
	}
}

// ParseKindLabel parses a persisted "type" label into a Kind.
func ParseKindLabel(s string) (Kind, error) {
	switch s {
	case "消费":
		return Expense, nil
	case "收入":
		return Income, nil
	case "工资":
		return Salary, nil
	default:
		return 0, fmt.Errorf("unknown transaction kind: %q", s)
	}
}

// amountKey returns the history field name holding this kind's amount.
func (k Kind) amountKey() string {
	switch k {
	case Expense:
		return "expense"
	case Income:
		return "income"
	default:
		return "salary"
	}
}

// hasRecord reports whether history entries of this kind carry the raw
// annotated input under a "record" field. Salary entries do not: their raw
// input is the numeric literal itself.
func (k Kind) hasRecord() bool { return k == Expense || k == Income }

// defaultKey returns the reserved document key holding the default-account
// hint for this kind.
func (k Kind) defaultKey() string {
	switch k {
	case Expense:
		return KeyDefaultExpense
	case Income:
		return KeyDefaultIncome
	default:
		return KeyDefaultSalary
	}
}

// kindForDefaultKey is the reverse of defaultKey.
func kindForDefaultKey(key string) (Kind, bool) {
	switch key {
	case KeyDefaultExpense:
		return Expense, true
	case KeyDefaultIncome:
		return Income, true
	case KeyDefaultSalary:
		return Salary, true
	default:
		return 0, false
	}
}
