package balance

import "time"

// timeLayout is the wall-clock layout of history timestamps, second precision.
const timeLayout = "2006-01-02 15:04:05"

// HistoryEntry is the immutable record of one committed mutation. Entries are
// only ever appended to the ledger history, never edited or removed.
type HistoryEntry struct {
	Time    time.Time // wall-clock time of the mutation, second precision
	Kind    Kind
	Record  string // original annotated input; for salary, the numeric literal
	Amount  Amount // magnitude, sign implied by Kind (salary may be signed)
	Account string // affected account, snapshot taken right after the mutation
	Balance Amount // account balance after the mutation
	Total   Amount // grand total after the mutation
}

// Equal reports whether two history entries record the same mutation.
func (e HistoryEntry) Equal(o HistoryEntry) bool {
	return e.Time.Equal(o.Time) &&
		e.Kind == o.Kind &&
		e.Record == o.Record &&
		e.Amount.Equal(o.Amount) &&
		e.Account == o.Account &&
		e.Balance.Equal(o.Balance) &&
		e.Total.Equal(o.Total)
}
