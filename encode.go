package balance

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// The document is YAML: one scalar entry per account, the grand total under
// "balance-all", the raw history sequence, and the three default-account
// hints. Money is always emitted as its canonical two-decimal string, never
// as a YAML number, so nothing is lost going through the YAML type system.
//
// Encoding and decoding work at the node level to keep the account entries in
// their original order.

// Encode writes the ledger document to w in its canonical YAML form.
func Encode(w io.Writer, l *Ledger) error {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for name, balance := range l.Accounts() {
		appendPair(root, name, amountNode(balance))
	}
	appendPair(root, KeyGrandTotal, amountNode(l.total))
	appendPair(root, KeyHistory, historyNode(l.history))
	for _, k := range []Kind{Expense, Income, Salary} {
		appendPair(root, k.defaultKey(), hintNode(l.defaults[k]))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		enc.Close()
		return fmt.Errorf("could not encode document: %w", err)
	}
	return enc.Close()
}

// Decode reads a ledger document from r. It fails with ErrMalformedDocument
// when the top level is not a mapping or a monetary field does not parse.
// Absent history and default-account fields decode to unset.
func Decode(r io.Reader) (*Ledger, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, fmt.Errorf("%w: empty document", ErrMalformedDocument)
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level is not a mapping", ErrMalformedDocument)
	}

	l := newEmptyLedger()
	sawTotal := false
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch {
		case key.Value == KeyHistory:
			entries, err := decodeHistory(value)
			if err != nil {
				return nil, err
			}
			l.history = entries
		case key.Value == KeyGrandTotal:
			a, err := ParseAmount(value.Value)
			if err != nil {
				return nil, fmt.Errorf("%w: grand total %q", ErrMalformedDocument, value.Value)
			}
			l.total = a
			sawTotal = true
		default:
			if k, ok := kindForDefaultKey(key.Value); ok {
				if value.Tag != "!!null" && value.Value != "" {
					l.defaults[k] = value.Value
				}
				continue
			}
			a, err := ParseAmount(value.Value)
			if err != nil {
				return nil, fmt.Errorf("%w: account %q balance %q", ErrMalformedDocument, key.Value, value.Value)
			}
			l.names = append(l.names, key.Value)
			l.accounts[key.Value] = a
		}
	}
	if !sawTotal {
		return nil, fmt.Errorf("%w: missing %q", ErrMalformedDocument, KeyGrandTotal)
	}
	return l, nil
}

func appendPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, strNode(key), value)
}

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// amountNode renders money as a quoted two-decimal string scalar.
func amountNode(a Amount) *yaml.Node {
	n := strNode(a.String())
	n.Style = yaml.DoubleQuotedStyle
	return n
}

func hintNode(name string) *yaml.Node {
	if name == "" {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
	return strNode(name)
}

func historyNode(entries []HistoryEntry) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, e := range entries {
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		appendPair(m, "time", strNode(e.Time.Format(timeLayout)))
		appendPair(m, "type", strNode(e.Kind.Label()))
		if e.Kind.hasRecord() {
			appendPair(m, "record", strNode(e.Record))
		}
		appendPair(m, e.Kind.amountKey(), amountNode(e.Amount))
		appendPair(m, KeyGrandTotal, amountNode(e.Total))
		appendPair(m, e.Account, amountNode(e.Balance))
		seq.Content = append(seq.Content, m)
	}
	return seq
}

func decodeHistory(n *yaml.Node) ([]HistoryEntry, error) {
	if n.Tag == "!!null" {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: history is not a sequence", ErrMalformedDocument)
	}
	var entries []HistoryEntry
	for _, item := range n.Content {
		e, err := decodeHistoryEntry(item)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func decodeHistoryEntry(n *yaml.Node) (HistoryEntry, error) {
	if n.Kind != yaml.MappingNode {
		return HistoryEntry{}, fmt.Errorf("%w: history entry is not a mapping", ErrMalformedDocument)
	}
	var e HistoryEntry
	sawKind := false
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		switch key.Value {
		case "time":
			t, err := time.ParseInLocation(timeLayout, value.Value, time.Local)
			if err != nil {
				return HistoryEntry{}, fmt.Errorf("%w: history time %q", ErrMalformedDocument, value.Value)
			}
			e.Time = t
		case "type":
			k, err := ParseKindLabel(value.Value)
			if err != nil {
				return HistoryEntry{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
			}
			e.Kind = k
			sawKind = true
		case "record":
			e.Record = value.Value
		case "expense", "income", "salary":
			a, err := ParseAmount(value.Value)
			if err != nil {
				return HistoryEntry{}, fmt.Errorf("%w: history amount %q", ErrMalformedDocument, value.Value)
			}
			e.Amount = a
		case KeyGrandTotal:
			a, err := ParseAmount(value.Value)
			if err != nil {
				return HistoryEntry{}, fmt.Errorf("%w: history total %q", ErrMalformedDocument, value.Value)
			}
			e.Total = a
		default:
			// The remaining key is the affected account's balance snapshot.
			a, err := ParseAmount(value.Value)
			if err != nil {
				return HistoryEntry{}, fmt.Errorf("%w: history balance %q for %q", ErrMalformedDocument, value.Value, key.Value)
			}
			e.Account = key.Value
			e.Balance = a
		}
	}
	if !sawKind {
		return HistoryEntry{}, fmt.Errorf("%w: history entry has no type", ErrMalformedDocument)
	}
	if !e.Kind.hasRecord() {
		e.Record = e.Amount.String()
	}
	return e, nil
}
