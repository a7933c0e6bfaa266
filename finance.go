package deniverse

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/deniverse/deniverse/date"
)

// FinanceCategory classifies a transaction.
type FinanceCategory string

const (
	Salary    FinanceCategory = "salary"
	Food      FinanceCategory = "food"
	Coffee    FinanceCategory = "coffee"
	Transport FinanceCategory = "transport"
	Shopping  FinanceCategory = "shopping"
	Health    FinanceCategory = "health"
	Home      FinanceCategory = "home"
	Fun       FinanceCategory = "fun"
	Other     FinanceCategory = "other"
)

// FinanceCategories lists all transaction categories.
var FinanceCategories = []FinanceCategory{Salary, Food, Coffee, Transport, Shopping, Health, Home, Fun, Other}

// ParseFinanceCategory parses a transaction category name.
func ParseFinanceCategory(s string) (FinanceCategory, error) {
	for _, c := range FinanceCategories {
		if string(c) == strings.ToLower(s) {
			return c, nil
		}
	}
	return Other, fmt.Errorf("unknown finance category %q", s)
}

// Transaction is one ledger movement. A positive amount is income, a
// negative amount an expense.
type Transaction struct {
	ID       uuid.UUID       `json:"id"`
	Title    string          `json:"title"`
	Amount   Money           `json:"amount"`
	Date     date.Date       `json:"date"`
	Category FinanceCategory `json:"category"`
}

// NewTransaction creates a transaction with a fresh id.
func NewTransaction(title string, amount Money, day date.Date, category FinanceCategory) Transaction {
	return Transaction{ID: uuid.New(), Title: title, Amount: amount, Date: day, Category: category}
}

// MarshalJSON keeps the transaction fields in a fixed order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("title", t.Title)
	w.Append("amount", t.Amount)
	w.Append("date", t.Date)
	w.Append("category", t.Category)
	return w.MarshalJSON()
}

// financeDocument is the persisted shape of the ledger.
type financeDocument struct {
	WalletBalance Money         `json:"walletBalance"`
	Transactions  []Transaction `json:"transactions"`
}

// FinanceStore owns the transaction list and the wallet balance. The list
// is kept most-recent-first; new transactions are prepended. The wallet
// balance follows every mutation by the transaction's amount delta but is
// also independently settable, so users can reconcile it against a real
// bank balance.
type FinanceStore struct {
	path          string
	currency      string
	walletBalance Money
	transactions  []Transaction
	loading       bool
}

// NewFinanceStore loads the ledger document from dir. Amounts take the
// given currency, which is an app-level preference and not persisted per
// transaction. A missing or corrupt file yields an empty ledger. The legacy
// shape, a bare array of transactions with no wallet wrapper, is still
// accepted on read, with the balance defaulting to zero.
func NewFinanceStore(dir, currency string) *FinanceStore {
	s := &FinanceStore{
		path:          filepath.Join(dir, FinanceFile),
		currency:      currency,
		walletBalance: M(0, currency),
	}
	s.loading = true
	defer func() { s.loading = false }()

	var doc financeDocument
	err := readDocument(s.path, &doc)
	if err == nil {
		s.walletBalance = doc.WalletBalance.WithCurrency(currency)
		s.transactions = doc.Transactions
	} else if !isNotExist(err) {
		var legacy []Transaction
		if lerr := readDocument(s.path, &legacy); lerr == nil {
			s.transactions = legacy
		} else {
			log.Printf("finance: load %s: %v", s.path, err)
		}
	}
	for i := range s.transactions {
		s.transactions[i].Amount = s.transactions[i].Amount.WithCurrency(currency)
		if s.transactions[i].Category == "" {
			s.transactions[i].Category = Other
		}
	}
	return s
}

// Currency returns the ledger's currency code.
func (s *FinanceStore) Currency() string { return s.currency }

// WalletBalance returns the current wallet balance.
func (s *FinanceStore) WalletBalance() Money { return s.walletBalance }

// Transactions returns a copy of the list, most recent first.
func (s *FinanceStore) Transactions() []Transaction {
	out := make([]Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Transaction returns the transaction with the given id.
func (s *FinanceStore) Transaction(id uuid.UUID) (Transaction, bool) {
	for _, tx := range s.transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return Transaction{}, false
}

// Add prepends a transaction and moves the wallet balance by its amount.
func (s *FinanceStore) Add(tx Transaction) {
	tx.Amount = tx.Amount.WithCurrency(s.currency)
	s.transactions = append([]Transaction{tx}, s.transactions...)
	s.walletBalance = s.walletBalance.Add(tx.Amount)
	s.persist()
}

// Replace swaps the transaction with the given id and adjusts the wallet
// balance by the amount delta. Unknown id is a silent no-op. The
// replacement keeps the old id when its own is unset.
func (s *FinanceStore) Replace(id uuid.UUID, tx Transaction) {
	for i, old := range s.transactions {
		if old.ID != id {
			continue
		}
		if tx.ID == (uuid.UUID{}) {
			tx.ID = old.ID
		}
		tx.Amount = tx.Amount.WithCurrency(s.currency)
		s.transactions[i] = tx
		s.walletBalance = s.walletBalance.Add(tx.Amount.Sub(old.Amount))
		s.persist()
		return
	}
}

// Remove deletes the transaction with the given id and moves the wallet
// balance back by its amount. Unknown id is a silent no-op.
func (s *FinanceStore) Remove(id uuid.UUID) {
	for i, old := range s.transactions {
		if old.ID != id {
			continue
		}
		s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
		s.walletBalance = s.walletBalance.Sub(old.Amount)
		s.persist()
		return
	}
}

// SetWalletBalance overrides the wallet balance directly, independent of
// the transaction sum (manual reconciliation).
func (s *FinanceStore) SetWalletBalance(balance Money) {
	s.walletBalance = balance.WithCurrency(s.currency)
	s.persist()
}

// TotalIncome sums the positive amounts dated inside the range.
func (s *FinanceStore) TotalIncome(r date.Range) Money {
	total := M(0, s.currency)
	for _, tx := range s.transactions {
		if tx.Amount.IsPositive() && r.Contains(tx.Date) {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// TotalExpense sums the negative amounts dated inside the range, returned
// as a positive magnitude.
func (s *FinanceStore) TotalExpense(r date.Range) Money {
	total := M(0, s.currency)
	for _, tx := range s.transactions {
		if tx.Amount.IsNegative() && r.Contains(tx.Date) {
			total = total.Add(tx.Amount)
		}
	}
	return total.Neg()
}

// persist writes the ledger document; failures are logged and swallowed,
// leaving prior on-disk state untouched.
func (s *FinanceStore) persist() {
	if s.loading {
		return
	}
	doc := financeDocument{WalletBalance: s.walletBalance, Transactions: s.transactions}
	if err := writeDocument(s.path, doc); err != nil {
		log.Printf("finance: save %s: %v", s.path, err)
	}
}
