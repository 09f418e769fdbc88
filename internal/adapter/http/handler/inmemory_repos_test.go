package handler_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"saldo-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// --- In-Memory Ledger Database ---

// memDB serialises transactions behind one mutex; a transaction sees its own
// writes and publishes them on commit.
type memDB struct {
	mu          sync.Mutex
	balances    map[uuid.UUID]decimal.Decimal
	transfers   []*domain.Transfer
	withdrawals map[uuid.UUID]domain.Withdrawal
}

type memTx struct {
	pgx.Tx
	db          *memDB
	balances    map[uuid.UUID]decimal.Decimal
	transfers   []*domain.Transfer
	withdrawals map[uuid.UUID]domain.Withdrawal
	done        bool
}

func newMemDB() *memDB {
	return &memDB{
		balances:    make(map[uuid.UUID]decimal.Decimal),
		withdrawals: make(map[uuid.UUID]domain.Withdrawal),
	}
}

func (db *memDB) seed(userID uuid.UUID, balance int64) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.balances[userID] = decimal.NewFromInt(balance)
}

func (db *memDB) Begin(_ context.Context) (pgx.Tx, error) {
	db.mu.Lock()
	tx := &memTx{
		db:          db,
		balances:    make(map[uuid.UUID]decimal.Decimal, len(db.balances)),
		transfers:   append([]*domain.Transfer(nil), db.transfers...),
		withdrawals: make(map[uuid.UUID]domain.Withdrawal, len(db.withdrawals)),
	}
	for k, v := range db.balances {
		tx.balances[k] = v
	}
	for k, v := range db.withdrawals {
		tx.withdrawals[k] = v
	}
	return tx, nil
}

func (t *memTx) Commit(_ context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.db.balances = t.balances
	t.db.transfers = t.transfers
	t.db.withdrawals = t.withdrawals
	t.done = true
	t.db.mu.Unlock()
	return nil
}

func (t *memTx) Rollback(_ context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.db.mu.Unlock()
	return nil
}

// --- Balances ---

type memBalanceRepo struct{ db *memDB }

func (r memBalanceRepo) Get(_ context.Context, userID uuid.UUID) (*domain.AccountBalance, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	b, ok := r.db.balances[userID]
	if !ok {
		return nil, nil
	}
	return &domain.AccountBalance{UserID: userID, Balance: b}, nil
}

func (r memBalanceRepo) Debit(_ context.Context, tx pgx.Tx, userID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, bool, error) {
	mt := tx.(*memTx)
	b, ok := mt.balances[userID]
	if !ok || b.LessThan(amount) {
		return decimal.Zero, false, nil
	}
	mt.balances[userID] = b.Sub(amount)
	return mt.balances[userID], true, nil
}

func (r memBalanceRepo) Credit(_ context.Context, tx pgx.Tx, userID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, bool, error) {
	mt := tx.(*memTx)
	b, ok := mt.balances[userID]
	if !ok {
		return decimal.Zero, false, nil
	}
	mt.balances[userID] = b.Add(amount)
	return mt.balances[userID], true, nil
}

// --- Transfers ---

type memTransferRepo struct{ db *memDB }

func (r memTransferRepo) Create(_ context.Context, tx pgx.Tx, t *domain.Transfer) error {
	mt := tx.(*memTx)
	mt.transfers = append(mt.transfers, t)
	return nil
}

func (r memTransferRepo) ExistsRecent(_ context.Context, tx pgx.Tx, senderID, receiverID uuid.UUID, amount decimal.Decimal, since time.Time) (bool, error) {
	for _, t := range tx.(*memTx).transfers {
		if t.SenderID == senderID && t.ReceiverID == receiverID && t.Amount.Equal(amount) && !t.CreatedAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (r memTransferRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Transfer, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, t := range r.db.transfers {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

// --- Withdrawals ---

type memWithdrawalRepo struct{ db *memDB }

func (r memWithdrawalRepo) Create(_ context.Context, tx pgx.Tx, w *domain.Withdrawal) error {
	tx.(*memTx).withdrawals[w.ID] = *w
	return nil
}

func (r memWithdrawalRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Withdrawal, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	w, ok := r.db.withdrawals[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (r memWithdrawalRepo) GetByIDForUpdate(_ context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Withdrawal, error) {
	w, ok := tx.(*memTx).withdrawals[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (r memWithdrawalRepo) UpdateStatus(_ context.Context, tx pgx.Tx, w *domain.Withdrawal) error {
	tx.(*memTx).withdrawals[w.ID] = *w
	return nil
}

// --- Activity ---

type memActivityRepo struct{ db *memDB }

func (r memActivityRepo) CountTransactionsSince(_ context.Context, userID uuid.UUID, since time.Time) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	n := 0
	for _, t := range r.db.transfers {
		if t.SenderID == userID && !t.CreatedAt.Before(since) {
			n++
		}
	}
	for _, w := range r.db.withdrawals {
		if w.UserID == userID && !w.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

// --- Users ---

type memUserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *memUserRepo) add(email string) *domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := &domain.User{ID: uuid.New(), Email: email, Name: email, CreatedAt: time.Now().UTC()}
	r.users[u.ID] = u
	return u
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

// --- Security Logs ---

type memSecurityLogRepo struct {
	mu        sync.Mutex
	snapshots []domain.SecuritySnapshot
}

func (r *memSecurityLogRepo) Create(_ context.Context, s *domain.SecuritySnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = append(r.snapshots, *s)
	return nil
}

func (r *memSecurityLogRepo) LastSuccessfulWithLocation(_ context.Context, userID uuid.UUID) (*domain.SecuritySnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.snapshots) - 1; i >= 0; i-- {
		s := r.snapshots[i]
		if s.UserID == userID && s.Status == domain.SnapshotStatusSuccess && (s.Latitude != 0 || s.Longitude != 0) {
			return &s, nil
		}
	}
	return nil, nil
}

func (r *memSecurityLogRepo) RecentFingerprints(_ context.Context, userID uuid.UUID, since time.Time, limit int) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[string]bool)
	var out []string
	for i := len(r.snapshots) - 1; i >= 0 && len(out) < limit; i-- {
		s := r.snapshots[i]
		if s.UserID != userID || s.Status != domain.SnapshotStatusSuccess || s.FingerprintHash == "" || s.CreatedAt.Before(since) {
			continue
		}
		if !seen[s.FingerprintHash] {
			seen[s.FingerprintHash] = true
			out = append(out, s.FingerprintHash)
		}
	}
	return out, nil
}

func (r *memSecurityLogRepo) CountDistinctIPsSince(_ context.Context, userID uuid.UUID, since time.Time, excludeIP string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ips := make(map[string]bool)
	for _, s := range r.snapshots {
		if s.UserID == userID && s.IPAddress != excludeIP && s.IPAddress != "" && !s.CreatedAt.Before(since) {
			ips[s.IPAddress] = true
		}
	}
	return len(ips), nil
}

func (r *memSecurityLogRepo) byUser(userID uuid.UUID) []domain.SecuritySnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.SecuritySnapshot
	for _, s := range r.snapshots {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out
}

// --- Geolocation ---

type stubGeoProvider struct {
	byIP map[string]*domain.GeoData
}

func (p stubGeoProvider) Lookup(_ context.Context, ip string) (*domain.GeoData, error) {
	return p.byIP[ip], nil
}
