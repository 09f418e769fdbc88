package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"saldo-ledger/internal/core/domain"
	"saldo-ledger/internal/core/ports"
	"saldo-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memLedgerStore is an in-memory stand-in for the database. One transaction
// runs at a time and sees its own writes, which matches serializable
// isolation for this workload.
type memLedgerStore struct {
	mu        sync.Mutex
	balances  map[uuid.UUID]decimal.Decimal
	transfers []*domain.Transfer
}

type memTx struct {
	pgx.Tx
	store     *memLedgerStore
	balances  map[uuid.UUID]decimal.Decimal
	transfers []*domain.Transfer
	done      bool
}

func newMemLedgerStore(balances map[uuid.UUID]decimal.Decimal) *memLedgerStore {
	return &memLedgerStore{balances: balances}
}

func (s *memLedgerStore) Begin(_ context.Context) (pgx.Tx, error) {
	s.mu.Lock()
	staged := make(map[uuid.UUID]decimal.Decimal, len(s.balances))
	for k, v := range s.balances {
		staged[k] = v
	}
	return &memTx{
		store:     s,
		balances:  staged,
		transfers: append([]*domain.Transfer(nil), s.transfers...),
	}, nil
}

func (t *memTx) Commit(_ context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.store.balances = t.balances
	t.store.transfers = t.transfers
	t.done = true
	t.store.mu.Unlock()
	return nil
}

func (t *memTx) Rollback(_ context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.store.mu.Unlock()
	return nil
}

type memBalanceRepo struct{ store *memLedgerStore }

func (r memBalanceRepo) Get(_ context.Context, userID uuid.UUID) (*domain.AccountBalance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	b, ok := r.store.balances[userID]
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

type memTransferRepo struct{}

func (memTransferRepo) Create(_ context.Context, tx pgx.Tx, t *domain.Transfer) error {
	mt := tx.(*memTx)
	mt.transfers = append(mt.transfers, t)
	return nil
}

func (memTransferRepo) ExistsRecent(_ context.Context, tx pgx.Tx, senderID, receiverID uuid.UUID, amount decimal.Decimal, since time.Time) (bool, error) {
	for _, t := range tx.(*memTx).transfers {
		if t.SenderID == senderID && t.ReceiverID == receiverID && t.Amount.Equal(amount) && !t.CreatedAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (memTransferRepo) GetByID(_ context.Context, _ uuid.UUID) (*domain.Transfer, error) {
	return nil, nil
}

func newMemLedger(store *memLedgerStore) *LedgerServiceImpl {
	return NewLedgerService(memBalanceRepo{store}, memTransferRepo{}, nil, nil, nil, store, nil, testLedgerConfig(), newTestLogger())
}

func totalBalance(store *memLedgerStore) decimal.Decimal {
	store.mu.Lock()
	defer store.mu.Unlock()
	sum := decimal.Zero
	for _, b := range store.balances {
		sum = sum.Add(b)
	}
	return sum
}

func TestLedgerConcurrency_ConservesTotalAndNeverGoesNegative(t *testing.T) {
	users := make([]uuid.UUID, 4)
	balances := make(map[uuid.UUID]decimal.Decimal)
	for i := range users {
		users[i] = uuid.New()
		balances[users[i]] = decimal.NewFromInt(100000)
	}
	store := newMemLedgerStore(balances)
	svc := newMemLedger(store)
	before := totalBalance(store)

	var wg sync.WaitGroup
	for i := 0; i < 80; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sender := users[i%len(users)]
			receiver := users[(i+1+i/len(users))%len(users)]
			if sender == receiver {
				receiver = users[(i+2)%len(users)]
			}
			// distinct amounts keep the duplicate window out of the way
			amount := decimal.NewFromInt(int64(10000 + i*100))
			_, err := svc.Transfer(context.Background(), ports.TransferCommand{SenderID: sender, ReceiverID: receiver, Amount: amount})
			if err != nil {
				assert.Equal(t, "LED_001", apperror.CodeOf(err), "unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.True(t, before.Equal(totalBalance(store)), "total saldo must be conserved")
	for id, b := range store.balances {
		assert.False(t, b.IsNegative(), "balance of %s went negative", id)
	}
}

func TestLedgerConcurrency_DrainNeverOverdraws(t *testing.T) {
	sender := uuid.New()
	balances := map[uuid.UUID]decimal.Decimal{sender: decimal.NewFromInt(100000)}
	receivers := make([]uuid.UUID, 20)
	for i := range receivers {
		receivers[i] = uuid.New()
		balances[receivers[i]] = decimal.Zero
	}
	store := newMemLedgerStore(balances)
	svc := newMemLedger(store)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for _, r := range receivers {
		wg.Add(1)
		go func(receiver uuid.UUID) {
			defer wg.Done()
			_, err := svc.Transfer(context.Background(), ports.TransferCommand{SenderID: sender, ReceiverID: receiver, Amount: decimal.NewFromInt(10000)})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
				return
			}
			if apperror.CodeOf(err) == "LED_001" {
				rejected++
			}
		}(r)
	}
	wg.Wait()

	assert.Equal(t, 10, succeeded)
	assert.Equal(t, 10, rejected)
	b, err := svc.GetBalance(context.Background(), sender)
	require.NoError(t, err)
	assert.True(t, b.IsZero())
}

func TestLedgerConcurrency_DoubleSubmitCommitsOnce(t *testing.T) {
	sender, receiver := uuid.New(), uuid.New()
	store := newMemLedgerStore(map[uuid.UUID]decimal.Decimal{
		sender:   decimal.NewFromInt(500000),
		receiver: decimal.Zero,
	})
	svc := newMemLedger(store)
	cmd := ports.TransferCommand{SenderID: sender, ReceiverID: receiver, Amount: decimal.NewFromInt(50000)}

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Transfer(context.Background(), cmd)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var codes []string
	for err := range errs {
		codes = append(codes, apperror.CodeOf(err))
	}
	assert.ElementsMatch(t, []string{"", "LED_002"}, codes)
	assert.Len(t, store.transfers, 1)

	b, err := svc.GetBalance(context.Background(), receiver)
	require.NoError(t, err)
	assert.True(t, b.Equal(decimal.NewFromInt(50000)))
}
