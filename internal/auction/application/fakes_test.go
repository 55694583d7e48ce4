package application

import (
	"context"

	"github.com/cristianortiz/auctionHouse/internal/auction/domain"
	notifdomain "github.com/cristianortiz/auctionHouse/internal/notification/domain"
	"github.com/jackc/pgx/v5"
)

// fakeTx satisfies pgx.Tx through embedding, only the completion methods are
// implemented, the fake repositories never touch the rest.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type fakeDB struct {
	tx *fakeTx
}

func (db *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	db.tx = &fakeTx{}
	return db.tx, nil
}

type fakeAuctionRepo struct {
	auction    *domain.Auction
	getErr     error
	created    []*domain.Auction
	closedWith struct {
		called   bool
		winnerID *int64
		amount   *float64
	}
	cancelled bool
}

func (r *fakeAuctionRepo) Create(ctx context.Context, a *domain.Auction) (int64, error) {
	a.ID = int64(len(r.created) + 1)
	r.created = append(r.created, a)
	return a.ID, nil
}

func (r *fakeAuctionRepo) GetByID(ctx context.Context, id int64) (*domain.Auction, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.auction, nil
}

func (r *fakeAuctionRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Auction, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeAuctionRepo) ListOpen(ctx context.Context) ([]*domain.Auction, error) {
	return []*domain.Auction{r.auction}, nil
}

func (r *fakeAuctionRepo) Search(ctx context.Context, filter domain.SearchFilter) ([]*domain.Auction, error) {
	return []*domain.Auction{r.auction}, nil
}

func (r *fakeAuctionRepo) MarkClosed(ctx context.Context, tx pgx.Tx, id int64, winnerID *int64, amount *float64) error {
	r.closedWith.called = true
	r.closedWith.winnerID = winnerID
	r.closedWith.amount = amount
	return nil
}

func (r *fakeAuctionRepo) MarkCancelled(ctx context.Context, tx pgx.Tx, id int64) error {
	r.cancelled = true
	return nil
}

type fakeBidRepo struct {
	highest  *domain.Bid
	bidders  []int64
	inserted []*domain.Bid
}

func (r *fakeBidRepo) HighestBid(ctx context.Context, tx pgx.Tx, auctionID int64) (*domain.Bid, error) {
	return r.highest, nil
}

func (r *fakeBidRepo) Insert(ctx context.Context, tx pgx.Tx, bid *domain.Bid) (int64, error) {
	bid.ID = int64(len(r.inserted) + 1)
	r.inserted = append(r.inserted, bid)
	return bid.ID, nil
}

func (r *fakeBidRepo) DistinctBidders(ctx context.Context, tx pgx.Tx, auctionID int64) ([]int64, error) {
	return r.bidders, nil
}

type fakeItemRepo struct {
	created []*domain.Item
}

func (r *fakeItemRepo) Create(ctx context.Context, item *domain.Item) (int64, error) {
	item.ID = int64(len(r.created) + 1)
	r.created = append(r.created, item)
	return item.ID, nil
}

type fakeNotificationRepo struct {
	inserted []*notifdomain.Notification
}

func (r *fakeNotificationRepo) Insert(ctx context.Context, tx pgx.Tx, n *notifdomain.Notification) (int64, error) {
	n.ID = int64(len(r.inserted) + 1)
	r.inserted = append(r.inserted, n)
	return n.ID, nil
}

func (r *fakeNotificationRepo) ListForUser(ctx context.Context, userID int64) ([]*notifdomain.Notification, error) {
	return r.inserted, nil
}

func ptrInt64(v int64) *int64       { return &v }
func ptrFloat64(v float64) *float64 { return &v }
func ptrString(v string) *string    { return &v }
