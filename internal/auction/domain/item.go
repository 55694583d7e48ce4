package domain

// Item is a good offered inside an auction, immutable once created
type Item struct {
	ID           int64
	Name         string
	MinimumPrice float64
	AuctionID    int64
	SellerID     int64
}

// NewItem creates an Item bound to its auction and seller
func NewItem(name string, minimumPrice float64, auctionID, sellerID int64) *Item {
	return &Item{
		Name:         name,
		MinimumPrice: minimumPrice,
		AuctionID:    auctionID,
		SellerID:     sellerID,
	}
}
