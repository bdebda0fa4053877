package dto

import "time"

type OpenAuctionRequestDTO struct {
	SellerID   int64  `json:"seller_id" example:"207733140633"`
	Item       string `json:"item" example:"VIP role for a week"`
	StartPrice int64  `json:"start_price" example:"500"`
	Duration   string `json:"duration" example:"2h"`
}

type AuctionResponseDTO struct {
	ID            int64     `json:"id" example:"7"`
	SellerID      int64     `json:"seller_id" example:"207733140633"`
	Item          string    `json:"item" example:"VIP role for a week"`
	StartPrice    int64     `json:"start_price" example:"500"`
	CurrentBid    int64     `json:"current_bid" example:"750"`
	HighestBidder *int64    `json:"highest_bidder,omitempty" example:"309114281907"`
	EndsAt        time.Time `json:"ends_at" example:"2024-12-09T18:09:57+03:00"`
	Status        string    `json:"status" example:"active"`
}

type BidRequestDTO struct {
	BidderID int64 `json:"bidder_id" example:"309114281907"`
	Amount   int64 `json:"amount" example:"750"`
}
