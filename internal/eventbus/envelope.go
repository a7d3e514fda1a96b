package eventbus

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Event type constants. The dotted name doubles as the broker subject and
// as the routing key recorded in the envelope's Type field.
const (
	EventProductCreated = "product.created"
	EventAuctionStarted = "auction.started"
	EventAuctionEnded   = "auction.ended"

	EventBidPlaced     = "bid.placed"
	EventBidOutbid     = "bid.outbid"
	EventAuctionWinner = "auction.winner"
)

// Consuming service names used in queue bindings.
const (
	ServiceBidding = "bidding-service"
	ServiceCatalog = "catalog-service"
)

// QueueName returns the durable queue name for a (event, service) pair.
// Each service gets its own queue per event type so one slow consumer
// cannot starve another.
func QueueName(event, service string) string {
	return event + "." + service
}

// DeadLetterQueue returns the dead-letter subject for a queue. Messages land
// here after exhausting their redeliveries, for manual inspection.
func DeadLetterQueue(queue string) string {
	return "dlx." + queue
}

// Envelope is the wire shape of every event. Payload stays raw until a
// consumer decodes it into the typed payload for the envelope's Type.
type Envelope struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Timestamp int64           `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
	Metadata  map[string]any  `json:"metadata,omitempty"`
}

// Decode unmarshals the envelope payload into out.
func (e Envelope) Decode(out any) error {
	return json.Unmarshal(e.Payload, out)
}

// Typed event payloads.

type ProductCreatedPayload struct {
	ProductID     string          `json:"productId"`
	SellerID      string          `json:"sellerId"`
	Title         string          `json:"title"`
	StartingPrice decimal.Decimal `json:"startingPrice"`
}

type AuctionStartedPayload struct {
	ProductID     string          `json:"productId"`
	StartingPrice decimal.Decimal `json:"startingPrice"`
	StartTime     int64           `json:"startTime"`
	EndTime       int64           `json:"endTime"`
}

type AuctionEndedPayload struct {
	ProductID  string          `json:"productId"`
	FinalPrice decimal.Decimal `json:"finalPrice"`
	WinnerID   *string         `json:"winnerId"`
	TotalBids  int             `json:"totalBids"`
}

type BidPlacedPayload struct {
	BidID     string          `json:"bidId"`
	ProductID string          `json:"productId"`
	UserID    string          `json:"userId"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp int64           `json:"timestamp"`
}

type BidOutbidPayload struct {
	OutbidBidID  string          `json:"outbidBidId"`
	OutbidUserID string          `json:"outbidUserId"`
	OutbidAmount decimal.Decimal `json:"outbidAmount"`
	NewBidID     string          `json:"newBidId"`
	NewUserID    string          `json:"newUserId"`
	NewAmount    decimal.Decimal `json:"newAmount"`
	ProductID    string          `json:"productId"`
}

type AuctionWinnerPayload struct {
	ProductID  string          `json:"productId"`
	WinnerID   *string         `json:"winnerId"`
	WinningBid decimal.Decimal `json:"winningBid"`
	BidID      *string         `json:"bidId"`
}
