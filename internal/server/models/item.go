package models

// GiftItem is a single wishlist entry. Price is free text, not numeric.
// CreatedAt is a Unix-millisecond timestamp.
type GiftItem struct {
	ID        string `json:"id" bson:"id"`
	ListID    string `json:"listId" bson:"listId"`
	Name      string `json:"name" bson:"name"`
	URL       string `json:"url,omitempty" bson:"url,omitempty"`
	Price     string `json:"price,omitempty" bson:"price,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	IsBought  bool   `json:"isBought" bson:"isBought"`
	BoughtBy  string `json:"boughtBy,omitempty" bson:"boughtBy,omitempty"`
	CreatedAt int64  `json:"createdAt" bson:"createdAt"`
}
