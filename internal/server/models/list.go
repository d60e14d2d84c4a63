package models

// GiftList is a named collection of desired items. The owner is immutable;
// lists are never edited or deleted in the current scope.
type GiftList struct {
	ID          string `json:"id" bson:"id"`
	OwnerID     string `json:"ownerId" bson:"ownerId"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Theme       string `json:"theme,omitempty" bson:"theme,omitempty"`
}
