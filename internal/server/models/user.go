// Package models defines the persisted entities shared by every storage
// backend. JSON tags double as the on-disk format of the file store and the
// wire format of the HTTP API; bson tags serve the document-database store.
package models

// User is an identity record. Created at registration, never mutated,
// never deleted.
//
// PasswordHash holds the raw password. Storing it unhashed is a known
// weakness kept on purpose; see DESIGN.md.
type User struct {
	ID           string `json:"id" bson:"id"`
	Username     string `json:"username" bson:"username"`
	PasswordHash string `json:"passwordHash" bson:"passwordHash"`
}
