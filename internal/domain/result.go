package domain

// Store outcome payloads returned to clients unmodified. Field names keep
// the wire format the storefront already consumes.

// InsertResult reports a single-document insert.
type InsertResult struct {
	Acknowledged bool    `json:"acknowledged"`
	InsertedID   *string `json:"insertedId"`
}

// UpdateResult reports matched/modified row counts.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult reports deleted row count.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
