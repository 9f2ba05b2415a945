package cart

// Notification is the transient add-to-cart toast payload. Seq strictly
// increases across adds so the UI can restart its dismiss timer even when
// the same item is added twice in a row.
type Notification struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
	Seq      uint64 `json:"seq"`
}
