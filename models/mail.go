package models

// MailJob is a single outbound email queued for background delivery.
// Delivery is fire-and-forget: a failed job is logged and dropped, never
// surfaced to the request that produced it.
type MailJob struct {
	// To is the recipient address.
	To string `json:"to"`

	// From is the sender label shown to the recipient.
	From string `json:"from"`

	// Body is the plain-text message body.
	Body string `json:"body"`
}
