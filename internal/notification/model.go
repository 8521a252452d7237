package notification

import (
	"encoding/json"
	"time"
)

// TypeOrder marks notices emitted when a checkout completes.
const TypeOrder = "order"

type Notification struct {
	ID        int             `json:"id"`
	Type      string          `json:"type"`
	Message   string          `json:"message"`
	UserID    int             `json:"userId"`
	Meta      json.RawMessage `json:"meta,omitempty"`
	Read      bool            `json:"read"`
	CreatedAt time.Time       `json:"createdAt"`
}

// CreateParams carries a new notice. Meta is any JSON-serializable payload;
// for order notices it is the full order snapshot so admins can review
// without a second fetch.
type CreateParams struct {
	Type    string
	Message string
	UserID  int
	Meta    any
}
