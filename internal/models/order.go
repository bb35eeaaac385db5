package models

import (
	"encoding/json"
	"time"
)

// Order keeps a snapshot of the checked-out items; it never references
// catalog ids, so deleting a product leaves past orders intact.
type Order struct {
	ID              uint              `json:"id"`
	Items           []json.RawMessage `json:"items"`
	Total           float64           `json:"total"`
	Customer        map[string]any    `json:"customer"`
	PaymentIntentID string            `json:"paymentIntentId"`
	UserID          uint              `json:"userId"`
	Date            time.Time         `json:"date"`
}

// Clone returns a copy that shares no slices or maps with o.
func (o Order) Clone() Order {
	out := o
	if o.Items != nil {
		out.Items = make([]json.RawMessage, len(o.Items))
		for i, item := range o.Items {
			out.Items[i] = append(json.RawMessage(nil), item...)
		}
	}
	if o.Customer != nil {
		out.Customer = cloneJSONValue(o.Customer).(map[string]any)
	}
	return out
}

// cloneJSONValue deep-copies the maps and slices produced by decoding JSON
// into any.
func cloneJSONValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = cloneJSONValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = cloneJSONValue(val)
		}
		return out
	default:
		return v
	}
}
