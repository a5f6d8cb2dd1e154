package dispatch

import (
	"github.com/jamessynge/alpaca-decoder/decoder"
)

// Envelope is the standard ASCOM Alpaca JSON response body: every device
// API response carries the client's transaction IDs back, plus either a
// Value or a nonzero ErrorNumber/ErrorMessage pair, matching the wire shape
// WriteResponse::OkResponse / AscomErrorResponse produce in the original
// (one JSON object per response, transaction IDs round-tripped from the
// request).
type Envelope struct {
	ClientTransactionID uint32      `json:"ClientTransactionID"`
	ServerTransactionID uint32      `json:"ServerTransactionID"`
	ErrorNumber         int         `json:"ErrorNumber"`
	ErrorMessage        string      `json:"ErrorMessage"`
	Value               interface{} `json:"Value,omitempty"`
}

// BuildEnvelope combines a dispatch Result with the request's client
// transaction IDs and the next server transaction ID.
func BuildEnvelope(req *decoder.RequestDescriptor, result Result, serverTransactionID uint32) Envelope {
	e := Envelope{
		ServerTransactionID: serverTransactionID,
		ErrorNumber:         result.ErrorNumber,
		ErrorMessage:        result.ErrorMessage,
		Value:               result.Value,
	}
	if req.HaveClientTransactionID {
		e.ClientTransactionID = req.ClientTransactionID
	}
	return e
}
