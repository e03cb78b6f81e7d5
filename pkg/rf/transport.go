package rf

import "context"

// Transport is a hardware adapter that frames radio signals into code
// events and can transmit codes back out.
type Transport interface {
	// Open establishes the channel. Failure here is fatal at startup.
	Open(ctx context.Context) error
	// Events yields one raw payload per received frame. It is closed when
	// the transport closes.
	Events() <-chan []byte
	Send(ctx context.Context, code string) error
	Close() error
}
