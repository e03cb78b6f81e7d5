// Package transport holds what the hardware adapters share: the outbound
// frame encoding and env driven selection.
package transport

import (
	"encoding/json"
	"strconv"
)

// EncodeSend builds the frame asking a radio to transmit code. Decimal codes
// go out as JSON numbers since that is what rc-switch style firmware parses;
// anything else is sent as a string.
func EncodeSend(code string) ([]byte, error) {
	var value any = code
	if _, err := strconv.ParseUint(code, 10, 64); err == nil {
		value = json.Number(code)
	}
	return json.Marshal(map[string]any{"code": value})
}
