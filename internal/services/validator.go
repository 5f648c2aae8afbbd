package services

import "errors"

var (
	ErrEmptyPayload        = errors.New("collab payload is empty")
	ErrUnsupportedEncoding = errors.New("unsupported collab encoding version")
)

// Encoding versions this build knows how to store and hand back. Readers
// above this layer use the version to pick a decoder, so an unknown version
// is rejected up front rather than persisted as garbage.
var supportedEncodingVersions = map[int]bool{
	1: true,
}

// ValidatePayload rejects structurally invalid collab writes before any
// authorization or storage work happens. Pure check, no I/O.
func ValidatePayload(payload []byte, encodingVersion int) error {
	if len(payload) == 0 {
		return ErrEmptyPayload
	}
	if !supportedEncodingVersions[encodingVersion] {
		return ErrUnsupportedEncoding
	}
	return nil
}
