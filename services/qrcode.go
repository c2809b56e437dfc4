package services

import (
	"encoding/base64"
	"errors"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// ErrInvalidQRFormat rejects malformed check-in payloads before any lookup.
var ErrInvalidQRFormat = errors.New("invalid QR code format")

const qrPayloadSeparator = "|"

// EncodeQRPayload builds the plaintext encoded into a booking's QR image.
func EncodeQRPayload(bookingID, email string) string {
	return bookingID + qrPayloadSeparator + email
}

// ParseQRPayload splits a scanned payload back into (booking_id, email).
// Anything other than exactly two parts is a format error.
func ParseQRPayload(payload string) (bookingID, email string, err error) {
	parts := strings.Split(payload, qrPayloadSeparator)
	if len(parts) != 2 {
		return "", "", ErrInvalidQRFormat
	}
	return parts[0], parts[1], nil
}

// GenerateQRCode renders the payload as a PNG and returns it base64-encoded,
// ready to store on the booking row.
func GenerateQRCode(payload string) (string, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
