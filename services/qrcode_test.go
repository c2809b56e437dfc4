package services

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRPayloadRoundTrip(t *testing.T) {
	payload := EncodeQRPayload("1234567", "student@hcmut.edu.vn")
	assert.Equal(t, "1234567|student@hcmut.edu.vn", payload)

	bookingID, email, err := ParseQRPayload(payload)
	require.NoError(t, err)
	assert.Equal(t, "1234567", bookingID)
	assert.Equal(t, "student@hcmut.edu.vn", email)
}

func TestParseQRPayloadRejectsMalformedInput(t *testing.T) {
	tests := []string{
		"12345",                // no separator
		"a|b|c",                // too many parts
		"",                     // empty
		"1234567|a@b.com|left", // trailing part
	}

	for _, payload := range tests {
		_, _, err := ParseQRPayload(payload)
		assert.ErrorIs(t, err, ErrInvalidQRFormat, "payload %q", payload)
	}
}

func TestGenerateQRCode(t *testing.T) {
	encoded, err := GenerateQRCode("1234567|student@hcmut.edu.vn")
	require.NoError(t, err)
	require.NotEmpty(t, encoded)

	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)

	pngHeader := []byte{0x89, 'P', 'N', 'G'}
	assert.Equal(t, pngHeader, raw[:4])

	// Same payload, same image.
	again, err := GenerateQRCode("1234567|student@hcmut.edu.vn")
	require.NoError(t, err)
	assert.Equal(t, encoded, again)
}
