package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	// Test case 1: Standard date/time values
	createdAt := time.Date(2026, 3, 15, 14, 30, 45, 123456789, time.UTC)
	id := int64(42)

	// Encode the token
	token := EncodeToken(createdAt, id)
	assert.NotEmpty(t, token, "Token should not be empty")

	// Decode the token and verify
	decodedCreatedAt, decodedID, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, createdAt, decodedCreatedAt, "Created at time should match after decode")
	assert.Equal(t, id, decodedID, "Document ID should match after decode")

	// Test case 2: Zero time value
	zeroTime := time.Time{}
	zeroToken := EncodeToken(zeroTime, 0)
	decodedZeroTime, decodedZeroID, err := DecodeToken(zeroToken)
	assert.NoError(t, err, "Decoding zero time should not return an error")
	assert.Equal(t, zeroTime, decodedZeroTime, "Zero time should match after decode")
	assert.Equal(t, int64(0), decodedZeroID, "Zero ID should match after decode")

	// Test case 3: Current time values
	now := time.Now().UTC()
	nowToken := EncodeToken(now, 9999999)
	decodedNowTime, decodedNowID, err := DecodeToken(nowToken)
	assert.NoError(t, err, "Decoding current time should not return an error")

	// Due to potential nanosecond precision issues, use Equal instead of direct comparison
	assert.True(t, now.Equal(decodedNowTime), "Current time should match after decode")
	assert.Equal(t, int64(9999999), decodedNowID, "Large ID should match after decode")
}

func TestDecodeTokenError(t *testing.T) {
	// Test invalid base64
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Test invalid format (missing separator)
	invalidToken := base64.StdEncoding.EncodeToString([]byte("2026-03-15T00:00:00Z"))
	_, _, err = DecodeToken(invalidToken)
	assert.Error(t, err, "Should return an error for invalid token format")
	assert.Contains(t, err.Error(), "split", "Error should mention splitting issue")

	// Test invalid date format
	invalidDateToken := base64.StdEncoding.EncodeToString([]byte("notadate|42"))
	_, _, err = DecodeToken(invalidDateToken)
	assert.Error(t, err, "Should return an error for invalid date format")
	assert.Contains(t, err.Error(), "created_at parse", "Error should mention date parsing issue")

	// Test invalid ID
	invalidIDToken := base64.StdEncoding.EncodeToString([]byte("2026-03-15T14:30:45.123456789Z|notanumber"))
	_, _, err = DecodeToken(invalidIDToken)
	assert.Error(t, err, "Should return an error for invalid ID")
	assert.Contains(t, err.Error(), "id parse", "Error should mention ID parsing issue")
}
