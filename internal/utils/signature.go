package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignReport generates a hex HMAC-SHA256 of an exported report
func SignReport(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// VerifyReport checks a signature produced by SignReport
func VerifyReport(data []byte, signature, secret string) bool {
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hmac.Equal(h.Sum(nil), expected)
}
