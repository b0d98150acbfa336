package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// CryptoController signs ledger API query strings with HMAC-SHA256.
type CryptoController struct {
	secretKey string
}

func NewCryptoController(secretKey string) *CryptoController {
	return &CryptoController{
		secretKey: secretKey,
	}
}

func (c *CryptoController) GetSignature(query string) string {
	h := hmac.New(sha256.New, []byte(c.secretKey))
	h.Write([]byte(query))
	sig := hex.EncodeToString(h.Sum(nil))

	return sig
}
