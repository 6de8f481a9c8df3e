package winipayer

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"github.com/shopspring/decimal"
)

// PrivateKeyHash is the digest the payment API echoes in the hash field of an
// invoice: the lower case hex sha256 of the merchant private key.
func PrivateKeyHash(privateKey string) string {
	sum := sha256.Sum256([]byte(privateKey))
	return hex.EncodeToString(sum[:])
}

// Validate decides whether response proves that the invoice expectedUUID was paid
// with at least expectedAmount, in the expected environment, for the merchant owning
// privateKey. It never fails, anything unexpected is simply not trusted.
func Validate(response *Response, expectedUUID string, expectedAmount decimal.Decimal, privateKey string, expectedEnv Environment) bool {
	if response == nil || !response.Success {
		return false
	}

	invoice := response.Detail()

	hashOk := subtle.ConstantTimeCompare([]byte(PrivateKeyHash(privateKey)), []byte(invoice.Hash)) == 1

	return invoice.UUID == expectedUUID &&
		hashOk &&
		invoice.Env == string(expectedEnv) &&
		invoice.State == StateSuccess &&
		invoice.Amount.GreaterThanOrEqual(expectedAmount)
}
