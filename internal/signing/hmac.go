package signing

import (
	_ "crypto/sha256"
	_ "crypto/sha512"
	"fmt"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/boenne/jwt/internal/core"
	"github.com/boenne/jwt/internal/security"
)

// HS256 computes HMAC-SHA256 over the UTF-8 bytes of input keyed with the
// UTF-8 bytes of key, base64 encoded with the standard alphabet.
func HS256(input, key string) (string, error) {
	return sign(gojwt.SigningMethodHS256, input, key)
}

// HMAC returns a sign function for one of golang-jwt's HMAC methods
// (HS256, HS384, HS512).
func HMAC(alg string) (Func, error) {
	method, ok := gojwt.GetSigningMethod(alg).(*gojwt.SigningMethodHMAC)
	if !ok {
		return nil, errNotHMAC
	}
	return func(input, key string) (string, error) {
		return sign(method, input, key)
	}, nil
}

func sign(method *gojwt.SigningMethodHMAC, input, key string) (string, error) {
	if !method.Hash.Available() {
		return "", fmt.Errorf("hash function %v not available", method.Hash)
	}

	keyBytes := core.UTF8Encode(key)
	defer security.ZeroBytes(keyBytes)

	mac, err := method.Sign(input, keyBytes)
	if err != nil {
		return "", fmt.Errorf("failed to sign with %s: %w", method.Alg(), err)
	}
	defer security.ZeroBytes(mac)

	return core.Base64Encode(mac), nil
}
