package qrgateway

import (
	"casepay-service/internal/pkg/exceptions"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
)

// LoadPrivateKey decodes a base64-wrapped PEM private key. Both PKCS#1
// and PKCS#8 encodings are accepted; the decoded key never leaves this
// package and is never logged.
func LoadPrivateKey(privateKeyBase64 string) (*rsa.PrivateKey, error) {
	pemBytes, err := base64.StdEncoding.DecodeString(privateKeyBase64)
	if err != nil {
		return nil, exceptions.ErrQrPrivateKey(err)
	}

	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, exceptions.ErrQrPrivateKey(fmt.Errorf("no PEM block found"))
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, exceptions.ErrQrPrivateKey(err)
	}
	rsaKey, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, exceptions.ErrQrPrivateKey(fmt.Errorf("PEM block is not an RSA private key"))
	}
	return rsaKey, nil
}

// SignToken signs the UTF-8 bytes of the token string with
// RSA-SHA256 and returns the base64 signature.
func SignToken(token string, key *rsa.PrivateKey) (string, error) {
	digest := sha256.Sum256([]byte(token))
	signature, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, digest[:])
	if err != nil {
		return "", exceptions.ErrQrSignToken(err)
	}
	return base64.StdEncoding.EncodeToString(signature), nil
}
