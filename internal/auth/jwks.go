package auth

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
)

// JWK es una clave pública del documento JWKS. Solo mapeamos los campos
// que usamos para armar la clave RSA.
type JWK struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use,omitempty"`
	Alg string `json:"alg,omitempty"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// KeySet es el documento completo de /.well-known/jwks.json.
type KeySet struct {
	Keys []JWK `json:"keys"`
}

// parseKeySet decodifica el JSON y exige al menos una clave: un documento
// vacío se trata como ausente y nunca se cachea (todo o nada).
func parseKeySet(data []byte) (*KeySet, error) {
	var ks KeySet
	if err := json.Unmarshal(data, &ks); err != nil {
		return nil, fmt.Errorf("jwks: JSON inválido: %w", err)
	}
	if len(ks.Keys) == 0 {
		return nil, errors.New("jwks: documento sin claves")
	}
	return &ks, nil
}

// ByKID busca la clave con ese kid.
func (ks *KeySet) ByKID(kid string) (JWK, bool) {
	for _, k := range ks.Keys {
		if k.Kid == kid {
			return k, true
		}
	}
	return JWK{}, false
}

// RSAPublicKey arma la *rsa.PublicKey desde los componentes base64url.
func (k JWK) RSAPublicKey() (*rsa.PublicKey, error) {
	if k.Kty != "RSA" {
		return nil, fmt.Errorf("jwks: kty %q no soportado", k.Kty)
	}
	nb, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("jwks: módulo inválido: %w", err)
	}
	eb, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("jwks: exponente inválido: %w", err)
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nb),
		E: int(new(big.Int).SetBytes(eb).Int64()),
	}, nil
}
