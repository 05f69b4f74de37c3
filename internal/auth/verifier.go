package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier valida el header Authorization completo: extracción del
// bearer token, resolución de la clave por kid y verificación
// criptográfica de firma, audience, issuer y expiración.
type Verifier struct {
	keys     *KeyProvider
	parser   *jwt.Parser
	audience string
	issuer   string
}

// NewVerifier crea el verificador para un tenant y audience dados.
// Solo se acepta RS256: algoritmos simétricos o "none" quedan fuera
// del allowlist y fallan en la verificación.
func NewVerifier(keys *KeyProvider, domain, audience string) *Verifier {
	issuer := "https://" + domain + "/"
	return &Verifier{
		keys:     keys,
		audience: audience,
		issuer:   issuer,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{"RS256"}),
			jwt.WithAudience(audience),
			jwt.WithIssuer(issuer),
		),
	}
}

// Verify valida el header y devuelve las claims del token. El *Error
// devuelto lleva el mensaje exacto que debe ver el cliente.
func (v *Verifier) Verify(ctx context.Context, authorization string) (map[string]any, *Error) {
	raw, aerr := extractToken(authorization)
	if aerr != nil {
		return nil, aerr
	}

	kid, err := peekKID(raw)
	if err != nil {
		return nil, newError(MalformedToken, "Invalid header.", err)
	}

	key, err := v.keys.Lookup(ctx, kid)
	if err != nil {
		if errors.Is(err, ErrUnknownKeyID) {
			return nil, newError(UnknownSigningKey, "Unable to find appropriate key", err)
		}
		return nil, newError(KeyStoreUnavailable, "JWKS indisponível", err)
	}

	tok, err := v.parser.ParseWithClaims(raw, jwt.MapClaims{}, func(*jwt.Token) (any, error) {
		return key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, newError(TokenExpired, "token expired", err)
		}
		return nil, newError(InvalidToken, "Invalid token: "+err.Error(), err)
	}

	claims, _ := tok.Claims.(jwt.MapClaims)
	return map[string]any(claims), nil
}

// extractToken aplica las reglas del header Authorization. Cada
// violación tiene su Kind propio para métricas y logs.
func extractToken(header string) (string, *Error) {
	if header == "" {
		return "", newError(MissingHeader, "Authorization header is expected.", nil)
	}
	parts := strings.Fields(header)
	if len(parts) == 0 || !strings.EqualFold(parts[0], "bearer") {
		return "", newError(MalformedScheme, "Authorization header must start with Bearer.", nil)
	}
	if len(parts) == 1 {
		return "", newError(MissingToken, "Token not found.", nil)
	}
	if len(parts) > 2 {
		return "", newError(ExtraTokenParts, "Authorization header must be Bearer token.", nil)
	}
	return parts[1], nil
}

// peekKID decodifica el header del JWT sin verificar la firma, solo
// para saber qué clave pide. Un kid ausente devuelve "" y el lookup
// decidirá que no hay clave apropiada.
func peekKID(raw string) (string, error) {
	segments := strings.Split(raw, ".")
	if len(segments) != 3 {
		return "", errors.New("el token no tiene tres segmentos")
	}
	hb, err := base64.RawURLEncoding.DecodeString(segments[0])
	if err != nil {
		return "", err
	}
	var hdr struct {
		Kid string `json:"kid"`
	}
	if err := json.Unmarshal(hb, &hdr); err != nil {
		return "", err
	}
	return hdr.Kid, nil
}
