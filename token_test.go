package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionPayload declares the sub claim plus one the library does not model
type sessionPayload struct {
	Subject string `json:"sub"`
	Role    string `json:"role"`
}

type strictHeader struct {
	Algorithm string `json:"alg"`
	ExpiresAt int64  `json:"expat"`
}

func TestZeroTokenEncodeFails(t *testing.T) {
	var token Token

	_, err := token.Encode()
	assert.ErrorIs(t, err, ErrEmptyToken)
	assert.Equal(t, "", token.String())

	_, err = token.Header()
	assert.ErrorIs(t, err, ErrEmptyToken)
	_, err = token.Payload()
	assert.ErrorIs(t, err, ErrEmptyToken)
	assert.True(t, token.HasExpired())
}

func TestTokenWithoutPayloadEncodeFails(t *testing.T) {
	token := Token{header: `{"alg":"HS256"}`}

	_, err := token.Encode()
	assert.ErrorIs(t, err, ErrEmptyToken)
	assert.Contains(t, err.Error(), "payload")
}

func TestHeaderAsCustomType(t *testing.T) {
	engine, _ := newTestEngine(t)
	token, err := engine.Parse(goldenToken)
	require.NoError(t, err)

	h, err := HeaderAs[strictHeader](token)
	require.NoError(t, err)
	assert.Equal(t, "HS256", h.Algorithm)
	assert.Equal(t, int64(testIssuedAt+86400), h.ExpiresAt)

	generic, err := HeaderAs[map[string]any](token)
	require.NoError(t, err)
	assert.Equal(t, "JWT", generic["typ"])
}

func TestPayloadAsCustomType(t *testing.T) {
	engine, _ := newTestEngine(t)
	raw := b64(`{"alg":"HS256","expat":1,"iat":1,"typ":"JWT"}`) + "." + b64(`{"role":"admin","sub":"SOMEID"}`) + ".sig"

	token, err := engine.Parse(raw)
	require.NoError(t, err)

	p, err := PayloadAs[sessionPayload](token)
	require.NoError(t, err)
	assert.Equal(t, sessionPayload{Subject: "SOMEID", Role: "admin"}, p)

	plain, err := token.Payload()
	require.NoError(t, err)
	assert.Equal(t, "SOMEID", plain.Subject)
}

func TestHeaderAsShapeMismatch(t *testing.T) {
	engine, _ := newTestEngine(t)
	raw := b64(`{"alg":["HS256"],"expat":1}`) + "." + b64(`{"sub":42}`) + ".sig"

	token, err := engine.Parse(raw)
	require.NoError(t, err)

	_, err = token.Header()
	assert.Error(t, err)
	_, err = HeaderAs[strictHeader](token)
	assert.Error(t, err)
	_, err = token.Payload()
	assert.Error(t, err)
	assert.True(t, token.HasExpired())
}

func TestTokenHasExpired(t *testing.T) {
	engine := NewEngine(WithRegistry(NewRegistry()), WithSettings(NewSettings()))

	live, err := engine.Create(engine.NewHeader(0, ""), NewPayload("SOMEID"))
	require.NoError(t, err)
	assert.False(t, live.HasExpired())

	dead, err := engine.Create(engine.NewHeader(-24*time.Hour, ""), NewPayload("SOMEID"))
	require.NoError(t, err)
	assert.True(t, dead.HasExpired())
}

func TestTokenAccessorsAreStable(t *testing.T) {
	engine, _ := newTestEngine(t)
	token, err := engine.Create(engine.NewHeader(0, ""), NewPayload("SOMEID"))
	require.NoError(t, err)

	copied := token
	assert.Equal(t, token.HeaderJSON(), copied.HeaderJSON())
	assert.Equal(t, token.PayloadJSON(), copied.PayloadJSON())
	assert.Equal(t, token.Signature(), copied.Signature())
	assert.Equal(t, token.String(), copied.String())
}
