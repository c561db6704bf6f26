package authenticator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type tokenPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func Test_jwtTokenEngine(t *testing.T) {
	engine := NewTokenEngine[tokenPayload]("secret", time.Minute)

	token, err := engine.Generate("user1", tokenPayload{ID: "user1", Name: "alice"})
	require.NoError(t, err)

	payload, err := engine.Verify(token)
	require.NoError(t, err)
	require.Equal(t, tokenPayload{ID: "user1", Name: "alice"}, payload)
}

func Test_jwtTokenEngine_wrongSecret(t *testing.T) {
	engine := NewTokenEngine[tokenPayload]("secret", time.Minute)
	other := NewTokenEngine[tokenPayload]("another-secret", time.Minute)

	token, err := engine.Generate("user1", tokenPayload{ID: "user1"})
	require.NoError(t, err)

	_, err = other.Verify(token)
	require.Error(t, err)
}

func Test_jwtTokenEngine_expired(t *testing.T) {
	engine := NewTokenEngine[tokenPayload]("secret", -time.Minute)

	token, err := engine.Generate("user1", tokenPayload{ID: "user1"})
	require.NoError(t, err)

	_, err = engine.Verify(token)
	require.Error(t, err)
}
