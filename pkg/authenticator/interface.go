package authenticator

// TokenEngine signs and verifies tokens carrying an application-defined
// payload. Who issues the token and how the user proved their identity is not
// this package's concern.
type TokenEngine[T any] interface {
	Generate(sub string, obj T) (string, error)
	Verify(token string) (T, error)
}
