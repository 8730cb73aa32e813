package i

import (
	dmn "github.com/retro-maze/maze-api/domain"
)

// Authenticator handles player registration and sign-in.
type Authenticator interface {
	Register(username, password string) error
	SignIn(username, password string) (*dmn.Player, string, error)
}
