package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	dmn "github.com/retro-maze/maze-api/domain"
	"github.com/retro-maze/maze-api/service/i"
)

const tokenLifetime = 24 * time.Hour

// Auth implements registration and sign-in on top of a player repository and
// a tokenizer.
type Auth struct {
	playerRepo i.PlayerRepo
	tokenizer  i.Tokenizer
}

// NewAuth creates an Auth service.
func NewAuth(playerRepo i.PlayerRepo, tokenizer i.Tokenizer) *Auth {
	return &Auth{
		playerRepo: playerRepo,
		tokenizer:  tokenizer,
	}
}

// Register validates and stores a new player.
func (a *Auth) Register(username, password string) error {
	player, err := dmn.NewPlayer(dmn.PlayerConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	})
	if err != nil {
		return err
	}

	return a.playerRepo.Save(player)
}

// SignIn verifies credentials and issues a signed token.
func (a *Auth) SignIn(username, password string) (*dmn.Player, string, error) {
	player, err := a.playerRepo.ByUsername(username)
	if err != nil {
		return nil, "", errors.New("invalid username or password")
	}

	if !player.VerifyPassword(password) {
		return nil, "", errors.New("invalid username or password")
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"playerID": player.ID.String(),
		"username": player.Username,
	}, tokenLifetime)
	if err != nil {
		return nil, "", err
	}

	return player, token, nil
}
