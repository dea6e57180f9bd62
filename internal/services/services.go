package services

import (
	"fmt"
	"log"

	"github.com/sodikinson/valentine/internal/config"
	"github.com/sodikinson/valentine/internal/session"
)

type Services struct {
	Sessions *session.Store
}

func New(cfg config.Config) (*Services, error) {
	key := []byte(cfg.SessionSecret)
	if len(key) == 0 {
		log.Printf("WARN: SESSION_SECRET not set, generating a key; sessions reset on restart")
		var err error
		key, err = session.RandomKey()
		if err != nil {
			return nil, fmt.Errorf("session key: %w", err)
		}
	}

	sessions, err := session.New(key, cfg.SessionSecure)
	if err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}

	return &Services{
		Sessions: sessions,
	}, nil
}
