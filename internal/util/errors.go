package util

import "errors"

var (
	ErrNotFound           = errors.New("ressource non trouvée")
	ErrEmailRegistered    = errors.New("un utilisateur avec cet email existe déjà")
	ErrInvalidCredentials = errors.New("identifiants invalides")
)
