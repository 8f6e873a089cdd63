package domain

import "errors"

var (
	ErrNotFound       = errors.New("registro nao encontrado")
	ErrNaoConfigurado = errors.New("store nao configurado")
	// ErrStoreIndisponivel marca operações feitas enquanto o store configurado não responde.
	ErrStoreIndisponivel = errors.New("store indisponivel")
)
