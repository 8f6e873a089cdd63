package clock

import "time"

type SystemClock struct{}

func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Agora devolve UTC para que created_at seja comparável entre Postgres e SQLite.
func (SystemClock) Agora() time.Time {
	return time.Now().UTC()
}

// Fixo é um relógio parado, útil em testes e em reprocessamentos.
type Fixo struct {
	Instante time.Time
}

func (f Fixo) Agora() time.Time {
	return f.Instante
}
