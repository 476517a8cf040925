package models

import "fmt"

// MatchState is the classification of a bank movement after reconciliation.
type MatchState string

const (
	// EstadoPendiente marks a freshly imported movement that no run has seen yet.
	EstadoPendiente MatchState = "pendiente"

	// EstadoConciliadoExacto: single candidate, amount and date both exact.
	EstadoConciliadoExacto MatchState = "conciliado_exacto"

	// EstadoConciliadoAproximado: single candidate above the acceptance score.
	EstadoConciliadoAproximado MatchState = "conciliado_aproximado"

	// EstadoConciliadoManual: operator-forced match; sticky against later runs.
	EstadoConciliadoManual MatchState = "conciliado_manual"

	// EstadoMultipleMatch: several admissible candidates with no dominant one.
	EstadoMultipleMatch MatchState = "multiple_match"

	// EstadoDiferenciaValor: date matches, amount off beyond tolerance.
	EstadoDiferenciaValor MatchState = "diferencia_valor"

	// EstadoDiferenciaFecha: amount matches, date off beyond tolerance.
	EstadoDiferenciaFecha MatchState = "diferencia_fecha"

	// EstadoSinMatch: no admissible candidate.
	EstadoSinMatch MatchState = "sin_match"
)

// RetriableStates are the states a reconciliation run picks up again.
// Conciliated states (exacto, aproximado, manual) are terminal for the run.
var RetriableStates = []MatchState{
	EstadoPendiente,
	EstadoSinMatch,
	EstadoMultipleMatch,
	EstadoDiferenciaValor,
	EstadoDiferenciaFecha,
}

// IsSettled reports whether the movement holds a final conciliated link.
func (s MatchState) IsSettled() bool {
	switch s {
	case EstadoConciliadoExacto, EstadoConciliadoAproximado, EstadoConciliadoManual:
		return true
	}
	return false
}

// ParseMatchState validates a state string coming from the API boundary.
func ParseMatchState(raw string) (MatchState, error) {
	s := MatchState(raw)
	switch s {
	case EstadoPendiente, EstadoConciliadoExacto, EstadoConciliadoAproximado,
		EstadoConciliadoManual, EstadoMultipleMatch, EstadoDiferenciaValor,
		EstadoDiferenciaFecha, EstadoSinMatch:
		return s, nil
	}
	return "", fmt.Errorf("unknown match state %q", raw)
}
