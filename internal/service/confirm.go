package service

import "context"

// ConfirmFunc adapts a function to the Confirmer interface
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

// Confirm calls f(ctx, prompt)
func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// Preconfirmed answers every prompt with a decision the caller already collected,
// e.g. the confirm flag of an HTTP request.
type Preconfirmed bool

// Confirm returns the recorded decision
func (p Preconfirmed) Confirm(ctx context.Context, _ string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return bool(p), nil
}

// DeletePrompt is shown before an outing is removed
const DeletePrompt = "¿Estás seguro de eliminar esta salida?"
