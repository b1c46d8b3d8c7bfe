package ui

import "context"

type Interface interface {
	// GetVideoURL doit renvoyer une URL valide.
	// Implémentation terminale : priorité clipboard -> prompt
	GetVideoURL(ctx context.Context) (string, error)

	// WaitForExit bloque jusqu'à ce qu'un signal d'annulation soit reçu via ctx (Ctrl+C).
	WaitForExit(ctx context.Context) error

	PrintInfo(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)
}
