// Package logger fournit l'interface de logging injectée dans les composants
// du pipeline. Pas d'état global : chaque composant reçoit son Interface à la
// construction, les tests peuvent passer une implémentation silencieuse.
package logger

import "log"

type Interface interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Std écrit sur le logger standard avec un préfixe de niveau.
type Std struct{}

func New() *Std { return &Std{} }

func (l *Std) Infof(format string, args ...any) {
	log.Printf("[INFO] "+format, args...)
}
func (l *Std) Warnf(format string, args ...any) {
	log.Printf("[WARN] "+format, args...)
}
func (l *Std) Errorf(format string, args ...any) {
	log.Printf("[ERROR] "+format, args...)
}

// Nop ignore tout. Pratique dans les tests.
type Nop struct{}

func (Nop) Infof(format string, args ...any)  {}
func (Nop) Warnf(format string, args ...any)  {}
func (Nop) Errorf(format string, args ...any) {}
