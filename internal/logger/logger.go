package logger

import (
	"log"

	"go.uber.org/zap"
)

// New - Uygulama genelinde kullanılan zap logger'ı oluşturur.
// Satış akışındaki mutasyonlar ve mutabakat gerektiren hatalar
// (stok düşüldü ama satış yazılamadı gibi) buradan loglanır.
func New() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("[FATAL] Logger oluşturulamadı: %v", err)
	}
	return l
}
