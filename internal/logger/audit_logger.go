// Package logger provides audit logging.
package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// AuditLogger provides a dedicated audit trail for ledger mutations.
type AuditLogger struct {
	*logrus.Entry
}

// NewAuditLogger creates a new audit logger.
func NewAuditLogger(baseLogger *logrus.Logger) *AuditLogger {
	return &AuditLogger{
		Entry: baseLogger.WithField("component", "audit"),
	}
}

// LogBetPlaced logs a bet placement event.
func (al *AuditLogger) LogBetPlaced(betID, sport, team string, odds, amount, potentialWin float64, placedAt time.Time) {
	al.WithFields(logrus.Fields{
		"bet_id":        betID,
		"sport":         sport,
		"team":          team,
		"odds":          odds,
		"amount":        amount,
		"potential_win": potentialWin,
		"placed_at":     placedAt.Unix(),
	}).Info("Bet placed")
}

// LogBetResolved logs a pending bet being settled.
func (al *AuditLogger) LogBetResolved(betID string, won bool) {
	al.WithFields(logrus.Fields{
		"bet_id": betID,
		"won":    won,
	}).Info("Bet resolved")
}

// LogBetEdited logs an edit of a pending bet.
func (al *AuditLogger) LogBetEdited(betID string, odds, amount, potentialWin float64) {
	al.WithFields(logrus.Fields{
		"bet_id":        betID,
		"odds":          odds,
		"amount":        amount,
		"potential_win": potentialWin,
	}).Info("Bet edited")
}

// LogBetRemoved logs deletion of a pending bet.
func (al *AuditLogger) LogBetRemoved(betID string) {
	al.WithField("bet_id", betID).Info("Bet removed")
}
