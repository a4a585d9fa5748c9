package trace

import (
	"encoding/hex"
	"log"
)

// LogObserver emits one log line per stage via the standard log package.
// It mirrors the diagnostic intent of the original uaes trace mask, but as a
// composable Observer rather than a global bitmask: attach it only to the
// calls you want to watch.
type LogObserver struct {
	Logger *log.Logger
}

// OnStage implements Observer.
func (l LogObserver) OnStage(stage Stage, round int, block []byte) {
	logger := l.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf("round[%d].%s = %s", round, stage, hex.EncodeToString(block))
}
