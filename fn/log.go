package fn

import "go.uber.org/zap"

// LogCaught wraps catcher so every recovered failure is logged at debug level
// under msg before catcher runs. A nil catcher falls back to Catching's default
// and a nil log disables logging.
func LogCaught[T any](log *zap.Logger, msg string, catcher func(error) T) func(error) T {
	if log == nil {
		log = zap.NewNop()
	}

	if catcher == nil {
		catcher = errorValue[T]
	}

	return func(err error) T {
		log.Debug(msg, zap.Error(err))
		return catcher(err)
	}
}
