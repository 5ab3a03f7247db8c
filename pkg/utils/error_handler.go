package utils

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrorHandler logs err under message and returns the wrapped error, so the
// caller can log once and still propagate. A nil err is a no-op returning nil.
func ErrorHandler(err error, message string) error {
	if err == nil {
		return nil
	}

	Logger.WithFields(logrus.Fields{
		"error": err.Error(),
	}).Error(message)

	return fmt.Errorf("%s: %w", message, err)
}
