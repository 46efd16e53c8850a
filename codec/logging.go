package codec

import "github.com/sirupsen/logrus"

var logger logrus.FieldLogger = logrus.WithField("pkg", "codec")

// SetLogger replaces the package logger. Call it before any Cache is in use.
// A nil logger restores the logrus standard logger.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.WithField("pkg", "codec")
	}
	logger = l
}
