package cc7

import (
	"github.com/sirupsen/logrus"

	"cc7/codec"
)

var logger logrus.FieldLogger = logrus.WithField("pkg", "cc7")

// SetLogger routes the logs of this package and of codec to l. Call it during
// start-up. A nil logger restores the logrus standard logger.
func SetLogger(l logrus.FieldLogger) {
	codec.SetLogger(l)
	if l == nil {
		l = logrus.WithField("pkg", "cc7")
	}
	logger = l
}
