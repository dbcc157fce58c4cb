package nestscroll

import (
	"io"

	"github.com/sirupsen/logrus"
)

// discardLogger is the default logger of a Coordinator. Only panics are
// enabled, so the trace calls on the scroll path cost a level check.
func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return logrus.NewEntry(l)
}
