package util

import (
	"time"

	"github.com/0glabs/zk-cli/common"
	"github.com/sirupsen/logrus"
)

// Reminder counts the steps of a long running operation and reports them at
// debug level, escalating to warn once per interval so that progress shows
// up at the default cli log level.
type Reminder struct {
	start    time.Time
	interval time.Duration
	count    int
	logger   *logrus.Logger
}

// NewReminder returns a new Reminder. A nil logger discards everything.
func NewReminder(logger *logrus.Logger, interval time.Duration) *Reminder {
	if logger == nil {
		logger = common.DiscardLogger()
	}

	return &Reminder{
		start:    time.Now(),
		interval: interval,
		logger:   logger,
	}
}

// Count returns the number of steps recorded so far.
func (reminder *Reminder) Count() int {
	return reminder.count
}

// TickWith records one step described by `message` along with `key` and `value`.
func (reminder *Reminder) TickWith(message string, key string, value interface{}) {
	reminder.Tick(message, logrus.Fields{key: value})
}

// Tick records one step described by `message` and optional `fields`.
func (reminder *Reminder) Tick(message string, fields ...logrus.Fields) {
	reminder.count++

	level := logrus.DebugLevel
	if time.Since(reminder.start) > reminder.interval {
		level = logrus.WarnLevel
		reminder.start = time.Now()
	}

	entry := reminder.logger.WithField("count", reminder.count)
	if len(fields) > 0 {
		entry = entry.WithFields(fields[0])
	}
	entry.Log(level, message)
}
