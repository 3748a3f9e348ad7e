package common

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	assert.Equal(t, io.Discard, NewLogger().Out)

	logger, _ := test.NewNullLogger()
	assert.Same(t, logger, NewLogger(LogOption{Logger: logger}))
	assert.Same(t, logger, NewLogger(LogOption{Level: logrus.ErrorLevel}, LogOption{Logger: logger}))

	assert.Equal(t, logrus.TraceLevel, NewLogger(LogOption{Level: logrus.TraceLevel}).GetLevel())
	assert.Same(t, logrus.StandardLogger(), NewLogger(StandardLogOption()))
}
