package utils

import (
	"bytes"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	l := GetLogger("test-logger")
	require.Same(t, l, GetLogger("test-logger"))

	var buf bytes.Buffer
	l.SetOutput(&buf)
	l.colorful = false

	l.Infof("hello %d", 1)
	out := buf.String()
	require.Contains(t, out, fmt.Sprintf("test-logger[%d] <INFO>: hello 1\n", os.Getpid()))

	SetLogLevel(logrus.WarnLevel)
	defer SetLogLevel(logrus.InfoLevel)
	buf.Reset()
	l.Infof("dropped")
	require.Empty(t, buf.String())
	l.Warnf("kept")
	require.Contains(t, buf.String(), "<WARNING>: kept")
}

func TestLoggerFormat(t *testing.T) {
	l := GetLogger("format")
	e := logrus.NewEntry(&l.Logger).WithField("k", "v")
	e.Level = logrus.ErrorLevel
	e.Message = "boom"
	e.Time = time.Date(2024, 1, 2, 3, 4, 5, 6000, time.UTC)

	l.colorful = true
	b, err := l.Format(e)
	require.NoError(t, err)
	require.Contains(t, string(b), "\033[1;31mERROR\033[0m")

	DisableLogColor()
	b, err = l.Format(e)
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("2024/01/02 03:04:05.000006 format[%d] <ERROR>: boom map[k:v]\n", os.Getpid()), string(b))
}
