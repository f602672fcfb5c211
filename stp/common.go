package stp

import (
	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "stp")

var (
	ErrNilOrden = errors.New("orden is nil")
	ErrNoKey    = errors.New("private key location is not configured")
)
