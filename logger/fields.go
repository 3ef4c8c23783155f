package logger

import (
	"time"

	"go.uber.org/zap"
)

// Standard field helpers so keys stay consistent across packages.

func RequestID(v string) zap.Field { return zap.String("request_id", v) }

func Method(v string) zap.Field { return zap.String("method", v) }

func Path(v string) zap.Field { return zap.String("path", v) }

func Status(v int) zap.Field { return zap.Int("status", v) }

func Duration(v time.Duration) zap.Field { return zap.Duration("duration", v) }

func ClientIP(v string) zap.Field { return zap.String("client_ip", v) }

func SubmissionID(v string) zap.Field { return zap.String("submission_id", v) }

// Email should only be used for addresses the service sends to, never for credentials.
func Email(v string) zap.Field { return zap.String("email", v) }

func String(key, v string) zap.Field { return zap.String(key, v) }

func Op(v string) zap.Field { return zap.String("op", v) }

func Err(err error) zap.Field { return zap.Error(err) }
