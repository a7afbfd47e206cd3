package errors

import (
	"strings"
)

type ErrorKind string

const (
	ErrorKindSpawn    ErrorKind = "spawn"
	ErrorKindTimeout  ErrorKind = "timeout"
	ErrorKindConfig   ErrorKind = "config"
	ErrorKindNotFound ErrorKind = "not-found"
	ErrorKindOther    ErrorKind = "other"
)

type ClassifiedError struct {
	Kind    ErrorKind
	Message string
	Hint    string // User-friendly suggestion
	Raw     error
}

func (e ClassifiedError) Error() string {
	return e.Message
}

func Classify(err error) ClassifiedError {
	if err == nil {
		return ClassifiedError{}
	}

	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "executable file not found") || strings.Contains(msg, "failed to start"):
		return ClassifiedError{
			Kind:    ErrorKindSpawn,
			Message: err.Error(),
			Hint:    "The server command could not be launched. Check that it is installed and on PATH.",
			Raw:     err,
		}
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline"):
		return ClassifiedError{
			Kind:    ErrorKindTimeout,
			Message: err.Error(),
			Hint:    "Discovery timed out. Slow servers may need a larger discovery.timeout_ms.",
			Raw:     err,
		}
	case strings.Contains(msg, "failed to parse config") || strings.Contains(msg, "failed to parse settings"):
		return ClassifiedError{
			Kind:    ErrorKindConfig,
			Message: err.Error(),
			Hint:    "The file is not valid. Run 'mcp-watcher validate' for details.",
			Raw:     err,
		}
	case strings.Contains(msg, "no such file") || strings.Contains(msg, "not found"):
		return ClassifiedError{
			Kind:    ErrorKindNotFound,
			Message: err.Error(),
			Hint:    "Check the configured paths. Use --config to point at your MCP config file.",
			Raw:     err,
		}
	default:
		return ClassifiedError{
			Kind:    ErrorKindOther,
			Message: err.Error(),
			Hint:    "An unexpected error occurred.",
			Raw:     err,
		}
	}
}
