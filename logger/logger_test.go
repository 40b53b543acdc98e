package logger

import (
	"testing"

	"github.com/op/go-logging"
)

func TestNewLogger(Te *testing.T) {
	log := NewLogger("DEBUG", "testmodule")
	if log == nil {
		Te.Fatal("nil logger")
	}
	if !log.IsEnabledFor(logging.DEBUG) {
		Te.Error("DEBUG level not honored")
	}
}

func TestNewLoggerBadLevel(Te *testing.T) {
	log := NewLogger("NOSUCHLEVEL", "testmodule2")
	if log == nil {
		Te.Fatal("nil logger")
	}
	if !log.IsEnabledFor(logging.INFO) {
		Te.Error("expected fallback to INFO")
	}
	if log.IsEnabledFor(logging.DEBUG) {
		Te.Error("DEBUG should be off after fallback to INFO")
	}
}
