package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/udtree/pkg/observability"
)

// logHooks forwards observability events to the CLI logger at debug level.
// Installed by installHooks; with the default info level the events
// are filtered out, so the hooks cost nothing unless --verbose is set.
type logHooks struct {
	observability.NoopParseHooks
	observability.NoopCheckHooks
	observability.NoopCacheHooks
	logger *log.Logger
}

// installHooks registers log-forwarding hooks for parse, check, and cache
// events. Called once per command invocation from the root command setup.
func installHooks(logger *log.Logger) {
	h := &logHooks{logger: logger}
	observability.SetParseHooks(h)
	observability.SetCheckHooks(h)
	observability.SetCacheHooks(h)
}

func (h *logHooks) OnParseComplete(_ context.Context, docID string, sentences int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debugf("parse %s failed after %s: %v", docID, d.Round(time.Millisecond), err)
		return
	}
	h.logger.Debugf("parsed %s: %d sentences in %s", docID, sentences, d.Round(time.Millisecond))
}

func (h *logHooks) OnCheckComplete(_ context.Context, docID string, findings int, d time.Duration, _ error) {
	h.logger.Debugf("checked %s: %d findings in %s", docID, findings, d.Round(time.Millisecond))
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debugf("cache hit (%s)", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debugf("cache miss (%s)", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debugf("cache set (%s, %d bytes)", keyType, size)
}
