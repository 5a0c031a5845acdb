package notifier

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtwatch/internal/availability"
)

func TestDryRunNotify(t *testing.T) {
	var buf bytes.Buffer
	n := NewDryRunNotifier(&buf, "St Johns Park", "https://example.com/book")

	require.NoError(t, n.Notify(sampleSummary()))
	assert.Contains(t, buf.String(), "Would send")
	assert.Contains(t, buf.String(), "court_1")
}

func TestDryRunNotifyNothingAvailable(t *testing.T) {
	var buf bytes.Buffer
	n := NewDryRunNotifier(&buf, "St Johns Park", "https://example.com/book")

	require.NoError(t, n.Notify(availability.NewWeekSummary()))
	assert.Contains(t, buf.String(), "no notification would be sent")
}

func TestDryRunNotifyError(t *testing.T) {
	var buf bytes.Buffer
	n := NewDryRunNotifier(&buf, "St Johns Park", "https://example.com/book")

	require.NoError(t, n.NotifyError(errors.New("boom")))
	assert.Contains(t, buf.String(), "boom")
}
