package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_RecordsEntries(t *testing.T) {
	mock := &MockLogger{}

	mock.Info("first", Field{Key: FieldCount, Value: 2})
	mock.Warn("second")

	entries := mock.GetEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "INFO", entries[0].Level)
	assert.Equal(t, "first", entries[0].Message)
	assert.Equal(t, []Field{{Key: FieldCount, Value: 2}}, entries[0].Fields)
	assert.Equal(t, "WARN", entries[1].Level)

	warnings := mock.GetEntriesByLevel("WARN")
	require.Len(t, warnings, 1)
	assert.Equal(t, "second", warnings[0].Message)
}

func TestMockLogger_DerivedLoggersRecordIntoRoot(t *testing.T) {
	mock := &MockLogger{}
	testErr := errors.New("test error")

	mock.WithField(FieldYear, 2021).Warn("derived warning")
	mock.WithError(testErr).Error("derived error")
	mock.WithFields(Field{Key: FieldURL, Value: "u"}, Field{Key: FieldAttempt, Value: 1}).Info("derived info")

	entries := mock.GetEntries()
	require.Len(t, entries, 3, "Entries from derived loggers should land in the root")

	assert.Equal(t, []Field{{Key: FieldYear, Value: 2021}}, entries[0].Fields)
	assert.Equal(t, testErr, entries[1].Error)
	assert.Len(t, entries[2].Fields, 2)
}

func TestMockLogger_ChainedDerivationAccumulatesFields(t *testing.T) {
	mock := &MockLogger{}

	mock.
		WithField(FieldFile, "a.csv").
		WithField(FieldStatus, "failed").
		WithError(errors.New("boom")).
		Error("write failed")

	entries := mock.GetEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, []Field{
		{Key: FieldFile, Value: "a.csv"},
		{Key: FieldStatus, Value: "failed"},
	}, entries[0].Fields)
	assert.EqualError(t, entries[0].Error, "boom")
}

func TestMockLogger_HasEntryAndClear(t *testing.T) {
	mock := &MockLogger{}
	mock.Debug("probe")

	assert.True(t, mock.HasEntry("DEBUG", "probe"))
	assert.False(t, mock.HasEntry("INFO", "probe"))
	assert.False(t, mock.HasEntry("DEBUG", "other"))

	mock.Clear()
	assert.Empty(t, mock.GetEntries())
}

func TestMockLogger_FatalDoesNotExit(t *testing.T) {
	mock := &MockLogger{}

	mock.Fatal("fatal message")
	mock.Fatalf("fatal %s %d", "formatted", 7)

	entries := mock.GetEntriesByLevel("FATAL")
	require.Len(t, entries, 2)
	assert.Equal(t, "fatal message", entries[0].Message)
	assert.Equal(t, "fatal formatted 7", entries[1].Message)
}

func TestMockLogger_ImplementsInterface(t *testing.T) {
	var _ Logger = (*MockLogger)(nil)
}
