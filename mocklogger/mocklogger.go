// mocklogger/mocklogger.go
package mocklogger

import (
	"github.com/deploymenttheory/go-graph-api-session/logger"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockLogger is a mock type for the Logger interface, embedding a *zap.Logger to satisfy the type requirement.
type MockLogger struct {
	mock.Mock
	*zap.Logger
	logLevel logger.LogLevel
}

// NewMockLogger creates a new instance of MockLogger with an embedded no-op *zap.Logger.
func NewMockLogger() *MockLogger {
	return &MockLogger{
		Logger: zap.NewNop(),
	}
}

// Ensure MockLogger implements the logger.Logger interface from the logger package
var _ logger.Logger = (*MockLogger)(nil)

// GetLogLevel mocks the GetLogLevel method of the Logger interface.
func (m *MockLogger) GetLogLevel() logger.LogLevel {
	args := m.Called()
	return args.Get(0).(logger.LogLevel)
}

// SetLevel sets the logging level of the MockLogger.
func (m *MockLogger) SetLevel(level logger.LogLevel) {
	m.logLevel = level
	m.Called(level)
}

// With adds contextual key-value pairs to the MockLogger and returns a new logger instance with this context.
func (m *MockLogger) With(fields ...zap.Field) logger.Logger {
	m.Called(fields)
	newMock := NewMockLogger()
	newMock.logLevel = m.logLevel
	return newMock
}

// Debug logs a message at the Debug level.
func (m *MockLogger) Debug(msg string, fields ...zap.Field) {
	m.Called(msg, fields)
}

// Info logs a message at the Info level.
func (m *MockLogger) Info(msg string, fields ...zap.Field) {
	m.Called(msg, fields)
}

// Warn logs a message at the Warn level.
func (m *MockLogger) Warn(msg string, fields ...zap.Field) {
	m.Called(msg, fields)
}

// Error logs a message at the Error level and returns an error.
func (m *MockLogger) Error(msg string, fields ...zap.Field) error {
	args := m.Called(msg, fields)
	return args.Error(0)
}

// Panic logs a message at the Panic level and then panics.
func (m *MockLogger) Panic(msg string, fields ...zap.Field) {
	m.Called(msg, fields)
}

// Fatal logs a message at the Fatal level and then calls os.Exit(1).
func (m *MockLogger) Fatal(msg string, fields ...zap.Field) {
	m.Called(msg, fields)
}
