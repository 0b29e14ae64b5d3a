// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

// ComponentLogger adds component-scoped fields to the global logger.
// The global logger is resolved on every call, so a ComponentLogger created
// before SetupLogger still follows the latest configuration.
type ComponentLogger struct {
	component string
	fields    []any
}

// NewLogger returns a ComponentLogger tagged with component.
func NewLogger(component string) *ComponentLogger {
	return &ComponentLogger{
		component: component,
		fields:    []any{"component", component},
	}
}

// WithOperation returns a copy tagged with operation.
func (l *ComponentLogger) WithOperation(name string) *ComponentLogger {
	return l.WithFields("operation", name)
}

// WithFields returns a copy with additional key-value pairs.
func (l *ComponentLogger) WithFields(fields ...any) *ComponentLogger {
	merged := make([]any, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)
	return &ComponentLogger{component: l.component, fields: merged}
}

// Component returns the component name.
func (l *ComponentLogger) Component() string {
	return l.component
}

// Debug logs at debug level. It is a no-op unless IsDebugEnabled.
func (l *ComponentLogger) Debug(msg string, args ...any) {
	if !IsDebugEnabled() {
		return
	}
	Logger().With(l.fields...).Debug(msg, args...)
}

// Info logs at info level.
func (l *ComponentLogger) Info(msg string, args ...any) {
	Logger().With(l.fields...).Info(msg, args...)
}

// Warn logs at warn level.
func (l *ComponentLogger) Warn(msg string, args ...any) {
	Logger().With(l.fields...).Warn(msg, args...)
}

// Error logs at error level.
func (l *ComponentLogger) Error(msg string, args ...any) {
	Logger().With(l.fields...).Error(msg, args...)
}
