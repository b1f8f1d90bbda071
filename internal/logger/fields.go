package logger

import (
	"strings"

	"go.uber.org/zap"
)

// Keys shared by every package that logs about analyzers and interviews.
const (
	FieldProvider      = "analyzer"
	FieldModel         = "model"
	FieldSession       = "session_id"
	FieldQuestionIndex = "question_index"
)

// Strings turns alternating key/value arguments into zap string fields.
// Pairs with a blank key or value are dropped, as is a trailing odd key.
func Strings(kv ...string) []zap.Field {
	fields := make([]zap.Field, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, value := strings.TrimSpace(kv[i]), strings.TrimSpace(kv[i+1])
		if key == "" || value == "" {
			continue
		}
		fields = append(fields, zap.String(key, value))
	}
	return fields
}

// WithFields returns log enriched with fields. A nil log becomes a no-op
// logger so callers never have to check.
func WithFields(log *zap.Logger, fields ...zap.Field) *zap.Logger {
	if log == nil {
		log = zap.NewNop()
	}
	if len(fields) == 0 {
		return log
	}
	return log.With(fields...)
}

// ProviderFields names the analyzer provider and, when known, its model.
func ProviderFields(provider, model string) []zap.Field {
	return Strings(FieldProvider, provider, FieldModel, model)
}

// WithProvider is WithFields with ProviderFields.
func WithProvider(log *zap.Logger, provider, model string) *zap.Logger {
	return WithFields(log, ProviderFields(provider, model)...)
}

func SessionFields(id string) []zap.Field {
	return Strings(FieldSession, id)
}

// QuestionIndex is the 1-based position of the question being asked.
func QuestionIndex(index int) zap.Field {
	return zap.Int(FieldQuestionIndex, index)
}
