package logger

import (
	"encoding/json"
	"log"
	"os"
	"time"
)

// Logger define a interface para logging estruturado.
// Handlers, serviços e repositórios dependem apenas desta interface.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error)
	Fatal(msg string, err error)
}

// entry padroniza o formato JSON de cada linha de log.
type entry struct {
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

// JSONLogger é a implementação concreta da interface Logger, escrevendo
// linhas JSON via o pacote log nativo.
type JSONLogger struct {
	level int
}

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
	"fatal": 4,
}

// NewLogger cria um Logger com o nível mínimo informado ("debug", "info"...).
// Nível desconhecido cai em "info".
func NewLogger(level string) Logger {
	log.SetFlags(0)
	lv, ok := levels[level]
	if !ok {
		lv = levels["info"]
	}
	return &JSONLogger{level: lv}
}

func (l *JSONLogger) logf(level, msg string, fields map[string]interface{}, err error) {
	if levels[level] < l.level {
		return
	}

	e := entry{
		Timestamp: time.Now().Format(time.RFC3339),
		Level:     level,
		Message:   msg,
		Fields:    fields,
	}
	if err != nil {
		e.Error = err.Error()
	}

	b, _ := json.Marshal(e)
	log.Println(string(b))

	if level == "fatal" {
		os.Exit(1)
	}
}

func (l *JSONLogger) Debug(msg string, fields map[string]interface{}) {
	l.logf("debug", msg, fields, nil)
}

func (l *JSONLogger) Info(msg string, fields map[string]interface{}) {
	l.logf("info", msg, fields, nil)
}

func (l *JSONLogger) Warn(msg string, fields map[string]interface{}) {
	l.logf("warn", msg, fields, nil)
}

func (l *JSONLogger) Error(msg string, err error) {
	l.logf("error", msg, nil, err)
}

func (l *JSONLogger) Fatal(msg string, err error) {
	l.logf("fatal", msg, nil, err)
}
