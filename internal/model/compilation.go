package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Compilation records one compile run
type Compilation struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Timestamp    time.Time `json:"timestamp" gorm:"default:CURRENT_TIMESTAMP"`
	Origin       string    `json:"origin"`
	SourceName   string    `json:"source_name"`
	SourceBytes  int       `json:"source_bytes"`
	Success      bool      `json:"success"`
	FunctionName string    `json:"function,omitempty"`
	Statements   int       `json:"statements"`
	OutputBytes  int       `json:"output_bytes"`
	ArenaUsed    int       `json:"arena_used"`
	ErrorCode    string    `json:"error_code,omitempty"`
	ErrorMessage string    `json:"error_message,omitempty"`
	Line         int       `json:"line,omitempty"`
	Column       int       `json:"column,omitempty"`
	DurationUS   int64     `json:"duration_us"`
	Settings     JSONMap   `json:"settings" gorm:"type:jsonb"`
	RequestID    string    `json:"request_id,omitempty"`
	ClientIP     string    `json:"client_ip,omitempty"`
	UserAgent    string    `json:"user_agent,omitempty"`
	CreatedAt    time.Time `json:"created_at" gorm:"default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for Compilation
func (Compilation) TableName() string {
	return "compilations"
}

// JSONMap represents a generic map stored as JSONB in the database
type JSONMap map[string]interface{}

// Value implements the driver.Valuer interface for JSONMap
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface for JSONMap
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(JSONMap)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion failed: failed to decode JSONB")
	}

	return json.Unmarshal(bytes, m)
}

// Constants for Compilation origins
const (
	OriginCLI   = "cli"
	OriginHTTP  = "http"
	OriginWatch = "watch"
	OriginREPL  = "repl"
)
