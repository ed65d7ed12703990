package models

import (
	"database/sql/driver"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"time"
)

type Subject struct {
	ID          string    `db:"id"`
	DisplayName string    `db:"display_name"`
	CreatedAt   time.Time `db:"created_at"`
}

type SubjectFile struct {
	ID         string    `db:"id"`
	SubjectID  string    `db:"subject_id"`
	FileName   string    `db:"file_name"`
	ChunkCount int       `db:"chunk_count"`
	CreatedAt  time.Time `db:"created_at"`
}

type Chunk struct {
	ID        string `db:"id"`
	SubjectID string `db:"subject_id"`
	FileID    string `db:"file_id"`
	Position  int    `db:"position"`
	Content   string `db:"content"`
	Embedding Vector `db:"embedding"`
}

type QuizRecord struct {
	ID        string    `db:"id"`
	SubjectID string    `db:"subject_id"`
	Topic     string    `db:"topic"`
	Variant   string    `db:"quiz_variant"`
	Document  JSONText  `db:"document"`
	CreatedAt time.Time `db:"created_at"`
}

// Vector stores an embedding as little-endian float32 values in a BLOB column.
type Vector []float32

// Value implements the driver.Valuer interface
func (v Vector) Value() (driver.Value, error) {
	buf := make([]byte, 4*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf, nil
}

// Scan implements the sql.Scanner interface
func (v *Vector) Scan(value interface{}) error {
	if value == nil {
		*v = Vector{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("Vector Scan: unsupported type %T", value)
	}
	if len(b)%4 != 0 {
		return fmt.Errorf("Vector Scan: blob length %d is not a multiple of 4", len(b))
	}
	out := make(Vector, len(b)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	*v = out
	return nil
}

// JSONText is a JSON document kept in a TEXT column.
type JSONText json.RawMessage

// Value implements the driver.Valuer interface
func (j JSONText) Value() (driver.Value, error) {
	if len(j) == 0 {
		return "null", nil
	}
	if !json.Valid(j) {
		return nil, fmt.Errorf("JSONText Value: invalid JSON")
	}
	return string(j), nil
}

// Scan implements the sql.Scanner interface
func (j *JSONText) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append(JSONText(nil), v...)
	case string:
		*j = JSONText(v)
	default:
		return fmt.Errorf("JSONText Scan: unsupported type %T", value)
	}
	return nil
}
