package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

const (
	ResponseTable      = "survey_responses"
	ResponseCollection = "survey_responses"
	SequenceCollection = "sequences"
)

// Cells is a positional row stored as a jsonb array.
type Cells []string

func (c Cells) Value() (driver.Value, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c)
}

func (c *Cells) Scan(src interface{}) error {
	switch source := src.(type) {
	case []byte:
		return json.Unmarshal(source, c)
	case string:
		return json.Unmarshal([]byte(source), c)
	case nil:
		*c = Cells{}
		return nil
	}
	return errors.New("Type assertion .([]byte) failed.")
}

// ResponseRow is the relational form of an appended row.
type ResponseRow struct {
	ID        uint      `gorm:"primary_key"`
	Cells     Cells     `gorm:"type:jsonb;not null;default '[]'"`
	CreatedAt time.Time `gorm:"index"`
}

func (ResponseRow) TableName() string {
	return ResponseTable
}

// ResponseDocument is the mongo form of an appended row. Seq is drawn from the
// server side counter so rows from every writer share one order.
type ResponseDocument struct {
	Cells []string `bson:"cells"`
	Seq   int64    `bson:"seq"`
}

// SequenceDocument holds the last sequence number handed out for a collection.
type SequenceDocument struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}
