// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/boussole-app/boussole/ent/resultevent"
)

// ResultEvent is the model entity for the ResultEvent schema.
type ResultEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the client run that wrote this event
	RunID string `json:"run_id,omitempty"`
	// Backend session identifier
	SessionID int64 `json:"session_id,omitempty"`
	// Recommended field identifiers, best match first
	FieldIds []int64 `json:"field_ids,omitempty"`
	// Highest compatibility score
	TopScore float64 `json:"top_score,omitempty"`
	// Backend-provided justification text
	Justification string `json:"justification,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResultEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case resultevent.FieldFieldIds:
			values[i] = new([]byte)
		case resultevent.FieldTopScore:
			values[i] = new(sql.NullFloat64)
		case resultevent.FieldID, resultevent.FieldSequence, resultevent.FieldSessionID:
			values[i] = new(sql.NullInt64)
		case resultevent.FieldRunID, resultevent.FieldJustification:
			values[i] = new(sql.NullString)
		case resultevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResultEvent fields.
func (_m *ResultEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case resultevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case resultevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case resultevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case resultevent.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case resultevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.Int64
			}
		case resultevent.FieldFieldIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field field_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FieldIds); err != nil {
					return fmt.Errorf("unmarshal field field_ids: %w", err)
				}
			}
		case resultevent.FieldTopScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field top_score", values[i])
			} else if value.Valid {
				_m.TopScore = value.Float64
			}
		case resultevent.FieldJustification:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field justification", values[i])
			} else if value.Valid {
				_m.Justification = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResultEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ResultEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ResultEvent.
// Note that you need to call ResultEvent.Unwrap() before calling this method if this ResultEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResultEvent) Update() *ResultEventUpdateOne {
	return NewResultEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResultEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResultEvent) Unwrap() *ResultEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResultEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResultEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ResultEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionID))
	builder.WriteString(", ")
	builder.WriteString("field_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.FieldIds))
	builder.WriteString(", ")
	builder.WriteString("top_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopScore))
	builder.WriteString(", ")
	builder.WriteString("justification=")
	builder.WriteString(_m.Justification)
	builder.WriteByte(')')
	return builder.String()
}

// ResultEvents is a parsable slice of ResultEvent.
type ResultEvents []*ResultEvent
