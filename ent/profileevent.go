// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/skadvisory/findna/ent/profileevent"
)

// ProfileEvent is the model entity for the ProfileEvent schema.
type ProfileEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global monotonic sequence, shared across event tables
	Sequence int64 `json:"sequence,omitempty"`
	// Wall-clock time the event was recorded
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links to SessionEvent
	SessionID string `json:"session_id,omitempty"`
	// Archetype holds the value of the "archetype" field.
	Archetype string `json:"archetype,omitempty"`
	// Empty when no override fired
	SituationalOverride string `json:"situational_override,omitempty"`
	// High or Low
	RiskAppetite string `json:"risk_appetite,omitempty"`
	// High or Low
	Structure string `json:"structure,omitempty"`
	// EmotionalDriver holds the value of the "emotional_driver" field.
	EmotionalDriver string `json:"emotional_driver,omitempty"`
	// NarrativeKey holds the value of the "narrative_key" field.
	NarrativeKey string `json:"narrative_key,omitempty"`
	// CognitiveGap holds the value of the "cognitive_gap" field.
	CognitiveGap string `json:"cognitive_gap,omitempty"`
	// Fragility holds the value of the "fragility" field.
	Fragility string `json:"fragility,omitempty"`
	// PivotKey holds the value of the "pivot_key" field.
	PivotKey string `json:"pivot_key,omitempty"`
	// OriginKey holds the value of the "origin_key" field.
	OriginKey string `json:"origin_key,omitempty"`
	// RiskScore holds the value of the "risk_score" field.
	RiskScore int `json:"risk_score,omitempty"`
	// StructureScore holds the value of the "structure_score" field.
	StructureScore int `json:"structure_score,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProfileEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case profileevent.FieldID, profileevent.FieldSequence, profileevent.FieldRiskScore, profileevent.FieldStructureScore:
			values[i] = new(sql.NullInt64)
		case profileevent.FieldSessionID, profileevent.FieldArchetype, profileevent.FieldSituationalOverride, profileevent.FieldRiskAppetite, profileevent.FieldStructure, profileevent.FieldEmotionalDriver, profileevent.FieldNarrativeKey, profileevent.FieldCognitiveGap, profileevent.FieldFragility, profileevent.FieldPivotKey, profileevent.FieldOriginKey:
			values[i] = new(sql.NullString)
		case profileevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProfileEvent fields.
func (_m *ProfileEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case profileevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case profileevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case profileevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case profileevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case profileevent.FieldArchetype:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field archetype", values[i])
			} else if value.Valid {
				_m.Archetype = value.String
			}
		case profileevent.FieldSituationalOverride:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field situational_override", values[i])
			} else if value.Valid {
				_m.SituationalOverride = value.String
			}
		case profileevent.FieldRiskAppetite:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_appetite", values[i])
			} else if value.Valid {
				_m.RiskAppetite = value.String
			}
		case profileevent.FieldStructure:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field structure", values[i])
			} else if value.Valid {
				_m.Structure = value.String
			}
		case profileevent.FieldEmotionalDriver:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field emotional_driver", values[i])
			} else if value.Valid {
				_m.EmotionalDriver = value.String
			}
		case profileevent.FieldNarrativeKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field narrative_key", values[i])
			} else if value.Valid {
				_m.NarrativeKey = value.String
			}
		case profileevent.FieldCognitiveGap:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cognitive_gap", values[i])
			} else if value.Valid {
				_m.CognitiveGap = value.String
			}
		case profileevent.FieldFragility:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fragility", values[i])
			} else if value.Valid {
				_m.Fragility = value.String
			}
		case profileevent.FieldPivotKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pivot_key", values[i])
			} else if value.Valid {
				_m.PivotKey = value.String
			}
		case profileevent.FieldOriginKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field origin_key", values[i])
			} else if value.Valid {
				_m.OriginKey = value.String
			}
		case profileevent.FieldRiskScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field risk_score", values[i])
			} else if value.Valid {
				_m.RiskScore = int(value.Int64)
			}
		case profileevent.FieldStructureScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field structure_score", values[i])
			} else if value.Valid {
				_m.StructureScore = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProfileEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ProfileEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProfileEvent.
// Note that you need to call ProfileEvent.Unwrap() before calling this method if this ProfileEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProfileEvent) Update() *ProfileEventUpdateOne {
	return NewProfileEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProfileEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProfileEvent) Unwrap() *ProfileEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProfileEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProfileEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ProfileEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("archetype=")
	builder.WriteString(_m.Archetype)
	builder.WriteString(", ")
	builder.WriteString("situational_override=")
	builder.WriteString(_m.SituationalOverride)
	builder.WriteString(", ")
	builder.WriteString("risk_appetite=")
	builder.WriteString(_m.RiskAppetite)
	builder.WriteString(", ")
	builder.WriteString("structure=")
	builder.WriteString(_m.Structure)
	builder.WriteString(", ")
	builder.WriteString("emotional_driver=")
	builder.WriteString(_m.EmotionalDriver)
	builder.WriteString(", ")
	builder.WriteString("narrative_key=")
	builder.WriteString(_m.NarrativeKey)
	builder.WriteString(", ")
	builder.WriteString("cognitive_gap=")
	builder.WriteString(_m.CognitiveGap)
	builder.WriteString(", ")
	builder.WriteString("fragility=")
	builder.WriteString(_m.Fragility)
	builder.WriteString(", ")
	builder.WriteString("pivot_key=")
	builder.WriteString(_m.PivotKey)
	builder.WriteString(", ")
	builder.WriteString("origin_key=")
	builder.WriteString(_m.OriginKey)
	builder.WriteString(", ")
	builder.WriteString("risk_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskScore))
	builder.WriteString(", ")
	builder.WriteString("structure_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.StructureScore))
	builder.WriteByte(')')
	return builder.String()
}

// ProfileEvents is a parsable slice of ProfileEvent.
type ProfileEvents []*ProfileEvent
