// Code generated by ent, DO NOT EDIT.

package profileevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the profileevent type in the database.
	Label = "profile_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldArchetype holds the string denoting the archetype field in the database.
	FieldArchetype = "archetype"
	// FieldSituationalOverride holds the string denoting the situational_override field in the database.
	FieldSituationalOverride = "situational_override"
	// FieldRiskAppetite holds the string denoting the risk_appetite field in the database.
	FieldRiskAppetite = "risk_appetite"
	// FieldStructure holds the string denoting the structure field in the database.
	FieldStructure = "structure"
	// FieldEmotionalDriver holds the string denoting the emotional_driver field in the database.
	FieldEmotionalDriver = "emotional_driver"
	// FieldNarrativeKey holds the string denoting the narrative_key field in the database.
	FieldNarrativeKey = "narrative_key"
	// FieldCognitiveGap holds the string denoting the cognitive_gap field in the database.
	FieldCognitiveGap = "cognitive_gap"
	// FieldFragility holds the string denoting the fragility field in the database.
	FieldFragility = "fragility"
	// FieldPivotKey holds the string denoting the pivot_key field in the database.
	FieldPivotKey = "pivot_key"
	// FieldOriginKey holds the string denoting the origin_key field in the database.
	FieldOriginKey = "origin_key"
	// FieldRiskScore holds the string denoting the risk_score field in the database.
	FieldRiskScore = "risk_score"
	// FieldStructureScore holds the string denoting the structure_score field in the database.
	FieldStructureScore = "structure_score"
	// Table holds the table name of the profileevent in the database.
	Table = "profile_events"
)

// Columns holds all SQL columns for profileevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldArchetype,
	FieldSituationalOverride,
	FieldRiskAppetite,
	FieldStructure,
	FieldEmotionalDriver,
	FieldNarrativeKey,
	FieldCognitiveGap,
	FieldFragility,
	FieldPivotKey,
	FieldOriginKey,
	FieldRiskScore,
	FieldStructureScore,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ArchetypeValidator is a validator for the "archetype" field. It is called by the builders before save.
	ArchetypeValidator func(string) error
	// RiskAppetiteValidator is a validator for the "risk_appetite" field. It is called by the builders before save.
	RiskAppetiteValidator func(string) error
	// StructureValidator is a validator for the "structure" field. It is called by the builders before save.
	StructureValidator func(string) error
	// EmotionalDriverValidator is a validator for the "emotional_driver" field. It is called by the builders before save.
	EmotionalDriverValidator func(string) error
	// NarrativeKeyValidator is a validator for the "narrative_key" field. It is called by the builders before save.
	NarrativeKeyValidator func(string) error
	// CognitiveGapValidator is a validator for the "cognitive_gap" field. It is called by the builders before save.
	CognitiveGapValidator func(string) error
	// FragilityValidator is a validator for the "fragility" field. It is called by the builders before save.
	FragilityValidator func(string) error
	// PivotKeyValidator is a validator for the "pivot_key" field. It is called by the builders before save.
	PivotKeyValidator func(string) error
	// OriginKeyValidator is a validator for the "origin_key" field. It is called by the builders before save.
	OriginKeyValidator func(string) error
)

// OrderOption defines the ordering options for the ProfileEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByArchetype orders the results by the archetype field.
func ByArchetype(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchetype, opts...).ToFunc()
}

// BySituationalOverride orders the results by the situational_override field.
func BySituationalOverride(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSituationalOverride, opts...).ToFunc()
}

// ByRiskAppetite orders the results by the risk_appetite field.
func ByRiskAppetite(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskAppetite, opts...).ToFunc()
}

// ByStructure orders the results by the structure field.
func ByStructure(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStructure, opts...).ToFunc()
}

// ByEmotionalDriver orders the results by the emotional_driver field.
func ByEmotionalDriver(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmotionalDriver, opts...).ToFunc()
}

// ByNarrativeKey orders the results by the narrative_key field.
func ByNarrativeKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNarrativeKey, opts...).ToFunc()
}

// ByCognitiveGap orders the results by the cognitive_gap field.
func ByCognitiveGap(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCognitiveGap, opts...).ToFunc()
}

// ByFragility orders the results by the fragility field.
func ByFragility(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFragility, opts...).ToFunc()
}

// ByPivotKey orders the results by the pivot_key field.
func ByPivotKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPivotKey, opts...).ToFunc()
}

// ByOriginKey orders the results by the origin_key field.
func ByOriginKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginKey, opts...).ToFunc()
}

// ByRiskScore orders the results by the risk_score field.
func ByRiskScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskScore, opts...).ToFunc()
}

// ByStructureScore orders the results by the structure_score field.
func ByStructureScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStructureScore, opts...).ToFunc()
}
