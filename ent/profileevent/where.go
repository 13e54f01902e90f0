// Code generated by ent, DO NOT EDIT.

package profileevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/skadvisory/findna/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldSessionID, v))
}

// Archetype applies equality check predicate on the "archetype" field. It's identical to ArchetypeEQ.
func Archetype(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldArchetype, v))
}

// SituationalOverride applies equality check predicate on the "situational_override" field. It's identical to SituationalOverrideEQ.
func SituationalOverride(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldSituationalOverride, v))
}

// RiskAppetite applies equality check predicate on the "risk_appetite" field. It's identical to RiskAppetiteEQ.
func RiskAppetite(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldRiskAppetite, v))
}

// Structure applies equality check predicate on the "structure" field. It's identical to StructureEQ.
func Structure(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldStructure, v))
}

// EmotionalDriver applies equality check predicate on the "emotional_driver" field. It's identical to EmotionalDriverEQ.
func EmotionalDriver(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldEmotionalDriver, v))
}

// NarrativeKey applies equality check predicate on the "narrative_key" field. It's identical to NarrativeKeyEQ.
func NarrativeKey(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldNarrativeKey, v))
}

// CognitiveGap applies equality check predicate on the "cognitive_gap" field. It's identical to CognitiveGapEQ.
func CognitiveGap(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldCognitiveGap, v))
}

// Fragility applies equality check predicate on the "fragility" field. It's identical to FragilityEQ.
func Fragility(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldFragility, v))
}

// PivotKey applies equality check predicate on the "pivot_key" field. It's identical to PivotKeyEQ.
func PivotKey(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldPivotKey, v))
}

// OriginKey applies equality check predicate on the "origin_key" field. It's identical to OriginKeyEQ.
func OriginKey(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldOriginKey, v))
}

// RiskScore applies equality check predicate on the "risk_score" field. It's identical to RiskScoreEQ.
func RiskScore(v int) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldRiskScore, v))
}

// StructureScore applies equality check predicate on the "structure_score" field. It's identical to StructureScoreEQ.
func StructureScore(v int) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldStructureScore, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ArchetypeEQ applies the EQ predicate on the "archetype" field.
func ArchetypeEQ(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldArchetype, v))
}

// ArchetypeNEQ applies the NEQ predicate on the "archetype" field.
func ArchetypeNEQ(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNEQ(FieldArchetype, v))
}

// ArchetypeIn applies the In predicate on the "archetype" field.
func ArchetypeIn(vs ...string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldIn(FieldArchetype, vs...))
}

// ArchetypeNotIn applies the NotIn predicate on the "archetype" field.
func ArchetypeNotIn(vs ...string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNotIn(FieldArchetype, vs...))
}

// ArchetypeGT applies the GT predicate on the "archetype" field.
func ArchetypeGT(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGT(FieldArchetype, v))
}

// ArchetypeGTE applies the GTE predicate on the "archetype" field.
func ArchetypeGTE(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGTE(FieldArchetype, v))
}

// ArchetypeLT applies the LT predicate on the "archetype" field.
func ArchetypeLT(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLT(FieldArchetype, v))
}

// ArchetypeLTE applies the LTE predicate on the "archetype" field.
func ArchetypeLTE(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLTE(FieldArchetype, v))
}

// ArchetypeContains applies the Contains predicate on the "archetype" field.
func ArchetypeContains(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldContains(FieldArchetype, v))
}

// ArchetypeHasPrefix applies the HasPrefix predicate on the "archetype" field.
func ArchetypeHasPrefix(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldHasPrefix(FieldArchetype, v))
}

// ArchetypeHasSuffix applies the HasSuffix predicate on the "archetype" field.
func ArchetypeHasSuffix(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldHasSuffix(FieldArchetype, v))
}

// ArchetypeEqualFold applies the EqualFold predicate on the "archetype" field.
func ArchetypeEqualFold(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEqualFold(FieldArchetype, v))
}

// ArchetypeContainsFold applies the ContainsFold predicate on the "archetype" field.
func ArchetypeContainsFold(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldContainsFold(FieldArchetype, v))
}

// SituationalOverrideEQ applies the EQ predicate on the "situational_override" field.
func SituationalOverrideEQ(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldSituationalOverride, v))
}

// SituationalOverrideNEQ applies the NEQ predicate on the "situational_override" field.
func SituationalOverrideNEQ(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNEQ(FieldSituationalOverride, v))
}

// SituationalOverrideIn applies the In predicate on the "situational_override" field.
func SituationalOverrideIn(vs ...string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldIn(FieldSituationalOverride, vs...))
}

// SituationalOverrideNotIn applies the NotIn predicate on the "situational_override" field.
func SituationalOverrideNotIn(vs ...string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNotIn(FieldSituationalOverride, vs...))
}

// SituationalOverrideGT applies the GT predicate on the "situational_override" field.
func SituationalOverrideGT(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGT(FieldSituationalOverride, v))
}

// SituationalOverrideGTE applies the GTE predicate on the "situational_override" field.
func SituationalOverrideGTE(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGTE(FieldSituationalOverride, v))
}

// SituationalOverrideLT applies the LT predicate on the "situational_override" field.
func SituationalOverrideLT(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLT(FieldSituationalOverride, v))
}

// SituationalOverrideLTE applies the LTE predicate on the "situational_override" field.
func SituationalOverrideLTE(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLTE(FieldSituationalOverride, v))
}

// SituationalOverrideContains applies the Contains predicate on the "situational_override" field.
func SituationalOverrideContains(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldContains(FieldSituationalOverride, v))
}

// SituationalOverrideHasPrefix applies the HasPrefix predicate on the "situational_override" field.
func SituationalOverrideHasPrefix(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldHasPrefix(FieldSituationalOverride, v))
}

// SituationalOverrideHasSuffix applies the HasSuffix predicate on the "situational_override" field.
func SituationalOverrideHasSuffix(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldHasSuffix(FieldSituationalOverride, v))
}

// SituationalOverrideEqualFold applies the EqualFold predicate on the "situational_override" field.
func SituationalOverrideEqualFold(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEqualFold(FieldSituationalOverride, v))
}

// SituationalOverrideContainsFold applies the ContainsFold predicate on the "situational_override" field.
func SituationalOverrideContainsFold(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldContainsFold(FieldSituationalOverride, v))
}

// RiskAppetiteEQ applies the EQ predicate on the "risk_appetite" field.
func RiskAppetiteEQ(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldRiskAppetite, v))
}

// RiskAppetiteNEQ applies the NEQ predicate on the "risk_appetite" field.
func RiskAppetiteNEQ(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNEQ(FieldRiskAppetite, v))
}

// RiskAppetiteIn applies the In predicate on the "risk_appetite" field.
func RiskAppetiteIn(vs ...string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldIn(FieldRiskAppetite, vs...))
}

// RiskAppetiteNotIn applies the NotIn predicate on the "risk_appetite" field.
func RiskAppetiteNotIn(vs ...string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNotIn(FieldRiskAppetite, vs...))
}

// RiskAppetiteGT applies the GT predicate on the "risk_appetite" field.
func RiskAppetiteGT(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGT(FieldRiskAppetite, v))
}

// RiskAppetiteGTE applies the GTE predicate on the "risk_appetite" field.
func RiskAppetiteGTE(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGTE(FieldRiskAppetite, v))
}

// RiskAppetiteLT applies the LT predicate on the "risk_appetite" field.
func RiskAppetiteLT(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLT(FieldRiskAppetite, v))
}

// RiskAppetiteLTE applies the LTE predicate on the "risk_appetite" field.
func RiskAppetiteLTE(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLTE(FieldRiskAppetite, v))
}

// RiskAppetiteContains applies the Contains predicate on the "risk_appetite" field.
func RiskAppetiteContains(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldContains(FieldRiskAppetite, v))
}

// RiskAppetiteHasPrefix applies the HasPrefix predicate on the "risk_appetite" field.
func RiskAppetiteHasPrefix(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldHasPrefix(FieldRiskAppetite, v))
}

// RiskAppetiteHasSuffix applies the HasSuffix predicate on the "risk_appetite" field.
func RiskAppetiteHasSuffix(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldHasSuffix(FieldRiskAppetite, v))
}

// RiskAppetiteEqualFold applies the EqualFold predicate on the "risk_appetite" field.
func RiskAppetiteEqualFold(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEqualFold(FieldRiskAppetite, v))
}

// RiskAppetiteContainsFold applies the ContainsFold predicate on the "risk_appetite" field.
func RiskAppetiteContainsFold(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldContainsFold(FieldRiskAppetite, v))
}

// StructureEQ applies the EQ predicate on the "structure" field.
func StructureEQ(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldStructure, v))
}

// StructureNEQ applies the NEQ predicate on the "structure" field.
func StructureNEQ(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNEQ(FieldStructure, v))
}

// StructureIn applies the In predicate on the "structure" field.
func StructureIn(vs ...string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldIn(FieldStructure, vs...))
}

// StructureNotIn applies the NotIn predicate on the "structure" field.
func StructureNotIn(vs ...string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNotIn(FieldStructure, vs...))
}

// StructureGT applies the GT predicate on the "structure" field.
func StructureGT(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGT(FieldStructure, v))
}

// StructureGTE applies the GTE predicate on the "structure" field.
func StructureGTE(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGTE(FieldStructure, v))
}

// StructureLT applies the LT predicate on the "structure" field.
func StructureLT(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLT(FieldStructure, v))
}

// StructureLTE applies the LTE predicate on the "structure" field.
func StructureLTE(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLTE(FieldStructure, v))
}

// StructureContains applies the Contains predicate on the "structure" field.
func StructureContains(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldContains(FieldStructure, v))
}

// StructureHasPrefix applies the HasPrefix predicate on the "structure" field.
func StructureHasPrefix(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldHasPrefix(FieldStructure, v))
}

// StructureHasSuffix applies the HasSuffix predicate on the "structure" field.
func StructureHasSuffix(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldHasSuffix(FieldStructure, v))
}

// StructureEqualFold applies the EqualFold predicate on the "structure" field.
func StructureEqualFold(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEqualFold(FieldStructure, v))
}

// StructureContainsFold applies the ContainsFold predicate on the "structure" field.
func StructureContainsFold(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldContainsFold(FieldStructure, v))
}

// EmotionalDriverEQ applies the EQ predicate on the "emotional_driver" field.
func EmotionalDriverEQ(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldEmotionalDriver, v))
}

// EmotionalDriverNEQ applies the NEQ predicate on the "emotional_driver" field.
func EmotionalDriverNEQ(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNEQ(FieldEmotionalDriver, v))
}

// EmotionalDriverIn applies the In predicate on the "emotional_driver" field.
func EmotionalDriverIn(vs ...string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldIn(FieldEmotionalDriver, vs...))
}

// EmotionalDriverNotIn applies the NotIn predicate on the "emotional_driver" field.
func EmotionalDriverNotIn(vs ...string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNotIn(FieldEmotionalDriver, vs...))
}

// EmotionalDriverGT applies the GT predicate on the "emotional_driver" field.
func EmotionalDriverGT(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGT(FieldEmotionalDriver, v))
}

// EmotionalDriverGTE applies the GTE predicate on the "emotional_driver" field.
func EmotionalDriverGTE(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGTE(FieldEmotionalDriver, v))
}

// EmotionalDriverLT applies the LT predicate on the "emotional_driver" field.
func EmotionalDriverLT(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLT(FieldEmotionalDriver, v))
}

// EmotionalDriverLTE applies the LTE predicate on the "emotional_driver" field.
func EmotionalDriverLTE(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLTE(FieldEmotionalDriver, v))
}

// EmotionalDriverContains applies the Contains predicate on the "emotional_driver" field.
func EmotionalDriverContains(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldContains(FieldEmotionalDriver, v))
}

// EmotionalDriverHasPrefix applies the HasPrefix predicate on the "emotional_driver" field.
func EmotionalDriverHasPrefix(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldHasPrefix(FieldEmotionalDriver, v))
}

// EmotionalDriverHasSuffix applies the HasSuffix predicate on the "emotional_driver" field.
func EmotionalDriverHasSuffix(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldHasSuffix(FieldEmotionalDriver, v))
}

// EmotionalDriverEqualFold applies the EqualFold predicate on the "emotional_driver" field.
func EmotionalDriverEqualFold(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEqualFold(FieldEmotionalDriver, v))
}

// EmotionalDriverContainsFold applies the ContainsFold predicate on the "emotional_driver" field.
func EmotionalDriverContainsFold(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldContainsFold(FieldEmotionalDriver, v))
}

// NarrativeKeyEQ applies the EQ predicate on the "narrative_key" field.
func NarrativeKeyEQ(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldNarrativeKey, v))
}

// NarrativeKeyNEQ applies the NEQ predicate on the "narrative_key" field.
func NarrativeKeyNEQ(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNEQ(FieldNarrativeKey, v))
}

// NarrativeKeyIn applies the In predicate on the "narrative_key" field.
func NarrativeKeyIn(vs ...string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldIn(FieldNarrativeKey, vs...))
}

// NarrativeKeyNotIn applies the NotIn predicate on the "narrative_key" field.
func NarrativeKeyNotIn(vs ...string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNotIn(FieldNarrativeKey, vs...))
}

// NarrativeKeyGT applies the GT predicate on the "narrative_key" field.
func NarrativeKeyGT(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGT(FieldNarrativeKey, v))
}

// NarrativeKeyGTE applies the GTE predicate on the "narrative_key" field.
func NarrativeKeyGTE(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGTE(FieldNarrativeKey, v))
}

// NarrativeKeyLT applies the LT predicate on the "narrative_key" field.
func NarrativeKeyLT(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLT(FieldNarrativeKey, v))
}

// NarrativeKeyLTE applies the LTE predicate on the "narrative_key" field.
func NarrativeKeyLTE(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLTE(FieldNarrativeKey, v))
}

// NarrativeKeyContains applies the Contains predicate on the "narrative_key" field.
func NarrativeKeyContains(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldContains(FieldNarrativeKey, v))
}

// NarrativeKeyHasPrefix applies the HasPrefix predicate on the "narrative_key" field.
func NarrativeKeyHasPrefix(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldHasPrefix(FieldNarrativeKey, v))
}

// NarrativeKeyHasSuffix applies the HasSuffix predicate on the "narrative_key" field.
func NarrativeKeyHasSuffix(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldHasSuffix(FieldNarrativeKey, v))
}

// NarrativeKeyEqualFold applies the EqualFold predicate on the "narrative_key" field.
func NarrativeKeyEqualFold(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEqualFold(FieldNarrativeKey, v))
}

// NarrativeKeyContainsFold applies the ContainsFold predicate on the "narrative_key" field.
func NarrativeKeyContainsFold(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldContainsFold(FieldNarrativeKey, v))
}

// CognitiveGapEQ applies the EQ predicate on the "cognitive_gap" field.
func CognitiveGapEQ(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldCognitiveGap, v))
}

// CognitiveGapNEQ applies the NEQ predicate on the "cognitive_gap" field.
func CognitiveGapNEQ(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNEQ(FieldCognitiveGap, v))
}

// CognitiveGapIn applies the In predicate on the "cognitive_gap" field.
func CognitiveGapIn(vs ...string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldIn(FieldCognitiveGap, vs...))
}

// CognitiveGapNotIn applies the NotIn predicate on the "cognitive_gap" field.
func CognitiveGapNotIn(vs ...string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNotIn(FieldCognitiveGap, vs...))
}

// CognitiveGapGT applies the GT predicate on the "cognitive_gap" field.
func CognitiveGapGT(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGT(FieldCognitiveGap, v))
}

// CognitiveGapGTE applies the GTE predicate on the "cognitive_gap" field.
func CognitiveGapGTE(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGTE(FieldCognitiveGap, v))
}

// CognitiveGapLT applies the LT predicate on the "cognitive_gap" field.
func CognitiveGapLT(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLT(FieldCognitiveGap, v))
}

// CognitiveGapLTE applies the LTE predicate on the "cognitive_gap" field.
func CognitiveGapLTE(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLTE(FieldCognitiveGap, v))
}

// CognitiveGapContains applies the Contains predicate on the "cognitive_gap" field.
func CognitiveGapContains(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldContains(FieldCognitiveGap, v))
}

// CognitiveGapHasPrefix applies the HasPrefix predicate on the "cognitive_gap" field.
func CognitiveGapHasPrefix(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldHasPrefix(FieldCognitiveGap, v))
}

// CognitiveGapHasSuffix applies the HasSuffix predicate on the "cognitive_gap" field.
func CognitiveGapHasSuffix(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldHasSuffix(FieldCognitiveGap, v))
}

// CognitiveGapEqualFold applies the EqualFold predicate on the "cognitive_gap" field.
func CognitiveGapEqualFold(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEqualFold(FieldCognitiveGap, v))
}

// CognitiveGapContainsFold applies the ContainsFold predicate on the "cognitive_gap" field.
func CognitiveGapContainsFold(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldContainsFold(FieldCognitiveGap, v))
}

// FragilityEQ applies the EQ predicate on the "fragility" field.
func FragilityEQ(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldFragility, v))
}

// FragilityNEQ applies the NEQ predicate on the "fragility" field.
func FragilityNEQ(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNEQ(FieldFragility, v))
}

// FragilityIn applies the In predicate on the "fragility" field.
func FragilityIn(vs ...string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldIn(FieldFragility, vs...))
}

// FragilityNotIn applies the NotIn predicate on the "fragility" field.
func FragilityNotIn(vs ...string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNotIn(FieldFragility, vs...))
}

// FragilityGT applies the GT predicate on the "fragility" field.
func FragilityGT(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGT(FieldFragility, v))
}

// FragilityGTE applies the GTE predicate on the "fragility" field.
func FragilityGTE(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGTE(FieldFragility, v))
}

// FragilityLT applies the LT predicate on the "fragility" field.
func FragilityLT(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLT(FieldFragility, v))
}

// FragilityLTE applies the LTE predicate on the "fragility" field.
func FragilityLTE(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLTE(FieldFragility, v))
}

// FragilityContains applies the Contains predicate on the "fragility" field.
func FragilityContains(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldContains(FieldFragility, v))
}

// FragilityHasPrefix applies the HasPrefix predicate on the "fragility" field.
func FragilityHasPrefix(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldHasPrefix(FieldFragility, v))
}

// FragilityHasSuffix applies the HasSuffix predicate on the "fragility" field.
func FragilityHasSuffix(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldHasSuffix(FieldFragility, v))
}

// FragilityEqualFold applies the EqualFold predicate on the "fragility" field.
func FragilityEqualFold(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEqualFold(FieldFragility, v))
}

// FragilityContainsFold applies the ContainsFold predicate on the "fragility" field.
func FragilityContainsFold(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldContainsFold(FieldFragility, v))
}

// PivotKeyEQ applies the EQ predicate on the "pivot_key" field.
func PivotKeyEQ(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldPivotKey, v))
}

// PivotKeyNEQ applies the NEQ predicate on the "pivot_key" field.
func PivotKeyNEQ(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNEQ(FieldPivotKey, v))
}

// PivotKeyIn applies the In predicate on the "pivot_key" field.
func PivotKeyIn(vs ...string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldIn(FieldPivotKey, vs...))
}

// PivotKeyNotIn applies the NotIn predicate on the "pivot_key" field.
func PivotKeyNotIn(vs ...string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNotIn(FieldPivotKey, vs...))
}

// PivotKeyGT applies the GT predicate on the "pivot_key" field.
func PivotKeyGT(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGT(FieldPivotKey, v))
}

// PivotKeyGTE applies the GTE predicate on the "pivot_key" field.
func PivotKeyGTE(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGTE(FieldPivotKey, v))
}

// PivotKeyLT applies the LT predicate on the "pivot_key" field.
func PivotKeyLT(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLT(FieldPivotKey, v))
}

// PivotKeyLTE applies the LTE predicate on the "pivot_key" field.
func PivotKeyLTE(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLTE(FieldPivotKey, v))
}

// PivotKeyContains applies the Contains predicate on the "pivot_key" field.
func PivotKeyContains(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldContains(FieldPivotKey, v))
}

// PivotKeyHasPrefix applies the HasPrefix predicate on the "pivot_key" field.
func PivotKeyHasPrefix(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldHasPrefix(FieldPivotKey, v))
}

// PivotKeyHasSuffix applies the HasSuffix predicate on the "pivot_key" field.
func PivotKeyHasSuffix(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldHasSuffix(FieldPivotKey, v))
}

// PivotKeyEqualFold applies the EqualFold predicate on the "pivot_key" field.
func PivotKeyEqualFold(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEqualFold(FieldPivotKey, v))
}

// PivotKeyContainsFold applies the ContainsFold predicate on the "pivot_key" field.
func PivotKeyContainsFold(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldContainsFold(FieldPivotKey, v))
}

// OriginKeyEQ applies the EQ predicate on the "origin_key" field.
func OriginKeyEQ(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldOriginKey, v))
}

// OriginKeyNEQ applies the NEQ predicate on the "origin_key" field.
func OriginKeyNEQ(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNEQ(FieldOriginKey, v))
}

// OriginKeyIn applies the In predicate on the "origin_key" field.
func OriginKeyIn(vs ...string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldIn(FieldOriginKey, vs...))
}

// OriginKeyNotIn applies the NotIn predicate on the "origin_key" field.
func OriginKeyNotIn(vs ...string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNotIn(FieldOriginKey, vs...))
}

// OriginKeyGT applies the GT predicate on the "origin_key" field.
func OriginKeyGT(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGT(FieldOriginKey, v))
}

// OriginKeyGTE applies the GTE predicate on the "origin_key" field.
func OriginKeyGTE(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGTE(FieldOriginKey, v))
}

// OriginKeyLT applies the LT predicate on the "origin_key" field.
func OriginKeyLT(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLT(FieldOriginKey, v))
}

// OriginKeyLTE applies the LTE predicate on the "origin_key" field.
func OriginKeyLTE(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLTE(FieldOriginKey, v))
}

// OriginKeyContains applies the Contains predicate on the "origin_key" field.
func OriginKeyContains(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldContains(FieldOriginKey, v))
}

// OriginKeyHasPrefix applies the HasPrefix predicate on the "origin_key" field.
func OriginKeyHasPrefix(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldHasPrefix(FieldOriginKey, v))
}

// OriginKeyHasSuffix applies the HasSuffix predicate on the "origin_key" field.
func OriginKeyHasSuffix(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldHasSuffix(FieldOriginKey, v))
}

// OriginKeyEqualFold applies the EqualFold predicate on the "origin_key" field.
func OriginKeyEqualFold(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEqualFold(FieldOriginKey, v))
}

// OriginKeyContainsFold applies the ContainsFold predicate on the "origin_key" field.
func OriginKeyContainsFold(v string) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldContainsFold(FieldOriginKey, v))
}

// RiskScoreEQ applies the EQ predicate on the "risk_score" field.
func RiskScoreEQ(v int) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldRiskScore, v))
}

// RiskScoreNEQ applies the NEQ predicate on the "risk_score" field.
func RiskScoreNEQ(v int) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNEQ(FieldRiskScore, v))
}

// RiskScoreIn applies the In predicate on the "risk_score" field.
func RiskScoreIn(vs ...int) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldIn(FieldRiskScore, vs...))
}

// RiskScoreNotIn applies the NotIn predicate on the "risk_score" field.
func RiskScoreNotIn(vs ...int) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNotIn(FieldRiskScore, vs...))
}

// RiskScoreGT applies the GT predicate on the "risk_score" field.
func RiskScoreGT(v int) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGT(FieldRiskScore, v))
}

// RiskScoreGTE applies the GTE predicate on the "risk_score" field.
func RiskScoreGTE(v int) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGTE(FieldRiskScore, v))
}

// RiskScoreLT applies the LT predicate on the "risk_score" field.
func RiskScoreLT(v int) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLT(FieldRiskScore, v))
}

// RiskScoreLTE applies the LTE predicate on the "risk_score" field.
func RiskScoreLTE(v int) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLTE(FieldRiskScore, v))
}

// StructureScoreEQ applies the EQ predicate on the "structure_score" field.
func StructureScoreEQ(v int) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldEQ(FieldStructureScore, v))
}

// StructureScoreNEQ applies the NEQ predicate on the "structure_score" field.
func StructureScoreNEQ(v int) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNEQ(FieldStructureScore, v))
}

// StructureScoreIn applies the In predicate on the "structure_score" field.
func StructureScoreIn(vs ...int) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldIn(FieldStructureScore, vs...))
}

// StructureScoreNotIn applies the NotIn predicate on the "structure_score" field.
func StructureScoreNotIn(vs ...int) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldNotIn(FieldStructureScore, vs...))
}

// StructureScoreGT applies the GT predicate on the "structure_score" field.
func StructureScoreGT(v int) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGT(FieldStructureScore, v))
}

// StructureScoreGTE applies the GTE predicate on the "structure_score" field.
func StructureScoreGTE(v int) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldGTE(FieldStructureScore, v))
}

// StructureScoreLT applies the LT predicate on the "structure_score" field.
func StructureScoreLT(v int) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLT(FieldStructureScore, v))
}

// StructureScoreLTE applies the LTE predicate on the "structure_score" field.
func StructureScoreLTE(v int) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.FieldLTE(FieldStructureScore, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProfileEvent) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProfileEvent) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProfileEvent) predicate.ProfileEvent {
	return predicate.ProfileEvent(sql.NotPredicates(p))
}
