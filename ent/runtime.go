// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/skadvisory/findna/ent/profileevent"
	"github.com/skadvisory/findna/ent/responseevent"
	"github.com/skadvisory/findna/ent/schema"
	"github.com/skadvisory/findna/ent/sessionevent"
	"github.com/skadvisory/findna/ent/submissionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	profileeventMixin := schema.ProfileEvent{}.Mixin()
	profileeventMixinFields0 := profileeventMixin[0].Fields()
	_ = profileeventMixinFields0
	profileeventFields := schema.ProfileEvent{}.Fields()
	_ = profileeventFields
	// profileeventDescTimestamp is the schema descriptor for timestamp field.
	profileeventDescTimestamp := profileeventMixinFields0[1].Descriptor()
	// profileevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	profileevent.DefaultTimestamp = profileeventDescTimestamp.Default.(func() time.Time)
	// profileeventDescSessionID is the schema descriptor for session_id field.
	profileeventDescSessionID := profileeventFields[0].Descriptor()
	// profileevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	profileevent.SessionIDValidator = profileeventDescSessionID.Validators[0].(func(string) error)
	// profileeventDescArchetype is the schema descriptor for archetype field.
	profileeventDescArchetype := profileeventFields[1].Descriptor()
	// profileevent.ArchetypeValidator is a validator for the "archetype" field. It is called by the builders before save.
	profileevent.ArchetypeValidator = profileeventDescArchetype.Validators[0].(func(string) error)
	// profileeventDescRiskAppetite is the schema descriptor for risk_appetite field.
	profileeventDescRiskAppetite := profileeventFields[3].Descriptor()
	// profileevent.RiskAppetiteValidator is a validator for the "risk_appetite" field. It is called by the builders before save.
	profileevent.RiskAppetiteValidator = profileeventDescRiskAppetite.Validators[0].(func(string) error)
	// profileeventDescStructure is the schema descriptor for structure field.
	profileeventDescStructure := profileeventFields[4].Descriptor()
	// profileevent.StructureValidator is a validator for the "structure" field. It is called by the builders before save.
	profileevent.StructureValidator = profileeventDescStructure.Validators[0].(func(string) error)
	// profileeventDescEmotionalDriver is the schema descriptor for emotional_driver field.
	profileeventDescEmotionalDriver := profileeventFields[5].Descriptor()
	// profileevent.EmotionalDriverValidator is a validator for the "emotional_driver" field. It is called by the builders before save.
	profileevent.EmotionalDriverValidator = profileeventDescEmotionalDriver.Validators[0].(func(string) error)
	// profileeventDescNarrativeKey is the schema descriptor for narrative_key field.
	profileeventDescNarrativeKey := profileeventFields[6].Descriptor()
	// profileevent.NarrativeKeyValidator is a validator for the "narrative_key" field. It is called by the builders before save.
	profileevent.NarrativeKeyValidator = profileeventDescNarrativeKey.Validators[0].(func(string) error)
	// profileeventDescCognitiveGap is the schema descriptor for cognitive_gap field.
	profileeventDescCognitiveGap := profileeventFields[7].Descriptor()
	// profileevent.CognitiveGapValidator is a validator for the "cognitive_gap" field. It is called by the builders before save.
	profileevent.CognitiveGapValidator = profileeventDescCognitiveGap.Validators[0].(func(string) error)
	// profileeventDescFragility is the schema descriptor for fragility field.
	profileeventDescFragility := profileeventFields[8].Descriptor()
	// profileevent.FragilityValidator is a validator for the "fragility" field. It is called by the builders before save.
	profileevent.FragilityValidator = profileeventDescFragility.Validators[0].(func(string) error)
	// profileeventDescPivotKey is the schema descriptor for pivot_key field.
	profileeventDescPivotKey := profileeventFields[9].Descriptor()
	// profileevent.PivotKeyValidator is a validator for the "pivot_key" field. It is called by the builders before save.
	profileevent.PivotKeyValidator = profileeventDescPivotKey.Validators[0].(func(string) error)
	// profileeventDescOriginKey is the schema descriptor for origin_key field.
	profileeventDescOriginKey := profileeventFields[10].Descriptor()
	// profileevent.OriginKeyValidator is a validator for the "origin_key" field. It is called by the builders before save.
	profileevent.OriginKeyValidator = profileeventDescOriginKey.Validators[0].(func(string) error)
	responseeventMixin := schema.ResponseEvent{}.Mixin()
	responseeventMixinFields0 := responseeventMixin[0].Fields()
	_ = responseeventMixinFields0
	responseeventFields := schema.ResponseEvent{}.Fields()
	_ = responseeventFields
	// responseeventDescTimestamp is the schema descriptor for timestamp field.
	responseeventDescTimestamp := responseeventMixinFields0[1].Descriptor()
	// responseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	responseevent.DefaultTimestamp = responseeventDescTimestamp.Default.(func() time.Time)
	// responseeventDescSessionID is the schema descriptor for session_id field.
	responseeventDescSessionID := responseeventFields[0].Descriptor()
	// responseevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	responseevent.SessionIDValidator = responseeventDescSessionID.Validators[0].(func(string) error)
	// responseeventDescQuestionID is the schema descriptor for question_id field.
	responseeventDescQuestionID := responseeventFields[1].Descriptor()
	// responseevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	responseevent.QuestionIDValidator = responseeventDescQuestionID.Validators[0].(func(string) error)
	// responseeventDescAnswerKey is the schema descriptor for answer_key field.
	responseeventDescAnswerKey := responseeventFields[2].Descriptor()
	// responseevent.AnswerKeyValidator is a validator for the "answer_key" field. It is called by the builders before save.
	responseevent.AnswerKeyValidator = responseeventDescAnswerKey.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescAnswersRecorded is the schema descriptor for answers_recorded field.
	sessioneventDescAnswersRecorded := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultAnswersRecorded holds the default value on creation for the answers_recorded field.
	sessionevent.DefaultAnswersRecorded = sessioneventDescAnswersRecorded.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	submissioneventMixin := schema.SubmissionEvent{}.Mixin()
	submissioneventMixinFields0 := submissioneventMixin[0].Fields()
	_ = submissioneventMixinFields0
	submissioneventFields := schema.SubmissionEvent{}.Fields()
	_ = submissioneventFields
	// submissioneventDescTimestamp is the schema descriptor for timestamp field.
	submissioneventDescTimestamp := submissioneventMixinFields0[1].Descriptor()
	// submissionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	submissionevent.DefaultTimestamp = submissioneventDescTimestamp.Default.(func() time.Time)
	// submissioneventDescSessionID is the schema descriptor for session_id field.
	submissioneventDescSessionID := submissioneventFields[0].Descriptor()
	// submissionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	submissionevent.SessionIDValidator = submissioneventDescSessionID.Validators[0].(func(string) error)
	// submissioneventDescFields is the schema descriptor for fields field.
	submissioneventDescFields := submissioneventFields[3].Descriptor()
	// submissionevent.DefaultFields holds the default value on creation for the fields field.
	submissionevent.DefaultFields = submissioneventDescFields.Default.(int)
}
