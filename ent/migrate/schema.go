// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ProfileEventsColumns holds the columns for the "profile_events" table.
	ProfileEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "archetype", Type: field.TypeString},
		{Name: "situational_override", Type: field.TypeString},
		{Name: "risk_appetite", Type: field.TypeString},
		{Name: "structure", Type: field.TypeString},
		{Name: "emotional_driver", Type: field.TypeString},
		{Name: "narrative_key", Type: field.TypeString},
		{Name: "cognitive_gap", Type: field.TypeString},
		{Name: "fragility", Type: field.TypeString},
		{Name: "pivot_key", Type: field.TypeString},
		{Name: "origin_key", Type: field.TypeString},
		{Name: "risk_score", Type: field.TypeInt},
		{Name: "structure_score", Type: field.TypeInt},
	}
	// ProfileEventsTable holds the schema information for the "profile_events" table.
	ProfileEventsTable = &schema.Table{
		Name:       "profile_events",
		Columns:    ProfileEventsColumns,
		PrimaryKey: []*schema.Column{ProfileEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profileevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ProfileEventsColumns[1]},
			},
			{
				Name:    "profileevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ProfileEventsColumns[2]},
			},
			{
				Name:    "profileevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ProfileEventsColumns[3]},
			},
			{
				Name:    "profileevent_archetype",
				Unique:  false,
				Columns: []*schema.Column{ProfileEventsColumns[4]},
			},
		},
	}
	// ResponseEventsColumns holds the columns for the "response_events" table.
	ResponseEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "answer_key", Type: field.TypeString},
		{Name: "value", Type: field.TypeString},
		{Name: "phase", Type: field.TypeInt},
	}
	// ResponseEventsTable holds the schema information for the "response_events" table.
	ResponseEventsTable = &schema.Table{
		Name:       "response_events",
		Columns:    ResponseEventsColumns,
		PrimaryKey: []*schema.Column{ResponseEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "responseevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[1]},
			},
			{
				Name:    "responseevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[2]},
			},
			{
				Name:    "responseevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[3]},
			},
			{
				Name:    "responseevent_answer_key",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[5]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "answers_recorded", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// SubmissionEventsColumns holds the columns for the "submission_events" table.
	SubmissionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "ok", Type: field.TypeBool},
		{Name: "error", Type: field.TypeString},
		{Name: "fields", Type: field.TypeInt, Default: 0},
	}
	// SubmissionEventsTable holds the schema information for the "submission_events" table.
	SubmissionEventsTable = &schema.Table{
		Name:       "submission_events",
		Columns:    SubmissionEventsColumns,
		PrimaryKey: []*schema.Column{SubmissionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "submissionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[1]},
			},
			{
				Name:    "submissionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[2]},
			},
			{
				Name:    "submissionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[3]},
			},
			{
				Name:    "submissionevent_ok",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ProfileEventsTable,
		ResponseEventsTable,
		SessionEventsTable,
		SubmissionEventsTable,
	}
)

func init() {
}
