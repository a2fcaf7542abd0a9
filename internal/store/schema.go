package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	recordsTable       = "records"
	sessionEventsTable = "session_events"
)

var (
	recordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeBytes},
		{Name: "updated_at", Type: field.TypeTime},
	}
	recordsSchema = &schema.Table{
		Name:       recordsTable,
		Columns:    recordsColumns,
		PrimaryKey: []*schema.Column{recordsColumns[0]},
	}

	sessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "mode", Type: field.TypeString},
		{Name: "questions", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeInt},
		{Name: "score", Type: field.TypeInt},
		{Name: "stars", Type: field.TypeInt},
		{Name: "coins", Type: field.TypeInt},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime},
	}
	sessionEventsSchema = &schema.Table{
		Name:       sessionEventsTable,
		Columns:    sessionEventsColumns,
		PrimaryKey: []*schema.Column{sessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_ended_at",
				Unique:  false,
				Columns: []*schema.Column{sessionEventsColumns[9]},
			},
		},
	}

	tables = []*schema.Table{
		recordsSchema,
		sessionEventsSchema,
	}
)
