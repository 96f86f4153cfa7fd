// Code generated by ent, DO NOT EDIT.

package ent

import (
	"oscesim/ent/activityevent"
	"oscesim/ent/evaluationevent"
	"oscesim/ent/llmrequestevent"
	"oscesim/ent/schema"
	"oscesim/ent/sessionsnapshot"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityeventMixin := schema.ActivityEvent{}.Mixin()
	activityeventMixinFields0 := activityeventMixin[0].Fields()
	_ = activityeventMixinFields0
	activityeventFields := schema.ActivityEvent{}.Fields()
	_ = activityeventFields
	// activityeventDescTimestamp is the schema descriptor for timestamp field.
	activityeventDescTimestamp := activityeventMixinFields0[1].Descriptor()
	// activityevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	activityevent.DefaultTimestamp = activityeventDescTimestamp.Default.(func() time.Time)
	// activityeventDescSessionID is the schema descriptor for session_id field.
	activityeventDescSessionID := activityeventFields[0].Descriptor()
	// activityevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	activityevent.SessionIDValidator = activityeventDescSessionID.Validators[0].(func(string) error)
	// activityeventDescCaseID is the schema descriptor for case_id field.
	activityeventDescCaseID := activityeventFields[2].Descriptor()
	// activityevent.CaseIDValidator is a validator for the "case_id" field. It is called by the builders before save.
	activityevent.CaseIDValidator = activityeventDescCaseID.Validators[0].(func(string) error)
	// activityeventDescActivityType is the schema descriptor for activity_type field.
	activityeventDescActivityType := activityeventFields[3].Descriptor()
	// activityevent.ActivityTypeValidator is a validator for the "activity_type" field. It is called by the builders before save.
	activityevent.ActivityTypeValidator = activityeventDescActivityType.Validators[0].(func(string) error)
	evaluationeventMixin := schema.EvaluationEvent{}.Mixin()
	evaluationeventMixinFields0 := evaluationeventMixin[0].Fields()
	_ = evaluationeventMixinFields0
	evaluationeventFields := schema.EvaluationEvent{}.Fields()
	_ = evaluationeventFields
	// evaluationeventDescTimestamp is the schema descriptor for timestamp field.
	evaluationeventDescTimestamp := evaluationeventMixinFields0[1].Descriptor()
	// evaluationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	evaluationevent.DefaultTimestamp = evaluationeventDescTimestamp.Default.(func() time.Time)
	// evaluationeventDescReportID is the schema descriptor for report_id field.
	evaluationeventDescReportID := evaluationeventFields[0].Descriptor()
	// evaluationevent.ReportIDValidator is a validator for the "report_id" field. It is called by the builders before save.
	evaluationevent.ReportIDValidator = evaluationeventDescReportID.Validators[0].(func(string) error)
	// evaluationeventDescSessionID is the schema descriptor for session_id field.
	evaluationeventDescSessionID := evaluationeventFields[1].Descriptor()
	// evaluationevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	evaluationevent.SessionIDValidator = evaluationeventDescSessionID.Validators[0].(func(string) error)
	// evaluationeventDescCaseID is the schema descriptor for case_id field.
	evaluationeventDescCaseID := evaluationeventFields[3].Descriptor()
	// evaluationevent.CaseIDValidator is a validator for the "case_id" field. It is called by the builders before save.
	evaluationevent.CaseIDValidator = evaluationeventDescCaseID.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	llmrequestevent.PurposeValidator = llmrequesteventDescPurpose.Validators[0].(func(string) error)
	sessionsnapshotFields := schema.SessionSnapshot{}.Fields()
	_ = sessionsnapshotFields
	// sessionsnapshotDescSessionID is the schema descriptor for session_id field.
	sessionsnapshotDescSessionID := sessionsnapshotFields[0].Descriptor()
	// sessionsnapshot.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionsnapshot.SessionIDValidator = sessionsnapshotDescSessionID.Validators[0].(func(string) error)
	// sessionsnapshotDescUserID is the schema descriptor for user_id field.
	sessionsnapshotDescUserID := sessionsnapshotFields[1].Descriptor()
	// sessionsnapshot.DefaultUserID holds the default value on creation for the user_id field.
	sessionsnapshot.DefaultUserID = sessionsnapshotDescUserID.Default.(string)
	// sessionsnapshotDescCaseID is the schema descriptor for case_id field.
	sessionsnapshotDescCaseID := sessionsnapshotFields[2].Descriptor()
	// sessionsnapshot.CaseIDValidator is a validator for the "case_id" field. It is called by the builders before save.
	sessionsnapshot.CaseIDValidator = sessionsnapshotDescCaseID.Validators[0].(func(string) error)
	// sessionsnapshotDescUpdatedAt is the schema descriptor for updated_at field.
	sessionsnapshotDescUpdatedAt := sessionsnapshotFields[4].Descriptor()
	// sessionsnapshot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionsnapshot.DefaultUpdatedAt = sessionsnapshotDescUpdatedAt.Default.(func() time.Time)
	// sessionsnapshot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessionsnapshot.UpdateDefaultUpdatedAt = sessionsnapshotDescUpdatedAt.UpdateDefault.(func() time.Time)
}
