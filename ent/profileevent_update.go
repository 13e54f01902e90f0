// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skadvisory/findna/ent/predicate"
	"github.com/skadvisory/findna/ent/profileevent"
)

// ProfileEventUpdate is the builder for updating ProfileEvent entities.
type ProfileEventUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileEventMutation
}

// Where appends a list predicates to the ProfileEventUpdate builder.
func (_u *ProfileEventUpdate) Where(ps ...predicate.ProfileEvent) *ProfileEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ProfileEventUpdate) SetSessionID(v string) *ProfileEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ProfileEventUpdate) SetNillableSessionID(v *string) *ProfileEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetArchetype sets the "archetype" field.
func (_u *ProfileEventUpdate) SetArchetype(v string) *ProfileEventUpdate {
	_u.mutation.SetArchetype(v)
	return _u
}

// SetNillableArchetype sets the "archetype" field if the given value is not nil.
func (_u *ProfileEventUpdate) SetNillableArchetype(v *string) *ProfileEventUpdate {
	if v != nil {
		_u.SetArchetype(*v)
	}
	return _u
}

// SetSituationalOverride sets the "situational_override" field.
func (_u *ProfileEventUpdate) SetSituationalOverride(v string) *ProfileEventUpdate {
	_u.mutation.SetSituationalOverride(v)
	return _u
}

// SetNillableSituationalOverride sets the "situational_override" field if the given value is not nil.
func (_u *ProfileEventUpdate) SetNillableSituationalOverride(v *string) *ProfileEventUpdate {
	if v != nil {
		_u.SetSituationalOverride(*v)
	}
	return _u
}

// SetRiskAppetite sets the "risk_appetite" field.
func (_u *ProfileEventUpdate) SetRiskAppetite(v string) *ProfileEventUpdate {
	_u.mutation.SetRiskAppetite(v)
	return _u
}

// SetNillableRiskAppetite sets the "risk_appetite" field if the given value is not nil.
func (_u *ProfileEventUpdate) SetNillableRiskAppetite(v *string) *ProfileEventUpdate {
	if v != nil {
		_u.SetRiskAppetite(*v)
	}
	return _u
}

// SetStructure sets the "structure" field.
func (_u *ProfileEventUpdate) SetStructure(v string) *ProfileEventUpdate {
	_u.mutation.SetStructure(v)
	return _u
}

// SetNillableStructure sets the "structure" field if the given value is not nil.
func (_u *ProfileEventUpdate) SetNillableStructure(v *string) *ProfileEventUpdate {
	if v != nil {
		_u.SetStructure(*v)
	}
	return _u
}

// SetEmotionalDriver sets the "emotional_driver" field.
func (_u *ProfileEventUpdate) SetEmotionalDriver(v string) *ProfileEventUpdate {
	_u.mutation.SetEmotionalDriver(v)
	return _u
}

// SetNillableEmotionalDriver sets the "emotional_driver" field if the given value is not nil.
func (_u *ProfileEventUpdate) SetNillableEmotionalDriver(v *string) *ProfileEventUpdate {
	if v != nil {
		_u.SetEmotionalDriver(*v)
	}
	return _u
}

// SetNarrativeKey sets the "narrative_key" field.
func (_u *ProfileEventUpdate) SetNarrativeKey(v string) *ProfileEventUpdate {
	_u.mutation.SetNarrativeKey(v)
	return _u
}

// SetNillableNarrativeKey sets the "narrative_key" field if the given value is not nil.
func (_u *ProfileEventUpdate) SetNillableNarrativeKey(v *string) *ProfileEventUpdate {
	if v != nil {
		_u.SetNarrativeKey(*v)
	}
	return _u
}

// SetCognitiveGap sets the "cognitive_gap" field.
func (_u *ProfileEventUpdate) SetCognitiveGap(v string) *ProfileEventUpdate {
	_u.mutation.SetCognitiveGap(v)
	return _u
}

// SetNillableCognitiveGap sets the "cognitive_gap" field if the given value is not nil.
func (_u *ProfileEventUpdate) SetNillableCognitiveGap(v *string) *ProfileEventUpdate {
	if v != nil {
		_u.SetCognitiveGap(*v)
	}
	return _u
}

// SetFragility sets the "fragility" field.
func (_u *ProfileEventUpdate) SetFragility(v string) *ProfileEventUpdate {
	_u.mutation.SetFragility(v)
	return _u
}

// SetNillableFragility sets the "fragility" field if the given value is not nil.
func (_u *ProfileEventUpdate) SetNillableFragility(v *string) *ProfileEventUpdate {
	if v != nil {
		_u.SetFragility(*v)
	}
	return _u
}

// SetPivotKey sets the "pivot_key" field.
func (_u *ProfileEventUpdate) SetPivotKey(v string) *ProfileEventUpdate {
	_u.mutation.SetPivotKey(v)
	return _u
}

// SetNillablePivotKey sets the "pivot_key" field if the given value is not nil.
func (_u *ProfileEventUpdate) SetNillablePivotKey(v *string) *ProfileEventUpdate {
	if v != nil {
		_u.SetPivotKey(*v)
	}
	return _u
}

// SetOriginKey sets the "origin_key" field.
func (_u *ProfileEventUpdate) SetOriginKey(v string) *ProfileEventUpdate {
	_u.mutation.SetOriginKey(v)
	return _u
}

// SetNillableOriginKey sets the "origin_key" field if the given value is not nil.
func (_u *ProfileEventUpdate) SetNillableOriginKey(v *string) *ProfileEventUpdate {
	if v != nil {
		_u.SetOriginKey(*v)
	}
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *ProfileEventUpdate) SetRiskScore(v int) *ProfileEventUpdate {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *ProfileEventUpdate) SetNillableRiskScore(v *int) *ProfileEventUpdate {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *ProfileEventUpdate) AddRiskScore(v int) *ProfileEventUpdate {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetStructureScore sets the "structure_score" field.
func (_u *ProfileEventUpdate) SetStructureScore(v int) *ProfileEventUpdate {
	_u.mutation.ResetStructureScore()
	_u.mutation.SetStructureScore(v)
	return _u
}

// SetNillableStructureScore sets the "structure_score" field if the given value is not nil.
func (_u *ProfileEventUpdate) SetNillableStructureScore(v *int) *ProfileEventUpdate {
	if v != nil {
		_u.SetStructureScore(*v)
	}
	return _u
}

// AddStructureScore adds value to the "structure_score" field.
func (_u *ProfileEventUpdate) AddStructureScore(v int) *ProfileEventUpdate {
	_u.mutation.AddStructureScore(v)
	return _u
}

// Mutation returns the ProfileEventMutation object of the builder.
func (_u *ProfileEventUpdate) Mutation() *ProfileEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := profileevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Archetype(); ok {
		if err := profileevent.ArchetypeValidator(v); err != nil {
			return &ValidationError{Name: "archetype", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.archetype": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskAppetite(); ok {
		if err := profileevent.RiskAppetiteValidator(v); err != nil {
			return &ValidationError{Name: "risk_appetite", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.risk_appetite": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Structure(); ok {
		if err := profileevent.StructureValidator(v); err != nil {
			return &ValidationError{Name: "structure", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.structure": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmotionalDriver(); ok {
		if err := profileevent.EmotionalDriverValidator(v); err != nil {
			return &ValidationError{Name: "emotional_driver", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.emotional_driver": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NarrativeKey(); ok {
		if err := profileevent.NarrativeKeyValidator(v); err != nil {
			return &ValidationError{Name: "narrative_key", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.narrative_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CognitiveGap(); ok {
		if err := profileevent.CognitiveGapValidator(v); err != nil {
			return &ValidationError{Name: "cognitive_gap", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.cognitive_gap": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Fragility(); ok {
		if err := profileevent.FragilityValidator(v); err != nil {
			return &ValidationError{Name: "fragility", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.fragility": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PivotKey(); ok {
		if err := profileevent.PivotKeyValidator(v); err != nil {
			return &ValidationError{Name: "pivot_key", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.pivot_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginKey(); ok {
		if err := profileevent.OriginKeyValidator(v); err != nil {
			return &ValidationError{Name: "origin_key", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.origin_key": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profileevent.Table, profileevent.Columns, sqlgraph.NewFieldSpec(profileevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(profileevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Archetype(); ok {
		_spec.SetField(profileevent.FieldArchetype, field.TypeString, value)
	}
	if value, ok := _u.mutation.SituationalOverride(); ok {
		_spec.SetField(profileevent.FieldSituationalOverride, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskAppetite(); ok {
		_spec.SetField(profileevent.FieldRiskAppetite, field.TypeString, value)
	}
	if value, ok := _u.mutation.Structure(); ok {
		_spec.SetField(profileevent.FieldStructure, field.TypeString, value)
	}
	if value, ok := _u.mutation.EmotionalDriver(); ok {
		_spec.SetField(profileevent.FieldEmotionalDriver, field.TypeString, value)
	}
	if value, ok := _u.mutation.NarrativeKey(); ok {
		_spec.SetField(profileevent.FieldNarrativeKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.CognitiveGap(); ok {
		_spec.SetField(profileevent.FieldCognitiveGap, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fragility(); ok {
		_spec.SetField(profileevent.FieldFragility, field.TypeString, value)
	}
	if value, ok := _u.mutation.PivotKey(); ok {
		_spec.SetField(profileevent.FieldPivotKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginKey(); ok {
		_spec.SetField(profileevent.FieldOriginKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(profileevent.FieldRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(profileevent.FieldRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StructureScore(); ok {
		_spec.SetField(profileevent.FieldStructureScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStructureScore(); ok {
		_spec.AddField(profileevent.FieldStructureScore, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profileevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileEventUpdateOne is the builder for updating a single ProfileEvent entity.
type ProfileEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ProfileEventUpdateOne) SetSessionID(v string) *ProfileEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ProfileEventUpdateOne) SetNillableSessionID(v *string) *ProfileEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetArchetype sets the "archetype" field.
func (_u *ProfileEventUpdateOne) SetArchetype(v string) *ProfileEventUpdateOne {
	_u.mutation.SetArchetype(v)
	return _u
}

// SetNillableArchetype sets the "archetype" field if the given value is not nil.
func (_u *ProfileEventUpdateOne) SetNillableArchetype(v *string) *ProfileEventUpdateOne {
	if v != nil {
		_u.SetArchetype(*v)
	}
	return _u
}

// SetSituationalOverride sets the "situational_override" field.
func (_u *ProfileEventUpdateOne) SetSituationalOverride(v string) *ProfileEventUpdateOne {
	_u.mutation.SetSituationalOverride(v)
	return _u
}

// SetNillableSituationalOverride sets the "situational_override" field if the given value is not nil.
func (_u *ProfileEventUpdateOne) SetNillableSituationalOverride(v *string) *ProfileEventUpdateOne {
	if v != nil {
		_u.SetSituationalOverride(*v)
	}
	return _u
}

// SetRiskAppetite sets the "risk_appetite" field.
func (_u *ProfileEventUpdateOne) SetRiskAppetite(v string) *ProfileEventUpdateOne {
	_u.mutation.SetRiskAppetite(v)
	return _u
}

// SetNillableRiskAppetite sets the "risk_appetite" field if the given value is not nil.
func (_u *ProfileEventUpdateOne) SetNillableRiskAppetite(v *string) *ProfileEventUpdateOne {
	if v != nil {
		_u.SetRiskAppetite(*v)
	}
	return _u
}

// SetStructure sets the "structure" field.
func (_u *ProfileEventUpdateOne) SetStructure(v string) *ProfileEventUpdateOne {
	_u.mutation.SetStructure(v)
	return _u
}

// SetNillableStructure sets the "structure" field if the given value is not nil.
func (_u *ProfileEventUpdateOne) SetNillableStructure(v *string) *ProfileEventUpdateOne {
	if v != nil {
		_u.SetStructure(*v)
	}
	return _u
}

// SetEmotionalDriver sets the "emotional_driver" field.
func (_u *ProfileEventUpdateOne) SetEmotionalDriver(v string) *ProfileEventUpdateOne {
	_u.mutation.SetEmotionalDriver(v)
	return _u
}

// SetNillableEmotionalDriver sets the "emotional_driver" field if the given value is not nil.
func (_u *ProfileEventUpdateOne) SetNillableEmotionalDriver(v *string) *ProfileEventUpdateOne {
	if v != nil {
		_u.SetEmotionalDriver(*v)
	}
	return _u
}

// SetNarrativeKey sets the "narrative_key" field.
func (_u *ProfileEventUpdateOne) SetNarrativeKey(v string) *ProfileEventUpdateOne {
	_u.mutation.SetNarrativeKey(v)
	return _u
}

// SetNillableNarrativeKey sets the "narrative_key" field if the given value is not nil.
func (_u *ProfileEventUpdateOne) SetNillableNarrativeKey(v *string) *ProfileEventUpdateOne {
	if v != nil {
		_u.SetNarrativeKey(*v)
	}
	return _u
}

// SetCognitiveGap sets the "cognitive_gap" field.
func (_u *ProfileEventUpdateOne) SetCognitiveGap(v string) *ProfileEventUpdateOne {
	_u.mutation.SetCognitiveGap(v)
	return _u
}

// SetNillableCognitiveGap sets the "cognitive_gap" field if the given value is not nil.
func (_u *ProfileEventUpdateOne) SetNillableCognitiveGap(v *string) *ProfileEventUpdateOne {
	if v != nil {
		_u.SetCognitiveGap(*v)
	}
	return _u
}

// SetFragility sets the "fragility" field.
func (_u *ProfileEventUpdateOne) SetFragility(v string) *ProfileEventUpdateOne {
	_u.mutation.SetFragility(v)
	return _u
}

// SetNillableFragility sets the "fragility" field if the given value is not nil.
func (_u *ProfileEventUpdateOne) SetNillableFragility(v *string) *ProfileEventUpdateOne {
	if v != nil {
		_u.SetFragility(*v)
	}
	return _u
}

// SetPivotKey sets the "pivot_key" field.
func (_u *ProfileEventUpdateOne) SetPivotKey(v string) *ProfileEventUpdateOne {
	_u.mutation.SetPivotKey(v)
	return _u
}

// SetNillablePivotKey sets the "pivot_key" field if the given value is not nil.
func (_u *ProfileEventUpdateOne) SetNillablePivotKey(v *string) *ProfileEventUpdateOne {
	if v != nil {
		_u.SetPivotKey(*v)
	}
	return _u
}

// SetOriginKey sets the "origin_key" field.
func (_u *ProfileEventUpdateOne) SetOriginKey(v string) *ProfileEventUpdateOne {
	_u.mutation.SetOriginKey(v)
	return _u
}

// SetNillableOriginKey sets the "origin_key" field if the given value is not nil.
func (_u *ProfileEventUpdateOne) SetNillableOriginKey(v *string) *ProfileEventUpdateOne {
	if v != nil {
		_u.SetOriginKey(*v)
	}
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *ProfileEventUpdateOne) SetRiskScore(v int) *ProfileEventUpdateOne {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *ProfileEventUpdateOne) SetNillableRiskScore(v *int) *ProfileEventUpdateOne {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *ProfileEventUpdateOne) AddRiskScore(v int) *ProfileEventUpdateOne {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetStructureScore sets the "structure_score" field.
func (_u *ProfileEventUpdateOne) SetStructureScore(v int) *ProfileEventUpdateOne {
	_u.mutation.ResetStructureScore()
	_u.mutation.SetStructureScore(v)
	return _u
}

// SetNillableStructureScore sets the "structure_score" field if the given value is not nil.
func (_u *ProfileEventUpdateOne) SetNillableStructureScore(v *int) *ProfileEventUpdateOne {
	if v != nil {
		_u.SetStructureScore(*v)
	}
	return _u
}

// AddStructureScore adds value to the "structure_score" field.
func (_u *ProfileEventUpdateOne) AddStructureScore(v int) *ProfileEventUpdateOne {
	_u.mutation.AddStructureScore(v)
	return _u
}

// Mutation returns the ProfileEventMutation object of the builder.
func (_u *ProfileEventUpdateOne) Mutation() *ProfileEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileEventUpdate builder.
func (_u *ProfileEventUpdateOne) Where(ps ...predicate.ProfileEvent) *ProfileEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileEventUpdateOne) Select(field string, fields ...string) *ProfileEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProfileEvent entity.
func (_u *ProfileEventUpdateOne) Save(ctx context.Context) (*ProfileEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileEventUpdateOne) SaveX(ctx context.Context) *ProfileEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := profileevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Archetype(); ok {
		if err := profileevent.ArchetypeValidator(v); err != nil {
			return &ValidationError{Name: "archetype", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.archetype": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskAppetite(); ok {
		if err := profileevent.RiskAppetiteValidator(v); err != nil {
			return &ValidationError{Name: "risk_appetite", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.risk_appetite": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Structure(); ok {
		if err := profileevent.StructureValidator(v); err != nil {
			return &ValidationError{Name: "structure", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.structure": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmotionalDriver(); ok {
		if err := profileevent.EmotionalDriverValidator(v); err != nil {
			return &ValidationError{Name: "emotional_driver", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.emotional_driver": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NarrativeKey(); ok {
		if err := profileevent.NarrativeKeyValidator(v); err != nil {
			return &ValidationError{Name: "narrative_key", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.narrative_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CognitiveGap(); ok {
		if err := profileevent.CognitiveGapValidator(v); err != nil {
			return &ValidationError{Name: "cognitive_gap", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.cognitive_gap": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Fragility(); ok {
		if err := profileevent.FragilityValidator(v); err != nil {
			return &ValidationError{Name: "fragility", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.fragility": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PivotKey(); ok {
		if err := profileevent.PivotKeyValidator(v); err != nil {
			return &ValidationError{Name: "pivot_key", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.pivot_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginKey(); ok {
		if err := profileevent.OriginKeyValidator(v); err != nil {
			return &ValidationError{Name: "origin_key", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.origin_key": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileEventUpdateOne) sqlSave(ctx context.Context) (_node *ProfileEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profileevent.Table, profileevent.Columns, sqlgraph.NewFieldSpec(profileevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProfileEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profileevent.FieldID)
		for _, f := range fields {
			if !profileevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profileevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(profileevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Archetype(); ok {
		_spec.SetField(profileevent.FieldArchetype, field.TypeString, value)
	}
	if value, ok := _u.mutation.SituationalOverride(); ok {
		_spec.SetField(profileevent.FieldSituationalOverride, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskAppetite(); ok {
		_spec.SetField(profileevent.FieldRiskAppetite, field.TypeString, value)
	}
	if value, ok := _u.mutation.Structure(); ok {
		_spec.SetField(profileevent.FieldStructure, field.TypeString, value)
	}
	if value, ok := _u.mutation.EmotionalDriver(); ok {
		_spec.SetField(profileevent.FieldEmotionalDriver, field.TypeString, value)
	}
	if value, ok := _u.mutation.NarrativeKey(); ok {
		_spec.SetField(profileevent.FieldNarrativeKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.CognitiveGap(); ok {
		_spec.SetField(profileevent.FieldCognitiveGap, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fragility(); ok {
		_spec.SetField(profileevent.FieldFragility, field.TypeString, value)
	}
	if value, ok := _u.mutation.PivotKey(); ok {
		_spec.SetField(profileevent.FieldPivotKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginKey(); ok {
		_spec.SetField(profileevent.FieldOriginKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(profileevent.FieldRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(profileevent.FieldRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StructureScore(); ok {
		_spec.SetField(profileevent.FieldStructureScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStructureScore(); ok {
		_spec.AddField(profileevent.FieldStructureScore, field.TypeInt, value)
	}
	_node = &ProfileEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profileevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
