// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skadvisory/findna/ent/profileevent"
)

// ProfileEventCreate is the builder for creating a ProfileEvent entity.
type ProfileEventCreate struct {
	config
	mutation *ProfileEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ProfileEventCreate) SetSequence(v int64) *ProfileEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ProfileEventCreate) SetTimestamp(v time.Time) *ProfileEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ProfileEventCreate) SetNillableTimestamp(v *time.Time) *ProfileEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ProfileEventCreate) SetSessionID(v string) *ProfileEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetArchetype sets the "archetype" field.
func (_c *ProfileEventCreate) SetArchetype(v string) *ProfileEventCreate {
	_c.mutation.SetArchetype(v)
	return _c
}

// SetSituationalOverride sets the "situational_override" field.
func (_c *ProfileEventCreate) SetSituationalOverride(v string) *ProfileEventCreate {
	_c.mutation.SetSituationalOverride(v)
	return _c
}

// SetRiskAppetite sets the "risk_appetite" field.
func (_c *ProfileEventCreate) SetRiskAppetite(v string) *ProfileEventCreate {
	_c.mutation.SetRiskAppetite(v)
	return _c
}

// SetStructure sets the "structure" field.
func (_c *ProfileEventCreate) SetStructure(v string) *ProfileEventCreate {
	_c.mutation.SetStructure(v)
	return _c
}

// SetEmotionalDriver sets the "emotional_driver" field.
func (_c *ProfileEventCreate) SetEmotionalDriver(v string) *ProfileEventCreate {
	_c.mutation.SetEmotionalDriver(v)
	return _c
}

// SetNarrativeKey sets the "narrative_key" field.
func (_c *ProfileEventCreate) SetNarrativeKey(v string) *ProfileEventCreate {
	_c.mutation.SetNarrativeKey(v)
	return _c
}

// SetCognitiveGap sets the "cognitive_gap" field.
func (_c *ProfileEventCreate) SetCognitiveGap(v string) *ProfileEventCreate {
	_c.mutation.SetCognitiveGap(v)
	return _c
}

// SetFragility sets the "fragility" field.
func (_c *ProfileEventCreate) SetFragility(v string) *ProfileEventCreate {
	_c.mutation.SetFragility(v)
	return _c
}

// SetPivotKey sets the "pivot_key" field.
func (_c *ProfileEventCreate) SetPivotKey(v string) *ProfileEventCreate {
	_c.mutation.SetPivotKey(v)
	return _c
}

// SetOriginKey sets the "origin_key" field.
func (_c *ProfileEventCreate) SetOriginKey(v string) *ProfileEventCreate {
	_c.mutation.SetOriginKey(v)
	return _c
}

// SetRiskScore sets the "risk_score" field.
func (_c *ProfileEventCreate) SetRiskScore(v int) *ProfileEventCreate {
	_c.mutation.SetRiskScore(v)
	return _c
}

// SetStructureScore sets the "structure_score" field.
func (_c *ProfileEventCreate) SetStructureScore(v int) *ProfileEventCreate {
	_c.mutation.SetStructureScore(v)
	return _c
}

// Mutation returns the ProfileEventMutation object of the builder.
func (_c *ProfileEventCreate) Mutation() *ProfileEventMutation {
	return _c.mutation
}

// Save creates the ProfileEvent in the database.
func (_c *ProfileEventCreate) Save(ctx context.Context) (*ProfileEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProfileEventCreate) SaveX(ctx context.Context) *ProfileEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProfileEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := profileevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProfileEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ProfileEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ProfileEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ProfileEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := profileevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Archetype(); !ok {
		return &ValidationError{Name: "archetype", err: errors.New(`ent: missing required field "ProfileEvent.archetype"`)}
	}
	if v, ok := _c.mutation.Archetype(); ok {
		if err := profileevent.ArchetypeValidator(v); err != nil {
			return &ValidationError{Name: "archetype", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.archetype": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SituationalOverride(); !ok {
		return &ValidationError{Name: "situational_override", err: errors.New(`ent: missing required field "ProfileEvent.situational_override"`)}
	}
	if _, ok := _c.mutation.RiskAppetite(); !ok {
		return &ValidationError{Name: "risk_appetite", err: errors.New(`ent: missing required field "ProfileEvent.risk_appetite"`)}
	}
	if v, ok := _c.mutation.RiskAppetite(); ok {
		if err := profileevent.RiskAppetiteValidator(v); err != nil {
			return &ValidationError{Name: "risk_appetite", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.risk_appetite": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Structure(); !ok {
		return &ValidationError{Name: "structure", err: errors.New(`ent: missing required field "ProfileEvent.structure"`)}
	}
	if v, ok := _c.mutation.Structure(); ok {
		if err := profileevent.StructureValidator(v); err != nil {
			return &ValidationError{Name: "structure", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.structure": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EmotionalDriver(); !ok {
		return &ValidationError{Name: "emotional_driver", err: errors.New(`ent: missing required field "ProfileEvent.emotional_driver"`)}
	}
	if v, ok := _c.mutation.EmotionalDriver(); ok {
		if err := profileevent.EmotionalDriverValidator(v); err != nil {
			return &ValidationError{Name: "emotional_driver", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.emotional_driver": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NarrativeKey(); !ok {
		return &ValidationError{Name: "narrative_key", err: errors.New(`ent: missing required field "ProfileEvent.narrative_key"`)}
	}
	if v, ok := _c.mutation.NarrativeKey(); ok {
		if err := profileevent.NarrativeKeyValidator(v); err != nil {
			return &ValidationError{Name: "narrative_key", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.narrative_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CognitiveGap(); !ok {
		return &ValidationError{Name: "cognitive_gap", err: errors.New(`ent: missing required field "ProfileEvent.cognitive_gap"`)}
	}
	if v, ok := _c.mutation.CognitiveGap(); ok {
		if err := profileevent.CognitiveGapValidator(v); err != nil {
			return &ValidationError{Name: "cognitive_gap", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.cognitive_gap": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Fragility(); !ok {
		return &ValidationError{Name: "fragility", err: errors.New(`ent: missing required field "ProfileEvent.fragility"`)}
	}
	if v, ok := _c.mutation.Fragility(); ok {
		if err := profileevent.FragilityValidator(v); err != nil {
			return &ValidationError{Name: "fragility", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.fragility": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PivotKey(); !ok {
		return &ValidationError{Name: "pivot_key", err: errors.New(`ent: missing required field "ProfileEvent.pivot_key"`)}
	}
	if v, ok := _c.mutation.PivotKey(); ok {
		if err := profileevent.PivotKeyValidator(v); err != nil {
			return &ValidationError{Name: "pivot_key", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.pivot_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OriginKey(); !ok {
		return &ValidationError{Name: "origin_key", err: errors.New(`ent: missing required field "ProfileEvent.origin_key"`)}
	}
	if v, ok := _c.mutation.OriginKey(); ok {
		if err := profileevent.OriginKeyValidator(v); err != nil {
			return &ValidationError{Name: "origin_key", err: fmt.Errorf(`ent: validator failed for field "ProfileEvent.origin_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RiskScore(); !ok {
		return &ValidationError{Name: "risk_score", err: errors.New(`ent: missing required field "ProfileEvent.risk_score"`)}
	}
	if _, ok := _c.mutation.StructureScore(); !ok {
		return &ValidationError{Name: "structure_score", err: errors.New(`ent: missing required field "ProfileEvent.structure_score"`)}
	}
	return nil
}

func (_c *ProfileEventCreate) sqlSave(ctx context.Context) (*ProfileEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProfileEventCreate) createSpec() (*ProfileEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ProfileEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(profileevent.Table, sqlgraph.NewFieldSpec(profileevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(profileevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(profileevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(profileevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Archetype(); ok {
		_spec.SetField(profileevent.FieldArchetype, field.TypeString, value)
		_node.Archetype = value
	}
	if value, ok := _c.mutation.SituationalOverride(); ok {
		_spec.SetField(profileevent.FieldSituationalOverride, field.TypeString, value)
		_node.SituationalOverride = value
	}
	if value, ok := _c.mutation.RiskAppetite(); ok {
		_spec.SetField(profileevent.FieldRiskAppetite, field.TypeString, value)
		_node.RiskAppetite = value
	}
	if value, ok := _c.mutation.Structure(); ok {
		_spec.SetField(profileevent.FieldStructure, field.TypeString, value)
		_node.Structure = value
	}
	if value, ok := _c.mutation.EmotionalDriver(); ok {
		_spec.SetField(profileevent.FieldEmotionalDriver, field.TypeString, value)
		_node.EmotionalDriver = value
	}
	if value, ok := _c.mutation.NarrativeKey(); ok {
		_spec.SetField(profileevent.FieldNarrativeKey, field.TypeString, value)
		_node.NarrativeKey = value
	}
	if value, ok := _c.mutation.CognitiveGap(); ok {
		_spec.SetField(profileevent.FieldCognitiveGap, field.TypeString, value)
		_node.CognitiveGap = value
	}
	if value, ok := _c.mutation.Fragility(); ok {
		_spec.SetField(profileevent.FieldFragility, field.TypeString, value)
		_node.Fragility = value
	}
	if value, ok := _c.mutation.PivotKey(); ok {
		_spec.SetField(profileevent.FieldPivotKey, field.TypeString, value)
		_node.PivotKey = value
	}
	if value, ok := _c.mutation.OriginKey(); ok {
		_spec.SetField(profileevent.FieldOriginKey, field.TypeString, value)
		_node.OriginKey = value
	}
	if value, ok := _c.mutation.RiskScore(); ok {
		_spec.SetField(profileevent.FieldRiskScore, field.TypeInt, value)
		_node.RiskScore = value
	}
	if value, ok := _c.mutation.StructureScore(); ok {
		_spec.SetField(profileevent.FieldStructureScore, field.TypeInt, value)
		_node.StructureScore = value
	}
	return _node, _spec
}

// ProfileEventCreateBulk is the builder for creating many ProfileEvent entities in bulk.
type ProfileEventCreateBulk struct {
	config
	err      error
	builders []*ProfileEventCreate
}

// Save creates the ProfileEvent entities in the database.
func (_c *ProfileEventCreateBulk) Save(ctx context.Context) ([]*ProfileEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProfileEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProfileEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProfileEventCreateBulk) SaveX(ctx context.Context) []*ProfileEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
