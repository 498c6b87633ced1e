package document

import (
	"reflect"
	"slices"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/docmodel/pkg/types"
)

// BSON returns every key under its alias in definition order. Unknown input
// keys are not part of it.
func (d *Document) BSON() bson.D {
	out := make(bson.D, 0, d.model.schema.Len())
	for _, key := range d.model.schema.Keys() {
		v, _ := d.attrs.Read(key.Name())
		out = append(out, bson.E{Key: key.Alias(), Value: toBSON(v)})
	}
	return out
}

// Update returns the update document that brings the stored copy to the
// current state, or nil when there is nothing to write.
//
// New keys are $set whole. A key supplied under its name instead of its
// alias is $unset under the name. Numerics changed only by increments use
// $inc and collections changed element-wise use $push or $addToSet and
// $pullAll; every other change is a $set. Unknown input keys are $unset.
func (d *Document) Update() bson.D {
	var set, unset, inc, push, addToSet, pullAll bson.D

	newKeys := make(map[string]bool)
	for _, name := range d.attrs.NewKeys() {
		newKeys[name] = true
	}

	for _, key := range d.model.schema.Keys() {
		name, alias := key.Name(), key.Alias()
		if key.Aliased() && d.attrs.SuppliedByName(name) {
			unset = append(unset, bson.E{Key: name, Value: ""})
		}
		if !newKeys[name] && !d.attrs.IsChanged(name) {
			continue
		}

		value, _ := d.attrs.Value(name)
		current := value.Get()
		if newKeys[name] {
			set = append(set, bson.E{Key: alias, Value: toBSON(current)})
			continue
		}

		switch v := value.(type) {
		case types.Collection:
			added, removed := v.Added(), v.Removed()
			if v.ChangedBy() != types.ChangedByModifier || len(added)+len(removed) == 0 || (len(added) > 0 && len(removed) > 0) {
				// a single update cannot push and pull the same field
				set = append(set, bson.E{Key: alias, Value: toBSON(current)})
				continue
			}
			if v.Kind() == types.KindArray && !replayable(v.InitialValue(), added, removed, current) {
				set = append(set, bson.E{Key: alias, Value: toBSON(current)})
				continue
			}
			if len(added) > 0 {
				each := bson.D{{Key: "$each", Value: toBSON(added)}}
				if v.Kind() == types.KindSet {
					addToSet = append(addToSet, bson.E{Key: alias, Value: each})
				} else {
					push = append(push, bson.E{Key: alias, Value: each})
				}
			}
			if len(removed) > 0 {
				pullAll = append(pullAll, bson.E{Key: alias, Value: toBSON(removed)})
			}
		case types.Numeric:
			before, _ := d.attrs.ChangeSet().Before(name)
			if delta := v.IncrementedBy(); incrementOnly(before, delta, current) {
				inc = append(inc, bson.E{Key: alias, Value: toBSON(delta)})
				continue
			}
			set = append(set, bson.E{Key: alias, Value: toBSON(current)})
		default:
			set = append(set, bson.E{Key: alias, Value: toBSON(current)})
		}
	}

	for _, id := range d.attrs.RemovedKeys() {
		unset = append(unset, bson.E{Key: id, Value: ""})
	}

	var update bson.D
	for _, op := range []bson.E{
		{Key: "$set", Value: set},
		{Key: "$unset", Value: unset},
		{Key: "$inc", Value: inc},
		{Key: "$push", Value: push},
		{Key: "$addToSet", Value: addToSet},
		{Key: "$pullAll", Value: pullAll},
	} {
		if fields := op.Value.(bson.D); len(fields) > 0 {
			update = append(update, op)
		}
	}
	return update
}

// replayable reports whether $pullAll of removed and then $push of added
// turn the stored array into current, order included.
func replayable(initial, added, removed []any, current any) bool {
	values, ok := current.([]any)
	if !ok {
		return false
	}
	expected := slices.Clone(initial)
	for _, r := range removed {
		expected = slices.DeleteFunc(expected, func(e any) bool { return reflect.DeepEqual(e, r) })
	}
	expected = append(expected, added...)
	return slices.EqualFunc(expected, values, reflect.DeepEqual)
}

// incrementOnly reports whether current is before plus a non-zero delta.
// A nil before is never incremented: $inc fails on a null field.
func incrementOnly(before, delta, current any) bool {
	if before == nil {
		return false
	}
	switch d := delta.(type) {
	case int64:
		b, _ := before.(int64)
		c, ok := current.(int64)
		return d != 0 && ok && b+d == c
	case float64:
		b, _ := before.(float64)
		c, ok := current.(float64)
		return d != 0 && ok && b+d == c
	case decimal.Decimal:
		b, _ := before.(decimal.Decimal)
		c, ok := current.(decimal.Decimal)
		return !d.IsZero() && ok && b.Add(d).Equal(c)
	}
	return false
}

// toBSON converts attribute values to types the driver encodes natively.
func toBSON(v any) any {
	switch x := v.(type) {
	case decimal.Decimal:
		d, err := bson.ParseDecimal128(x.String())
		if err != nil {
			return x.String()
		}
		return d
	case []any:
		out := make(bson.A, len(x))
		for i, item := range x {
			out[i] = toBSON(item)
		}
		return out
	}
	return v
}
