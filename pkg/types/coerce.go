package types

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// unwrap lets a Value be assigned to another Value.
func unwrap(raw any) any {
	if v, ok := raw.(Value); ok {
		return v.Get()
	}
	return raw
}

func toInt64(raw any) (int64, bool) {
	switch v := raw.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return uintToInt64(uint64(v))
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return uintToInt64(v)
	case float32:
		return floatToInt64(float64(v))
	case float64:
		return floatToInt64(v)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return n, err == nil
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case decimal.Decimal:
		if !v.Truncate(0).BigInt().IsInt64() {
			return 0, false
		}
		return v.IntPart(), true
	case bson.Decimal128:
		d, ok := toDecimal(v)
		if !ok {
			return 0, false
		}
		return toInt64(d)
	}
	return 0, false
}

func uintToInt64(v uint64) (int64, bool) {
	if v > math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}

func floatToInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

func toFloat64(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float32:
		return finite(float64(v))
	case float64:
		return finite(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return finite(f)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return finite(f)
	case decimal.Decimal:
		f, _ := v.Float64()
		return finite(f)
	case bson.Decimal128:
		d, ok := toDecimal(v)
		if !ok {
			return 0, false
		}
		return toFloat64(d)
	}
	if n, ok := toInt64(raw); ok {
		return float64(n), true
	}
	return 0, false
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func toDecimal(raw any) (decimal.Decimal, bool) {
	switch v := raw.(type) {
	case decimal.Decimal:
		return v, true
	case *decimal.Decimal:
		if v == nil {
			return decimal.Decimal{}, false
		}
		return *v, true
	case float32, float64:
		f, ok := toFloat64(v)
		if !ok {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat(f), true
	case uint, uint64:
		return parseDecimal(fmt.Sprint(v))
	case string:
		return parseDecimal(v)
	case json.Number:
		return parseDecimal(v.String())
	case bson.Decimal128:
		return parseDecimal(v.String())
	}
	if n, ok := toInt64(raw); ok {
		return decimal.NewFromInt(n), true
	}
	return decimal.Decimal{}, false
}

func parseDecimal(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

func toTime(raw any) (time.Time, bool) {
	switch v := raw.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	case bson.DateTime:
		return v.Time(), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, false
		}
		t, err := dateparse.ParseAny(s)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	case float32, float64, decimal.Decimal, bson.Decimal128, json.Number:
		f, ok := toFloat64(v)
		if !ok {
			return time.Time{}, false
		}
		sec, frac := math.Modf(f)
		return time.Unix(int64(sec), int64(frac*float64(time.Second))), true
	}
	if n, ok := toInt64(raw); ok {
		return time.Unix(n, 0), true
	}
	return time.Time{}, false
}

func toObjectID(raw any) (bson.ObjectID, bool) {
	switch v := raw.(type) {
	case bson.ObjectID:
		return v, true
	case *bson.ObjectID:
		if v == nil {
			return bson.ObjectID{}, false
		}
		return *v, true
	case string:
		id, err := bson.ObjectIDFromHex(strings.TrimSpace(v))
		if err != nil {
			return bson.ObjectID{}, false
		}
		return id, true
	}
	return bson.ObjectID{}, false
}

func toString(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case bson.ObjectID:
		return v.Hex()
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(raw)
}

// toSlice adopts any slice or array except []byte. Strings are not iterable.
func toSlice(raw any) ([]any, bool) {
	switch v := raw.(type) {
	case []any:
		return cloneSlice(v), true
	case bson.A:
		return cloneSlice(v), true
	case []byte:
		return nil, false
	case Collection:
		s, _ := v.Get().([]any)
		return s, s != nil
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range rv.Len() {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// isNil treats typed nil pointers, maps and slices as nil input.
func isNil(raw any) bool {
	if raw == nil {
		return true
	}
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
