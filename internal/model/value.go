package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValueKind tags the runtime shape of a submitted answer value.
type ValueKind int

const (
	KindUnset ValueKind = iota
	KindString
	KindNumber
	KindStringList
)

// AnswerValue is the variant value of one answer entry: a string, a number or
// a list of strings, depending on the question type. On the wire and in the
// store it stays the plain variant, so documents written by earlier versions
// of the system decode unchanged.
type AnswerValue struct {
	Kind ValueKind
	Str  string
	Num  float64
	List []string
}

func StringValue(s string) AnswerValue {
	return AnswerValue{Kind: KindString, Str: s}
}

func NumberValue(n float64) AnswerValue {
	return AnswerValue{Kind: KindNumber, Num: n}
}

func ListValue(items ...string) AnswerValue {
	return AnswerValue{Kind: KindStringList, List: items}
}

// IsNumeric reports whether the value participates in rating arithmetic.
func (v AnswerValue) IsNumeric() bool {
	return v.Kind == KindNumber
}

// MatchesQuestionType reports whether the value has the shape the question's
// declared type calls for.
func (v AnswerValue) MatchesQuestionType(t QuestionType) bool {
	switch t {
	case QuestionRating:
		return v.Kind == KindNumber
	case QuestionCheckbox:
		return v.Kind == KindStringList
	default:
		return v.Kind == KindString
	}
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindString:
		return json.Marshal(v.Str)
	case KindNumber:
		return json.Marshal(v.Num)
	case KindStringList:
		if v.List == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.List)
	default:
		return []byte("null"), nil
	}
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*v = AnswerValue{}
		return nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*v = StringValue(s)
		return nil
	case '[':
		var list []string
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return fmt.Errorf("answer value: array must contain only strings: %w", err)
		}
		*v = ListValue(list...)
		return nil
	default:
		var n float64
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return fmt.Errorf("answer value: unsupported type")
		}
		*v = NumberValue(n)
		return nil
	}
}

func (v AnswerValue) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch v.Kind {
	case KindString:
		return bson.MarshalValue(v.Str)
	case KindNumber:
		return bson.MarshalValue(v.Num)
	case KindStringList:
		if v.List == nil {
			return bson.MarshalValue([]string{})
		}
		return bson.MarshalValue(v.List)
	default:
		return bson.MarshalValue(primitive.Null{})
	}
}

func (v *AnswerValue) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.String:
		*v = StringValue(raw.StringValue())
	case bsontype.Double:
		*v = NumberValue(raw.Double())
	case bsontype.Int32:
		*v = NumberValue(float64(raw.Int32()))
	case bsontype.Int64:
		*v = NumberValue(float64(raw.Int64()))
	case bsontype.Array:
		var list []string
		if err := raw.Unmarshal(&list); err != nil {
			return fmt.Errorf("answer value: %w", err)
		}
		*v = ListValue(list...)
	case bsontype.Null, bsontype.Undefined:
		*v = AnswerValue{}
	default:
		return fmt.Errorf("answer value: unsupported BSON type %s", t)
	}
	return nil
}
