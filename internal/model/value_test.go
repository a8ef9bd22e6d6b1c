package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestAnswerValueUnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want AnswerValue
	}{
		{"string", `"hello"`, StringValue("hello")},
		{"integer", `4`, NumberValue(4)},
		{"float", `4.5`, NumberValue(4.5)},
		{"list", `["a","b"]`, ListValue("a", "b")},
		{"empty list", `[]`, ListValue()},
		{"null", `null`, AnswerValue{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var v AnswerValue
			require.NoError(t, json.Unmarshal([]byte(tc.in), &v))
			assert.Equal(t, tc.want, v)
		})
	}
}

func TestAnswerValueUnmarshalJSONRejectsBadShapes(t *testing.T) {
	for _, in := range []string{`true`, `{"a":1}`, `[1,2]`} {
		var v AnswerValue
		assert.Error(t, json.Unmarshal([]byte(in), &v), "input %s", in)
	}
}

func TestAnswerValueMarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   AnswerValue
		want string
	}{
		{"string", StringValue("hello"), `"hello"`},
		{"number", NumberValue(4), `4`},
		{"list", ListValue("a", "b"), `["a","b"]`},
		{"nil list stays a list", AnswerValue{Kind: KindStringList}, `[]`},
		{"unset", AnswerValue{}, `null`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := json.Marshal(tc.in)
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, string(out))
		})
	}
}

func TestAnswerValueJSONRoundTrip(t *testing.T) {
	entry := AnswerEntry{Answer: ListValue("x", "y")}
	out, err := json.Marshal(entry)
	require.NoError(t, err)

	var decoded AnswerEntry
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, entry.Answer, decoded.Answer)
}

func TestAnswerValueBSONRoundTrip(t *testing.T) {
	in := Answer{
		Answers: []AnswerEntry{
			{Answer: StringValue("hello")},
			{Answer: NumberValue(4)},
			{Answer: ListValue("a", "b")},
			{Answer: AnswerValue{}},
		},
	}
	raw, err := bson.Marshal(in)
	require.NoError(t, err)

	var out Answer
	require.NoError(t, bson.Unmarshal(raw, &out))
	require.Len(t, out.Answers, 4)
	for i := range in.Answers {
		assert.Equal(t, in.Answers[i].Answer, out.Answers[i].Answer)
	}
}

func TestMatchesQuestionType(t *testing.T) {
	assert.True(t, NumberValue(3).MatchesQuestionType(QuestionRating))
	assert.False(t, StringValue("3").MatchesQuestionType(QuestionRating))

	assert.True(t, ListValue("a").MatchesQuestionType(QuestionCheckbox))
	assert.False(t, StringValue("a").MatchesQuestionType(QuestionCheckbox))

	for _, qt := range []QuestionType{QuestionShortText, QuestionLongText, QuestionMultipleChoice, QuestionDropdown, QuestionDate} {
		assert.True(t, StringValue("a").MatchesQuestionType(qt), "type %s", qt)
		assert.False(t, NumberValue(1).MatchesQuestionType(qt), "type %s", qt)
		assert.False(t, ListValue("a").MatchesQuestionType(qt), "type %s", qt)
	}
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, NumberValue(0).IsNumeric())
	assert.False(t, StringValue("0").IsNumeric())
	assert.False(t, AnswerValue{}.IsNumeric())
}

func TestQuestionTypeValid(t *testing.T) {
	for _, qt := range []QuestionType{QuestionShortText, QuestionLongText, QuestionMultipleChoice, QuestionCheckbox, QuestionDropdown, QuestionRating, QuestionDate} {
		assert.True(t, qt.Valid(), "type %s", qt)
	}
	assert.False(t, QuestionType("essay").Valid())
	assert.False(t, QuestionType("").Valid())
}
