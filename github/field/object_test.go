package field

import (
	"encoding/json"
	"testing"

	"github.com/jmgilman/ghrest/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "object", raw: `{"a":1}`},
		{name: "array", raw: `[1,2]`},
		{name: "trailing whitespace", raw: "{}\n  "},
		{name: "truncated", raw: `{"a":`, wantErr: true},
		{name: "empty", raw: ``, wantErr: true},
		{name: "trailing garbage", raw: `{} {}`, wantErr: true},
		{name: "not json", raw: `<html>`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.CodeDecodeFailed, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParse_PreservesLargeIntegers(t *testing.T) {
	t.Parallel()

	obj, err := ParseObject([]byte(`{"id": 9007199254740993}`))
	require.NoError(t, err)
	assert.Equal(t, int64(9007199254740993), obj.Int64("id", 0))
}

func TestParseObject_WrongShape(t *testing.T) {
	t.Parallel()

	_, err := ParseObject([]byte(`[1]`))
	require.Error(t, err)
	assert.Equal(t, errors.CodeDecodeFailed, errors.GetCode(err))

	_, err = ParseArray([]byte(`{}`))
	require.Error(t, err)
	assert.Equal(t, errors.CodeDecodeFailed, errors.GetCode(err))
}

func TestObject_MissingKeysUseDefaults(t *testing.T) {
	t.Parallel()

	var obj Object

	assert.Nil(t, obj.String("name"))
	assert.Equal(t, "", obj.StringValue("name"))
	assert.Equal(t, 7, obj.Int("count", 7))
	assert.Equal(t, int64(-1), obj.Int64("id", -1))
	assert.Equal(t, 1.5, obj.Float64("ratio", 1.5))
	assert.False(t, obj.Bool("fork"))
	assert.Nil(t, obj.Object("owner"))
	assert.Equal(t, []any{}, obj.Array("topics", []any{}))
	assert.Nil(t, obj.Strings("topics"))
	assert.False(t, obj.Timestamp("created_at").IsSet())
	assert.False(t, obj.Has("name"))
}

func TestObject_NullValues(t *testing.T) {
	t.Parallel()

	obj, err := ParseObject([]byte(`{"description": null, "license": null, "size": null, "topics": null}`))
	require.NoError(t, err)

	assert.True(t, obj.Has("description"))
	assert.True(t, obj.IsNull("description"))
	assert.Nil(t, obj.String("description"))
	assert.Nil(t, obj.Object("license"))
	assert.Equal(t, 0, obj.Int("size", 0))
	assert.Nil(t, obj.Array("topics", nil))
}

func TestObject_TypedReads(t *testing.T) {
	t.Parallel()

	obj, err := ParseObject([]byte(`{
		"name": "octo-repo",
		"empty": "",
		"size": 108,
		"float_int": 12.0,
		"ratio": 0.25,
		"fork": true,
		"owner": {"login": "octocat"},
		"topics": ["go", 3, "api"],
		"pushed_at": "2011-01-26T19:06:43Z"
	}`))
	require.NoError(t, err)

	require.NotNil(t, obj.String("name"))
	assert.Equal(t, "octo-repo", *obj.String("name"))
	require.NotNil(t, obj.String("empty"), "empty string is present, not absent")
	assert.Equal(t, "", *obj.String("empty"))
	assert.Equal(t, 108, obj.Int("size", 0))
	assert.Equal(t, 12, obj.Int("float_int", 0))
	assert.Equal(t, 0, obj.Int("ratio", 0), "fractional values are not integers")
	assert.Equal(t, 0.25, obj.Float64("ratio", 0))
	assert.True(t, obj.Bool("fork"))
	assert.Equal(t, "octocat", obj.Object("owner").StringValue("login"))
	assert.Equal(t, []string{"go", "api"}, obj.Strings("topics"))
	assert.Equal(t, "2011-01-26T19:06:43Z", obj.Timestamp("pushed_at").Raw())
}

func TestObject_WrongTypesUseDefaults(t *testing.T) {
	t.Parallel()

	obj := Object{"name": 12, "size": "12", "fork": "true", "owner": "octocat", "topics": "go"}

	assert.Nil(t, obj.String("name"))
	assert.Equal(t, -1, obj.Int("size", -1))
	assert.False(t, obj.Bool("fork"))
	assert.Nil(t, obj.Object("owner"))
	assert.Equal(t, []any{}, obj.Array("topics", []any{}))
}

func TestObject_ProgrammaticValues(t *testing.T) {
	t.Parallel()

	obj := Object{
		"id":    int64(42),
		"count": 3,
		"num":   json.Number("5"),
		"child": Object{"name": "x"},
	}

	assert.Equal(t, int64(42), obj.Int64("id", 0))
	assert.Equal(t, 3, obj.Int("count", 0))
	assert.Equal(t, 5, obj.Int("num", 0))
	assert.Equal(t, "x", obj.Object("child").StringValue("name"))
}

func TestObjects(t *testing.T) {
	t.Parallel()

	items, err := ParseArray([]byte(`[{"n":"a"},{"n":"b"},{"n":"c"}]`))
	require.NoError(t, err)

	names, err := Objects(items, func(o Object) (string, error) {
		return o.StringValue("n"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestObjects_NonObjectElement(t *testing.T) {
	t.Parallel()

	_, err := Objects([]any{map[string]any{}, "nope"}, func(o Object) (Object, error) {
		return o, nil
	})
	require.Error(t, err)
	assert.Equal(t, errors.CodeDecodeFailed, errors.GetCode(err))

	var platformErr errors.PlatformError
	require.True(t, errors.As(err, &platformErr))
	assert.Equal(t, 1, platformErr.Context()["index"])
}
