package field

import (
	"testing"

	"github.com/jmgilman/ghrest/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color int

const (
	colorUnset color = iota
	colorRed
	colorBlue
)

var colors = NewEnumTable("color", map[color]string{
	colorRed:  "red",
	colorBlue: "BLUE",
})

func TestEnumTable_Parse(t *testing.T) {
	t.Parallel()

	v, err := colors.Parse("red")
	require.NoError(t, err)
	assert.Equal(t, colorRed, v)

	v, err = colors.Parse("BLUE")
	require.NoError(t, err)
	assert.Equal(t, colorBlue, v)

	_, err = colors.Parse("blue")
	require.Error(t, err, "matching is case-sensitive")
	assert.Equal(t, errors.CodeDecodeFailed, errors.GetCode(err))
}

func TestEnumTable_Wire(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "red", colors.Wire(colorRed))
	assert.Equal(t, "", colors.Wire(colorUnset))
	assert.Equal(t, "", colors.Wire(color(99)))
}

func TestEnumTable_Read(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		obj     Object
		want    color
		wantErr bool
	}{
		{name: "known", obj: Object{"c": "red"}, want: colorRed},
		{name: "absent", obj: Object{}, want: colorUnset},
		{name: "null", obj: Object{"c": nil}, want: colorUnset},
		{name: "unknown", obj: Object{"c": "green"}, wantErr: true},
		{name: "empty string", obj: Object{"c": ""}, wantErr: true},
		{name: "not a string", obj: Object{"c": true}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := colors.Read(tt.obj, "c")
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.CodeDecodeFailed, errors.GetCode(err))

				var platformErr errors.PlatformError
				require.True(t, errors.As(err, &platformErr))
				assert.Equal(t, "c", platformErr.Context()["field"])
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewEnumTable_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewEnumTable("dup", map[color]string{colorRed: "x", colorBlue: "x"})
	})
	assert.Panics(t, func() {
		NewEnumTable("zero", map[color]string{colorUnset: "x"})
	})
}
