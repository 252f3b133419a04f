package settings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_Int(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    int
		wantErr bool
	}{
		{name: "json integer", in: json.Number("42"), want: 42},
		{name: "json float truncates", in: json.Number("5.7"), want: 5},
		{name: "numeric string", in: "17", want: 17},
		{name: "padded numeric string", in: " 8 ", want: 8},
		{name: "negative string", in: "-3", want: -3},
		{name: "go int", in: 9, want: 9},
		{name: "go float", in: 2.9, want: 2},
		{name: "true", in: true, want: 1},
		{name: "false", in: false, want: 0},
		{name: "non-numeric string", in: "abc", wantErr: true},
		{name: "float string", in: "1.5", wantErr: true},
		{name: "list", in: []any{"1"}, wantErr: true},
		{name: "null", in: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := convert(tt.in, KindInt)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrConversion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvert_BoolTruthiness(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{name: "string false is true", in: "false", want: true},
		{name: "string 0 is true", in: "0", want: true},
		{name: "empty string", in: "", want: false},
		{name: "true", in: true, want: true},
		{name: "false", in: false, want: false},
		{name: "json zero", in: json.Number("0"), want: false},
		{name: "json zero float", in: json.Number("0.0"), want: false},
		{name: "json non-zero", in: json.Number("3"), want: true},
		{name: "go zero", in: 0, want: false},
		{name: "go non-zero", in: 2, want: true},
		{name: "empty list", in: []any{}, want: false},
		{name: "list", in: []any{"a"}, want: true},
		{name: "empty object", in: map[string]any{}, want: false},
		{name: "object", in: map[string]any{"a": 1}, want: true},
		{name: "empty string slice", in: []string{}, want: false},
		{name: "null", in: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := convert(tt.in, KindBool)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvert_StringList(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    []string
		wantErr bool
	}{
		{name: "comma separated", in: "a, b,c", want: []string{"a", "b", "c"}},
		{name: "single", in: "only", want: []string{"only"}},
		{name: "empty string", in: "", want: []string{""}},
		{name: "json list", in: []any{"x", "y"}, want: []string{"x", "y"}},
		{name: "mixed list", in: []any{"x", json.Number("2"), true, nil}, want: []string{"x", "2", "true", ""}},
		{name: "string slice", in: []string{"keep", " spaces "}, want: []string{"keep", " spaces "}},
		{name: "number", in: json.Number("1"), wantErr: true},
		{name: "object", in: map[string]any{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := convert(tt.in, KindStringList)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrConversion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvert_PassThroughAndNull(t *testing.T) {
	values := []any{"text", json.Number("1.5"), []any{"a"}, map[string]any{"k": "v"}, nil, true}

	for _, v := range values {
		for _, kind := range []Kind{KindRaw, KindFloat, KindDict} {
			got, err := convert(v, kind)
			require.NoError(t, err)
			assert.Equal(t, v, got, "kind %s", kind)
		}

		got, err := convert(v, KindNull)
		require.NoError(t, err)
		assert.Nil(t, got)
	}
}

func TestToFloat(t *testing.T) {
	f, err := toFloat(json.Number("2.5"))
	require.NoError(t, err)
	assert.InDelta(t, 2.5, f, 1e-9)

	f, err = toFloat(3)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, f, 1e-9)

	_, err = toFloat("2.5")
	assert.ErrorIs(t, err, ErrConversion)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "int", KindInt.String())
	assert.Equal(t, "list", KindStringList.String())
	assert.Equal(t, "kind(42)", Kind(42).String())
}
