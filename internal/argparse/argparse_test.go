package argparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/nanofmt"
	"github.com/bjaus/nanofmt/internal/argparse"
)

func format(t *testing.T, template string, args nanofmt.Args) string {
	t.Helper()
	return string(nanofmt.Marshal(template, args...))
}

func TestParse(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input    string
		kind     nanofmt.Kind
		template string
		want     string
		wantErr  require.ErrorAssertionFunc
	}{
		"int":          {input: "i:-42", kind: nanofmt.KindInt64, template: "{}", want: "-42", wantErr: require.NoError},
		"int32":        {input: "i32:7", kind: nanofmt.KindInt32, template: "{}", want: "7", wantErr: require.NoError},
		"int32 range":  {input: "i32:4294967296", wantErr: require.Error},
		"uint":         {input: "u:18446744073709551615", kind: nanofmt.KindUint64, template: "{:x}", want: "ffffffffffffffff", wantErr: require.NoError},
		"uint32":       {input: "u32:4294967279", kind: nanofmt.KindUint32, template: "{:x}", want: "ffffffef", wantErr: require.NoError},
		"float":        {input: "f:1.5", kind: nanofmt.KindFloat64, template: "{}", want: "1.5", wantErr: require.NoError},
		"float32":      {input: "f32:3.4028235e38", kind: nanofmt.KindFloat32, template: "{:.3e}", want: "3.403e+38", wantErr: require.NoError},
		"char":         {input: "c: ", kind: nanofmt.KindChar, template: "{:d}", want: "32", wantErr: require.NoError},
		"char length":  {input: "c:ab", wantErr: require.Error},
		"bool":         {input: "b:true", kind: nanofmt.KindBool, template: "{}", want: "true", wantErr: require.NoError},
		"bad bool":     {input: "b:maybe", wantErr: require.Error},
		"string colon": {input: "s:a:b", kind: nanofmt.KindString, template: "{}", want: "a:b", wantErr: require.NoError},
		"cstring":      {input: "z:abc", kind: nanofmt.KindCString, template: "[{}]", want: "[abc]", wantErr: require.NoError},
		"pointer":      {input: "p:0xdead", kind: nanofmt.KindPointer, template: "{}", want: "0xdead", wantErr: require.NoError},
		"bad int":      {input: "i:ten", wantErr: require.Error},
		"bare int":     {input: "28", kind: nanofmt.KindInt64, template: "{:b}", want: "11100", wantErr: require.NoError},
		"bare uint":    {input: "18446744073709551615", kind: nanofmt.KindUint64, template: "{}", want: "18446744073709551615", wantErr: require.NoError},
		"bare float":   {input: "-12.99", kind: nanofmt.KindFloat64, template: "{:.2E}", want: "-1.30E+01", wantErr: require.NoError},
		"bare bool":    {input: "false", kind: nanofmt.KindBool, template: "{:d}", want: "0", wantErr: require.NoError},
		"bare string":  {input: "hello", kind: nanofmt.KindString, template: "{}", want: "hello", wantErr: require.NoError},
		"other prefix": {input: "key:value", kind: nanofmt.KindString, template: "{}", want: "key:value", wantErr: require.NoError},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			arg, err := argparse.Parse(tt.input)
			tt.wantErr(t, err)
			if err != nil {
				assert.ErrorIs(t, err, argparse.ErrInvalidLiteral)
				return
			}
			assert.Equal(t, tt.kind, arg.Kind())
			assert.Equal(t, tt.want, format(t, tt.template, nanofmt.MakeArgs(arg)))
		})
	}
}

func TestParseAll(t *testing.T) {
	t.Parallel()
	args, err := argparse.ParseAll([]string{"s:value", "42"})
	require.NoError(t, err)
	assert.Equal(t, 2, args.Len())
	assert.Equal(t, "value   00042", format(t, "{:<8}{:05}", args))

	_, err = argparse.ParseAll([]string{"1", "c:"})
	assert.ErrorIs(t, err, argparse.ErrInvalidLiteral)
	assert.ErrorContains(t, err, "argument 1")
}

func TestFromYAML(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input    string
		template string
		want     string
		wantErr  require.ErrorAssertionFunc
	}{
		"scalars": {
			input:    "[28, 1.5, true, text]",
			template: "{} {} {} {}",
			want:     "28 1.5 true text",
			wantErr:  require.NoError,
		},
		"literals": {
			input:    "- c:x\n- u32:7\n- 'f32:0.1'\n",
			template: "{} {} {}",
			want:     "x 7 0.1",
			wantErr:  require.NoError,
		},
		"json": {
			input:    `[1, "s:two", 3.25, false]`,
			template: "{3} {2} {1} {0}",
			want:     "false 3.25 two 1",
			wantErr:  require.NoError,
		},
		"not a list": {
			input:   "a: b",
			wantErr: require.Error,
		},
		"nested": {
			input:   "- [1, 2]",
			wantErr: require.Error,
		},
		"bad literal": {
			input:   "- i:x",
			wantErr: require.Error,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			args, err := argparse.FromYAML([]byte(tt.input))
			tt.wantErr(t, err)
			if err != nil {
				return
			}
			assert.Equal(t, tt.want, format(t, tt.template, args))
		})
	}
}
