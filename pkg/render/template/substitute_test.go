package template

import "testing"

func TestSubstitute(t *testing.T) {
	cases := []struct {
		name string
		tpl  string
		ctx  Context
		want string
	}{
		{
			name: "plain token",
			tpl:  "<((tag))>",
			ctx:  Context{"tag": "li"},
			want: "<li>",
		},
		{
			name: "whitespace inside parentheses",
			tpl:  "((  name ))=(( value))",
			ctx:  Context{"name": "age", "value": 12},
			want: "age=12",
		},
		{
			name: "missing key renders empty",
			tpl:  "[((missing))]",
			ctx:  Context{},
			want: "[]",
		},
		{
			name: "nil value renders empty",
			tpl:  "[((value))]",
			ctx:  Context{"value": nil},
			want: "[]",
		},
		{
			name: "repeated tokens",
			tpl:  `id="id_((name))" name="((name))"`,
			ctx:  Context{"name": "email"},
			want: `id="id_email" name="email"`,
		},
		{
			name: "values are not escaped",
			tpl:  "((label))",
			ctx:  Context{"label": "<b>Bold</b>"},
			want: "<b>Bold</b>",
		},
		{
			name: "single parentheses are left alone",
			tpl:  "(name) ((name)",
			ctx:  Context{"name": "x"},
			want: "(name) ((name)",
		},
		{
			name: "substituted values are not re-expanded",
			tpl:  "((a))",
			ctx:  Context{"a": "((b))", "b": "nope"},
			want: "((b))",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Substitute(tc.tpl, tc.ctx); got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestSubstituteNilContext(t *testing.T) {
	if got := Substitute("a((b))c", nil); got != "ac" {
		t.Fatalf("want %q, got %q", "ac", got)
	}
}
