package token

import "testing"

func TestQuoted(t *testing.T) {
	for _, s := range []string{
		``,
		`"`,
		`\`,
		"\t\n\v\r\b",
		"∞∞",
		`"""\\''`,
		"line one\nline \"two\"\n",
	} {
		q := Quote(s)
		uq, err := Unquote(q)
		if err != nil {
			t.Errorf("error unquoting %q (from %q): %v", q, s, err)
			continue
		}
		if uq != s {
			t.Errorf("unquote(quote(%q)) = %q", s, uq)
		}
	}
}

func TestQuoteKeepsNewlines(t *testing.T) {
	if got, want := Quote("a\nb\\"), "\"a\nb\\\\\""; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestQuotedToString(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{`"abc"`, `abc`},
		{`"\"'"`, `"'`},
		{`"\t"`, "\t"},
		{`"\/\q"`, "/q"},
		{`"∞"`, "∞"},
		{`"😀"`, "😀"},
		{`"\ud83d"`, "�"},
		{`"\\n"`, `\n`},
	}
	for _, tt := range tests {
		got, err := Unquote(tt.in)
		if err != nil {
			t.Errorf("%s: %v", tt.in, err)
			continue
		}
		if got != tt.out {
			t.Errorf("%s: got %q want %q", tt.in, got, tt.out)
		}
	}
}
