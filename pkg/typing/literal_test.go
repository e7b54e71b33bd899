package typing

import (
	"math"
	"testing"
)

func TestLiteralFormat(t *testing.T) {
	tests := []struct {
		name  string
		lit   Literal
		delim string
		want  string
	}{
		{"integer", IntLiteral(1024), `"`, "1024"},
		{"negative integer", IntLiteral(-1024), `"`, "-1024"},
		{"zero", IntLiteral(0), `"`, "0"},
		{"max int64", IntLiteral(math.MaxInt64), `"`, "9223372036854775807"},
		{"min int64", IntLiteral(math.MinInt64), `"`, "-9223372036854775808"},
		{"beyond float precision", IntLiteral(1<<53 + 1), `"`, "9007199254740993"},
		{"float", FloatLiteral(7.65), `"`, "7.65"},
		{"negative float", FloatLiteral(-7.65), `"`, "-7.65"},
		{"float zero", FloatLiteral(0), `"`, "0"},
		{"negative float zero", FloatLiteral(math.Copysign(0, -1)), `"`, "-0"},
		{"string", StringLiteral("test"), `"`, `"test"`},
		{"single quotes", StringLiteral("test"), `'`, `'test'`},
		{"escaped delimiter", StringLiteral(`say "hi"`), `"`, `"say \"hi\""`},
		{"escaped backslash", StringLiteral(`a\b`), `'`, `'a\\b'`},
		{"escaped newline", StringLiteral("a\nb"), `"`, `"a\nb"`},
		{"escaped tab and return", StringLiteral("a\tb\r"), `"`, `"a\tb\r"`},
		{"escaped control character", StringLiteral("a\x01"), `"`, `"a\x01"`},
		{"unicode kept", StringLiteral("日本"), `"`, `"日本"`},
		{"template", TemplateLiteral("id_${number}"), `"`, "`id_${number}`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.lit.Format(tt.delim); got != tt.want {
				t.Errorf("Format(%q) = %s, want %s", tt.delim, got, tt.want)
			}
		})
	}
}

func TestLiteralEquality(t *testing.T) {
	tests := []struct {
		name string
		a, b Literal
		want bool
	}{
		{"integer and float", IntLiteral(1), FloatLiteral(1.0), true},
		{"signed zeros", FloatLiteral(0), FloatLiteral(math.Copysign(0, -1)), true},
		{"different values", IntLiteral(1), FloatLiteral(1.5), false},
		{"integers beyond float precision", IntLiteral(1<<53 + 1), IntLiteral(1 << 53), false},
		{"exact float integer", IntLiteral(1 << 53), FloatLiteral(1 << 53), true},
		{"float above int64 range", IntLiteral(math.MaxInt64), FloatLiteral(math.MaxInt64), false},
		{"string and template", StringLiteral("1"), TemplateLiteral("1"), false},
		{"string and number", StringLiteral("1"), IntLiteral(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("%s.Equal(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.a.Key() == tt.b.Key(); got != tt.want {
				t.Errorf("keys %q and %q: equal = %v, want %v", tt.a.Key(), tt.b.Key(), got, tt.want)
			}
		})
	}

	if got := FloatLiteral(1e300).Key(); got != "n:1e+300" {
		t.Errorf("FloatLiteral(1e300).Key() = %q", got)
	}

	set := map[string]Literal{}
	for _, l := range []Literal{IntLiteral(2), FloatLiteral(2), StringLiteral("2"), TemplateLiteral("2")} {
		set[l.Key()] = l
	}
	if len(set) != 3 {
		t.Errorf("distinct literals = %d, want 3", len(set))
	}
}
