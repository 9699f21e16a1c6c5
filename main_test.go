package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mickamy/keywordwrap/dialect"
)

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{
			name: "mysql default",
			args: []string{"order", "*"},
			want: "`order`\n*\n",
		},
		{
			name: "oracle reserved only",
			args: []string{"-dialect", "oracle", "level", "user_id"},
			want: "\"level\"\nuser_id\n",
		},
		{
			name: "inferred table name",
			args: []string{"-dialect", "sqlserver", "-type", "UserProfile", "id"},
			want: "[user_profiles]\n[id]\n",
		},
		{
			name: "qualified",
			args: []string{"-dialect", "postgres", "-qualified", "public.order", "u.*"},
			want: "\"public\".\"order\"\n\"u\".*\n",
		},
		{
			name:  "stdin",
			args:  []string{"-dialect", "db2", "-"},
			stdin: "order\ngroup\n",
			want:  "order\ngroup\n",
		},
		{
			name: "version",
			args: []string{"-version"},
			want: "keywordwrap dev\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			if err := run(tt.args, strings.NewReader(tt.stdin), &out); err != nil {
				t.Fatalf("run: %v", err)
			}
			if got := out.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunReserved(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := run([]string{"-dialect", "oracle", "-reserved"}, strings.NewReader(""), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(dialect.Oracle.Style().Reserved()) {
		t.Errorf("got %d reserved words, want %d", len(lines), len(dialect.Oracle.Style().Reserved()))
	}
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := run([]string{"-dialect", "informix", "x"}, strings.NewReader(""), &out); !errors.Is(err, dialect.ErrUnknownDialect) {
		t.Errorf("unknown dialect error = %v", err)
	}
	if err := run(nil, strings.NewReader(""), &out); !errors.Is(err, errNoInput) {
		t.Errorf("empty input error = %v", err)
	}
}
