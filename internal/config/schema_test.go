package config

import (
	"strings"
	"testing"
)

func TestValidateAgainstSchema_Valid(t *testing.T) {
	for _, s := range []Settings{
		{},
		{Verbose: true},
		{LogFile: "/var/log/minigrep.log"},
	} {
		if err := ValidateAgainstSchema(s); err != nil {
			t.Fatalf("%+v: expected valid schema, got error: %v", s, err)
		}
	}
}

func TestValidateAgainstSchema_LogFileDirectory(t *testing.T) {
	err := ValidateAgainstSchema(Settings{LogFile: "/var/log/"})
	if err == nil {
		t.Fatalf("expected schema error for directory log_file")
	}
	if !strings.Contains(err.Error(), "log_file") {
		t.Fatalf("error should name log_file, got: %v", err)
	}
}
