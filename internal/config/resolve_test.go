package config

import (
	"errors"
	"testing"
)

func env(vars map[string]string) LookupEnv {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestNew_NotEnoughArguments(t *testing.T) {
	for _, args := range [][]string{nil, {}, {"minigrep"}, {"", ""}, {"minigrep", "query"}} {
		_, err := New(args, env(nil))
		if !errors.Is(err, ErrNotEnoughArguments) {
			t.Fatalf("args %q: want ErrNotEnoughArguments, got %v", args, err)
		}
	}
}

func TestNew_CorrectConfig(t *testing.T) {
	cfg, err := New([]string{"", "plerps", "plerps.txt"}, env(nil))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := Config{Query: "plerps", Filename: "plerps.txt", CaseSensitive: true}
	if cfg != want {
		t.Fatalf("want %+v, got %+v", want, cfg)
	}
}

func TestNew_CaseInsensitiveEnv(t *testing.T) {
	cases := []struct {
		name string
		vars map[string]string
		want bool
	}{
		{"absent", map[string]string{"OTHER": "1"}, true},
		{"set", map[string]string{CaseInsensitiveEnv: "1"}, false},
		{"set empty", map[string]string{CaseInsensitiveEnv: ""}, false},
		{"set zero", map[string]string{CaseInsensitiveEnv: "0"}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg, err := New([]string{"minigrep", "q", "f.txt"}, env(c.vars))
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if cfg.CaseSensitive != c.want {
				t.Fatalf("want CaseSensitive=%v, got %v", c.want, cfg.CaseSensitive)
			}
		})
	}
}

func TestNew_ExtraArgumentsIgnored(t *testing.T) {
	cfg, err := New([]string{"minigrep", "q", "f.txt", "extra"}, env(nil))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Query != "q" || cfg.Filename != "f.txt" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestNew_EmptyQueryAllowed(t *testing.T) {
	cfg, err := New([]string{"minigrep", "", "f.txt"}, env(nil))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Query != "" {
		t.Fatalf("want empty query, got %q", cfg.Query)
	}
}
