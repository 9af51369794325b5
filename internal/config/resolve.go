package config

import "errors"

// CaseInsensitiveEnv switches search to case-insensitive mode when present, whatever its value.
const CaseInsensitiveEnv = "CASE_INSENSITIVE"

var ErrNotEnoughArguments = errors.New("not enough arguments")

// LookupEnv has the shape of os.LookupEnv.
type LookupEnv func(key string) (string, bool)

// New builds a Config from a process argument list where args[0] is the program name,
// args[1] the query and args[2] the filename. Further arguments are ignored.
func New(args []string, lookup LookupEnv) (Config, error) {
	if len(args) < 3 {
		return Config{}, ErrNotEnoughArguments
	}
	caseSensitive := true
	if lookup != nil {
		_, set := lookup(CaseInsensitiveEnv)
		caseSensitive = !set
	}
	return Config{
		Query:         args[1],
		Filename:      args[2],
		CaseSensitive: caseSensitive,
	}, nil
}
