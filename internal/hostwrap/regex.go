package hostwrap

import "regexp"

// Regex is the host-provided regular-expression object a Wrapped value's
// intrinsic construction and methods (matches/find/replace) delegate to.
type Regex struct {
	Pattern string
	re      *regexp.Regexp
}

// NewRegex compiles pattern through the host regexp engine. A compile
// failure is the caller's to translate into the source language's
// exception taxonomy (it is a source-level concern, not an internal
// error: a malformed pattern string is programmer input).
func NewRegex(pattern string) (*Regex, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Regex{Pattern: pattern, re: re}, nil
}

func (r *Regex) Matches(s string) bool { return r.re.MatchString(s) }

func (r *Regex) Find(s string) (string, bool) {
	m := r.re.FindString(s)
	return m, m != "" || r.re.MatchString(s)
}

func (r *Regex) Replace(s, repl string) string {
	return r.re.ReplaceAllString(s, repl)
}

func (r *Regex) String() string { return "/" + r.Pattern + "/" }
