package dagio

import "errors"

// ErrMalformed is returned when the input does not start with the
// expected <n> <m> header followed by m edge lines; anything after the
// m-th edge line is not read. Per this module's
// error policy, a malformed-input failure is raised here, at the file
// collaborator boundary, and never reaches the enumeration core.
var ErrMalformed = errors.New("dagio: malformed input")
