package roster

import "errors"

// ErrDataUnreadable signals that a stored roster exists but could not be
// migrated into the current schema. The read path propagates it instead of
// returning an empty roster, so a real data problem is never disguised as
// "no upcoming birthdays".
var ErrDataUnreadable = errors.New("roster data unreadable")
