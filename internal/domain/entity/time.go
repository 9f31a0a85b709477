package entity

import "time"

// TimeUnset is the resolved event time for feed items that carry no timestamp
// at all. Such items sort after everything else instead of failing.
var TimeUnset = time.Unix(0, 0).UTC()
