package termquery

import (
	"regexp"
	"strconv"
)

// AttrSixel is the primary device attribute advertising sixel graphics.
const AttrSixel = 4

var number = regexp.MustCompile(`\d+`)

// HasSixel reports whether the terminal advertises sixel graphics in
// its primary device attributes. Replies are not uniformly structured
// across emulators (the leading "generation" field in particular), so
// every integer in the raw reply is considered regardless of position.
// A terminal that ignores the query, or replies with nothing
// parseable, is reported as unsupported rather than as an error.
func (q *Querier) HasSixel() bool {
	raw, err := q.exchange(DeviceAttributes)
	if err != nil {
		return false
	}
	for _, m := range number.FindAllString(raw, -1) {
		if n, err := strconv.Atoi(m); err == nil && n == AttrSixel {
			return true
		}
	}
	return false
}
