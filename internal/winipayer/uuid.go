package winipayer

import "regexp"

var uuidV4Regex = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// IsUUIDv4 checks the 36 character grouped hex form with version nibble 4 and
// variant nibble in {8,9,a,b}. Upper case hex is accepted.
func IsUUIDv4(s string) bool {
	return uuidV4Regex.MatchString(s)
}
