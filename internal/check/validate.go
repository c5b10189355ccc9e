package check

import "regexp"

// Every identifier flows toward a subprocess invocation, so validation here is
// the single injection choke-point; no other component re-validates.
var (
	namePattern     = regexp.MustCompile(`^[A-Za-z0-9._+-]+$`)
	imageRefPattern = regexp.MustCompile(`^[A-Za-z0-9._+\-/:@]+$`)
)

// ValidName reports whether name is a safe package or module identifier:
// letters, digits, '.', '_', '+', '-' only. Empty strings, whitespace, shell
// metacharacters and control characters are all rejected.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// ValidImageRef reports whether ref is a safe container image reference. Image
// references additionally allow '/', ':' and '@' for registries, tags and
// digests.
func ValidImageRef(ref string) bool {
	return imageRefPattern.MatchString(ref)
}
