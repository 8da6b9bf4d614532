package mais

import (
	"regexp"
	"strings"
)

// UpdateScope is the delegated scope required to write activities to a
// user's ORCID record.
const UpdateScope = "/activities/update"

// Record describes one person's ORCID linkage state as reported by
// MaIS. A user without OrcidID exists in the system but has not linked
// an ORCID iD yet.
type Record struct {
	SunetID     string `json:"sunet_id"`
	OrcidID     string `json:"orcid_id,omitempty"`
	Scope       string `json:"scope,omitempty"`
	AccessToken string `json:"access_token,omitempty"`
	LastUpdated string `json:"last_updated,omitempty"`
}

// CanUpdate reports whether the scopes the user granted allow writing
// activities to their ORCID record on their behalf.
func (r Record) CanUpdate() bool {
	return strings.Contains(r.Scope, UpdateScope)
}

// Scopes splits the raw scope string, which MaIS delivers either
// space- or comma-delimited.
func (r Record) Scopes() []string {
	return strings.FieldsFunc(r.Scope, func(c rune) bool {
		return c == ' ' || c == ','
	})
}

// orcidIDPattern matches a bare ORCID iD anchored at the end of the
// input: four dash-separated groups, the final character a digit or the
// checksum letter X.
var orcidIDPattern = regexp.MustCompile(`\d{4}-\d{4}-\d{4}-\d{3}[0-9X]$`)

// NormalizeOrcidID reduces an ORCID iD in any of its common forms
// (bare, or prefixed with a URI such as https://orcid.org/) to the
// bare dashed identifier. Returns "" when the input carries no
// identifier.
func NormalizeOrcidID(id string) string {
	return orcidIDPattern.FindString(id)
}
