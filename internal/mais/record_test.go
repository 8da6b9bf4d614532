package mais

import (
	"reflect"
	"testing"
)

func TestNormalizeOrcidID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare id", "0000-0002-7262-6251", "0000-0002-7262-6251"},
		{"production URI", "https://orcid.org/0000-0002-7262-6251", "0000-0002-7262-6251"},
		{"sandbox URI", "https://sandbox.orcid.org/0000-0002-7262-6251", "0000-0002-7262-6251"},
		{"checksum letter", "https://orcid.org/0000-0002-1825-009X", "0000-0002-1825-009X"},
		{"no scheme", "orcid.org/0000-0002-7262-6251", "0000-0002-7262-6251"},
		{"not an id", "not-an-id", ""},
		{"empty", "", ""},
		{"trailing junk", "0000-0002-7262-6251/profile", ""},
		{"too few groups", "0002-7262-6251", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeOrcidID(tt.input); got != tt.want {
				t.Errorf("NormalizeOrcidID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRecordCanUpdate(t *testing.T) {
	tests := []struct {
		name  string
		scope string
		want  bool
	}{
		{"update scope granted", "/read-limited /activities/update", true},
		{"comma delimited", "/read-limited,/activities/update", true},
		{"read only", "/read-limited", false},
		{"empty scope", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Record{SunetID: "alice", Scope: tt.scope}
			if got := rec.CanUpdate(); got != tt.want {
				t.Errorf("CanUpdate() with scope %q = %v, want %v", tt.scope, got, tt.want)
			}
		})
	}
}

func TestRecordScopes(t *testing.T) {
	tests := []struct {
		name  string
		scope string
		want  []string
	}{
		{"space delimited", "/read-limited /activities/update", []string{"/read-limited", "/activities/update"}},
		{"comma delimited", "/read-limited,/activities/update", []string{"/read-limited", "/activities/update"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Record{Scope: tt.scope}.Scopes()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Scopes() = %v, want %v", got, tt.want)
			}
		})
	}
}
