package normalize

import (
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-studio/internal/types"
)

// newID generates opaque identifiers; replaced in tests.
var newID = uuid.NewString

// idSet assigns IDs within one list: existing IDs are kept, blanks and
// repeats of an earlier item's ID get a fresh one.
type idSet map[string]struct{}

func (s idSet) ensure(id string) string {
	id = strings.TrimSpace(id)
	if _, dup := s[id]; id == "" || dup {
		id = newID()
	}
	s[id] = struct{}{}
	return id
}

// BackfillIDs assigns identifiers to every experience, education, project and
// custom section item that lacks one. Existing IDs are kept, with one
// exception: when several items in a list share an ID, the first keeps it and
// each later one is given a fresh ID. Running it twice is a no-op.
func BackfillIDs(p *types.ResumeProfile) {
	seen := idSet{}
	for i := range p.Experience {
		p.Experience[i].ID = seen.ensure(p.Experience[i].ID)
	}
	seen = idSet{}
	for i := range p.Education {
		p.Education[i].ID = seen.ensure(p.Education[i].ID)
	}
	seen = idSet{}
	for i := range p.Projects {
		p.Projects[i].ID = seen.ensure(p.Projects[i].ID)
	}
	seen = idSet{}
	for i := range p.CustomSections {
		p.CustomSections[i].ID = seen.ensure(p.CustomSections[i].ID)
	}
}

// BackfillFieldIDs applies the same rule to form fields.
func BackfillFieldIDs(fields []types.FormField) {
	seen := idSet{}
	for i := range fields {
		fields[i].ID = seen.ensure(fields[i].ID)
	}
}
