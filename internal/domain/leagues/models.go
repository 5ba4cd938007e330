package leagues

// Well-known apifootball league IDs for the Romanian pyramid.
const (
	LigaI   = "272"
	LigaII  = "271"
	LigaIII = "270"
)

// Ref is a league ID with its display name.
type Ref struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Romanian lists the tracked leagues in display order.
var Romanian = []Ref{
	{ID: LigaI, Name: "Liga I"},
	{ID: LigaII, Name: "Liga II"},
	{ID: LigaIII, Name: "Liga III"},
}

// RomanianIDs returns the tracked league IDs in display order.
func RomanianIDs() []string {
	ids := make([]string, 0, len(Romanian))
	for _, l := range Romanian {
		ids = append(ids, l.ID)
	}
	return ids
}

// Lookup returns the tracked league with the given ID.
func Lookup(id string) (Ref, bool) {
	for _, l := range Romanian {
		if l.ID == id {
			return l, true
		}
	}
	return Ref{}, false
}
