package entities

// GamePatch carries the mutable fields of a partial update. A nil field is
// unset and leaves the stored value untouched.
type GamePatch struct {
	Version     *float64 `json:"version,omitempty"`
	Description *string  `json:"description,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Developer   *string  `json:"developer,omitempty"`
	Genre       *string  `json:"genre,omitempty"`
	Adult       *bool    `json:"adult,omitempty"`
}

// IsEmpty reports whether no field is set
func (p GamePatch) IsEmpty() bool {
	return p.Version == nil && p.Description == nil && p.Rating == nil &&
		p.Developer == nil && p.Genre == nil && p.Adult == nil
}

// ApplyTo merges the patch over base and returns the result as a new game.
// ID, Title and OwnerID always come from base.
func (p GamePatch) ApplyTo(base *Game) *Game {
	merged := base.Clone()

	if p.Version != nil {
		merged.Version = *p.Version
	}
	if p.Description != nil {
		merged.Description = *p.Description
	}
	if p.Rating != nil {
		merged.Rating = *p.Rating
	}
	if p.Developer != nil {
		merged.Developer = *p.Developer
	}
	if p.Genre != nil {
		merged.Genre = *p.Genre
	}
	if p.Adult != nil {
		merged.Adult = *p.Adult
	}

	return merged
}

// SetFields lists the names of the fields the patch sets
func (p GamePatch) SetFields() []string {
	var fields []string
	if p.Version != nil {
		fields = append(fields, "version")
	}
	if p.Description != nil {
		fields = append(fields, "description")
	}
	if p.Rating != nil {
		fields = append(fields, "rating")
	}
	if p.Developer != nil {
		fields = append(fields, "developer")
	}
	if p.Genre != nil {
		fields = append(fields, "genre")
	}
	if p.Adult != nil {
		fields = append(fields, "adult")
	}
	return fields
}
