// AngelaMos | 2026
// entity.go

package teacher

// Teacher is the public booking profile. It shares its id with the paired
// login record in the users collection; name and email changes here must be
// pushed onto that record as well. The two writes are not transactional.
type Teacher struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Department string   `json:"department"`
	Subjects   []string `json:"subjects"`
	Bio        string   `json:"bio"`
	Slots      []string `json:"slots"`
}

func (t Teacher) EntityID() string {
	return t.ID
}
