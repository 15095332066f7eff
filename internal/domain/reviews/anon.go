package reviews

import (
	"fmt"

	hashids "github.com/speps/go-hashids/v2"
)

// Anonymizer derives a stable, unlinkable display handle for a reviewer on a
// given doctor's page. The same student gets the same handle on one doctor
// (edits stay attributable to "the same anonymous author") but a different
// handle on every other doctor, so handles cannot be joined across pages.
type Anonymizer struct {
	h *hashids.HashID
}

func NewAnonymizer(salt string) (*Anonymizer, error) {
	data := hashids.NewData()
	data.Salt = salt
	data.MinLength = 8

	h, err := hashids.NewWithData(data)
	if err != nil {
		return nil, fmt.Errorf("init hashids: %w", err)
	}
	return &Anonymizer{h: h}, nil
}

// Handle encodes (userID, doctorID) into a short opaque tag.
func (a *Anonymizer) Handle(userID, doctorID int64) string {
	encoded, err := a.h.EncodeInt64([]int64{userID, doctorID})
	if err != nil {
		// EncodeInt64 only fails on negative inputs, which IDs never are.
		return "student-unknown"
	}
	return "student-" + encoded
}
