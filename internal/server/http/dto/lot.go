package dto

import (
	"encoding/json"
	"sort"
)

// LotPatchRequest is a partial update of a seller lot. Fields records every
// key named in the request body so the authorization layer can reject
// requests touching anything it does not allow, even keys this type does not
// model.
type LotPatchRequest struct {
	Status string
	Fields []string
}

func (r *LotPatchRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Fields = make([]string, 0, len(raw))
	for field := range raw {
		r.Fields = append(r.Fields, field)
	}
	sort.Strings(r.Fields)

	if v, ok := raw["status"]; ok {
		if err := json.Unmarshal(v, &r.Status); err != nil {
			return err
		}
	}
	return nil
}
