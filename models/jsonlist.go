package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// EncodeStringList marshals an ordered string list into a JSON column value.
func EncodeStringList(items []string) (datatypes.JSON, error) {
	if items == nil {
		items = []string{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// DecodeStringList unmarshals a JSON column back into a string slice. An
// empty column decodes to an empty list.
func DecodeStringList(raw datatypes.JSON) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}
