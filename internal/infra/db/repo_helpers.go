package db

import (
	"encoding/json"
	"errors"
)

var errDBUnavailable = errors.New("db unavailable")

func toJSON(value any) ([]byte, error) {
	if value == nil {
		return nil, nil
	}
	return json.Marshal(value)
}

func fromJSON(raw []byte, target any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, target)
}
