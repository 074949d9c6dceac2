package models

import (
	"encoding/json"
	"strconv"
)

// Minutes is a service duration. Collections written by older builds stored
// it as a bare number, newer ones as a string, so it unmarshals from both.
type Minutes string

func (m Minutes) String() string {
	return string(m)
}

func (m *Minutes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = Minutes(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*m = Minutes(strconv.FormatInt(int64(n), 10))
	return nil
}

type Service struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes Minutes `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Description     string  `json:"description,omitempty"`
}
