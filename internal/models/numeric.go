package models

import "encoding/json"

// Numeric accepts a JSON number or a numeric string. The frontend sends ids
// and counts as strings; either encoding lands here verbatim and the service
// layer decides whether it parses.
type Numeric string

// UnmarshalJSON keeps the raw token, unquoting strings and mapping null to
// empty so required-field validation treats it as absent.
func (n *Numeric) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Numeric(s)
		return nil
	}
	if string(data) == "null" {
		*n = ""
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*n = Numeric(num)
	return nil
}

func (n Numeric) String() string {
	return string(n)
}
