package survey

import "encoding/json"

// TriggerValues is the set of answers that satisfy a condition. The wire
// format allows either a bare string or an array of strings; in memory it
// is always a slice.
type TriggerValues []string

func (t TriggerValues) MarshalJSON() ([]byte, error) {
	if len(t) == 1 {
		return json.Marshal(t[0])
	}
	return json.Marshal([]string(t))
}

func (t *TriggerValues) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = TriggerValues{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*t = TriggerValues(many)
	return nil
}
