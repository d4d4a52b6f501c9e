package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/pixellake/mcgate/internal/survey"
)

// OptionList stores a question's options as a JSON column.
type OptionList []survey.Option

func (o OptionList) Value() (driver.Value, error) {
	if o == nil {
		return nil, nil
	}
	return json.Marshal(o)
}

func (o *OptionList) Scan(src interface{}) error {
	return scanJSON(src, o)
}

// ValidationColumn stores a question's validation rules as a JSON column.
type ValidationColumn survey.Validation

func (v ValidationColumn) Value() (driver.Value, error) {
	return json.Marshal(v)
}

func (v *ValidationColumn) Scan(src interface{}) error {
	return scanJSON(src, v)
}

// ConditionColumn stores a question's visibility condition as a JSON
// column. DependsOn is positional, matching the publish serialization.
type ConditionColumn struct {
	DependsOn int                  `json:"depends_on"`
	ShowWhen  survey.TriggerValues `json:"show_when"`
}

func (c ConditionColumn) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *ConditionColumn) Scan(src interface{}) error {
	return scanJSON(src, c)
}

func scanJSON(src, dst interface{}) error {
	switch data := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(data, dst)
	case string:
		return json.Unmarshal([]byte(data), dst)
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
}
