package model

import (
	"bytes"
	"database/sql/driver"
	"fmt"
)

// Flag is a boolean that tolerates the legacy representations of the
// deleted/banned column: true/false, 0/1 and their string forms. Imported
// payloads carry either; normalization happens here at the ingestion
// boundary so downstream logic only ever sees a bool.
type Flag bool

func (f Flag) Bool() bool { return bool(f) }

func (f *Flag) UnmarshalJSON(data []byte) error {
	switch string(bytes.Trim(data, `"`)) {
	case "true", "1":
		*f = true
	case "false", "0", "null", "":
		*f = false
	default:
		return fmt.Errorf("invalid flag value %s", data)
	}
	return nil
}

// Scan implements sql.Scanner; the column may be boolean or smallint.
func (f *Flag) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*f = false
	case bool:
		*f = Flag(v)
	case int64:
		*f = v != 0
	case []byte:
		*f = len(v) > 0 && (v[0] == '1' || v[0] == 't' || v[0] == 'T')
	default:
		return fmt.Errorf("cannot scan %T into Flag", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (f Flag) Value() (driver.Value, error) {
	return bool(f), nil
}
