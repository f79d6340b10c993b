package spigot

import (
	"github.com/globalsign/mgo/bson"
)

// GetBSON stores the digits as their string form.
func (ds Digits) GetBSON() (interface{}, error) {
	return ds.String(), nil
}

// SetBSON parses digits stored by GetBSON.
func (ds *Digits) SetBSON(raw bson.Raw) error {
	var s string
	if err := raw.Unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseDigits(s)
	if err != nil {
		return err
	}
	*ds = parsed
	return nil
}
