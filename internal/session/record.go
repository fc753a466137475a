package session

import (
	"errors"
	"fmt"

	"github.com/go-faster/jx"

	"tunisiaguide/pkg/domain"
)

var errRecordIncomplete = errors.New("user record is missing id or email")

// encodeUser serializes u as {"id","email","name","avatar"?}.
func encodeUser(u domain.User) string {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("id")
	e.Str(u.ID.String())
	e.FieldStart("email")
	e.Str(u.Email)
	e.FieldStart("name")
	e.Str(u.Name)
	if u.Avatar != "" {
		e.FieldStart("avatar")
		e.Str(u.Avatar)
	}
	e.ObjEnd()

	return string(e.Bytes())
}

// decodeUser parses a record written by encodeUser. Unknown keys are skipped
// and a null avatar reads as none.
func decodeUser(s string) (domain.User, error) {
	var u domain.User
	err := jx.DecodeStr(s).Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "id":
			v, err := d.Str()
			if err != nil {
				return err //nolint: wrapcheck
			}
			if u.ID, err = domain.ParseUserID(v); err != nil {
				return fmt.Errorf("invalid id: %w", err)
			}

			return nil
		case "email":
			v, err := d.Str()
			u.Email = v

			return err //nolint: wrapcheck
		case "name":
			v, err := d.Str()
			u.Name = v

			return err //nolint: wrapcheck
		case "avatar":
			if d.Next() == jx.Null {
				return d.Null() //nolint: wrapcheck
			}
			v, err := d.Str()
			u.Avatar = v

			return err //nolint: wrapcheck
		default:
			return d.Skip() //nolint: wrapcheck
		}
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("could not decode user record: %w", err)
	}
	if !u.Valid() {
		return domain.User{}, errRecordIncomplete
	}

	return u, nil
}
