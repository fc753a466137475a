package v1handler

import (
	"io"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"tunisiaguide/pkg/domain"
	"tunisiaguide/pkg/serrors"
)

const maxBodyBytes = 64 << 10

type credentials struct {
	Email    string
	Password string
	Name     string
}

// decodeBody reads the JSON object in the request body and hands every field
// to field. Bodies over maxBodyBytes are rejected.
func decodeBody(r *http.Request, field func(d *jx.Decoder, key string) error) error {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body")
	}
	if len(data) > maxBodyBytes {
		return serrors.With(serrors.ErrBadRequest, "request body too large")
	}

	if err := jx.DecodeBytes(data).Obj(field); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid JSON body")
	}

	return nil
}

// wrapField names the offending field in a decode error. A nil err stays nil.
func wrapField(err error, key string) error {
	if err != nil {
		return errors.Wrap(err, key)
	}

	return nil
}

func decodeCredentials(r *http.Request) (credentials, error) {
	var c credentials
	err := decodeBody(r, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "email":
			c.Email, err = d.Str()
		case "password":
			c.Password, err = d.Str()
		case "name":
			c.Name, err = d.Str()
		default:
			err = d.Skip()
		}

		return wrapField(err, key)
	})

	return c, err
}

// decodeUserUpdate reads a partial user. Absent and null fields are left
// untouched.
func decodeUserUpdate(r *http.Request) (domain.UserUpdate, error) {
	var upd domain.UserUpdate
	err := decodeBody(r, func(d *jx.Decoder, key string) error {
		var target **string
		switch key {
		case "email":
			target = &upd.Email
		case "name":
			target = &upd.Name
		case "avatar":
			target = &upd.Avatar
		default:
			return wrapField(d.Skip(), key)
		}

		if d.Next() == jx.Null {
			return wrapField(d.Null(), key)
		}
		v, err := d.Str()
		if err != nil {
			return wrapField(err, key)
		}
		*target = &v

		return nil
	})

	return upd, err
}

func decodeEnabled(r *http.Request) (bool, error) {
	var (
		enabled bool
		seen    bool
	)
	err := decodeBody(r, func(d *jx.Decoder, key string) error {
		if key != "enabled" {
			return wrapField(d.Skip(), key)
		}
		v, err := d.Bool()
		enabled, seen = v, true

		return wrapField(err, key)
	})
	if err != nil {
		return false, err
	}
	if !seen {
		return false, serrors.With(serrors.ErrBadRequest, "enabled is required")
	}

	return enabled, nil
}
