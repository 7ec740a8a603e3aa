package document

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"staffroll/internal/staffroll"
	"staffroll/internal/textenc"
)

var (
	ErrUnknownField = errors.New("document: unknown field")
	ErrFieldRange   = errors.New("document: value out of range")
	ErrTextTooLong  = errors.New("document: text too long")
	ErrInvalidValue = errors.New("document: invalid value")
)

// FieldValue pairs a schema entry with its current value rendered as UTF-8
// text.
type FieldValue struct {
	Spec  staffroll.FieldSpec
	Value string
}

// FieldValues lists cmd's fields in schema order.
func FieldValues(cmd staffroll.Command) []FieldValue {
	specs := staffroll.Describe(cmd).Fields
	out := make([]FieldValue, 0, len(specs))
	for _, spec := range specs {
		out = append(out, FieldValue{Spec: spec, Value: fieldString(cmd, spec.Name)})
	}
	return out
}

func fieldString(cmd staffroll.Command, name string) string {
	switch c := cmd.(type) {
	case staffroll.Wait:
		return strconv.Itoa(int(c.Frames))
	case staffroll.SwitchScene:
		return strconv.Itoa(int(c.Scene))
	case staffroll.SwitchSceneAndWait:
		return strconv.Itoa(int(c.Scene))
	case staffroll.PlayTitleLogoAnimation:
		return strconv.Itoa(int(c.Animation))
	case staffroll.SetText:
		if name == "title" {
			return textenc.FromFile(c.Title)
		}
		return textenc.FromFile(c.Body)
	}
	return ""
}

// SetFields applies "name=value" assignments to cmd in order. This is the
// editing path, so single-line fields must not contain line breaks. Files
// may still hold such titles; SetField accepts them.
func SetFields(cmd staffroll.Command, assignments []string) (staffroll.Command, error) {
	for _, assignment := range assignments {
		name, value, ok := strings.Cut(assignment, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q is not name=value", ErrInvalidValue, assignment)
		}
		if err := checkLine(cmd, name, value); err != nil {
			return nil, err
		}
		var err error
		cmd, err = SetField(cmd, name, value)
		if err != nil {
			return nil, err
		}
	}
	return cmd, nil
}

// SetField returns a copy of cmd with the named field set from raw. Integer
// fields are range checked against the schema; text is converted to file
// bytes and must keep the record within the format's size limit. Any text
// Decode can produce is accepted, line breaks in a title included.
func SetField(cmd staffroll.Command, name, raw string) (staffroll.Command, error) {
	desc := staffroll.Describe(cmd)
	name = strings.ToLower(strings.TrimSpace(name))
	var spec staffroll.FieldSpec
	found := false
	for _, s := range desc.Fields {
		if s.Name == name {
			spec, found = s, true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %s has no field %q", ErrUnknownField, desc.Key, name)
	}

	switch spec.Kind {
	case staffroll.FieldU8, staffroll.FieldU16:
		n, err := parseUint(spec, raw)
		if err != nil {
			return nil, err
		}
		switch c := cmd.(type) {
		case staffroll.Wait:
			c.Frames = uint16(n)
			return c, nil
		case staffroll.SwitchScene:
			c.Scene = uint8(n)
			return c, nil
		case staffroll.SwitchSceneAndWait:
			c.Scene = uint8(n)
			return c, nil
		case staffroll.PlayTitleLogoAnimation:
			c.Animation = uint8(n)
			return c, nil
		}
	case staffroll.FieldLine, staffroll.FieldText:
		c, ok := cmd.(staffroll.SetText)
		if !ok {
			break
		}
		text, err := textenc.ToFile(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", spec.Name, err)
		}
		if spec.Name == "title" {
			c.Title = text
		} else {
			c.Body = text
		}
		if n := staffroll.SetTextPayloadLen(c.Title, c.Body); n > staffroll.MaxPayloadLen {
			return nil, fmt.Errorf("%w: title and text need %d bytes, at most %d fit", ErrTextTooLong, n, staffroll.MaxPayloadLen)
		}
		return c, nil
	}
	return nil, fmt.Errorf("%w: %s field %q has no setter", ErrUnknownField, desc.Key, name)
}

func checkLine(cmd staffroll.Command, name, raw string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, spec := range staffroll.Describe(cmd).Fields {
		if spec.Name == name && spec.Kind == staffroll.FieldLine && strings.ContainsAny(raw, "\r\n") {
			return fmt.Errorf("%w: %s must be a single line", ErrInvalidValue, spec.Name)
		}
	}
	return nil
}

func parseUint(spec staffroll.FieldSpec, raw string) (uint64, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.ParseUint(raw, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number, got %q", ErrInvalidValue, spec.Name, raw)
	}
	if n > spec.Max {
		return 0, fmt.Errorf("%w: %s must be between 0 and %d, got %d", ErrFieldRange, spec.Name, spec.Max, n)
	}
	return n, nil
}
