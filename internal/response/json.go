package response

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// MarshalJSON renders the document for the wire. Object members are emitted
// in insertion order, list elements in append order; enum literals render as
// their name string and Scalar values pass their nested payload through.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, &v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v *Value) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindObject:
		buf.WriteByte('{')
		for i := range v.object.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			name, err := json.Marshal(v.object.members[i].Name)
			if err != nil {
				return err
			}
			buf.Write(name)
			buf.WriteByte(':')
			if err := writeJSON(buf, &v.object.members[i].Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case KindList:
		buf.WriteByte('[')
		for i := range *v.list {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, &(*v.list)[i]); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindString, KindEnum:
		text, err := json.Marshal(*v.text)
		if err != nil {
			return err
		}
		buf.Write(text)
	case KindBoolean:
		buf.WriteString(strconv.FormatBool(v.boolean))
	case KindInt:
		buf.WriteString(strconv.Itoa(v.integer))
	case KindFloat:
		f, err := json.Marshal(v.float)
		if err != nil {
			return err
		}
		buf.Write(f)
	case KindScalar:
		return writeJSON(buf, v.scalar)
	}
	return nil
}
