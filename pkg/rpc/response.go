package rpc

import (
	"fmt"

	"github.com/beevik/etree"
)

// Channels consumed by the presenter.
const (
	ChannelResult   = "result"
	ChannelSuccess  = "success"
	ChannelWarning  = "warning"
	ChannelDebug    = "debug"
	ChannelTypeList = "typelist"
)

// Response type attribute values.
const (
	typeSuccess = "success"
	typeError   = "error"
)

// Attr is one attribute of a response element.
type Attr struct {
	Name, Value string
}

// Record holds the attributes of one response element in document order.
type Record []Attr

// Get returns the value of the named attribute, or "" if it is absent.
func (r Record) Get(name string) string {
	value, _ := r.Lookup(name)
	return value
}

// Lookup returns the value of the named attribute and whether it is present.
func (r Record) Lookup(name string) (string, bool) {
	for _, attr := range r {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// With returns a copy of the record with the named attribute set. An existing
// attribute keeps its position.
func (r Record) With(name, value string) Record {
	out := make(Record, len(r), len(r)+1)
	copy(out, r)
	for i := range out {
		if out[i].Name == name {
			out[i].Value = value
			return out
		}
	}
	return append(out, Attr{Name: name, Value: value})
}

// Response is a successful response with its children grouped by tag.
type Response struct {
	order    []string
	channels map[string][]Record
}

// Channel returns the records of the named channel in document order.
func (r *Response) Channel(name string) []Record {
	return r.channels[name]
}

// Has reports whether the response carried at least one element of the named channel.
func (r *Response) Has(name string) bool {
	_, ok := r.channels[name]
	return ok
}

// Channels returns channel names in the order they first appeared.
func (r *Response) Channels() []string {
	return r.order
}

func (r *Response) add(name string, record Record) {
	if _, ok := r.channels[name]; !ok {
		r.order = append(r.order, name)
	}
	r.channels[name] = append(r.channels[name], record)
}

// ParseResponse validates the response envelope and groups the children of a
// successful response into channels. An error response yields a *ServerError;
// a malformed document yields a *ProtocolError.
func ParseResponse(raw []byte) (*Response, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, &ProtocolError{Reason: "failed to parse XML response", Err: err}
	}

	// A well-formed document has exactly one root element.
	if len(doc.ChildElements()) != 1 {
		return nil, &ProtocolError{Reason: "invalid XML response received"}
	}

	root := doc.Root()
	if root.Tag != "response" {
		return nil, &ProtocolError{Reason: "invalid XML response received"}
	}

	typeAttr := root.SelectAttr("type")
	if typeAttr == nil {
		return nil, &ProtocolError{Reason: "missing response type attribute"}
	}

	switch typeAttr.Value {
	case typeError:
		return nil, parseServerError(root)
	case typeSuccess:
	default:
		return nil, &ProtocolError{Reason: fmt.Sprintf("unknown response type received: %s", typeAttr.Value)}
	}

	response := &Response{channels: map[string][]Record{}}
	for _, child := range root.ChildElements() {
		record := make(Record, 0, len(child.Attr))
		for _, attr := range child.Attr {
			record = append(record, Attr{Name: attr.Key, Value: attr.Value})
		}
		response.add(child.Tag, record)
	}

	return response, nil
}

// parseServerError reads the code, message and data of an error response. All
// three are required.
func parseServerError(root *etree.Element) error {
	fields := make([]string, 3)
	for i, tag := range []string{"code", "message", "data"} {
		element := root.SelectElement(tag)
		if element == nil {
			return &ProtocolError{Reason: fmt.Sprintf("error response is missing the %s element", tag)}
		}
		fields[i] = element.Text()
	}
	return &ServerError{Code: fields[0], Message: fields[1], Data: fields[2]}
}
