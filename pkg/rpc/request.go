// Package rpc speaks the registry's XML RPC dialect: it builds request
// documents, parses response documents and classifies their children into
// channels.
package rpc

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/beevik/etree"
)

// Method tags understood by the registry.
const (
	MethodLookup   = "lookup"
	MethodAdd      = "add"
	MethodRemove   = "remove"
	MethodUpdate   = "update"
	MethodTypeList = "typelist"
)

// Params holds the attributes of one method call.
type Params map[string]string

// Clone returns a copy of the params that can be extended independently.
func (p Params) Clone() Params {
	out := make(Params, len(p)+1)
	maps.Copy(out, p)
	return out
}

// Call is a single method invocation inside a request.
type Call struct {
	Method string
	Params Params
}

// Request is the document sent to the registry. Calls are sent in the order
// they were added.
type Request struct {
	Key     string
	Staging bool
	Debug   bool
	Calls   []Call
}

// NewRequest returns an empty request for the given key and mode flags.
func NewRequest(key string, staging, debug bool) *Request {
	return &Request{Key: key, Staging: staging, Debug: debug}
}

// Add appends a method call. A call with an unusable tag or attribute name is
// rejected and the request is left as it was.
func (r *Request) Add(method string, params Params) error {
	if !isName(method) {
		return fmt.Errorf("invalid method name %q", method)
	}
	for key := range params {
		if !isName(key) {
			return fmt.Errorf("invalid attribute name %q for method %s", key, method)
		}
	}

	r.Calls = append(r.Calls, Call{Method: method, Params: params.Clone()})
	return nil
}

// Document builds the XML document for the request.
func (r *Request) Document() *etree.Document {
	doc := etree.NewDocument()
	// Tabs and line breaks in attribute values are written as character
	// references so the parser on the other end does not fold them to spaces.
	doc.WriteSettings.CanonicalAttrVal = true
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("request")
	root.CreateAttr("key", r.Key)
	if r.Staging {
		root.CreateAttr("staging", "1")
	}
	if r.Debug {
		root.CreateAttr("debug", "1")
	}

	for _, call := range r.Calls {
		element := root.CreateElement(call.Method)
		// Attribute order carries no meaning; sorting keeps the output stable.
		for _, key := range slices.Sorted(maps.Keys(call.Params)) {
			element.CreateAttr(key, call.Params[key])
		}
	}

	return doc
}

// Encode serializes the request as a UTF-8 XML document with a declaration.
func (r *Request) Encode() ([]byte, error) {
	if r.Key == "" {
		return nil, errors.New("request key is empty")
	}

	body, err := r.Document().WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to generate request body XML: %w", err)
	}
	return body, nil
}

// isName reports whether s is usable as an unprefixed XML element or attribute name.
func isName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case i > 0 && (r == '-' || r == '.' || (r >= '0' && r <= '9')):
		default:
			return false
		}
	}
	return true
}
