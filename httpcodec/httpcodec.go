// Package httpcodec defines the wire types shared by the HTTP server
// and HTTP client capabilities.
package httpcodec

import (
	"encoding/json"

	"github.com/wippyai/actor-codec/msgpack"
	"github.com/wippyai/actor-codec/schema"
)

// Operation names for the HTTP capabilities
const (
	// OpHandleRequest is invoked on an actor in response to an inbound
	// HTTP request
	OpHandleRequest = "HttpServer.HandleRequest"
	// OpPerformRequest is invoked on a provider to perform an outbound
	// HTTP request
	OpPerformRequest = "HttpClient.PerformRequest"
)

// RequestType is the schema of Request
var RequestType = schema.NewType("Request",
	schema.Required("method", schema.FieldString),
	schema.Required("path", schema.FieldString),
	schema.Optional("queryString", schema.FieldString),
	schema.Optional("header", schema.FieldStringMap),
	schema.Optional("body", schema.FieldBinary),
)

// ResponseType is the schema of Response
var ResponseType = schema.NewType("Response",
	schema.Required("statusCode", schema.FieldUint32),
	schema.Required("status", schema.FieldString),
	schema.Optional("header", schema.FieldStringMap),
	schema.Optional("body", schema.FieldBinary),
)

// Request describes an HTTP request
type Request struct {
	// The HTTP method (e.g. GET, PUT, DELETE)
	Method string
	// The path or URL of the request, leading slashes may not be trimmed
	Path string
	// The query string portion of the URL
	QueryString string
	// The request headers as key-value pairs
	Header map[string]string
	// The raw bytes of the request body
	Body []byte
}

func (r *Request) Schema() *schema.Type { return RequestType }

func (r *Request) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.String("method", r.Method)
	b.String("path", r.Path)
	b.String("queryString", r.QueryString)
	b.StringMap("header", r.Header)
	b.Bytes("body", r.Body)
	return b.Value()
}

func (r *Request) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(RequestType, v)
	r.Method = d.String("method")
	r.Path = d.String("path")
	r.QueryString = d.String("queryString")
	r.Header = d.StringMap("header")
	r.Body = d.Bytes("body")
	return d.Err()
}

// Response represents an HTTP response
type Response struct {
	// The response's numerical status code (e.g. 200)
	StatusCode uint32
	// The string version of the status (e.g. 'OK')
	Status string
	// HTTP response headers as key-value pairs
	Header map[string]string
	// The raw bytes of the body
	Body []byte
}

func (r *Response) Schema() *schema.Type { return ResponseType }

func (r *Response) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.Uint32("statusCode", r.StatusCode)
	b.String("status", r.Status)
	b.StringMap("header", r.Header)
	b.Bytes("body", r.Body)
	return b.Value()
}

func (r *Response) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(ResponseType, v)
	r.StatusCode = d.Uint32("statusCode")
	r.Status = d.String("status")
	r.Header = d.StringMap("header")
	r.Body = d.Bytes("body")
	return d.Err()
}

// JSON creates a response with the given status and the payload
// serialized as JSON
func JSON(payload any, statusCode uint32, status string) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Response{
		StatusCode: statusCode,
		Status:     status,
		Body:       body,
	}, nil
}

// OK creates a 200/OK response
func OK() *Response {
	return &Response{StatusCode: 200, Status: "OK"}
}

// NotFound creates a 404/Not Found response
func NotFound() *Response {
	return &Response{StatusCode: 404, Status: "Not Found"}
}

// BadRequest creates a 400/Bad Request response
func BadRequest() *Response {
	return &Response{StatusCode: 400, Status: "Bad Request"}
}

// InternalServerError creates a 500 response carrying msg as the body
func InternalServerError(msg string) *Response {
	return &Response{
		StatusCode: 500,
		Status:     "Internal Server Error",
		Body:       []byte(msg),
	}
}

// SampleRequest returns a representative Request for codec validation
// tooling
func SampleRequest() *Request {
	return &Request{
		Method:      "GET",
		Path:        "/foo",
		QueryString: "a=1&b=2",
		Header:      sampleHeader(),
		Body:        []byte("This is the body of a request"),
	}
}

// SampleResponse returns a representative Response for codec validation
// tooling
func SampleResponse() *Response {
	return &Response{
		StatusCode: 200,
		Status:     "OK",
		Header:     sampleHeader(),
		Body:       []byte("This is the body of a response"),
	}
}

func sampleHeader() map[string]string {
	return map[string]string{
		"accept": "application/json",
		"dummy":  "value",
	}
}
