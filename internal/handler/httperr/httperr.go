package httperr

import (
	"github.com/gin-gonic/gin"
)

// Kind is the closed set of error categories exposed to clients.
type Kind string

const (
	KindValidation         Kind = "ValidationError"
	KindSlotConflict       Kind = "SlotConflict"
	KindNotFound           Kind = "NotFound"
	KindStorageUnavailable Kind = "StorageUnavailable"
	KindRouteNotFound      Kind = "RouteNotFound"
)

type Response struct {
	Status  int      `json:"-"`
	Success bool     `json:"sucesso"`
	Message string   `json:"erro"`
	Kind    Kind     `json:"tipo"`
	Reason  string   `json:"motivo,omitempty"`
	Fields  []string `json:"campos,omitempty"`
	Example string   `json:"exemplo,omitempty"`
	Detail  any      `json:"detalhes,omitempty"`
}

func New(status int, kind Kind, msg string) Response {
	return Response{Status: status, Kind: kind, Message: msg}
}

func (r Response) WithReason(reason string) Response {
	r.Reason = reason
	return r
}

func (r Response) WithFields(fields ...string) Response {
	r.Fields = fields
	return r
}

func (r Response) WithExample(example string) Response {
	r.Example = example
	return r
}

func (r Response) WithDetail(detail any) Response {
	r.Detail = detail
	return r
}

// RouteNotFound is the body of any request that matched no route.
type RouteNotFound struct {
	Message string `json:"erro"`
	Kind    Kind   `json:"tipo"`
	URL     string `json:"url"`
	Method  string `json:"metodo"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, err error, resp Response) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
