package response

import (
	"github.com/gin-gonic/gin"
)

// Fixed prefixes carried on every failure body. Clients parse on these, so
// they are part of the wire contract.
const (
	ExceptionPrefix        = "Following Exception Occurred : "
	MalformedRequestPrefix = "Malformed Request : "
	InvalidFieldsPrefix    = "Invalid Fields:"
)

// VoidResponse is the envelope used whenever an endpoint has only a
// human-readable message to return, on success and failure paths alike.
type VoidResponse struct {
	Response string `json:"response"`
}

// Message writes a VoidResponse with the given status.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, VoidResponse{Response: message})
}

// Exception writes a failure VoidResponse carrying the exception prefix.
func Exception(c *gin.Context, status int, message string) {
	Message(c, status, ExceptionPrefix+message)
}

// Malformed writes the 400 body for a structurally broken payload.
func Malformed(c *gin.Context, status int, detail string) {
	Message(c, status, MalformedRequestPrefix+detail)
}

// InvalidFields writes the 400 body listing the violating field names,
// comma-joined behind the fixed markers.
func InvalidFields(c *gin.Context, status int, joinedFields string) {
	Message(c, status, MalformedRequestPrefix+InvalidFieldsPrefix+joinedFields)
}
