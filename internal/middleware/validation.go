package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/academy/internal/pkg/apperrors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BindJSON decodes the request body into obj. Field rules are checked later by
// the service layer, so only malformed JSON and type mismatches fail here.
func BindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return apperrors.NewBadRequestError("Invalid request body: " + err.Error())
	}
	return nil
}

// ParamObjectID parses the named path parameter as an ObjectID.
func ParamObjectID(c *gin.Context, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		return primitive.NilObjectID, &apperrors.CustomError{
			Err:     apperrors.ErrInvalidID,
			Message: "Invalid " + name + ": " + c.Param(name),
		}
	}
	return id, nil
}
