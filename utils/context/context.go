package context

import (
	"context"

	"github.com/muhammadheryan/contact-management/constant"
	"github.com/muhammadheryan/contact-management/model"
)

// GetUser returns the authenticated user placed into the request context by
// the auth middleware.
func GetUser(ctx context.Context) (*model.UserEntity, bool) {
	v := ctx.Value(constant.UserKey)
	if v == nil {
		return nil, false
	}
	user, ok := v.(*model.UserEntity)
	return user, ok
}
