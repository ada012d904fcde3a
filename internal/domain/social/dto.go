package social

import "github.com/linskybing/litreview-go/internal/domain/user"

type FollowInput struct {
	Username string `json:"username" form:"username" binding:"required,max=150" example:"bob"`
}

type SubscriptionsDTO struct {
	Following []user.UserDTO `json:"following"`
	Followers []user.UserDTO `json:"followers"`
}
