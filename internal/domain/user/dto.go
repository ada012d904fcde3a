package user

type CreateUserInput struct {
	Username string `json:"username" form:"username" binding:"required,min=3,max=150" example:"alice"`
	Password string `json:"password" form:"password" binding:"required,min=6" example:"password123"`
}

type LoginInput struct {
	Username string `json:"username" form:"username" binding:"required" example:"alice"`
	Password string `json:"password" form:"password" binding:"required" example:"password123"`
}

type UserDTO struct {
	UID       uint   `json:"u_id" example:"1"`
	Username  string `json:"username" example:"alice"`
	CreatedAt string `json:"create_at" example:"2025-07-17 15:20:41"`
}

func ToDTO(u User) UserDTO {
	return UserDTO{
		UID:       u.UID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToDTOs(users []User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, ToDTO(u))
	}
	return out
}
