package ticket

type CreateTicketInput struct {
	Title       string `json:"title" form:"title" binding:"required,max=128" example:"Dune"`
	Description string `json:"description" form:"description" binding:"max=2048" example:"Looking for opinions on the 1965 edition"`
}

type UpdateTicketInput struct {
	Title       *string `json:"title,omitempty" form:"title" binding:"omitempty,min=1,max=128"`
	Description *string `json:"description,omitempty" form:"description" binding:"omitempty,max=2048"`
	RemoveImage bool    `json:"remove_image,omitempty" form:"remove_image"`
}
