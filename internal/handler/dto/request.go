package dto

type CreateUserRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name" binding:"required"`
	Department string `json:"department" binding:"required"`
	Role       string `json:"role" binding:"required"`
	Email      string `json:"email" binding:"required"`
}

type UpdateUserRequest struct {
	Name       *string `json:"name"`
	Department *string `json:"department"`
	Role       *string `json:"role"`
	Email      *string `json:"email"`
}

type CreateResourceRequest struct {
	ID   string `json:"id"`
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required"`
}

type UpdateResourceRequest struct {
	Name *string `json:"name"`
	Type *string `json:"type"`
}

type CreateBookingRequest struct {
	ID         string `json:"id"`
	Resource   string `json:"resource" binding:"required"`
	Date       string `json:"date" binding:"required"`
	StartTime  string `json:"startTime" binding:"required"`
	EndTime    string `json:"endTime" binding:"required"`
	User       string `json:"user" binding:"required"`
	Department string `json:"department"`
	Type       string `json:"type"`
	Purpose    string `json:"purpose"`
	Invitees   string `json:"invitees"`
}

type UpdateBookingRequest struct {
	Resource   *string `json:"resource"`
	Date       *string `json:"date"`
	StartTime  *string `json:"startTime"`
	EndTime    *string `json:"endTime"`
	User       *string `json:"user"`
	Department *string `json:"department"`
	Type       *string `json:"type"`
	Purpose    *string `json:"purpose"`
	Invitees   *string `json:"invitees"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
