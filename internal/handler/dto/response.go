package dto

import "github.com/DanYankho/equipResourceBooking/internal/domain"

type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Role       string `json:"role"`
	Email      string `json:"email"`
}

type ResourceResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type BookingResponse struct {
	ID         string `json:"id"`
	Resource   string `json:"resource"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	User       string `json:"user"`
	Department string `json:"department"`
	Type       string `json:"type"`
	Purpose    string `json:"purpose"`
	Invitees   string `json:"invitees"`
}

// LoginResponse never echoes the password back.
type LoginResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Department: u.Department,
		Role:       string(u.Role),
		Email:      u.Email,
	}
}

func ToResourceResponse(r *domain.Resource) ResourceResponse {
	return ResourceResponse{
		ID:   r.ID,
		Name: r.Name,
		Type: r.Type,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		Resource:   b.Resource,
		Date:       b.Date,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		User:       b.User,
		Department: b.Department,
		Type:       b.Type,
		Purpose:    b.Purpose,
		Invitees:   b.Invitees,
	}
}

func ToLoginResponse(a *domain.Admin) LoginResponse {
	return LoginResponse{
		Username: a.Username,
		Name:     a.Name,
	}
}
