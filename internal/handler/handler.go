package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/DanYankho/equipResourceBooking/internal/domain"
	"github.com/DanYankho/equipResourceBooking/internal/handler/dto"
)

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, input domain.UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

type ResourceSvc interface {
	Create(ctx context.Context, input domain.CreateResourceInput) (*domain.Resource, error)
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	List(ctx context.Context) ([]*domain.Resource, error)
	Update(ctx context.Context, id string, input domain.UpdateResourceInput) (*domain.Resource, error)
	Delete(ctx context.Context, id string) error
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, resource, date string) ([]*domain.Booking, error)
	Update(ctx context.Context, id string, input domain.UpdateBookingInput) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

type AuthSvc interface {
	Login(ctx context.Context, username, password string) (*domain.Admin, error)
}

type Handler struct {
	userService     UserSvc
	resourceService ResourceSvc
	bookingService  BookingSvc
	authService     AuthSvc
}

func NewHandler(userService UserSvc, resourceService ResourceSvc, bookingService BookingSvc, authService AuthSvc) *Handler {
	return &Handler{
		userService:     userService,
		resourceService: resourceService,
		bookingService:  bookingService,
		authService:     authService,
	}
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Create(c.Request.Context(), domain.CreateUserInput{
		ID:         req.ID,
		Name:       req.Name,
		Department: req.Department,
		Role:       req.Role,
		Email:      req.Email,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) GetUser(c *ginext.Context) {
	user, err := h.userService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateUser(c *ginext.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Update(c.Request.Context(), c.Param("id"), domain.UpdateUserInput{
		Name:       req.Name,
		Department: req.Department,
		Role:       req.Role,
		Email:      req.Email,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) DeleteUser(c *ginext.Context) {
	if err := h.userService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Resources

func (h *Handler) CreateResource(c *ginext.Context) {
	var req dto.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.resourceService.Create(c.Request.Context(), domain.CreateResourceInput{
		ID:   req.ID,
		Name: req.Name,
		Type: req.Type,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToResourceResponse(res))
}

func (h *Handler) GetResource(c *ginext.Context) {
	res, err := h.resourceService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToResourceResponse(res))
}

func (h *Handler) ListResources(c *ginext.Context) {
	resources, err := h.resourceService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ResourceResponse, 0, len(resources))
	for _, r := range resources {
		resp = append(resp, dto.ToResourceResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateResource(c *ginext.Context) {
	var req dto.UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.resourceService.Update(c.Request.Context(), c.Param("id"), domain.UpdateResourceInput{
		Name: req.Name,
		Type: req.Type,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToResourceResponse(res))
}

func (h *Handler) DeleteResource(c *ginext.Context) {
	if err := h.resourceService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), domain.CreateBookingInput{
		ID:         req.ID,
		Resource:   req.Resource,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		User:       req.User,
		Department: req.Department,
		Type:       req.Type,
		Purpose:    req.Purpose,
		Invitees:   req.Invitees,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	booking, err := h.bookingService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	bookings, err := h.bookingService.List(
		c.Request.Context(),
		c.Query("resource"),
		c.Query("date"),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateBooking(c *ginext.Context) {
	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Update(c.Request.Context(), c.Param("id"), domain.UpdateBookingInput{
		Resource:   req.Resource,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		User:       req.User,
		Department: req.Department,
		Type:       req.Type,
		Purpose:    req.Purpose,
		Invitees:   req.Invitees,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) DeleteBooking(c *ginext.Context) {
	if err := h.bookingService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Auth

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	admin, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLoginResponse(admin))
}

// Poll is a placeholder for clients that poll for changes. It always
// reports an empty change set.
func (h *Handler) Poll(c *ginext.Context) {
	c.JSON(http.StatusOK, ginext.H{"changes": []string{}})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrResourceNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrAdminNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrBookingConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrIDTaken),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
