package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/DanYankho/equipResourceBooking/internal/domain"
	"github.com/DanYankho/equipResourceBooking/internal/handler/dto"
	hmocks "github.com/DanYankho/equipResourceBooking/internal/handler/mocks"
)

func setupRouter(t *testing.T) (*hmocks.MockUserSvc, *hmocks.MockResourceSvc, *hmocks.MockBookingSvc, *hmocks.MockAuthSvc, http.Handler) {
	t.Helper()
	userSvc := hmocks.NewMockUserSvc(t)
	resourceSvc := hmocks.NewMockResourceSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)
	authSvc := hmocks.NewMockAuthSvc(t)

	h := NewHandler(userSvc, resourceSvc, bookingSvc, authSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.PUT("/users/:id", h.UpdateUser)
		api.DELETE("/users/:id", h.DeleteUser)
		api.POST("/resources", h.CreateResource)
		api.GET("/resources", h.ListResources)
		api.GET("/resources/:id", h.GetResource)
		api.PUT("/resources/:id", h.UpdateResource)
		api.DELETE("/resources/:id", h.DeleteResource)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.PUT("/bookings/:id", h.UpdateBooking)
		api.DELETE("/bookings/:id", h.DeleteBooking)
		api.POST("/login", h.Login)
		api.GET("/poll", h.Poll)
	}

	return userSvc, resourceSvc, bookingSvc, authSvc, r
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	_, _, bookingSvc, _, r := setupRouter(t)

	booking := &domain.Booking{
		ID:        "b1",
		Resource:  "boardroom",
		Date:      "2024-01-10",
		StartTime: "09:00",
		EndTime:   "10:00",
		User:      "1",
	}
	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(booking, nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		Resource:  "boardroom",
		Date:      "2024-01-10",
		StartTime: "09:00",
		EndTime:   "10:00",
		User:      "1",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "boardroom", resp.Resource)
}

func TestHandler_CreateBooking_MissingFields(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"resource":"boardroom"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_Conflict(t *testing.T) {
	_, _, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrBookingConflict)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		Resource:  "boardroom",
		Date:      "2024-01-10",
		StartTime: "09:30",
		EndTime:   "10:30",
		User:      "2",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListBookings_FilterPassedThrough(t *testing.T) {
	_, _, bookingSvc, _, r := setupRouter(t)

	bookings := []*domain.Booking{{ID: "b1", Resource: "boardroom", Date: "2024-01-10"}}
	bookingSvc.EXPECT().List(mock.Anything, "boardroom", "2024-01-10").Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings?resource=boardroom&date=2024-01-10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	_, _, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UpdateBooking_Success(t *testing.T) {
	_, _, bookingSvc, _, r := setupRouter(t)

	updated := &domain.Booking{ID: "b1", Resource: "boardroom", Purpose: "standup"}
	bookingSvc.EXPECT().Update(mock.Anything, "b1", mock.Anything).Return(updated, nil)

	body := []byte(`{"purpose":"standup"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/b1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "standup", resp.Purpose)
}

func TestHandler_DeleteBooking_Success(t *testing.T) {
	_, _, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Delete(mock.Anything, "b1").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/b1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	userSvc, _, _, _, r := setupRouter(t)

	user := &domain.User{ID: "u1", Name: "Alice", Department: "Engineering", Role: domain.RoleIndividual, Email: "alice@example.com"}
	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	body, _ := json.Marshal(dto.CreateUserRequest{
		Name:       "Alice",
		Department: "Engineering",
		Role:       "individual",
		Email:      "alice@example.com",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alice", resp.Name)
}

func TestHandler_CreateUser_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteUser_NotFound(t *testing.T) {
	userSvc, _, _, _, r := setupRouter(t)

	userSvc.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrUserNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/users/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Resources ---

func TestHandler_CreateResource_DuplicateID(t *testing.T) {
	_, resourceSvc, _, _, r := setupRouter(t)

	resourceSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrIDTaken)

	body, _ := json.Marshal(dto.CreateResourceRequest{ID: "boardroom", Name: "Boardroom", Type: "room"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/resources", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListResources_Success(t *testing.T) {
	_, resourceSvc, _, _, r := setupRouter(t)

	resources := []*domain.Resource{
		{ID: "boardroom", Name: "Boardroom", Type: "room"},
		{ID: "van-1", Name: "Pool Van", Type: "vehicle"},
	}
	resourceSvc.EXPECT().List(mock.Anything).Return(resources, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/resources", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ResourceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Auth ---

func TestHandler_Login_Success(t *testing.T) {
	_, _, _, authSvc, r := setupRouter(t)

	admin := &domain.Admin{Username: "admin", Name: "Administrator"}
	authSvc.EXPECT().Login(mock.Anything, "admin", "admin123").Return(admin, nil)

	body, _ := json.Marshal(dto.LoginRequest{Username: "admin", Password: "admin123"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Administrator", resp.Name)
	assert.NotContains(t, w.Body.String(), "admin123")
}

func TestHandler_Login_BadCredentials(t *testing.T) {
	_, _, _, authSvc, r := setupRouter(t)

	authSvc.EXPECT().Login(mock.Anything, "admin", "wrong").Return(nil, domain.ErrInvalidCredentials)

	body, _ := json.Marshal(dto.LoginRequest{Username: "admin", Password: "wrong"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Misc ---

func TestHandler_Poll_Empty(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/poll", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"changes":[]}`, w.Body.String())
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	_, _, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().GetByID(mock.Anything, "b1").Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/b1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
