package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"skicheck/internal/auth"
	"skicheck/internal/model"
	"skicheck/internal/repository"
	"skicheck/internal/service"
)

// AdminHandler handles the member administration endpoints.
type AdminHandler struct {
	userService       service.UserService
	userDetailService service.UserDetailService
	authService       service.AuthService
	defaultPassword   string
}

// NewAdminHandler creates a new admin handler. defaultPassword is assigned to
// accounts created here.
func NewAdminHandler(userService service.UserService, userDetailService service.UserDetailService, authService service.AuthService, defaultPassword string) *AdminHandler {
	return &AdminHandler{
		userService:       userService,
		userDetailService: userDetailService,
		authService:       authService,
		defaultPassword:   defaultPassword,
	}
}

// CreateUserRequest represents an admin creating a member account. The
// account starts with the club default password.
type CreateUserRequest struct {
	Username  string   `json:"username" validate:"required,min=3"`
	Email     string   `json:"email" validate:"required,email"`
	FirstName string   `json:"first_name" validate:"required"`
	LastName  string   `json:"last_name" validate:"required"`
	Roles     []string `json:"roles"`
	HasPaid   bool     `json:"has_paid"`
	Equipment []string `json:"equipment"`
}

// UpdateUserRequest represents an admin updating a member account.
type UpdateUserRequest struct {
	Email     string   `json:"email" validate:"required,email"`
	FirstName string   `json:"first_name" validate:"required"`
	LastName  string   `json:"last_name" validate:"required"`
	Roles     []string `json:"roles"`
	HasPaid   bool     `json:"has_paid"`
	Equipment []string `json:"equipment"`
}

// UserListResponse represents one page of members.
type UserListResponse struct {
	Users    []model.User `json:"users"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

func rolesFromStrings(items []string) []model.Role {
	roles := make([]model.Role, 0, len(items))
	for _, r := range items {
		roles = append(roles, model.Role(r))
	}
	if len(roles) == 0 {
		roles = append(roles, model.RoleUser)
	}
	return roles
}

// pathID parses the :id path parameter. Malformed values map to zero, which
// the services reject as an illegal parameter.
func pathID(c echo.Context) uint {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}

// ListUsers godoc
// @Summary List members
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size"
// @Param username query string false "Filter by username fragment"
// @Param sort query string false "Sort column"
// @Success 200 {object} UserListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var filter repository.Filter
	if fragment := c.QueryParam("username"); fragment != "" {
		filter = repository.UsernameContains(fragment)
	}

	users, err := h.userService.List(c.Request().Context(), page, pageSize, filter, c.QueryParam("sort"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list members")
	}

	return c.JSON(http.StatusOK, UserListResponse{
		Users:    users,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetUser godoc
// @Summary Get a member by id
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /admin/users/{id} [get]
func (h *AdminHandler) GetUser(c echo.Context) error {
	return respond(c, h.userService.GetByID(c.Request().Context(), pathID(c)))
}

// CreateUser godoc
// @Summary Create a member account
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateUserRequest true "Member data"
// @Success 200 {object} Envelope
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /admin/users [post]
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hash, err := auth.HashPassword(h.defaultPassword)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create member")
	}

	user := &model.User{
		Username:       req.Username,
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		HashedPassword: hash,
	}
	user.SetRoleSet(rolesFromStrings(req.Roles)...)
	user.Detail.HasPaid = req.HasPaid
	user.Detail.SetEquipmentSet(equipmentFromStrings(req.Equipment)...)

	return respondCommand(c, h.userService.Save(c.Request().Context(), user))
}

// UpdateUser godoc
// @Summary Update a member account
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param request body UpdateUserRequest true "Member data"
// @Success 200 {object} Envelope
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} Envelope
// @Failure 409 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	lookup := h.userService.GetByID(ctx, pathID(c))
	user := lookup.FirstBusinessObject()
	if user == nil {
		return respond(c, lookup)
	}

	user.Email = req.Email
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.SetRoleSet(rolesFromStrings(req.Roles)...)
	user.Detail.HasPaid = req.HasPaid
	user.Detail.SetEquipmentSet(equipmentFromStrings(req.Equipment)...)

	return respondCommand(c, h.userService.Save(ctx, user))
}

// DeleteUser godoc
// @Summary Delete a member account
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	lookup := h.userService.GetByID(ctx, pathID(c))
	user := lookup.FirstBusinessObject()
	if user == nil {
		return respond(c, lookup)
	}
	return respondCommand(c, h.userService.Delete(ctx, user))
}

// ResetPassword godoc
// @Summary Reset a member's password to the club default
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /admin/users/{id}/reset-password [post]
func (h *AdminHandler) ResetPassword(c echo.Context) error {
	return respond(c, h.authService.ResetPassword(c.Request().Context(), pathID(c)))
}

// ResetPayments godoc
// @Summary Clear the paid flag of every member
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} Envelope
// @Router /admin/payments/reset [post]
func (h *AdminHandler) ResetPayments(c echo.Context) error {
	return respondCommand(c, h.userDetailService.ResetAllPaymentStatus(c.Request().Context()))
}
