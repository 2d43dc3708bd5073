package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/walletbase/account-api/internal/core/domain"
	"github.com/walletbase/account-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create adds a user directly, admin only.
//
// @Summary      Create a user (admin)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// List returns a page of users, newest first, admin only.
//
// @Summary      List users (admin, paginated)
// @Tags         users
// @Produce      json
// @Param        page   query     int  false  "Page number (1-based)"
// @Param        limit  query     int  false  "Items per page"
// @Success      200    {object}  domain.PaginatedUsers
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.userService.FindAll(c.Request().Context(), domain.PaginationOptions{Page: page, Limit: limit})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Profile returns the authenticated caller's own record.
//
// @Summary      Current user profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /users/profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.userService.FindByID(c.Request().Context(), identity.Sub)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Get returns a user by id, admin only.
//
// @Summary      Get a user (admin)
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update applies a partial mutation, admin only.
//
// @Summary      Update a user (admin)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  domain.User
// @Failure      404   {object}  map[string]string
// @Router       /users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete removes a user, admin only.
//
// @Summary      Delete a user (admin)
// @Tags         users
// @Param        id  path  int  true  "User ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AddWallet appends a wallet address to the caller's own profile.
//
// @Summary      Add a wallet address
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      walletRequest  true  "Wallet address"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Router       /users/profile/wallets [post]
func (h *UserHandler) AddWallet(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req walletRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.AddWallet(c.Request().Context(), identity.Sub, req.Address, req.Network)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateWallet replaces the wallet at the given index on the caller's profile.
//
// @Summary      Update a wallet address
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        index  path      int            true  "Wallet index"
// @Param        body   body      walletRequest  true  "Wallet address"
// @Success      200    {object}  domain.User
// @Failure      400    {object}  map[string]string
// @Router       /users/profile/wallets/{index} [put]
func (h *UserHandler) UpdateWallet(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	index, err := walletIndex(c)
	if err != nil {
		return err
	}

	var req walletRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.UpdateWallet(c.Request().Context(), identity.Sub, index, req.Address, req.Network)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// RemoveWallet drops the wallet at the given index from the caller's profile.
//
// @Summary      Remove a wallet address
// @Tags         users
// @Produce      json
// @Param        index  path      int  true  "Wallet index"
// @Success      200    {object}  domain.User
// @Failure      400    {object}  map[string]string
// @Router       /users/profile/wallets/{index} [delete]
func (h *UserHandler) RemoveWallet(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	index, err := walletIndex(c)
	if err != nil {
		return err
	}

	user, err := h.userService.RemoveWallet(c.Request().Context(), identity.Sub, index)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	return id, nil
}

func walletIndex(c echo.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid wallet index")
	}
	return index, nil
}
