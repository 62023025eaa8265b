package handlers

import (
	"net/http"

	"resto_manager/internal/middleware"
	"resto_manager/internal/models"
	"resto_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *gin.Context) {
	if role := c.Query("role"); role != "" {
		users, err := h.userService.GetUsersByRole(role)
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, gin.H{"users": users})
		return
	}

	users, err := h.userService.GetAllUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"users": users})
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	user, err := h.userService.GetUserByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"user": user})
}

type createUserRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	creator := middleware.CurrentUser(c)
	user := models.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		Phone:     req.Phone,
		IsActive:  true,
		CreatedBy: &creator.ID,
	}
	if user.Role == string(models.RoleAdmin) && creator.Role != string(models.RoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Only admins can create admin accounts"})
		return
	}
	if err := h.userService.CreateUser(&user, req.Password); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusCreated, "User created successfully", gin.H{"user": user})
}

type updateUserRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	user, err := h.userService.GetUserByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Role != "" {
		actor := middleware.CurrentUser(c)
		if req.Role == string(models.RoleAdmin) && actor.Role != string(models.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Only admins can assign the admin role"})
			return
		}
		user.Role = req.Role
	}

	if err := h.userService.UpdateUser(user); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "User updated successfully", gin.H{"user": user})
}

func (h *UserHandler) ToggleStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	actor := middleware.CurrentUser(c)
	if actor.ID == id {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "You cannot deactivate your own account"})
		return
	}
	user, err := h.userService.ToggleStatus(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "User status updated successfully", gin.H{"user": user})
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	actor := middleware.CurrentUser(c)
	if actor.ID == id {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "You cannot delete your own account"})
		return
	}
	if err := h.userService.DeleteUser(id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "User deleted successfully", nil)
}
