package handlers

import (
	"net/http"

	"tripdesk/models"
	auditService "tripdesk/services/audit"
	userService "tripdesk/services/user"
	"tripdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves staff management and audit endpoints.
type AdminHandler struct {
	UserService  userService.UserService
	AuditService auditService.AuditService
}

var auditColumns = map[int]string{
	0: "createdAt",
	1: "actorId",
	2: "method",
	3: "path",
	4: "status",
}

// ListUsersHandler handles GET /api/admin/users.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.UserService.GetAllUsers()
	if err != nil {
		utils.GetLogger().Error("User listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateUserHandler handles PUT /api/admin/users/:id.
func (h *AdminHandler) UpdateUserHandler(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
		Role string `json:"role" binding:"required,oneof=admin agent"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	usr, err := h.UserService.UpdateUserProfile(c.Param("id"), req.Name, req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if usr == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// DeactivateUserHandler handles DELETE /api/admin/users/:id.
func (h *AdminHandler) DeactivateUserHandler(c *gin.Context) {
	if err := h.UserService.DeactivateUser(c.Param("id")); err != nil {
		utils.GetLogger().Error("User deactivation failed", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deactivated"})
}

// ListAuditHandler handles GET /api/admin/audit (DataTables).
func (h *AdminHandler) ListAuditHandler(c *gin.Context) {
	result, err := h.AuditService.ListEntries(models.ParseListQuery(c, auditColumns))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
