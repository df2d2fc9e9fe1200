package v1

import (
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectUC domain.ProjectUsecase
}

func NewProjectHandler(public *gin.RouterGroup, projectUC domain.ProjectUsecase) {
	handler := &ProjectHandler{projectUC: projectUC}

	public.GET("/projects", handler.ListProjects)
}

// ListProjects godoc
// @Summary      List portfolio projects
// @Tags         projects
// @Produce      json
// @Param        tag  query     string  false  "Filter by tag (case-insensitive)"
// @Success      200  {object}  response.Response{data=[]domain.Project}
// @Router       /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects := h.projectUC.List(c.Request.Context(), c.Query("tag"))
	response.Success(c, http.StatusOK, "Projects retrieved", projects)
}
