package resume

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-studio/internal/shared/metrics"
	"resume-studio/internal/shared/server/respond"
)

// Handler exposes the document store's read/write contract over HTTP.
// Every mutation endpoint answers with the post-mutation snapshot, no-ops
// included: a stale id is silently rejected by the store, not an error.
type Handler struct {
	Store *Store
}

// NewHandler constructs a Handler.
func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resume", h.getSnapshot)

	rg.PATCH("/resume/personal-info", h.updatePersonalInfo)
	rg.PUT("/resume/summary", h.updateSummary)
	rg.PATCH("/resume/portfolio", h.updatePortfolio)
	rg.PUT("/resume/interests", h.updateInterests)

	rg.POST("/resume/experience", h.addExperience)
	rg.PATCH("/resume/experience/:id", h.updateExperience)
	rg.DELETE("/resume/experience/:id", h.removeExperience)
	rg.POST("/resume/experience/reorder", h.reorderExperience)

	rg.POST("/resume/education", h.addEducation)
	rg.PATCH("/resume/education/:id", h.updateEducation)
	rg.DELETE("/resume/education/:id", h.removeEducation)
	rg.POST("/resume/education/reorder", h.reorderEducation)

	rg.POST("/resume/skills", h.addSkill)
	rg.PATCH("/resume/skills/:id", h.updateSkill)
	rg.DELETE("/resume/skills/:id", h.removeSkill)
	rg.POST("/resume/skills/reorder", h.reorderSkills)

	rg.PUT("/resume/sections/order", h.reorderSections)
	rg.PUT("/resume/active-item", h.setActiveItem)
	rg.POST("/resume/duplicate", h.duplicateItem)
	rg.PATCH("/resume/layout", h.updateLayout)

	rg.POST("/resume/reset", h.reset)
	rg.POST("/resume/undo", h.undo)
	rg.POST("/resume/redo", h.redo)
}

func (h *Handler) getSnapshot(c *gin.Context) {
	respond.OK(c, h.Store.Snapshot())
}

func (h *Handler) mutated(c *gin.Context) {
	metrics.IncMutation()
	respond.OK(c, h.Store.Snapshot())
}

func (h *Handler) updatePersonalInfo(c *gin.Context) {
	var req fieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "field is required", nil)
		return
	}
	h.Store.UpdatePersonalInfo(req.Field, req.Value)
	h.mutated(c)
}

func (h *Handler) updateSummary(c *gin.Context) {
	var req valueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid body", nil)
		return
	}
	h.Store.UpdateSummary(req.Value)
	h.mutated(c)
}

func (h *Handler) updatePortfolio(c *gin.Context) {
	var req fieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "field is required", nil)
		return
	}
	h.Store.UpdatePortfolio(req.Field, req.Value)
	h.mutated(c)
}

func (h *Handler) updateInterests(c *gin.Context) {
	var req valueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid body", nil)
		return
	}
	h.Store.UpdateInterests(req.Value)
	h.mutated(c)
}

func (h *Handler) addExperience(c *gin.Context) {
	h.Store.AddExperience()
	h.mutated(c)
}

func (h *Handler) updateExperience(c *gin.Context) {
	var req fieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "field is required", nil)
		return
	}
	h.Store.UpdateExperience(c.Param("id"), req.Field, req.Value)
	h.mutated(c)
}

func (h *Handler) removeExperience(c *gin.Context) {
	h.Store.RemoveExperience(c.Param("id"))
	h.mutated(c)
}

func (h *Handler) reorderExperience(c *gin.Context) {
	from, to, ok := h.bindReorder(c)
	if !ok {
		return
	}
	h.Store.ReorderExperience(from, to)
	h.mutated(c)
}

func (h *Handler) addEducation(c *gin.Context) {
	h.Store.AddEducation()
	h.mutated(c)
}

func (h *Handler) updateEducation(c *gin.Context) {
	var req fieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "field is required", nil)
		return
	}
	h.Store.UpdateEducation(c.Param("id"), req.Field, req.Value)
	h.mutated(c)
}

func (h *Handler) removeEducation(c *gin.Context) {
	h.Store.RemoveEducation(c.Param("id"))
	h.mutated(c)
}

func (h *Handler) reorderEducation(c *gin.Context) {
	from, to, ok := h.bindReorder(c)
	if !ok {
		return
	}
	h.Store.ReorderEducation(from, to)
	h.mutated(c)
}

func (h *Handler) addSkill(c *gin.Context) {
	h.Store.AddSkill()
	h.mutated(c)
}

func (h *Handler) updateSkill(c *gin.Context) {
	var req skillUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "field must be name or level", nil)
		return
	}
	id := c.Param("id")
	switch req.Field {
	case "name":
		var name string
		if err := json.Unmarshal(req.Value, &name); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "name must be a string", nil)
			return
		}
		h.Store.UpdateSkillName(id, name)
	case "level":
		var level int
		if err := json.Unmarshal(req.Value, &level); err != nil || level < 0 || level > 100 {
			respond.Error(c, http.StatusBadRequest, "validation_error", "level must be an integer between 0 and 100", nil)
			return
		}
		h.Store.UpdateSkillLevel(id, level)
	}
	h.mutated(c)
}

func (h *Handler) removeSkill(c *gin.Context) {
	h.Store.RemoveSkill(c.Param("id"))
	h.mutated(c)
}

func (h *Handler) reorderSkills(c *gin.Context) {
	from, to, ok := h.bindReorder(c)
	if !ok {
		return
	}
	h.Store.ReorderSkills(from, to)
	h.mutated(c)
}

func (h *Handler) reorderSections(c *gin.Context) {
	var req sectionOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "order is required", nil)
		return
	}
	if !isSectionPermutation(req.Order) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "order must be a permutation of the known sections", nil)
		return
	}
	h.Store.ReorderSections(req.Order)
	h.mutated(c)
}

func (h *Handler) setActiveItem(c *gin.Context) {
	var req activeItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid body", nil)
		return
	}
	h.Store.SetActiveItem(req.ID)
	// Selection changes are not counted as mutations.
	respond.OK(c, h.Store.Snapshot())
}

func (h *Handler) duplicateItem(c *gin.Context) {
	var req duplicateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "kind must be experience or education", nil)
		return
	}
	h.Store.DuplicateItem(req.Kind, req.ID)
	h.mutated(c)
}

func (h *Handler) updateLayout(c *gin.Context) {
	var req layoutUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "field must be sectionGap or skillsMode", nil)
		return
	}
	switch req.Field {
	case "sectionGap":
		var gap int
		if err := json.Unmarshal(req.Value, &gap); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "sectionGap must be an integer", nil)
			return
		}
		h.Store.UpdateLayoutGap(gap)
	case "skillsMode":
		var mode string
		if err := json.Unmarshal(req.Value, &mode); err != nil || (mode != SkillsModeList && mode != SkillsModeGrid) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "skillsMode must be list or grid", nil)
			return
		}
		h.Store.UpdateLayoutSkillsMode(mode)
	}
	h.mutated(c)
}

func (h *Handler) reset(c *gin.Context) {
	h.Store.Reset()
	h.mutated(c)
}

func (h *Handler) undo(c *gin.Context) {
	if h.Store.Undo() {
		metrics.IncUndo()
	}
	respond.OK(c, h.Store.Snapshot())
}

func (h *Handler) redo(c *gin.Context) {
	if h.Store.Redo() {
		metrics.IncRedo()
	}
	respond.OK(c, h.Store.Snapshot())
}

func (h *Handler) bindReorder(c *gin.Context) (int, int, bool) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "from and to are required", nil)
		return 0, 0, false
	}
	return *req.From, *req.To, true
}
