package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roteiro/internal/models/request_models"
	"roteiro/internal/services"
	"roteiro/pkg/utils"
)

type LodgingController struct {
	lodgingService    services.LodgingServiceInterface
	suggestionService services.SuggestionServiceInterface
}

func NewLodgingController(lodgingService services.LodgingServiceInterface, suggestionService services.SuggestionServiceInterface) *LodgingController {
	return &LodgingController{
		lodgingService:    lodgingService,
		suggestionService: suggestionService,
	}
}

func (ct *LodgingController) List(c *gin.Context) {
	lodgings, err := ct.lodgingService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, lodgings, "Lodgings fetched successfully")
}

func (ct *LodgingController) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Lodging ID is required")
		return
	}

	lodging, err := ct.lodgingService.Get(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, lodging, "Lodging fetched successfully")
}

func (ct *LodgingController) Create(c *gin.Context) {
	var req request_models.LodgingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	lodging, err := ct.lodgingService.Create(c.Request.Context(), currentUser(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, lodging, "Lodging created successfully")
}

func (ct *LodgingController) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Lodging ID is required")
		return
	}

	var req request_models.LodgingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	lodging, err := ct.lodgingService.Update(c.Request.Context(), currentUser(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, lodging, "Lodging updated successfully")
}

func (ct *LodgingController) Remove(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Lodging ID is required")
		return
	}

	if err := ct.lodgingService.Remove(c.Request.Context(), currentUser(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Lodging removed successfully")
}

// CachedSuggestion returns the stored surroundings guide for a lodging, if
// one has been generated before.
func (ct *LodgingController) CachedSuggestion(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Lodging ID is required")
		return
	}

	text, ok, err := ct.suggestionService.Cached(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if !ok {
		utils.RespondError(c, http.StatusNotFound, "No cached suggestion for this lodging")
		return
	}
	utils.RespondSuccess(c, gin.H{"suggestion": text}, "Suggestion fetched successfully")
}

func (ct *LodgingController) GenerateSuggestion(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Lodging ID is required")
		return
	}

	text, err := ct.suggestionService.Generate(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"suggestion": text}, "Suggestion generated successfully")
}
