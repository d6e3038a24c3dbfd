package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roteiro/internal/models/request_models"
	"roteiro/internal/services"
	"roteiro/pkg/utils"
)

type MemberController struct {
	memberService services.MemberServiceInterface
}

func NewMemberController(memberService services.MemberServiceInterface) *MemberController {
	return &MemberController{memberService: memberService}
}

func (ct *MemberController) List(c *gin.Context) {
	members, err := ct.memberService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, members, "Members fetched successfully")
}

func (ct *MemberController) Create(c *gin.Context) {
	var req request_models.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	member, err := ct.memberService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, member, "Member added successfully")
}

func (ct *MemberController) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Member ID is required")
		return
	}

	var req request_models.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	member, err := ct.memberService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, member, "Member updated successfully")
}

func (ct *MemberController) Remove(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Member ID is required")
		return
	}

	if err := ct.memberService.Remove(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Member removed successfully")
}
