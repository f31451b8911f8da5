package controllers

import (
	"io"
	"net/http"

	"github.com/CPU-commits/Academy_BBackoffice/forms"
	"github.com/CPU-commits/Academy_BBackoffice/res"
	"github.com/CPU-commits/Academy_BBackoffice/services"
	"github.com/gin-gonic/gin"
)

// Services
var leadsService = services.NewLeadsService()

type LeadsController struct{}

// Query
// GetLeads godoc
// @Summary     Get leads
// @Description Get every lead sorted by newest first
// @Tags        leads
// @Tags        roles.admin
// @Tags        roles.editor
// @Accept      json
// @Produce     json
// @Success     200 {object} res.Response{body=smaps.LeadsMap}
// @Failure     503 {object} res.Response{} "DB Service Unavailable"
// @Router      /get-leads [get]
func (lead *LeadsController) GetLeads(c *gin.Context) {
	leads, errRes := leadsService.GetLeads()
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["leads"] = leads
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// Feed
// NewLead godoc
// @Summary     Create lead
// @Description Insert a new lead and notify the back office
// @Tags        leads
// @Accept      json
// @Produce     json
// @Success     201 {object} res.Response{}
// @Failure     400 {object} res.Response{} "Bad body"
// @Router      /create-lead [post]
func (lead *LeadsController) NewLead(c *gin.Context) {
	var leadData *forms.LeadForm
	if err := c.BindJSON(&leadData); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	// Insert
	inserted, errRes := leadsService.NewLead(leadData)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["lead"] = inserted
	c.JSON(http.StatusCreated, &res.Response{
		Success: true,
		Data:    response,
	})
}

// UpdateLead godoc
// @Summary     Edit lead
// @Tags        leads
// @Tags        roles.admin
// @Tags        roles.editor
// @Accept      json
// @Produce     json
// @Param       idLead path     string true "MongoID"
// @Success     200    {object} res.Response{}
// @Failure     404    {object} res.Response{} "No existe este lead"
// @Router      /edit-lead/{idLead} [put]
func (lead *LeadsController) UpdateLead(c *gin.Context) {
	idLead := c.Param("idLead")
	var leadData *forms.LeadUpdateForm
	if err := c.BindJSON(&leadData); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	// Update
	if errRes := leadsService.UpdateLead(idLead, leadData); errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	c.JSON(200, &res.Response{
		Success: true,
	})
}

// DeleteLead godoc
// @Summary     Delete lead
// @Tags        leads
// @Tags        roles.admin
// @Tags        roles.editor
// @Accept      json
// @Produce     json
// @Param       idLead path     string true "MongoID"
// @Success     200    {object} res.Response{}
// @Failure     404    {object} res.Response{} "No existe este lead"
// @Router      /delete-lead/{idLead} [delete]
func (lead *LeadsController) DeleteLead(c *gin.Context) {
	idLead := c.Param("idLead")
	// Delete
	if errRes := leadsService.DeleteLead(idLead); errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	c.JSON(200, &res.Response{
		Success: true,
	})
}

// ExportLeads godoc
// @Summary     Export leads
// @Description Download every lead as a XLSX workbook
// @Tags        leads
// @Tags        roles.admin
// @Tags        roles.editor
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success     200
// @Failure     503 {object} res.Response{} "DB Service Unavailable"
// @Router      /export-leads [get]
func (lead *LeadsController) ExportLeads(c *gin.Context) {
	c.Writer.Header().Set(
		"Content-type",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	)
	c.Stream(func(w io.Writer) bool {
		if _, errRes := leadsService.ExportLeads(w); errRes != nil {
			c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
				Success: false,
				Message: errRes.Err.Error(),
			})
			return false
		}
		c.Writer.Header().Set(
			"Content-Disposition",
			"attachment; filename='leads.xlsx'",
		)
		return false
	})
}
