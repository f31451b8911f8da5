package services

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/CPU-commits/Academy_BBackoffice/db"
	"github.com/CPU-commits/Academy_BBackoffice/forms"
	"github.com/CPU-commits/Academy_BBackoffice/models"
	"github.com/CPU-commits/Academy_BBackoffice/res"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var leadsService *LeadsService

type LeadsService struct{}

func (l *LeadsService) NewLead(leadData *forms.LeadForm) (*models.Lead, *res.ErrorRes) {
	leadModelData := models.NewModelLead(leadData)
	inserted, err := leadModel.NewDocument(leadModelData)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	leadModelData.ID = inserted.InsertedID.(primitive.ObjectID)
	// Notification
	nats.PublishEncode("notify/backoffice", res.NotifyBackoffice{
		Title: fmt.Sprintf("Nuevo lead: %s", leadModelData.Name),
		Link:  fmt.Sprintf("/leads/%s", leadModelData.ID.Hex()),
		Type:  res.LEAD,
	})
	return leadModelData, nil
}

func (l *LeadsService) GetLeads() ([]models.Lead, *res.ErrorRes) {
	var leads []models.Lead

	cursor, err := leadModel.GetAll(bson.D{}, options.Find().SetSort(bson.D{{
		Key:   "createdAt",
		Value: -1,
	}}))
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if err := cursor.All(db.Ctx, &leads); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return leads, nil
}

func (l *LeadsService) UpdateLead(idLead string, leadData *forms.LeadUpdateForm) *res.ErrorRes {
	idObjLead, err := primitive.ObjectIDFromHex(idLead)
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	// Exists
	var lead *models.Lead
	cursor := leadModel.GetByID(idObjLead)
	if err := cursor.Decode(&lead); err != nil {
		if err.Error() == db.NO_SINGLE_DOCUMENT {
			return &res.ErrorRes{
				Err:        fmt.Errorf("no existe este lead"),
				StatusCode: http.StatusNotFound,
			}
		}
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	// Update
	set := bson.M{
		"updatedAt": primitive.NewDateTimeFromTime(time.Now()),
	}
	if leadData.Name != nil {
		set["name"] = *leadData.Name
	}
	if leadData.Email != nil {
		set["email"] = *leadData.Email
	}
	if leadData.Phone != nil {
		set["phone"] = *leadData.Phone
	}
	if leadData.Course != nil {
		set["course"] = *leadData.Course
	}
	if leadData.Message != nil {
		set["message"] = *leadData.Message
	}
	if leadData.Active != nil {
		set["active"] = *leadData.Active
	}
	_, err = leadModel.Use().UpdateByID(db.Ctx, idObjLead, bson.D{
		{
			Key:   "$set",
			Value: set,
		},
	})
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return nil
}

func (l *LeadsService) DeleteLead(idLead string) *res.ErrorRes {
	idObjLead, err := primitive.ObjectIDFromHex(idLead)
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	// Exists
	var lead *models.Lead
	cursor := leadModel.GetByID(idObjLead)
	if err := cursor.Decode(&lead); err != nil {
		if err.Error() == db.NO_SINGLE_DOCUMENT {
			return &res.ErrorRes{
				Err:        fmt.Errorf("no existe este lead"),
				StatusCode: http.StatusNotFound,
			}
		}
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	_, err = leadModel.Use().DeleteOne(db.Ctx, bson.M{
		"_id": idObjLead,
	})
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return nil
}

// ExportLeads writes every lead into an XLSX workbook
func (l *LeadsService) ExportLeads(w io.Writer) (*excelize.File, *res.ErrorRes) {
	leads, errRes := l.GetLeads()
	if errRes != nil {
		return nil, errRes
	}
	// Init file
	file := excelize.NewFile()
	sheetName := "Leads"
	file.SetSheetName("Sheet1", sheetName)
	// Set columns
	headers := []string{"Nombre", "Email", "Teléfono", "Curso", "Mensaje", "Fecha"}
	for i, header := range headers {
		column := fmt.Sprintf("%v1", string(rune('A'+i)))
		file.SetCellValue(sheetName, column, header)
	}
	// Set values
	for i, lead := range leads {
		row := i + 2
		file.SetCellValue(sheetName, fmt.Sprintf("A%v", row), lead.Name)
		file.SetCellValue(sheetName, fmt.Sprintf("B%v", row), lead.Email)
		file.SetCellValue(sheetName, fmt.Sprintf("C%v", row), lead.Phone)
		file.SetCellValue(sheetName, fmt.Sprintf("D%v", row), lead.Course)
		file.SetCellValue(sheetName, fmt.Sprintf("E%v", row), lead.Message)
		file.SetCellValue(sheetName, fmt.Sprintf("F%v", row), lead.CreatedAt.Time().Format(time.RFC3339))
	}

	if err := file.Write(w); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return file, nil
}

func NewLeadsService() *LeadsService {
	if leadsService == nil {
		leadsService = &LeadsService{}
	}
	return leadsService
}
