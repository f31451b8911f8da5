package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/CPU-commits/Academy_BBackoffice/funct"
	"github.com/CPU-commits/Academy_BBackoffice/models"
	"github.com/CPU-commits/Academy_BBackoffice/res"
	"github.com/CPU-commits/Academy_BBackoffice/stack"
	"github.com/jung-kurt/gofpdf"
	"github.com/klauspost/compress/zip"
)

// getAcademyData asks the main platform over NATS for the academy
// public data, falling back to the env name when nobody answers
func getAcademyData() map[string]string {
	academyData := map[string]string{
		"name": settingsData.ACADEMY_NAME,
	}
	data, err := formatRequestToNestjsNats("")
	if err != nil {
		return academyData
	}
	msg, err := nats.Request("get_academy_data", data)
	if err != nil {
		return academyData
	}
	var response stack.NatsNestJSRes
	if err := json.Unmarshal(msg.Data, &response); err != nil {
		return academyData
	}
	jsonString, err := json.Marshal(response.Response)
	if err != nil {
		return academyData
	}
	var remote map[string]string
	if err := json.Unmarshal(jsonString, &remote); err != nil {
		return academyData
	}
	for key, value := range remote {
		academyData[key] = value
	}
	return academyData
}

// ExportCoursePDF writes a one-sheet summary of the course
func (c *CoursesService) ExportCoursePDF(idCourse string, w io.Writer) *res.ErrorRes {
	course, errRes := c.GetCourse(idCourse)
	if errRes != nil {
		return errRes
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	defer pdf.Close()

	academyData := getAcademyData()

	pdf.SetFont("Arial", "", 10)
	pdf.AddPage()
	// Header
	pdf.Text(10, 10, academyData["name"])
	if academyData["email"] != "" {
		pdf.Text(10, 15, academyData["email"])
	}
	width, height := pdf.GetPageSize()
	rightMargin := width - 10

	pdf.Text(rightMargin-pdf.GetStringWidth(course.Title), 10, course.Title)
	// Footer
	date := fmt.Sprintf("Emitido el %s", time.Now().Format("2006-01-02"))
	pdf.Text(10, height-5, date)
	// Course data
	rows := [][]string{
		{"Título", course.Title},
		{"Categoría", course.Category},
		{"Nivel", course.Level},
		{"Idioma", course.Language},
		{"Duración", course.Duration},
		{"Modalidad", course.TrainingMode},
		{"Precio", fmt.Sprintf("%v %s", course.Price, course.Currency)},
	}
	if course.TrainingBatch != nil {
		rows = append(rows, []string{"Batch", course.TrainingBatch.BatchName})
		rows = append(rows, []string{"Trainer", course.TrainingBatch.Trainer})
	}
	var sumHeight float64 = 25
	for _, row := range rows {
		pdf.SetXY(10, sumHeight)
		pdf.CellFormat(
			45,
			6,
			row[0],
			"1",
			0,
			"",
			false,
			0,
			"",
		)
		pdf.CellFormat(
			rightMargin-55,
			6,
			row[1],
			"1",
			0,
			"",
			false,
			0,
			"",
		)
		sumHeight += 6
	}
	// Curriculum
	if course.TrainingMetadata != nil && course.TrainingMetadata.Curriculum != nil {
		sumHeight += 6
		pdf.Text(10, sumHeight, "Contenido")
		sumHeight += 4
		for _, section := range course.TrainingMetadata.Curriculum {
			pdf.SetXY(10, sumHeight)
			pdf.CellFormat(
				rightMargin-10,
				5,
				section.Title,
				"1",
				0,
				"",
				false,
				0,
				"",
			)
			sumHeight += 5
			for _, part := range section.SectionParts {
				pdf.SetXY(15, sumHeight)
				pdf.CellFormat(
					rightMargin-15,
					5,
					part.Title,
					"1",
					0,
					"",
					false,
					0,
					"",
				)
				sumHeight += 5
			}
		}
	}
	if err := pdf.Output(w); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return nil
}

// getCourseResourceKeys collects the storage keys attached to the course
func getCourseResourceKeys(course *models.Course) []string {
	var keys []string
	appendKey := func(key string) {
		if key == "" {
			return
		}
		exists := funct.Some(keys, func(k string) bool {
			return k == key
		})
		if !exists {
			keys = append(keys, key)
		}
	}
	appendKey(course.PreviewImageURI)
	appendKey(course.FileAttachmentURI)
	if course.TrainingMetadata != nil {
		appendKey(course.TrainingMetadata.PreviewImageURI)
		appendKey(course.TrainingMetadata.CertificationImageURI)
	}
	return keys
}

// DownloadCourseResources zips every storage object attached to the course
func (c *CoursesService) DownloadCourseResources(idCourse string, writter io.Writer) (*zip.Writer, *res.ErrorRes) {
	// Recovery if close channel
	defer func() {
		recovery := recover()
		if recovery != nil {
			fmt.Printf("A channel closed")
		}
	}()

	course, errRes := c.GetCourse(idCourse)
	if errRes != nil {
		return nil, errRes
	}
	keys := getCourseResourceKeys(course)
	if len(keys) == 0 {
		return nil, &res.ErrorRes{
			Err:        fmt.Errorf("este curso no tiene recursos descargables"),
			StatusCode: http.StatusBadRequest,
		}
	}
	// Download files AWS
	type File struct {
		file io.ReadCloser
		name string
	}
	var err error

	files := make([]File, len(keys))
	var wg sync.WaitGroup
	ch := make(chan (int), 5)
	for i, key := range keys {
		wg.Add(1)
		ch <- 1
		go func(key string, i int, wg *sync.WaitGroup, errRet *error) {
			defer wg.Done()

			bytes, errFile := aws.GetFile(key)
			if errFile != nil {
				*errRet = errFile
				return
			}
			files[i] = File{
				file: bytes,
				name: key,
			}
			<-ch
		}(key, i, &wg, &err)
	}
	wg.Wait()
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	// Create zip archive
	zipWritter := zip.NewWriter(writter)
	for _, file := range files {
		zipFile, err := zipWritter.Create(file.name)
		if err != nil {
			return nil, &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusInternalServerError,
			}
		}
		body, err := io.ReadAll(file.file)
		if err != nil {
			return nil, &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusInternalServerError,
			}
		}
		_, err = zipFile.Write(body)
		if err != nil {
			return nil, &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusInternalServerError,
			}
		}
	}
	return zipWritter, nil
}
