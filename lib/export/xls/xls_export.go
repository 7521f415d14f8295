package xlsexport

import (
	"bytes"
	"fmt"
	dbmodels "hr-recruit-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportApplicationList(list []dbmodels.JobApplication) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var applicationHeaders = []string{"Кандидат", "Контакты", "Вакансия", "Статус", "Оценка ИИ-скрининга", "Оценка интервью", "Дата отклика"}

func (i impl) ExportApplicationList(list []dbmodels.JobApplication) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row, err := writeHeader(f, sheet, 0, applicationHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeApplicationData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Отклики")
	return f.WriteToBuffer()
}

func writeApplicationData(f *excelize.File, sheet string, list []dbmodels.JobApplication, row int) (int, error) {
	for _, item := range list {
		row++
		// "Кандидат"
		col := 1
		candidateName := ""
		contacts := ""
		if item.Candidate != nil {
			candidateName = item.Candidate.GetFullName()
			contacts = fmt.Sprintf("%v\r%v", item.Candidate.PhoneNumber, item.Candidate.Email)
		}
		if err := writeColumn(f, sheet, col, row, candidateName); err != nil {
			return row, err
		}

		// "Контакты"
		col++
		if err := writeColumn(f, sheet, col, row, contacts); err != nil {
			return row, err
		}

		// "Вакансия"
		col++
		if item.Job != nil {
			if err := writeColumn(f, sheet, col, row, item.Job.Name); err != nil {
				return row, err
			}
		}

		// "Статус"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return row, err
		}

		// "Оценка ИИ-скрининга"
		col++
		if item.AiScreeningScore != nil {
			if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%.1f", *item.AiScreeningScore)); err != nil {
				return row, err
			}
		}

		// "Оценка интервью"
		col++
		if item.TechnicalScore != nil {
			if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%.1f", *item.TechnicalScore)); err != nil {
				return row, err
			}
		}

		// "Дата отклика"
		col++
		if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006")); err != nil {
			return row, err
		}
	}
	return row, nil
}

func writeColumn(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

func writeHeader(f *excelize.File, sheet string, row int, headers []string) (int, error) {
	row++
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
		Font: &excelize.Font{
			Bold:   true,
			Family: "Times New Roman",
			Size:   11,
		},
	})
	if err != nil {
		return row, err
	}
	cellFirst, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return row, err
	}
	cellLast, err := excelize.CoordinatesToCellName(len(headers), row)
	if err != nil {
		return row, err
	}
	if err = f.SetCellStyle(sheet, cellFirst, cellLast, style); err != nil {
		return row, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return row, err
	}
	if err = f.SetColWidth(sheet, "A", lastCol, 25); err != nil {
		return row, err
	}
	for idx, value := range headers {
		if err = writeColumn(f, sheet, idx+1, row, value); err != nil {
			return row, err
		}
	}
	return row, nil
}
