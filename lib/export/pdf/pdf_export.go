package pdfexport

import (
	"bytes"
	"fmt"
	"hr-recruit-backend/lib/utils/helpers"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

type OfferData struct {
	CompanyName   string
	CandidateName string
	JobName       string
	Position      string
	Salary        int
	Currency      string
	StartDate     *time.Time
	ValidUntil    *time.Time
}

func GenerateOffer(data OfferData) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateOffer panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.CellFormat(0, 10, "Предложение о работе", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 12)
	_, lineHt := pdf.GetFontSize()
	lineHt += 3

	writeLine := func(text string) {
		pdf.MultiCell(0, lineHt, text, "", "L", false)
	}

	writeLine(fmt.Sprintf("Уважаемый(ая) %v!", data.CandidateName))
	pdf.Ln(3)
	writeLine(fmt.Sprintf("Компания «%v» рада предложить вам позицию «%v» по итогам отбора на вакансию «%v».",
		data.CompanyName, data.Position, data.JobName))
	pdf.Ln(3)
	writeLine(fmt.Sprintf("Предлагаемый оклад: %v %v в месяц.", data.Salary, data.Currency))
	if data.StartDate != nil {
		writeLine(fmt.Sprintf("Предполагаемая дата выхода: %v", helpers.FormatRuDate(*data.StartDate)))
	}
	if data.ValidUntil != nil {
		pdf.Ln(3)
		writeLine(fmt.Sprintf("Предложение действительно до %v.", helpers.FormatRuDate(*data.ValidUntil)))
	}
	pdf.Ln(6)
	writeLine("Будем рады видеть вас в нашей команде!")

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
