package contract

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/model"
)

const instantLayout = "02 Jan 2006 15:04"

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// RentalContract renders a one-page rental agreement for a booking.
func (r *Renderer) RentalContract(b model.Booking, v model.Vehicle, c model.Customer) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Rental Agreement %s", b.Number), false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, "VEHICLE RENTAL AGREEMENT", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("Agreement No. %s", b.Number), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	section := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(235, 235, 235)
		pdf.CellFormat(0, 8, title, "", 1, "L", true, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.Ln(1)
	}
	row := func(label, value string) {
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
	}

	section("Renter")
	row("Name", fmt.Sprintf("%s %s", c.FirstName, c.LastName))
	row("Email", c.Email)
	row("Phone", c.Phone)
	row("Driving license", c.LicenseNumber)
	pdf.Ln(3)

	section("Vehicle")
	row("Vehicle", fmt.Sprintf("%s %s (%d)", v.Make, v.Model, v.Year))
	row("Plate number", v.PlateNumber)
	row("Category", v.Category)
	row("Transmission", v.Transmission)
	pdf.Ln(3)

	section("Rental period")
	row("Pickup", b.StartAt.Format(instantLayout))
	row("Return", b.EndAt.Format(instantLayout))
	if b.ReturnAt != nil {
		row("Actual return", b.ReturnAt.Format(instantLayout))
	}
	pdf.Ln(3)

	section("Charges")
	row("Daily rate", b.DailyRate.StringFixed(2))
	row("Charged days", fmt.Sprintf("%d", b.ChargedDays))
	if b.LateFee.IsPositive() {
		row("Late return fee", b.LateFee.StringFixed(2))
	}
	pdf.SetFont("Arial", "B", 11)
	row("Total amount", b.TotalPrice.StringFixed(2))
	pdf.SetFont("Arial", "", 11)
	pdf.Ln(8)

	pdf.SetFont("Arial", "I", 9)
	pdf.MultiCell(0, 5, "The renter confirms receiving the vehicle in the condition recorded at pickup and agrees "+
		"to return it by the agreed return instant. Late returns beyond the 90 minute grace window are "+
		"charged one additional rental day per started day.", "", "L", false)
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(90, 7, "Renter signature: ______________________", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, "Company signature: ______________________", "", 1, "L", false, 0, "")
	pdf.Ln(4)
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s", time.Now().Format(instantLayout)), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "render contract")
	}
	return buf.Bytes(), nil
}
