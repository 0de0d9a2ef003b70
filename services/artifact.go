package services

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// ArtifactService builds server-generated artifacts: the prescription
// PDF and the payment QR image.
type ArtifactService struct {
	dir string
}

func NewArtifactService(dir string) *ArtifactService {
	return &ArtifactService{dir: dir}
}

/*
* Fixed prescription template: centered title, then patient name,
* email, care instructions, medicine list
* Written straight into the upload dir, same naming scheme as uploads
 */
func (s *ArtifactService) GeneratePrescriptionPDF(patientName, patientEmail, care, medicines string) (string, error) {
	name := fmt.Sprintf("prescription-%d-%s.pdf", time.Now().UnixMilli(), uuid.NewString()[:8])

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Prescription", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 8, "Patient Name: "+patientName, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, "Email: "+patientEmail, "", 1, "L", false, 0, "")
	pdf.MultiCell(0, 8, "Care: "+care, "", "L", false)
	pdf.MultiCell(0, 8, "Medicines: "+medicines, "", "L", false)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}
	if err := pdf.OutputFileAndClose(filepath.Join(s.dir, name)); err != nil {
		return "", err
	}

	return "/uploads/" + name, nil
}

// PaymentQR renders the payment details as a PNG QR code and returns
// it as a data URL, stored inline on the consultation record.
func (s *ArtifactService) PaymentQR(transactionID, amount, description string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"transactionId": transactionID,
		"amount":        amount,
		"description":   description,
	})
	if err != nil {
		return "", err
	}

	png, err := qrcode.Encode(string(payload), qrcode.Medium, 256)
	if err != nil {
		return "", err
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
