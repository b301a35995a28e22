package receipt

import (
	"bytes"
	"fmt"

	"foodpreorder/internal/domain/model"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// Build は注文1件のレシートPDFを作る。
// 注文IDのQRコードを末尾に載せる（店頭での照合用）。
func Build(order model.Order, subtotal int64, deliveryFee int64) ([]byte, error) {
	qrPNG, err := qrcode.Encode(order.ID, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("generate qr: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, "FoodPreOrder", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, "Order Receipt", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Order #%s", order.ID), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, order.CreatedAt.Format("2006-01-02 15:04:05"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Customer: %s", order.Customer.Name))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Email: %s", order.Customer.Email))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Phone: %s", order.Customer.Phone))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Delivery: %s", order.DeliveryOption))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 7, "Items:")
	pdf.Ln(7)

	pdf.SetFont("Arial", "", 11)
	for _, it := range order.Items {
		lineTotal := it.Price * it.Quantity
		pdf.Cell(0, 6, fmt.Sprintf("%d x %s - %s", it.Quantity, it.Name, model.FormatPrice(lineTotal)))
		pdf.Ln(6)
	}
	if deliveryFee > 0 {
		pdf.Cell(0, 6, fmt.Sprintf("Delivery Fee - %s", model.FormatPrice(deliveryFee)))
		pdf.Ln(6)
	}
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Subtotal: %s", model.FormatPrice(subtotal)))
	pdf.Ln(7)
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %s", model.FormatPrice(order.Total)))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("order-qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("order-qr", 80, pdf.GetY(), 50, 50, false, imageOpts, 0, "")
	pdf.Ln(54)

	pdf.SetFont("Arial", "I", 11)
	pdf.CellFormat(0, 8, "Thank you for your order!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
